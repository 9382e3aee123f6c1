//go:build cgo

// Command logfacade-cabi builds the facade as a C shared library:
//
//	go build -buildmode=c-shared -o liblogfacade.so ./cmd/logfacade-cabi
//
// Every function takes and returns only integers and pointers. Sink and
// logger handles are uint64_t values, zero meaning failure. Argument buffers
// are uintptr_t values obtained from LF_VarArgsNew and released with
// LF_VarArgsFree.
package main

/*
#include <stdint.h>
#include <stddef.h>

typedef struct {
	const char* pattern;
	uint32_t    level;
	uint64_t    bit_mask;
} lf_logger_params;
*/
import "C"

import (
	"runtime/cgo"
	"time"
	"unsafe"

	"github.com/Station-Manager/logfacade"
)

var facade = logfacade.NewContext()

func main() {}

func cbool(b bool) C.int {
	if b {
		return 1
	}
	return 0
}

func gobool(v C.int) bool { return v != 0 }

func sinkHandle(h C.uint64_t) logfacade.SinkHandle     { return logfacade.SinkHandle(h) }
func loggerHandle(h C.uint64_t) logfacade.LoggerHandle { return logfacade.LoggerHandle(h) }

// varArgs resolves a buffer handle. Stale or foreign values yield nil.
func varArgs(h C.uintptr_t) (a *logfacade.VarArgs) {
	if h == 0 {
		return nil
	}
	defer func() {
		if recover() != nil {
			a = nil
		}
	}()
	a, _ = cgo.Handle(h).Value().(*logfacade.VarArgs)
	return a
}

func loggerParams(p *C.lf_logger_params) *logfacade.LoggerParams {
	if p == nil {
		return nil
	}
	return &logfacade.LoggerParams{
		Pattern: C.GoString(p.pattern),
		Level:   logfacade.LevelFromUint(uint32(p.level)),
		BitMask: uint64(p.bit_mask),
	}
}

//export LF_Init
func LF_Init(asyncMode C.int, queueSize, overflowPolicy, flushIntervalMs C.uint32_t, onError unsafe.Pointer) C.uint32_t {
	return C.uint32_t(facade.Init(logfacade.InitConfig{
		AsyncMode:      gobool(asyncMode),
		QueueSize:      int(queueSize),
		OverflowPolicy: logfacade.OverflowPolicy(overflowPolicy),
		FlushInterval:  time.Duration(flushIntervalMs) * time.Millisecond,
		OnError:        errorCallback(onError),
	}))
}

//export LF_Free
func LF_Free() C.int {
	return cbool(facade.Shutdown())
}

// Argument buffers

//export LF_VarArgsNew
func LF_VarArgsNew() C.uintptr_t {
	return C.uintptr_t(cgo.NewHandle(logfacade.NewVarArgs()))
}

//export LF_VarArgsFree
func LF_VarArgsFree(h C.uintptr_t) {
	if varArgs(h) != nil {
		cgo.Handle(h).Delete()
	}
}

//export LF_VarArgsClear
func LF_VarArgsClear(h C.uintptr_t) {
	if a := varArgs(h); a != nil {
		a.Clear()
	}
}

//export LF_VarArgsSize
func LF_VarArgsSize(h C.uintptr_t) C.size_t {
	return C.size_t(varArgs(h).Len())
}

//export LF_VarArgsCompressedType
func LF_VarArgsCompressedType(h C.uintptr_t) C.uint64_t {
	if a := varArgs(h); a != nil {
		return C.uint64_t(a.CompressedType())
	}
	return 0
}

//export LF_VarArgsAddInt32
func LF_VarArgsAddInt32(h C.uintptr_t, v C.int32_t) {
	if a := varArgs(h); a != nil {
		a.AddInt32(int32(v))
	}
}

//export LF_VarArgsAddInt8
func LF_VarArgsAddInt8(h C.uintptr_t, v C.int8_t) {
	if a := varArgs(h); a != nil {
		a.AddInt8(int8(v))
	}
}

//export LF_VarArgsAddInt16
func LF_VarArgsAddInt16(h C.uintptr_t, v C.int16_t) {
	if a := varArgs(h); a != nil {
		a.AddInt16(int16(v))
	}
}

//export LF_VarArgsAddUint8
func LF_VarArgsAddUint8(h C.uintptr_t, v C.uint8_t) {
	if a := varArgs(h); a != nil {
		a.AddUint8(uint8(v))
	}
}

//export LF_VarArgsAddUint16
func LF_VarArgsAddUint16(h C.uintptr_t, v C.uint16_t) {
	if a := varArgs(h); a != nil {
		a.AddUint16(uint16(v))
	}
}

//export LF_VarArgsAddUint32
func LF_VarArgsAddUint32(h C.uintptr_t, v C.uint32_t) {
	if a := varArgs(h); a != nil {
		a.AddUint32(uint32(v))
	}
}

//export LF_VarArgsAddInt64
func LF_VarArgsAddInt64(h C.uintptr_t, v C.int64_t) {
	if a := varArgs(h); a != nil {
		a.AddInt64(int64(v))
	}
}

//export LF_VarArgsAddUint64
func LF_VarArgsAddUint64(h C.uintptr_t, v C.uint64_t) {
	if a := varArgs(h); a != nil {
		a.AddUint64(uint64(v))
	}
}

//export LF_VarArgsAddBool
func LF_VarArgsAddBool(h C.uintptr_t, v C.int) {
	if a := varArgs(h); a != nil {
		a.AddBool(gobool(v))
	}
}

//export LF_VarArgsAddChar
func LF_VarArgsAddChar(h C.uintptr_t, v C.char) {
	if a := varArgs(h); a != nil {
		a.AddChar(byte(v))
	}
}

//export LF_VarArgsAddDouble
func LF_VarArgsAddDouble(h C.uintptr_t, v C.double) {
	if a := varArgs(h); a != nil {
		a.AddDouble(float64(v))
	}
}

//export LF_VarArgsAddLongDouble
func LF_VarArgsAddLongDouble(h C.uintptr_t, v C.double) {
	if a := varArgs(h); a != nil {
		a.AddLongDouble(float64(v))
	}
}

//export LF_VarArgsAddPointer
func LF_VarArgsAddPointer(h C.uintptr_t, p unsafe.Pointer) {
	if a := varArgs(h); a != nil {
		a.AddPointer(uintptr(p))
	}
}

// LF_VarArgsAddCString stores a NUL-terminated string. NULL is stored as an
// empty string.
//
//export LF_VarArgsAddCString
func LF_VarArgsAddCString(h C.uintptr_t, s *C.char) {
	if a := varArgs(h); a != nil {
		a.AddString(C.GoString(s))
	}
}

//export LF_VarArgsAddString
func LF_VarArgsAddString(h C.uintptr_t, s *C.char, n C.size_t) {
	a := varArgs(h)
	if a == nil {
		return
	}
	if s == nil {
		a.AddString("")
		return
	}
	a.AddString(C.GoStringN(s, C.int(n)))
}

// LF_VarArgsAddUString stores n bytes of an unsigned char string.
//
//export LF_VarArgsAddUString
func LF_VarArgsAddUString(h C.uintptr_t, s *C.uint8_t, n C.size_t) {
	a := varArgs(h)
	if a == nil {
		return
	}
	if s == nil {
		a.AddUString(nil)
		return
	}
	a.AddUString(unsafe.Slice((*byte)(unsafe.Pointer(s)), int(n)))
}

//export LF_VarArgsAddUStringZ
func LF_VarArgsAddUStringZ(h C.uintptr_t, s *C.uint8_t) {
	a := varArgs(h)
	if a == nil {
		return
	}
	if s == nil {
		a.AddUStringZ(nil)
		return
	}
	a.AddUString([]byte(C.GoString((*C.char)(unsafe.Pointer(s)))))
}

//export LF_VarArgsAddWString
func LF_VarArgsAddWString(h C.uintptr_t, s *C.uint16_t, n C.size_t) {
	a := varArgs(h)
	if a == nil {
		return
	}
	if s == nil {
		a.AddWString(nil)
		return
	}
	a.AddWString(unsafe.Slice((*uint16)(unsafe.Pointer(s)), int(n)))
}

//export LF_VarArgsAddWStringZ
func LF_VarArgsAddWStringZ(h C.uintptr_t, s *C.uint16_t) {
	a := varArgs(h)
	if a == nil {
		return
	}
	if s == nil {
		a.AddWString(nil)
		return
	}
	n := 0
	for p := unsafe.Pointer(s); *(*uint16)(unsafe.Add(p, n*2)) != 0; n++ {
	}
	a.AddWString(unsafe.Slice((*uint16)(unsafe.Pointer(s)), n))
}

// Sinks

//export LF_CreateFileSink
func LF_CreateFileSink(fileName *C.char, forceFlush, multiThreaded C.int) C.uint64_t {
	return C.uint64_t(facade.CreateFileSink(fileSinkParams(fileName, forceFlush, multiThreaded)))
}

//export LF_GetOrCreateFileSink
func LF_GetOrCreateFileSink(fileName *C.char, forceFlush, multiThreaded C.int) C.uint64_t {
	return C.uint64_t(facade.GetOrCreateFileSink(fileSinkParams(fileName, forceFlush, multiThreaded)))
}

func fileSinkParams(fileName *C.char, forceFlush, multiThreaded C.int) logfacade.FileSinkParams {
	return logfacade.FileSinkParams{
		FileName:      C.GoString(fileName),
		ForceFlush:    gobool(forceFlush),
		MultiThreaded: gobool(multiThreaded),
	}
}

func rotatingParams(base, ext *C.char, maxSize C.uint64_t, maxFiles C.uint32_t, multiThreaded C.int) logfacade.RotatingFileSinkParams {
	return logfacade.RotatingFileSinkParams{
		BaseName:      C.GoString(base),
		Extension:     C.GoString(ext),
		MaxFileSize:   uint64(maxSize),
		MaxFiles:      int(maxFiles),
		MultiThreaded: gobool(multiThreaded),
	}
}

//export LF_CreateRotatingFileSink
func LF_CreateRotatingFileSink(base, ext *C.char, maxSize C.uint64_t, maxFiles C.uint32_t, multiThreaded C.int) C.uint64_t {
	return C.uint64_t(facade.CreateRotatingFileSink(rotatingParams(base, ext, maxSize, maxFiles, multiThreaded)))
}

//export LF_GetOrCreateRotatingFileSink
func LF_GetOrCreateRotatingFileSink(base, ext *C.char, maxSize C.uint64_t, maxFiles C.uint32_t, multiThreaded C.int) C.uint64_t {
	return C.uint64_t(facade.GetOrCreateRotatingFileSink(rotatingParams(base, ext, maxSize, maxFiles, multiThreaded)))
}

func dailyParams(base, ext *C.char, hour, minute C.int, multiThreaded C.int) logfacade.DailyFileSinkParams {
	return logfacade.DailyFileSinkParams{
		BaseName:       C.GoString(base),
		Extension:      C.GoString(ext),
		RotationHour:   int(hour),
		RotationMinute: int(minute),
		MultiThreaded:  gobool(multiThreaded),
	}
}

//export LF_CreateDailyFileSink
func LF_CreateDailyFileSink(base, ext *C.char, hour, minute, multiThreaded C.int) C.uint64_t {
	return C.uint64_t(facade.CreateDailyFileSink(dailyParams(base, ext, hour, minute, multiThreaded)))
}

//export LF_GetOrCreateDailyFileSink
func LF_GetOrCreateDailyFileSink(base, ext *C.char, hour, minute, multiThreaded C.int) C.uint64_t {
	return C.uint64_t(facade.GetOrCreateDailyFileSink(dailyParams(base, ext, hour, minute, multiThreaded)))
}

//export LF_CreateStdoutSink
func LF_CreateStdoutSink(multiThreaded, color C.int) C.uint64_t {
	return C.uint64_t(facade.CreateStdoutSink(gobool(multiThreaded), gobool(color)))
}

//export LF_GetOrCreateStdoutSink
func LF_GetOrCreateStdoutSink(multiThreaded, color C.int) C.uint64_t {
	return C.uint64_t(facade.GetOrCreateStdoutSink(gobool(multiThreaded), gobool(color)))
}

//export LF_CreateStderrSink
func LF_CreateStderrSink(multiThreaded, color C.int) C.uint64_t {
	return C.uint64_t(facade.CreateStderrSink(gobool(multiThreaded), gobool(color)))
}

//export LF_GetOrCreateStderrSink
func LF_GetOrCreateStderrSink(multiThreaded, color C.int) C.uint64_t {
	return C.uint64_t(facade.GetOrCreateStderrSink(gobool(multiThreaded), gobool(color)))
}

//export LF_CreateDebugSink
func LF_CreateDebugSink(multiThreaded C.int) C.uint64_t {
	return C.uint64_t(facade.CreateDebugSink(gobool(multiThreaded)))
}

//export LF_GetOrCreateDebugSink
func LF_GetOrCreateDebugSink(multiThreaded C.int) C.uint64_t {
	return C.uint64_t(facade.GetOrCreateDebugSink(gobool(multiThreaded)))
}

// LF_CreateCallbackSink writes every line through write(data, len). The
// callback may be invoked from any thread when multi_threaded is set.
//
//export LF_CreateCallbackSink
func LF_CreateCallbackSink(write unsafe.Pointer, multiThreaded C.int) C.uint64_t {
	return C.uint64_t(facade.CreateWriterSink(writeCallback(write), true, gobool(multiThreaded)))
}

//export LF_FreeSink
func LF_FreeSink(h C.uint64_t) C.int {
	return cbool(facade.FreeSink(sinkHandle(h)))
}

//export LF_IsValidSink
func LF_IsValidSink(h C.uint64_t) C.int {
	return cbool(facade.IsValidSink(sinkHandle(h)))
}

// Loggers

//export LF_CreateLogger
func LF_CreateLogger(sinks *C.uint64_t, count C.size_t, name *C.char, params *C.lf_logger_params) C.uint64_t {
	var handles []logfacade.SinkHandle
	if sinks != nil && count > 0 {
		raw := unsafe.Slice((*uint64)(unsafe.Pointer(sinks)), int(count))
		handles = make([]logfacade.SinkHandle, len(raw))
		for i, h := range raw {
			handles[i] = logfacade.SinkHandle(h)
		}
	}
	return C.uint64_t(facade.CreateLogger(handles, C.GoString(name), loggerParams(params)))
}

//export LF_CreateFileLogger
func LF_CreateFileLogger(name, fileName *C.char, forceFlush, multiThreaded C.int, params *C.lf_logger_params) C.uint64_t {
	return C.uint64_t(facade.CreateFileLogger(C.GoString(name), fileSinkParams(fileName, forceFlush, multiThreaded), loggerParams(params)))
}

//export LF_GetOrCreateFileLogger
func LF_GetOrCreateFileLogger(name, fileName *C.char, forceFlush, multiThreaded C.int, params *C.lf_logger_params) C.uint64_t {
	return C.uint64_t(facade.GetOrCreateFileLogger(C.GoString(name), fileSinkParams(fileName, forceFlush, multiThreaded), loggerParams(params)))
}

//export LF_CreateRotatingFileLogger
func LF_CreateRotatingFileLogger(name, base, ext *C.char, maxSize C.uint64_t, maxFiles C.uint32_t, multiThreaded C.int, params *C.lf_logger_params) C.uint64_t {
	return C.uint64_t(facade.CreateRotatingFileLogger(C.GoString(name), rotatingParams(base, ext, maxSize, maxFiles, multiThreaded), loggerParams(params)))
}

//export LF_GetOrCreateRotatingFileLogger
func LF_GetOrCreateRotatingFileLogger(name, base, ext *C.char, maxSize C.uint64_t, maxFiles C.uint32_t, multiThreaded C.int, params *C.lf_logger_params) C.uint64_t {
	return C.uint64_t(facade.GetOrCreateRotatingFileLogger(C.GoString(name), rotatingParams(base, ext, maxSize, maxFiles, multiThreaded), loggerParams(params)))
}

//export LF_CreateDailyFileLogger
func LF_CreateDailyFileLogger(name, base, ext *C.char, hour, minute, multiThreaded C.int, params *C.lf_logger_params) C.uint64_t {
	return C.uint64_t(facade.CreateDailyFileLogger(C.GoString(name), dailyParams(base, ext, hour, minute, multiThreaded), loggerParams(params)))
}

//export LF_GetOrCreateDailyFileLogger
func LF_GetOrCreateDailyFileLogger(name, base, ext *C.char, hour, minute, multiThreaded C.int, params *C.lf_logger_params) C.uint64_t {
	return C.uint64_t(facade.GetOrCreateDailyFileLogger(C.GoString(name), dailyParams(base, ext, hour, minute, multiThreaded), loggerParams(params)))
}

//export LF_CreateStdoutLogger
func LF_CreateStdoutLogger(name *C.char, multiThreaded, color C.int, params *C.lf_logger_params) C.uint64_t {
	return C.uint64_t(facade.CreateStdoutLogger(C.GoString(name), gobool(multiThreaded), gobool(color), loggerParams(params)))
}

//export LF_GetOrCreateStdoutLogger
func LF_GetOrCreateStdoutLogger(name *C.char, multiThreaded, color C.int, params *C.lf_logger_params) C.uint64_t {
	return C.uint64_t(facade.GetOrCreateStdoutLogger(C.GoString(name), gobool(multiThreaded), gobool(color), loggerParams(params)))
}

//export LF_CreateStderrLogger
func LF_CreateStderrLogger(name *C.char, multiThreaded, color C.int, params *C.lf_logger_params) C.uint64_t {
	return C.uint64_t(facade.CreateStderrLogger(C.GoString(name), gobool(multiThreaded), gobool(color), loggerParams(params)))
}

//export LF_GetOrCreateStderrLogger
func LF_GetOrCreateStderrLogger(name *C.char, multiThreaded, color C.int, params *C.lf_logger_params) C.uint64_t {
	return C.uint64_t(facade.GetOrCreateStderrLogger(C.GoString(name), gobool(multiThreaded), gobool(color), loggerParams(params)))
}

//export LF_CreateDebugLogger
func LF_CreateDebugLogger(name *C.char, multiThreaded C.int, params *C.lf_logger_params) C.uint64_t {
	return C.uint64_t(facade.CreateDebugLogger(C.GoString(name), gobool(multiThreaded), loggerParams(params)))
}

//export LF_GetOrCreateDebugLogger
func LF_GetOrCreateDebugLogger(name *C.char, multiThreaded C.int, params *C.lf_logger_params) C.uint64_t {
	return C.uint64_t(facade.GetOrCreateDebugLogger(C.GoString(name), gobool(multiThreaded), loggerParams(params)))
}

//export LF_CreateCallbackLogger
func LF_CreateCallbackLogger(name *C.char, write unsafe.Pointer, multiThreaded C.int, params *C.lf_logger_params) C.uint64_t {
	return C.uint64_t(facade.CreateWriterLogger(C.GoString(name), writeCallback(write), true, gobool(multiThreaded), loggerParams(params)))
}

//export LF_GetOrCreateCallbackLogger
func LF_GetOrCreateCallbackLogger(name *C.char, write unsafe.Pointer, multiThreaded C.int, params *C.lf_logger_params) C.uint64_t {
	return C.uint64_t(facade.GetOrCreateWriterLogger(C.GoString(name), writeCallback(write), true, gobool(multiThreaded), loggerParams(params)))
}

//export LF_GetLogger
func LF_GetLogger(name *C.char) C.uint64_t {
	return C.uint64_t(facade.GetLogger(C.GoString(name)))
}

//export LF_DeleteLogger
func LF_DeleteLogger(h C.uint64_t) C.int {
	return cbool(facade.DeleteLogger(loggerHandle(h)))
}

//export LF_IsValidLogger
func LF_IsValidLogger(h C.uint64_t) C.int {
	return cbool(facade.IsValidLogger(loggerHandle(h)))
}

// LF_SetLoggerPattern and the other setters apply to every logger when h is 0.
//
//export LF_SetLoggerPattern
func LF_SetLoggerPattern(h C.uint64_t, pattern *C.char) C.int {
	return cbool(facade.SetLoggerPattern(loggerHandle(h), C.GoString(pattern)))
}

//export LF_SetLoggerLevel
func LF_SetLoggerLevel(h C.uint64_t, level C.uint32_t) C.int {
	return cbool(facade.SetLoggerLevel(loggerHandle(h), logfacade.LevelFromUint(uint32(level))))
}

//export LF_SetLoggerBitMask
func LF_SetLoggerBitMask(h C.uint64_t, mask C.uint64_t) C.int {
	return cbool(facade.SetLoggerBitMask(loggerHandle(h), uint64(mask)))
}

//export LF_SetLoggerAutoFlush
func LF_SetLoggerAutoFlush(h C.uint64_t, level C.uint32_t) C.int {
	return cbool(facade.SetLoggerAutoFlush(loggerHandle(h), logfacade.LevelFromUint(uint32(level))))
}

// LF_SetLoggerErrorHandler routes this logger's sink failures to cb instead
// of the callback given to LF_Init. NULL restores the default.
//
//export LF_SetLoggerErrorHandler
func LF_SetLoggerErrorHandler(h C.uint64_t, cb unsafe.Pointer) C.int {
	return cbool(facade.SetLoggerErrorHandler(loggerHandle(h), errorCallback(cb)))
}

//export LF_FlushLogger
func LF_FlushLogger(h C.uint64_t) C.int {
	return cbool(facade.FlushLogger(loggerHandle(h)))
}

// LF_GetLoggerName copies the NUL-terminated name into buf, truncating.
//
//export LF_GetLoggerName
func LF_GetLoggerName(h C.uint64_t, buf *C.char, size C.size_t) C.int {
	if buf == nil || size == 0 {
		return 0
	}
	dst := unsafe.Slice((*byte)(unsafe.Pointer(buf)), int(size))
	return cbool(facade.CopyLoggerName(loggerHandle(h), dst))
}

// LF_GetLoggerLevel returns LevelOff for a dead handle.
//
//export LF_GetLoggerLevel
func LF_GetLoggerLevel(h C.uint64_t) C.uint32_t {
	l, _ := facade.LoggerLevel(loggerHandle(h))
	return C.uint32_t(l)
}

// LF_GetLoggerAutoFlush returns the auto-flush level, LevelOff for a dead
// handle.
//
//export LF_GetLoggerAutoFlush
func LF_GetLoggerAutoFlush(h C.uint64_t) C.uint32_t {
	l, ok := facade.LoggerAutoFlush(loggerHandle(h))
	if !ok {
		return C.uint32_t(logfacade.LevelOff)
	}
	return C.uint32_t(l)
}

//export LF_GetLoggerBitMask
func LF_GetLoggerBitMask(h C.uint64_t) C.uint64_t {
	m, _ := facade.LoggerBitMask(loggerHandle(h))
	return C.uint64_t(m)
}

// Logging

//export LF_Log
func LF_Log(h C.uint64_t, level C.uint32_t, msg *C.char) C.int {
	return cbool(facade.Log(loggerHandle(h), logfacade.Level(level), C.GoString(msg)))
}

//export LF_LogBf
func LF_LogBf(h C.uint64_t, level C.uint32_t, flag C.uint64_t, msg *C.char) C.int {
	return cbool(facade.LogBf(loggerHandle(h), logfacade.Level(level), uint64(flag), C.GoString(msg)))
}

//export LF_LogBfo
func LF_LogBfo(h C.uint64_t, flag C.uint64_t, msg *C.char) C.int {
	return cbool(facade.LogBfo(loggerHandle(h), uint64(flag), C.GoString(msg)))
}

//export LF_LogFormat
func LF_LogFormat(h C.uint64_t, level C.uint32_t, format *C.char, args C.uintptr_t) C.int {
	return cbool(facade.LogFormat(loggerHandle(h), logfacade.Level(level), C.GoString(format), varArgs(args)))
}

//export LF_LogFormatBf
func LF_LogFormatBf(h C.uint64_t, level C.uint32_t, flag C.uint64_t, format *C.char, args C.uintptr_t) C.int {
	return cbool(facade.LogFormatBf(loggerHandle(h), logfacade.Level(level), uint64(flag), C.GoString(format), varArgs(args)))
}

//export LF_LogFormatBfo
func LF_LogFormatBfo(h C.uint64_t, flag C.uint64_t, format *C.char, args C.uintptr_t) C.int {
	return cbool(facade.LogFormatBfo(loggerHandle(h), uint64(flag), C.GoString(format), varArgs(args)))
}

// LF_LogPrintf renders a printf-style format against the buffer's arguments.
//
//export LF_LogPrintf
func LF_LogPrintf(h C.uint64_t, level C.uint32_t, format *C.char, args C.uintptr_t) C.int {
	return cbool(facade.LogPrintf(loggerHandle(h), logfacade.Level(level), C.GoString(format), varArgs(args).Interfaces()...))
}

//export LF_LogPrintfBf
func LF_LogPrintfBf(h C.uint64_t, level C.uint32_t, flag C.uint64_t, format *C.char, args C.uintptr_t) C.int {
	return cbool(facade.LogPrintfBf(loggerHandle(h), logfacade.Level(level), uint64(flag), C.GoString(format), varArgs(args).Interfaces()...))
}

//export LF_LogPrintfBfo
func LF_LogPrintfBfo(h C.uint64_t, flag C.uint64_t, format *C.char, args C.uintptr_t) C.int {
	return cbool(facade.LogPrintfBfo(loggerHandle(h), uint64(flag), C.GoString(format), varArgs(args).Interfaces()...))
}
