//go:build windows

package logfacade

import (
	"strings"
	"unsafe"

	"github.com/rs/zerolog"
	"golang.org/x/sys/windows"
)

var procOutputDebugString = windows.NewLazySystemDLL("kernel32.dll").NewProc("OutputDebugStringW")

// debugSink forwards lines to an attached debugger with OutputDebugStringW.
type debugSink struct{}

func newDebugSink(bool) (Sink, error) {
	if err := procOutputDebugString.Find(); err != nil {
		return nil, err
	}
	return debugSink{}, nil
}

func (d debugSink) Write(p []byte) (int, error) {
	return d.WriteLevel(zerolog.NoLevel, p)
}

func (debugSink) WriteLevel(_ zerolog.Level, p []byte) (int, error) {
	msg, err := windows.UTF16PtrFromString(strings.ReplaceAll(string(p), "\x00", ""))
	if err != nil {
		return 0, err
	}
	// OutputDebugStringW has no result; Call always reports a non-nil error.
	_, _, _ = procOutputDebugString.Call(uintptr(unsafe.Pointer(msg)))
	return len(p), nil
}

func (debugSink) Flush() error { return nil }
func (debugSink) Close() error { return nil }
