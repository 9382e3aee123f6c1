package logfacade

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	smerrors "github.com/Station-Manager/errors"
	"github.com/Station-Manager/utils"
	"github.com/rs/zerolog"
	"gopkg.in/natefinch/lumberjack.v2"
)

const (
	defaultBaseName = "app"
	megabyte        = 1024 * 1024
	dailyFileLayout = "2006-01-02_15-04"
)

// FileSinkParams configures a plain append-only file sink.
type FileSinkParams struct {
	FileName      string
	ForceFlush    bool
	MultiThreaded bool
}

// RotatingFileSinkParams configures a size-rotated file sink. MaxFileSize is
// in bytes and is rounded up to whole megabytes.
type RotatingFileSinkParams struct {
	BaseName      string
	Extension     string
	MaxFileSize   uint64 `validate:"gt=0"`
	MaxFiles      int    `validate:"gte=0"`
	MultiThreaded bool
}

// DailyFileSinkParams configures a sink that switches files every day at
// RotationHour:RotationMinute local time.
type DailyFileSinkParams struct {
	BaseName       string
	Extension      string
	RotationHour   int `validate:"gte=0,lte=23"`
	RotationMinute int `validate:"gte=0,lte=59"`
	MultiThreaded  bool
}

// defaultBase falls back to the executable's name when no base name is given.
func defaultBase(base string) string {
	if base != emptyString {
		return base
	}
	exeName, err := utils.ExecName(true)
	if err != nil || exeName == emptyString {
		return defaultBaseName
	}
	return exeName
}

func joinExt(base, ext string) string {
	ext = strings.TrimPrefix(ext, ".")
	if ext == emptyString {
		return base
	}
	return base + "." + ext
}

// canonicalPath resolves a file name to the absolute, cleaned path used as the
// sink dedup key.
func canonicalPath(name string) string {
	abs, err := filepath.Abs(name)
	if err != nil {
		abs = filepath.Clean(name)
	}
	if resolved, err := filepath.EvalSymlinks(abs); err == nil {
		return resolved
	}
	if dir, err := filepath.EvalSymlinks(filepath.Dir(abs)); err == nil {
		return filepath.Join(dir, filepath.Base(abs))
	}
	return abs
}

func fileTarget(path string) string { return "file:" + canonicalPath(path) }

func openAppend(path string) (*os.File, error) {
	const op smerrors.Op = "logfacade.openAppend"
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, smerrors.New(op).Err(err).Msg(errMsgOpenFile)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, smerrors.New(op).Err(err).Msg(errMsgOpenFile)
	}
	return f, nil
}

func newFileSink(p FileSinkParams) (Sink, error) {
	f, err := openAppend(defaultBase(p.FileName))
	if err != nil {
		return nil, err
	}
	return newWriterSink(f, f, p.ForceFlush, p.MultiThreaded), nil
}

func rotatingFileName(p RotatingFileSinkParams) string {
	return joinExt(defaultBase(p.BaseName), p.Extension)
}

func newRotatingFileSink(p RotatingFileSinkParams) (Sink, error) {
	const op smerrors.Op = "logfacade.newRotatingFileSink"
	if err := validateStruct(&p); err != nil {
		return nil, smerrors.New(op).Err(err).Msg(errMsgParamsInvalid)
	}
	path := rotatingFileName(p)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, smerrors.New(op).Err(err).Msg(errMsgOpenFile)
	}
	maxMB := int((p.MaxFileSize + megabyte - 1) / megabyte)
	lj := &lumberjack.Logger{
		Filename:   path,
		MaxSize:    maxMB,
		MaxBackups: p.MaxFiles,
	}
	return newLineWriterSink(lj, lj, p.MultiThreaded), nil
}

// dailyFileSink writes to base_YYYY-MM-DD_HH-MM.ext and opens a new file each
// time the configured wall-clock rotation point passes.
type dailyFileSink struct {
	mu       sync.Locker
	params   DailyFileSinkParams
	now      func() time.Time
	file     *os.File
	rotateAt time.Time
}

func dailyPattern(p DailyFileSinkParams) string {
	return joinExt(defaultBase(p.BaseName)+"_<date>", p.Extension)
}

func newDailyFileSink(p DailyFileSinkParams) (Sink, error) {
	s, err := newDailyFileSinkClock(p, time.Now)
	if err != nil {
		return nil, err
	}
	return s, nil
}

func newDailyFileSinkClock(p DailyFileSinkParams, now func() time.Time) (*dailyFileSink, error) {
	const op smerrors.Op = "logfacade.newDailyFileSink"
	if err := validateStruct(&p); err != nil {
		return nil, smerrors.New(op).Err(err).Msg(errMsgParamsInvalid)
	}
	s := &dailyFileSink{mu: sinkLock(p.MultiThreaded), params: p, now: now}
	if err := s.open(now()); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *dailyFileSink) fileName(t time.Time) string {
	base := defaultBase(s.params.BaseName)
	return joinExt(fmt.Sprintf("%s_%s", base, t.Format(dailyFileLayout)), s.params.Extension)
}

// nextRotation returns the first rotation point strictly after t.
func (s *dailyFileSink) nextRotation(t time.Time) time.Time {
	r := time.Date(t.Year(), t.Month(), t.Day(), s.params.RotationHour, s.params.RotationMinute, 0, 0, t.Location())
	if !r.After(t) {
		r = r.AddDate(0, 0, 1)
	}
	return r
}

func (s *dailyFileSink) open(t time.Time) error {
	f, err := openAppend(s.fileName(t))
	if err != nil {
		return err
	}
	if s.file != nil {
		_ = s.file.Close()
	}
	s.file = f
	s.rotateAt = s.nextRotation(t)
	return nil
}

func (s *dailyFileSink) Write(p []byte) (int, error) {
	return s.WriteLevel(zerolog.NoLevel, p)
}

func (s *dailyFileSink) WriteLevel(_ zerolog.Level, p []byte) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.file == nil {
		return 0, os.ErrClosed
	}
	if t := s.now(); !t.Before(s.rotateAt) {
		if err := s.open(t); err != nil {
			return 0, err
		}
	}
	return s.file.Write(p)
}

func (s *dailyFileSink) Flush() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.file == nil {
		return nil
	}
	return s.file.Sync()
}

func (s *dailyFileSink) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.file == nil {
		return nil
	}
	err := s.file.Close()
	s.file = nil
	return err
}
