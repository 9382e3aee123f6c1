package logfacade

import (
	"bufio"
	"io"
	"sync"

	"github.com/rs/zerolog"
)

type noLock struct{}

func (noLock) Lock()   {}
func (noLock) Unlock() {}

func sinkLock(multiThreaded bool) sync.Locker {
	if multiThreaded {
		return &sync.Mutex{}
	}
	return noLock{}
}

// writerSink is the common sink over an io.Writer. Single-threaded sinks skip
// locking; the caller guarantees one writer at a time. A sink without buf
// hands every line to out in a single Write.
type writerSink struct {
	mu         sync.Locker
	out        io.Writer
	buf        *bufio.Writer
	forceFlush bool
	closer     io.Closer
}

func newWriterSink(w io.Writer, closer io.Closer, forceFlush, multiThreaded bool) *writerSink {
	return &writerSink{
		mu:         sinkLock(multiThreaded),
		out:        w,
		buf:        bufio.NewWriter(w),
		forceFlush: forceFlush,
		closer:     closer,
	}
}

// newLineWriterSink writes each line straight through to w. Writers that act
// per Write call, such as a rotating file, must never see a partial line.
func newLineWriterSink(w io.Writer, closer io.Closer, multiThreaded bool) *writerSink {
	return &writerSink{
		mu:     sinkLock(multiThreaded),
		out:    w,
		closer: closer,
	}
}

func (s *writerSink) Write(p []byte) (int, error) {
	return s.WriteLevel(zerolog.NoLevel, p)
}

func (s *writerSink) WriteLevel(_ zerolog.Level, p []byte) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.buf == nil {
		return s.out.Write(p)
	}
	n, err := s.buf.Write(p)
	if err != nil {
		return n, err
	}
	if s.forceFlush {
		return n, s.flushLocked()
	}
	return n, nil
}

func (s *writerSink) Flush() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.flushLocked()
}

func (s *writerSink) flushLocked() error {
	if s.buf != nil {
		if err := s.buf.Flush(); err != nil {
			return err
		}
	}
	if f, ok := s.out.(interface{ Flush() error }); ok {
		return f.Flush()
	}
	return nil
}

func (s *writerSink) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	err := s.flushLocked()
	if s.closer != nil {
		if cerr := s.closer.Close(); err == nil {
			err = cerr
		}
	}
	return err
}
