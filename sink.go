package logfacade

import (
	"github.com/rs/zerolog"
	"go.uber.org/atomic"
)

// Sink is one output destination for rendered lines. WriteLevel receives one
// complete line, terminated by a newline, together with its engine level.
type Sink interface {
	zerolog.LevelWriter
	Flush() error
	Close() error
}

// sharedSink counts the references held on a Sink by sink wrappers and
// loggers. The sink is closed when the last reference is released.
type sharedSink struct {
	Sink
	target    string
	refs      atomic.Int32
	onRelease func(*sharedSink)
}

func newSharedSink(s Sink, target string) *sharedSink {
	return &sharedSink{Sink: s, target: target}
}

// acquire takes a reference. It fails once the sink has been closed.
func (s *sharedSink) acquire() bool {
	for {
		n := s.refs.Load()
		if n < 0 {
			return false
		}
		if s.refs.CompareAndSwap(n, n+1) {
			return true
		}
	}
}

// release drops a reference and closes the sink on the last one.
func (s *sharedSink) release() error {
	if s.refs.Dec() != 0 {
		return nil
	}
	// Mark closed so a racing acquire cannot revive it.
	if !s.refs.CompareAndSwap(0, -1) {
		return nil
	}
	if s.onRelease != nil {
		s.onRelease(s)
	}
	return s.Close()
}

// SinkWrapper is the registry entry for a sink handle. It owns exactly one
// reference on its sink.
type SinkWrapper struct {
	sink   *sharedSink
	bridge *ErrorBridge
}

func (w *SinkWrapper) key() string { return w.sink.target }

func (w *SinkWrapper) destroy() {
	if err := w.sink.release(); err != nil {
		w.bridge.ReportError(err)
	}
}

// shared returns the wrapped sink so a logger can take its own reference.
func (w *SinkWrapper) shared() *sharedSink { return w.sink }
