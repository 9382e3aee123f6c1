package logfacade

import (
	"bytes"
	stderrs "errors"
	"strings"
	"sync"
	"testing"

	smerrors "github.com/Station-Manager/errors"
	"github.com/stretchr/testify/require"
)

// captureWriter collects sink output for assertions.
type captureWriter struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (w *captureWriter) Write(p []byte) (int, error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.buf.Write(p)
}

func (w *captureWriter) String() string {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.buf.String()
}

func (w *captureWriter) Lines() []string {
	s := strings.TrimRight(w.String(), "\n")
	if s == "" {
		return nil
	}
	return strings.Split(s, "\n")
}

// errorLog records everything reported through an ErrorHandler.
type errorLog struct {
	mu   sync.Mutex
	msgs []string
}

func (e *errorLog) handler() ErrorHandler {
	return func(msg string) {
		e.mu.Lock()
		defer e.mu.Unlock()
		e.msgs = append(e.msgs, msg)
	}
}

func (e *errorLog) Messages() []string {
	e.mu.Lock()
	defer e.mu.Unlock()
	return append([]string(nil), e.msgs...)
}

// newTestContext returns an initialized Context torn down at test end.
func newTestContext(t *testing.T) (*Context, *errorLog) {
	t.Helper()
	errs := &errorLog{}
	ctx := NewContext()
	require.Equal(t, InitSucceeded, ctx.Init(InitConfig{OnError: errs.handler()}))
	t.Cleanup(func() {
		for ctx.RefCount() > 0 {
			ctx.Shutdown()
		}
	})
	return ctx, errs
}

// newCaptureLogger builds a logger over a forced-flush writer sink with a
// message-only pattern.
func newCaptureLogger(t *testing.T, ctx *Context, name string) (LoggerHandle, *captureWriter) {
	t.Helper()
	out := &captureWriter{}
	sink := ctx.CreateWriterSink(out, true, true)
	require.NotZero(t, sink)
	lg := ctx.CreateLogger([]SinkHandle{sink}, name, &LoggerParams{
		Pattern: "%v",
		Level:   LevelTrace,
		BitMask: allBits,
	})
	require.NotZero(t, lg)
	return lg, out
}

// isCause walks err's cause chain looking for target.
func isCause(err, target error) bool {
	for depth := 0; err != nil && depth < 50; depth++ {
		if err == target {
			return true
		}
		if dErr, ok := smerrors.AsDetailedError(err); ok && dErr != nil {
			err = dErr.Cause()
			continue
		}
		err = stderrs.Unwrap(err)
	}
	return false
}
