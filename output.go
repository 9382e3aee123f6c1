package logfacade

import (
	"fmt"
	"strconv"
	"sync"
	"time"

	smerrors "github.com/Station-Manager/errors"
	"github.com/rs/zerolog"
	"go.uber.org/atomic"
)

// OverflowPolicy decides what an async queue does when it is full.
type OverflowPolicy uint32

const (
	// OverflowBlock makes the logging call wait for queue space.
	OverflowBlock OverflowPolicy = iota
	// OverflowDiscard drops the record and counts it.
	OverflowDiscard
)

// lineWriter delivers rendered lines to the sinks of one logger.
type lineWriter interface {
	writeLine(l zerolog.Level, line []byte)
	flush()
	close()
}

// syncWriter writes on the caller's goroutine.
type syncWriter struct {
	sinks  []*sharedSink
	report func(error)
}

func (w *syncWriter) writeLine(l zerolog.Level, line []byte) {
	const op smerrors.Op = "logfacade.syncWriter.writeLine"
	for _, s := range w.sinks {
		if _, err := s.WriteLevel(l, line); err != nil {
			w.report(smerrors.New(op).Err(err).Msg(errMsgSinkWrite))
		}
	}
}

func (w *syncWriter) flush() {
	const op smerrors.Op = "logfacade.syncWriter.flush"
	for _, s := range w.sinks {
		if err := s.Flush(); err != nil {
			w.report(smerrors.New(op).Err(err).Msg(errMsgSinkFlush))
		}
	}
}

func (w *syncWriter) close() { w.flush() }

type queuedLine struct {
	level zerolog.Level
	line  []byte
	flush bool
}

// asyncWriter hands lines to one drain goroutine through a bounded queue.
type asyncWriter struct {
	next    *syncWriter
	queue   chan queuedLine
	policy  OverflowPolicy
	dropped atomic.Uint64
	done    chan struct{}
	stop    chan struct{}
	once    sync.Once
	mu      sync.RWMutex
	closed  bool
}

func newAsyncWriter(next *syncWriter, size int, policy OverflowPolicy, interval time.Duration) *asyncWriter {
	if size <= 0 {
		size = 1
	}
	w := &asyncWriter{
		next:   next,
		queue:  make(chan queuedLine, size),
		policy: policy,
		done:   make(chan struct{}),
		stop:   make(chan struct{}),
	}
	go w.drain(interval)
	return w
}

func (w *asyncWriter) drain(interval time.Duration) {
	defer close(w.done)
	var tick <-chan time.Time
	if interval > 0 {
		t := time.NewTicker(interval)
		defer t.Stop()
		tick = t.C
	}
	for {
		select {
		case q, ok := <-w.queue:
			if !ok {
				w.handle(queuedLine{flush: true})
				return
			}
			w.handle(q)
		case <-tick:
			w.reportDropped()
			w.handle(queuedLine{flush: true})
		}
	}
}

// handle writes or flushes one queued item. A panicking sink is reported and
// the queue keeps draining.
func (w *asyncWriter) handle(q queuedLine) {
	const op smerrors.Op = "logfacade.asyncWriter.handle"
	defer func() {
		if r := recover(); r != nil {
			w.next.report(smerrors.New(op).Err(ErrPanic).Msg(fmt.Sprintf("%s %v", errMsgPanic, r)))
		}
	}()
	if q.flush {
		w.next.flush()
		return
	}
	w.next.writeLine(q.level, q.line)
}

func (w *asyncWriter) reportDropped() {
	const op smerrors.Op = "logfacade.asyncWriter"
	if n := w.dropped.Swap(0); n > 0 {
		w.next.report(smerrors.New(op).Msg(errMsgDropped + " (" + strconv.FormatUint(n, 10) + ")"))
	}
}

func (w *asyncWriter) enqueue(q queuedLine) {
	w.mu.RLock()
	defer w.mu.RUnlock()
	if w.closed {
		return
	}
	if w.policy == OverflowDiscard && !q.flush {
		select {
		case w.queue <- q:
		default:
			w.dropped.Inc()
		}
		return
	}
	w.queue <- q
}

func (w *asyncWriter) writeLine(l zerolog.Level, line []byte) {
	cp := make([]byte, len(line))
	copy(cp, line)
	w.enqueue(queuedLine{level: l, line: cp})
}

func (w *asyncWriter) flush() {
	w.enqueue(queuedLine{flush: true})
}

// close drains whatever is queued and stops the goroutine.
func (w *asyncWriter) close() {
	w.once.Do(func() {
		w.mu.Lock()
		w.closed = true
		close(w.queue)
		w.mu.Unlock()
		<-w.done
		w.reportDropped()
	})
}
