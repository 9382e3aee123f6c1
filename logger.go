package logfacade

import (
	"sync"
	"time"

	"github.com/rs/zerolog"
	"go.uber.org/atomic"
)

// LoggerParams carries the optional settings applied when a logger is
// created. A nil *LoggerParams keeps the defaults: DefaultPattern, LevelInfo
// and a mask with every bit set. With non-nil params Level and BitMask are
// always applied and an empty Pattern keeps the default.
type LoggerParams struct {
	Pattern string
	Level   Level `validate:"lte=6"`
	BitMask uint64
}

const allBits = ^uint64(0)

var lineBufPool = sync.Pool{
	New: func() any {
		b := make([]byte, 0, 256)
		return &b
	},
}

// maxPooledLineBuf bounds the buffers kept in lineBufPool.
const maxPooledLineBuf = 64 << 10

// putLineBuf returns b's storage to the pool unless it grew past
// maxPooledLineBuf.
func putLineBuf(bp *[]byte, b []byte) {
	if cap(b) > maxPooledLineBuf {
		return
	}
	*bp = b[:0]
	lineBufPool.Put(bp)
}

// LoggerWrapper is the registry entry for a logger handle. It owns the
// engine logger and one reference on every sink it writes to.
type LoggerWrapper struct {
	name   string
	sinks  []*sharedSink
	out    lineWriter
	bridge *ErrorBridge
	now    func() time.Time

	base    zerolog.Logger
	zl      atomic.Pointer[zerolog.Logger]
	level   atomic.Uint32
	mask    atomic.Uint64
	flushOn atomic.Uint32
	pattern atomic.Pointer[linePattern]
	onError atomic.Pointer[ErrorHandler]
}

// newLoggerWrapper takes ownership of the references already acquired on
// sinks.
func newLoggerWrapper(name string, sinks []*sharedSink, cfg InitConfig, bridge *ErrorBridge) *LoggerWrapper {
	w := &LoggerWrapper{
		name:   name,
		sinks:  sinks,
		bridge: bridge,
		now:    time.Now,
	}
	sw := &syncWriter{sinks: sinks, report: w.reportError}
	if cfg.AsyncMode {
		w.out = newAsyncWriter(sw, int(cfg.QueueSize), cfg.OverflowPolicy, cfg.FlushInterval)
	} else {
		w.out = sw
	}

	w.base = zerolog.New(&fanout{w: w}).With().Timestamp().Str(loggerNameField, name).Logger()
	w.pattern.Store(compilePattern(DefaultPattern))
	w.mask.Store(allBits)
	w.flushOn.Store(uint32(LevelOff))
	w.setLevel(LevelInfo)
	return w
}

func (w *LoggerWrapper) key() string { return w.name }

// destroy stops the output path and releases every sink reference.
func (w *LoggerWrapper) destroy() {
	w.out.close()
	for _, s := range w.sinks {
		if err := s.release(); err != nil {
			w.bridge.ReportError(err)
		}
	}
	w.sinks = nil
}

func (w *LoggerWrapper) apply(p *LoggerParams) {
	if p == nil {
		return
	}
	if p.Pattern != emptyString {
		w.setPattern(p.Pattern)
	}
	w.setLevel(LevelFromUint(uint32(p.Level)))
	w.mask.Store(p.BitMask)
}

func (w *LoggerWrapper) setLevel(l Level) {
	w.level.Store(uint32(l))
	zl := w.base.Level(l.zerologLevel())
	w.zl.Store(&zl)
}

func (w *LoggerWrapper) getLevel() Level { return Level(w.level.Load()) }

func (w *LoggerWrapper) setPattern(p string) {
	w.pattern.Store(compilePattern(p))
}

func (w *LoggerWrapper) shouldLog(l Level) bool {
	return l < LevelOff && l >= w.getLevel()
}

func (w *LoggerWrapper) maskAllows(flag uint64) bool {
	return flag&w.mask.Load() != 0
}

func (w *LoggerWrapper) setErrorHandler(h ErrorHandler) {
	if h == nil {
		w.onError.Store(nil)
		return
	}
	w.onError.Store(&h)
}

func (w *LoggerWrapper) reportError(err error) {
	if h := w.onError.Load(); h != nil && *h != nil {
		(*h)(flattenError(err))
		return
	}
	w.bridge.ReportError(err)
}

// emit hands one message to the engine at the given level.
func (w *LoggerWrapper) emit(l Level, msg string) {
	w.zl.Load().WithLevel(l.zerologLevel()).Msg(msg)
}

// emitUnleveled hands a message to the engine without a level; only a
// logger switched off drops it.
func (w *LoggerWrapper) emitUnleveled(msg string) {
	w.zl.Load().Log().Msg(msg)
}

func (w *LoggerWrapper) emitFormat(l Level, leveled bool, format string, args ArgList) {
	bp := lineBufPool.Get().(*[]byte)
	buf := formatArgs((*bp)[:0], format, args)
	msg := string(buf)
	putLineBuf(bp, buf)
	if leveled {
		w.emit(l, msg)
		return
	}
	w.emitUnleveled(msg)
}

func (w *LoggerWrapper) flush() {
	w.out.flush()
}

// fanout is the engine's writer: it turns each zerolog record into a line
// using the logger's current pattern and passes it on to the sinks.
type fanout struct {
	w *LoggerWrapper
}

func (f *fanout) Write(p []byte) (int, error) {
	w := f.w
	rec, err := decodeRecord(p)
	if err != nil {
		w.reportError(err)
		return len(p), nil
	}
	zl := engineLevel(rec)

	lp := w.pattern.Load()
	if lp.raw {
		w.out.writeLine(zl, p)
	} else {
		bp := lineBufPool.Get().(*[]byte)
		line := lp.render((*bp)[:0], rec, w.now())
		w.out.writeLine(zl, line)
		putLineBuf(bp, line)
	}

	if l, ok := levelFromZerolog(zl); ok && l != LevelOff && uint32(l) >= w.flushOn.Load() {
		w.out.flush()
	}
	return len(p), nil
}
