package logfacade

import (
	"io"
	"os"

	smerrors "github.com/Station-Manager/errors"
)

func validateParams(p *LoggerParams) error {
	const op smerrors.Op = "logfacade.validateParams"
	if p == nil {
		return nil
	}
	if err := validateStruct(p); err != nil {
		return smerrors.New(op).Err(err).Msg(errMsgParamsInvalid)
	}
	return nil
}

func releaseAll(sinks []*sharedSink, bridge *ErrorBridge) {
	for _, s := range sinks {
		if err := s.release(); err != nil {
			bridge.ReportError(err)
		}
	}
}

// buildLogger takes ownership of the sink references in shared.
func (c *Context) buildLogger(cfg InitConfig, shared []*sharedSink, name string, params *LoggerParams) (*LoggerWrapper, error) {
	const op smerrors.Op = "logfacade.buildLogger"
	if len(shared) == 0 {
		return nil, smerrors.New(op).Err(ErrNoSinks).Msg(errMsgNoSinks)
	}
	w := newLoggerWrapper(name, shared, cfg, c.bridge)
	w.apply(params)
	return w, nil
}

// CreateLogger builds a logger named name writing to every sink in sinks
// that is still live. Unresolvable sink handles are skipped; if none
// resolves, or a logger with the same name exists, the zero handle is
// returned.
func (c *Context) CreateLogger(sinks []SinkHandle, name string, params *LoggerParams) LoggerHandle {
	const op smerrors.Op = "logfacade.CreateLogger"
	cfg := c.config()
	return guardHandle(c, op, func() (LoggerHandle, error) {
		if err := validateParams(params); err != nil {
			return 0, err
		}
		return c.loggers.create(name, func() (*LoggerWrapper, error) {
			shared := c.sinks.acquire(sinks)
			w, err := c.buildLogger(cfg, shared, name, params)
			if err != nil {
				releaseAll(shared, c.bridge)
				return nil, err
			}
			return w, nil
		})
	})
}

// GetLogger returns the handle of the logger registered under name.
func (c *Context) GetLogger(name string) LoggerHandle {
	return guardHandle(c, "logfacade.GetLogger", func() (LoggerHandle, error) {
		h, _ := c.loggers.lookup(name)
		return h, nil
	})
}

// DeleteLogger destroys the logger. Its sinks are closed once nothing else
// references them.
func (c *Context) DeleteLogger(h LoggerHandle) bool {
	return c.guard("logfacade.DeleteLogger", func() bool {
		return c.loggers.remove(h)
	})
}

// IsValidLogger is a diagnostic liveness check.
func (c *Context) IsValidLogger(h LoggerHandle) bool {
	return c.guard("logfacade.IsValidLogger", func() bool {
		return c.loggers.validate(h)
	})
}

// LoggerCount returns the number of live loggers.
func (c *Context) LoggerCount() int { return c.loggers.len() }

// SinkCount returns the number of live sink handles.
func (c *Context) SinkCount() int { return c.sinks.len() }

// forLoggers applies fn to h, or to every live logger when h is zero.
func (c *Context) forLoggers(h LoggerHandle, fn func(*LoggerWrapper)) bool {
	if h == 0 {
		c.loggers.each(func(_ LoggerHandle, w *LoggerWrapper) { fn(w) })
		return true
	}
	w, ok := c.loggers.resolve(h)
	if !ok {
		return false
	}
	fn(w)
	return true
}

// SetLoggerPattern changes the line layout. A zero handle changes every logger.
func (c *Context) SetLoggerPattern(h LoggerHandle, pattern string) bool {
	return c.guard("logfacade.SetLoggerPattern", func() bool {
		return c.forLoggers(h, func(w *LoggerWrapper) { w.setPattern(pattern) })
	})
}

// SetLoggerLevel changes the threshold. Unknown levels switch the logger off.
// A zero handle changes every logger.
func (c *Context) SetLoggerLevel(h LoggerHandle, l Level) bool {
	l = LevelFromUint(uint32(l))
	return c.guard("logfacade.SetLoggerLevel", func() bool {
		return c.forLoggers(h, func(w *LoggerWrapper) { w.setLevel(l) })
	})
}

// SetLoggerBitMask changes the category mask. A zero handle changes every
// logger. Without bit-mask support it does nothing and returns false.
func (c *Context) SetLoggerBitMask(h LoggerHandle, mask uint64) bool {
	if !bitMaskFilterEnabled {
		return false
	}
	return c.guard("logfacade.SetLoggerBitMask", func() bool {
		return c.forLoggers(h, func(w *LoggerWrapper) { w.mask.Store(mask) })
	})
}

// SetLoggerAutoFlush makes the logger flush its sinks after every record at
// or above l. LevelOff disables it.
func (c *Context) SetLoggerAutoFlush(h LoggerHandle, l Level) bool {
	l = LevelFromUint(uint32(l))
	return c.guard("logfacade.SetLoggerAutoFlush", func() bool {
		return c.forLoggers(h, func(w *LoggerWrapper) { w.flushOn.Store(uint32(l)) })
	})
}

// SetLoggerErrorHandler routes the logger's sink failures to fn instead of
// the Context's bridge. A nil fn restores the bridge.
func (c *Context) SetLoggerErrorHandler(h LoggerHandle, fn ErrorHandler) bool {
	return c.guard("logfacade.SetLoggerErrorHandler", func() bool {
		return c.forLoggers(h, func(w *LoggerWrapper) { w.setErrorHandler(fn) })
	})
}

// FlushLogger flushes the logger's sinks. A zero handle flushes every logger.
func (c *Context) FlushLogger(h LoggerHandle) bool {
	return c.guard("logfacade.FlushLogger", func() bool {
		return c.forLoggers(h, func(w *LoggerWrapper) { w.flush() })
	})
}

func (c *Context) LoggerName(h LoggerHandle) (string, bool) {
	w, ok := c.loggers.resolve(h)
	if !ok {
		return emptyString, false
	}
	return w.name, true
}

// CopyLoggerName copies the name into buf, truncating it to leave room for a
// terminating NUL.
func (c *Context) CopyLoggerName(h LoggerHandle, buf []byte) bool {
	if len(buf) == 0 {
		return false
	}
	name, ok := c.LoggerName(h)
	if !ok {
		return false
	}
	n := copy(buf[:len(buf)-1], name)
	buf[n] = 0
	return true
}

func (c *Context) LoggerLevel(h LoggerHandle) (Level, bool) {
	w, ok := c.loggers.resolve(h)
	if !ok {
		return LevelOff, false
	}
	return w.getLevel(), true
}

func (c *Context) LoggerBitMask(h LoggerHandle) (uint64, bool) {
	w, ok := c.loggers.resolve(h)
	if !ok {
		return 0, false
	}
	return w.mask.Load(), true
}

func (c *Context) LoggerAutoFlush(h LoggerHandle) (Level, bool) {
	w, ok := c.loggers.resolve(h)
	if !ok {
		return LevelOff, false
	}
	return Level(w.flushOn.Load()), true
}

func (c *Context) LoggerPattern(h LoggerHandle) (string, bool) {
	w, ok := c.loggers.resolve(h)
	if !ok {
		return emptyString, false
	}
	return w.pattern.Load().source, true
}

// makeSinkLogger builds a logger that owns one sink directly, without a sink
// handle. A file already open elsewhere in the Context is shared.
func (c *Context) makeSinkLogger(op smerrors.Op, getOrCreate bool, name string, params *LoggerParams, spec func() (sinkSpec, error)) LoggerHandle {
	cfg := c.config()
	return guardHandle(c, op, func() (LoggerHandle, error) {
		if err := validateParams(params); err != nil {
			return 0, err
		}
		build := func() (*LoggerWrapper, error) {
			s, err := spec()
			if err != nil {
				return nil, err
			}
			shared, err := c.sinks.acquireTarget(s.target, s.open)
			if err != nil {
				return nil, err
			}
			return c.buildLogger(cfg, []*sharedSink{shared}, name, params)
		}
		if getOrCreate {
			h, _, err := c.loggers.getOrCreate(name, build)
			return h, err
		}
		return c.loggers.create(name, build)
	})
}

func (c *Context) CreateFileLogger(name string, p FileSinkParams, params *LoggerParams) LoggerHandle {
	return c.makeSinkLogger("logfacade.CreateFileLogger", false, name, params, func() (sinkSpec, error) { return fileSpec(p) })
}

func (c *Context) GetOrCreateFileLogger(name string, p FileSinkParams, params *LoggerParams) LoggerHandle {
	return c.makeSinkLogger("logfacade.GetOrCreateFileLogger", true, name, params, func() (sinkSpec, error) { return fileSpec(p) })
}

func (c *Context) CreateRotatingFileLogger(name string, p RotatingFileSinkParams, params *LoggerParams) LoggerHandle {
	return c.makeSinkLogger("logfacade.CreateRotatingFileLogger", false, name, params, func() (sinkSpec, error) { return rotatingSpec(p) })
}

func (c *Context) GetOrCreateRotatingFileLogger(name string, p RotatingFileSinkParams, params *LoggerParams) LoggerHandle {
	return c.makeSinkLogger("logfacade.GetOrCreateRotatingFileLogger", true, name, params, func() (sinkSpec, error) { return rotatingSpec(p) })
}

func (c *Context) CreateDailyFileLogger(name string, p DailyFileSinkParams, params *LoggerParams) LoggerHandle {
	return c.makeSinkLogger("logfacade.CreateDailyFileLogger", false, name, params, func() (sinkSpec, error) { return dailySpec(p) })
}

func (c *Context) GetOrCreateDailyFileLogger(name string, p DailyFileSinkParams, params *LoggerParams) LoggerHandle {
	return c.makeSinkLogger("logfacade.GetOrCreateDailyFileLogger", true, name, params, func() (sinkSpec, error) { return dailySpec(p) })
}

func (c *Context) CreateDebugLogger(name string, multiThreaded bool, params *LoggerParams) LoggerHandle {
	return c.makeSinkLogger("logfacade.CreateDebugLogger", false, name, params, debugSpec(multiThreaded))
}

func (c *Context) GetOrCreateDebugLogger(name string, multiThreaded bool, params *LoggerParams) LoggerHandle {
	return c.makeSinkLogger("logfacade.GetOrCreateDebugLogger", true, name, params, debugSpec(multiThreaded))
}

func (c *Context) CreateStdoutLogger(name string, multiThreaded, color bool, params *LoggerParams) LoggerHandle {
	return c.makeSinkLogger("logfacade.CreateStdoutLogger", false, name, params, consoleSpec(stdoutTarget, os.Stdout, multiThreaded, color))
}

func (c *Context) GetOrCreateStdoutLogger(name string, multiThreaded, color bool, params *LoggerParams) LoggerHandle {
	return c.makeSinkLogger("logfacade.GetOrCreateStdoutLogger", true, name, params, consoleSpec(stdoutTarget, os.Stdout, multiThreaded, color))
}

func (c *Context) CreateStderrLogger(name string, multiThreaded, color bool, params *LoggerParams) LoggerHandle {
	return c.makeSinkLogger("logfacade.CreateStderrLogger", false, name, params, consoleSpec(stderrTarget, os.Stderr, multiThreaded, color))
}

func (c *Context) GetOrCreateStderrLogger(name string, multiThreaded, color bool, params *LoggerParams) LoggerHandle {
	return c.makeSinkLogger("logfacade.GetOrCreateStderrLogger", true, name, params, consoleSpec(stderrTarget, os.Stderr, multiThreaded, color))
}

// CreateWriterLogger logs to w, which stays open when the logger is deleted.
func (c *Context) CreateWriterLogger(name string, w io.Writer, forceFlush, multiThreaded bool, params *LoggerParams) LoggerHandle {
	return c.makeSinkLogger("logfacade.CreateWriterLogger", false, name, params, writerSpec(w, forceFlush, multiThreaded))
}

func (c *Context) GetOrCreateWriterLogger(name string, w io.Writer, forceFlush, multiThreaded bool, params *LoggerParams) LoggerHandle {
	return c.makeSinkLogger("logfacade.GetOrCreateWriterLogger", true, name, params, writerSpec(w, forceFlush, multiThreaded))
}
