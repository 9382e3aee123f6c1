package logfacade

import (
	"fmt"
	"unicode/utf8"

	smerrors "github.com/Station-Manager/errors"
)

// resolveLeveled returns the logger when h is live and l passes its threshold.
func (c *Context) resolveLeveled(h LoggerHandle, l Level) (*LoggerWrapper, bool) {
	w, ok := c.loggers.resolve(h)
	if !ok || !w.shouldLog(l) {
		return nil, false
	}
	return w, true
}

// resolveMasked additionally requires flag to intersect the logger's mask.
// Unleveled calls only need the logger to be switched on.
func (c *Context) resolveMasked(h LoggerHandle, l Level, leveled bool, flag uint64) (*LoggerWrapper, bool) {
	if !bitMaskFilterEnabled {
		return nil, false
	}
	w, ok := c.loggers.resolve(h)
	if !ok || !w.maskAllows(flag) {
		return nil, false
	}
	if leveled {
		return w, w.shouldLog(l)
	}
	return w, w.getLevel() != LevelOff
}

// Log writes msg at level l. It returns false when h is not a live logger or
// the level is filtered.
func (c *Context) Log(h LoggerHandle, l Level, msg string) bool {
	const op smerrors.Op = "logfacade.Log"
	return c.guard(op, func() bool {
		w, ok := c.resolveLeveled(h, l)
		if !ok {
			return false
		}
		w.emit(l, msg)
		return true
	})
}

// LogBf is Log gated additionally by the logger's bit mask.
func (c *Context) LogBf(h LoggerHandle, l Level, flag uint64, msg string) bool {
	const op smerrors.Op = "logfacade.LogBf"
	return c.guard(op, func() bool {
		w, ok := c.resolveMasked(h, l, true, flag)
		if !ok {
			return false
		}
		w.emit(l, msg)
		return true
	})
}

// LogBfo writes msg without a level, filtered by the bit mask only.
func (c *Context) LogBfo(h LoggerHandle, flag uint64, msg string) bool {
	const op smerrors.Op = "logfacade.LogBfo"
	return c.guard(op, func() bool {
		w, ok := c.resolveMasked(h, LevelOff, false, flag)
		if !ok {
			return false
		}
		w.emitUnleveled(msg)
		return true
	})
}

// LogFormat renders format with args and writes the result at level l. args
// may be nil. Placeholders are {} for the next argument and {N} for argument
// N; {{ and }} produce literal braces.
func (c *Context) LogFormat(h LoggerHandle, l Level, format string, args *VarArgs) bool {
	const op smerrors.Op = "logfacade.LogFormat"
	return c.guard(op, func() bool {
		w, ok := c.resolveLeveled(h, l)
		if !ok {
			return false
		}
		w.emitFormat(l, true, format, newArgList(args))
		return true
	})
}

func (c *Context) LogFormatBf(h LoggerHandle, l Level, flag uint64, format string, args *VarArgs) bool {
	const op smerrors.Op = "logfacade.LogFormatBf"
	return c.guard(op, func() bool {
		w, ok := c.resolveMasked(h, l, true, flag)
		if !ok {
			return false
		}
		w.emitFormat(l, true, format, newArgList(args))
		return true
	})
}

func (c *Context) LogFormatBfo(h LoggerHandle, flag uint64, format string, args *VarArgs) bool {
	const op smerrors.Op = "logfacade.LogFormatBfo"
	return c.guard(op, func() bool {
		w, ok := c.resolveMasked(h, LevelOff, false, flag)
		if !ok {
			return false
		}
		w.emitFormat(LevelOff, false, format, newArgList(args))
		return true
	})
}

// renderPrintf formats into a buffer of printfBufferSize bytes, keeping at
// most printfBufferSize-1 bytes of output. The cut never splits a UTF-8
// sequence.
func renderPrintf(format string, args []any) string {
	bp := lineBufPool.Get().(*[]byte)
	buf := fmt.Appendf((*bp)[:0], format, args...)
	if n := printfBufferSize - 1; len(buf) > n {
		for n > 0 && !utf8.RuneStart(buf[n]) {
			n--
		}
		buf = buf[:n]
	}
	msg := string(buf)
	putLineBuf(bp, buf)
	return msg
}

// LogPrintf renders a printf-style format and writes it through Log. Output
// longer than 1023 bytes is truncated.
func (c *Context) LogPrintf(h LoggerHandle, l Level, format string, args ...any) bool {
	const op smerrors.Op = "logfacade.LogPrintf"
	return c.guard(op, func() bool {
		w, ok := c.resolveLeveled(h, l)
		if !ok {
			return false
		}
		w.emit(l, renderPrintf(format, args))
		return true
	})
}

func (c *Context) LogPrintfBf(h LoggerHandle, l Level, flag uint64, format string, args ...any) bool {
	const op smerrors.Op = "logfacade.LogPrintfBf"
	return c.guard(op, func() bool {
		w, ok := c.resolveMasked(h, l, true, flag)
		if !ok {
			return false
		}
		w.emit(l, renderPrintf(format, args))
		return true
	})
}

func (c *Context) LogPrintfBfo(h LoggerHandle, flag uint64, format string, args ...any) bool {
	const op smerrors.Op = "logfacade.LogPrintfBfo"
	return c.guard(op, func() bool {
		w, ok := c.resolveMasked(h, LevelOff, false, flag)
		if !ok {
			return false
		}
		w.emitUnleveled(renderPrintf(format, args))
		return true
	})
}
