package logfacade

import (
	"io"
	"os"

	smerrors "github.com/Station-Manager/errors"
)

const (
	stdoutTarget = "console:stdout"
	stderrTarget = "console:stderr"
	debugTarget  = "debug"
)

// sinkSpec describes how to open one sink kind and under which key it is
// deduplicated. An empty target disables deduplication.
type sinkSpec struct {
	target string
	open   func() (Sink, error)
}

func (c *Context) makeSink(op smerrors.Op, getOrCreate bool, spec func() (sinkSpec, error)) SinkHandle {
	return guardHandle(c, op, func() (SinkHandle, error) {
		s, err := spec()
		if err != nil {
			return 0, err
		}
		if getOrCreate {
			return c.sinks.getOrCreateSink(s.target, s.open)
		}
		return c.sinks.createSink(s.target, s.open)
	})
}

func fileSpec(p FileSinkParams) (sinkSpec, error) {
	path := defaultBase(p.FileName)
	return sinkSpec{
		target: fileTarget(path),
		open:   func() (Sink, error) { return newFileSink(p) },
	}, nil
}

func rotatingSpec(p RotatingFileSinkParams) (sinkSpec, error) {
	const op smerrors.Op = "logfacade.rotatingSpec"
	if err := validateStruct(&p); err != nil {
		return sinkSpec{}, smerrors.New(op).Err(err).Msg(errMsgParamsInvalid)
	}
	return sinkSpec{
		target: fileTarget(rotatingFileName(p)),
		open:   func() (Sink, error) { return newRotatingFileSink(p) },
	}, nil
}

func dailySpec(p DailyFileSinkParams) (sinkSpec, error) {
	const op smerrors.Op = "logfacade.dailySpec"
	if err := validateStruct(&p); err != nil {
		return sinkSpec{}, smerrors.New(op).Err(err).Msg(errMsgParamsInvalid)
	}
	return sinkSpec{
		target: fileTarget(dailyPattern(p)),
		open:   func() (Sink, error) { return newDailyFileSink(p) },
	}, nil
}

func consoleSpec(target string, out io.Writer, multiThreaded, color bool) func() (sinkSpec, error) {
	return func() (sinkSpec, error) {
		return sinkSpec{
			target: target,
			open:   func() (Sink, error) { return newConsoleSink(out, multiThreaded, color), nil },
		}, nil
	}
}

func debugSpec(multiThreaded bool) func() (sinkSpec, error) {
	return func() (sinkSpec, error) {
		return sinkSpec{
			target: debugTarget,
			open:   func() (Sink, error) { return newDebugSink(multiThreaded) },
		}, nil
	}
}

func writerSpec(w io.Writer, forceFlush, multiThreaded bool) func() (sinkSpec, error) {
	const op smerrors.Op = "logfacade.writerSpec"
	return func() (sinkSpec, error) {
		if w == nil {
			return sinkSpec{}, smerrors.New(op).Msg(errMsgNilWriter)
		}
		return sinkSpec{
			open: func() (Sink, error) { return newWriterSink(w, nil, forceFlush, multiThreaded), nil },
		}, nil
	}
}

// CreateFileSink opens an append-only file sink. It fails when a sink for the
// same file is already live.
func (c *Context) CreateFileSink(p FileSinkParams) SinkHandle {
	return c.makeSink("logfacade.CreateFileSink", false, func() (sinkSpec, error) { return fileSpec(p) })
}

// GetOrCreateFileSink returns the live sink for the file, opening it if needed.
func (c *Context) GetOrCreateFileSink(p FileSinkParams) SinkHandle {
	return c.makeSink("logfacade.GetOrCreateFileSink", true, func() (sinkSpec, error) { return fileSpec(p) })
}

func (c *Context) CreateRotatingFileSink(p RotatingFileSinkParams) SinkHandle {
	return c.makeSink("logfacade.CreateRotatingFileSink", false, func() (sinkSpec, error) { return rotatingSpec(p) })
}

func (c *Context) GetOrCreateRotatingFileSink(p RotatingFileSinkParams) SinkHandle {
	return c.makeSink("logfacade.GetOrCreateRotatingFileSink", true, func() (sinkSpec, error) { return rotatingSpec(p) })
}

func (c *Context) CreateDailyFileSink(p DailyFileSinkParams) SinkHandle {
	return c.makeSink("logfacade.CreateDailyFileSink", false, func() (sinkSpec, error) { return dailySpec(p) })
}

func (c *Context) GetOrCreateDailyFileSink(p DailyFileSinkParams) SinkHandle {
	return c.makeSink("logfacade.GetOrCreateDailyFileSink", true, func() (sinkSpec, error) { return dailySpec(p) })
}

func (c *Context) CreateStdoutSink(multiThreaded, color bool) SinkHandle {
	return c.makeSink("logfacade.CreateStdoutSink", false, consoleSpec(stdoutTarget, os.Stdout, multiThreaded, color))
}

func (c *Context) GetOrCreateStdoutSink(multiThreaded, color bool) SinkHandle {
	return c.makeSink("logfacade.GetOrCreateStdoutSink", true, consoleSpec(stdoutTarget, os.Stdout, multiThreaded, color))
}

func (c *Context) CreateStderrSink(multiThreaded, color bool) SinkHandle {
	return c.makeSink("logfacade.CreateStderrSink", false, consoleSpec(stderrTarget, os.Stderr, multiThreaded, color))
}

func (c *Context) GetOrCreateStderrSink(multiThreaded, color bool) SinkHandle {
	return c.makeSink("logfacade.GetOrCreateStderrSink", true, consoleSpec(stderrTarget, os.Stderr, multiThreaded, color))
}

// CreateDebugSink writes to the debugger output channel on Windows and to
// stderr elsewhere.
func (c *Context) CreateDebugSink(multiThreaded bool) SinkHandle {
	return c.makeSink("logfacade.CreateDebugSink", false, debugSpec(multiThreaded))
}

func (c *Context) GetOrCreateDebugSink(multiThreaded bool) SinkHandle {
	return c.makeSink("logfacade.GetOrCreateDebugSink", true, debugSpec(multiThreaded))
}

// CreateWriterSink wraps an arbitrary writer. Writer sinks are never
// deduplicated and the writer is not closed when the sink is.
func (c *Context) CreateWriterSink(w io.Writer, forceFlush, multiThreaded bool) SinkHandle {
	return c.makeSink("logfacade.CreateWriterSink", false, writerSpec(w, forceFlush, multiThreaded))
}

// FreeSink releases the handle's reference. Loggers built from the sink keep
// writing to it until they are deleted.
func (c *Context) FreeSink(h SinkHandle) bool {
	return c.guard("logfacade.FreeSink", func() bool {
		return c.sinks.remove(h)
	})
}

// IsValidSink is a diagnostic liveness check.
func (c *Context) IsValidSink(h SinkHandle) bool {
	return c.guard("logfacade.IsValidSink", func() bool {
		return c.sinks.validate(h)
	})
}
