// Package logfacade exposes a set of shared sinks and loggers through a flat,
// handle-based API that only passes primitive values, so independently built
// modules loaded into one process can log through the same loggers.
//
// Key features
//   - Opaque, tagged handles for sinks and loggers; sink and logger handles are
//     never interchangeable and are never reused
//   - Typesafe argument marshalling (VarArgs) instead of variadic calls, so a
//     format call can cross a C boundary as one opaque value
//   - Refcounted process setup: the first Init configures, the last Shutdown
//     tears everything down
//   - A single error callback; no panic ever escapes a public entry point
//   - zerolog-backed rendering, lumberjack file rotation, daily files, console
//     and debugger output
//
// Typical usage
//
//	ctx := logfacade.NewContext()
//	ctx.Init(logfacade.InitConfig{OnError: func(msg string) { ... }})
//	defer ctx.Shutdown()
//
//	sink := ctx.CreateStdoutSink(true, false)
//	lg := ctx.CreateLogger([]logfacade.SinkHandle{sink}, "app", nil)
//
//	args := logfacade.NewVarArgs()
//	args.AddString("world").AddInt32(42)
//	ctx.LogFormat(lg, logfacade.LevelInfo, "hello {} ({})", args)
package logfacade
