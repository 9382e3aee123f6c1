//go:build !windows

package logfacade

import "os"

// newDebugSink has no debugger channel outside Windows; lines go to stderr.
func newDebugSink(multiThreaded bool) (Sink, error) {
	return newConsoleSink(os.Stderr, multiThreaded, false), nil
}
