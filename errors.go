package logfacade

import "errors"

// Sentinel causes wrapped by the library's internal errors. Callers of the
// public API only ever see bool and handle results; these reach them as text
// through the ErrorBridge.
var (
	ErrExists        = errors.New("already exists")
	ErrNotFound      = errors.New("not found")
	ErrNoSinks       = errors.New("no usable sinks")
	ErrInvalidConfig = errors.New("invalid configuration")
	ErrPanic         = errors.New("panic")
)
