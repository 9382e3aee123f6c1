//go:build cgo

package main

/*
#include <stdlib.h>

static void lf_call_error(void* cb, const char* msg) {
	if (cb) ((void (*)(const char*))cb)(msg);
}

static void lf_call_write(void* cb, const char* data, size_t len) {
	if (cb) ((void (*)(const char*, size_t))cb)(data, len);
}
*/
import "C"

import (
	"io"
	"unsafe"

	"github.com/Station-Manager/logfacade"
)

// errorCallback adapts a C `void (*)(const char*)` to an ErrorHandler. The
// message is only valid for the duration of the call.
func errorCallback(cb unsafe.Pointer) logfacade.ErrorHandler {
	if cb == nil {
		return nil
	}
	return func(msg string) {
		cs := C.CString(msg)
		defer C.free(unsafe.Pointer(cs))
		C.lf_call_error(cb, cs)
	}
}

// callbackWriter hands each line to a C `void (*)(const char*, size_t)`.
// The data is not NUL-terminated and is only valid during the call.
type callbackWriter struct {
	cb unsafe.Pointer
}

func (w callbackWriter) Write(p []byte) (int, error) {
	if len(p) == 0 {
		return 0, nil
	}
	data := C.CBytes(p)
	defer C.free(data)
	C.lf_call_write(w.cb, (*C.char)(data), C.size_t(len(p)))
	return len(p), nil
}

// writeCallback returns nil for a NULL callback so sink creation rejects it.
func writeCallback(cb unsafe.Pointer) io.Writer {
	if cb == nil {
		return nil
	}
	return callbackWriter{cb: cb}
}
