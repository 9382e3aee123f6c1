//go:build nobitmask

package logfacade

// Built with -tags nobitmask: every bit-mask entry point returns false.
const bitMaskFilterEnabled = false
