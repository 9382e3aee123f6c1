package logfacade

import (
	stderrs "errors"
	"strings"

	smerrors "github.com/Station-Manager/errors"
	"go.uber.org/atomic"
)

// ErrorHandler receives error text from the library. It must not call back
// into the Context that reports to it.
type ErrorHandler func(msg string)

// ErrorBridge is the single slot through which every failure is reported.
// Without a registered handler reports are discarded.
type ErrorBridge struct {
	handler atomic.Pointer[ErrorHandler]
}

// Set replaces the registered handler. A nil handler clears the slot.
func (b *ErrorBridge) Set(h ErrorHandler) {
	if h == nil {
		b.handler.Store(nil)
		return
	}
	b.handler.Store(&h)
}

// Clear removes the registered handler.
func (b *ErrorBridge) Clear() {
	b.handler.Store(nil)
}

// Report forwards msg verbatim to the registered handler, if any.
func (b *ErrorBridge) Report(msg string) {
	if b == nil {
		return
	}
	h := b.handler.Load()
	if h == nil || *h == nil {
		return
	}
	(*h)(msg)
}

// ReportError flattens err's cause chain and reports it.
func (b *ErrorBridge) ReportError(err error) {
	if err == nil {
		return
	}
	b.Report(flattenError(err))
}

// errorChain walks an error's cause chain and returns its messages from the
// outermost to the innermost. DetailedError.Cause() is preferred over
// errors.Unwrap. Depth is bounded and repeated messages stop the walk.
func errorChain(err error) []string {
	const maxDepth = 50
	var chain []string
	seen := map[string]bool{}

	for depth := 0; err != nil && depth < maxDepth; depth++ {
		if dErr, ok := smerrors.AsDetailedError(err); ok && dErr != nil {
			chain = append(chain, dErr.Error())
			err = dErr.Cause()
			continue
		}
		msg := err.Error()
		if seen[msg] {
			break
		}
		seen[msg] = true
		chain = append(chain, msg)
		err = stderrs.Unwrap(err)
	}
	return chain
}

// flattenError renders err as "outer -> ... -> root".
func flattenError(err error) string {
	return joinChain(errorChain(err))
}

// joinChain returns a single string for the error chain separated by " -> ".
func joinChain(chain []string) string {
	if len(chain) == 0 {
		return emptyString
	}
	return strings.Join(chain, " -> ")
}
