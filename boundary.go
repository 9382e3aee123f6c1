package logfacade

import (
	"fmt"

	smerrors "github.com/Station-Manager/errors"
)

// guard runs fn and converts a panic into a bridge report and a false result.
// Every public entry point runs inside guard or guardHandle.
func (c *Context) guard(op smerrors.Op, fn func() bool) (ok bool) {
	defer func() {
		if r := recover(); r != nil {
			c.reportPanic(op, r)
			ok = false
		}
	}()
	return fn()
}

// guardHandle is guard for operations that produce a handle. An error or a
// panic is reported and yields the zero handle.
func guardHandle[H handleKind](c *Context, op smerrors.Op, fn func() (H, error)) (h H) {
	defer func() {
		if r := recover(); r != nil {
			c.reportPanic(op, r)
			h = 0
		}
	}()
	h, err := fn()
	if err != nil {
		c.bridge.ReportError(err)
		return 0
	}
	return h
}

func (c *Context) reportPanic(op smerrors.Op, r any) {
	c.bridge.ReportError(smerrors.New(op).Err(ErrPanic).Msg(fmt.Sprintf("%s %v", errMsgPanic, r)))
}
