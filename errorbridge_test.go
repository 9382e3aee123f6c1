package logfacade

import (
	"strings"
	"testing"

	smerrors "github.com/Station-Manager/errors"
	"github.com/stretchr/testify/assert"
)

func TestErrorChain_WithDetailedAndStd(t *testing.T) {
	inner := smerrors.New("sink.Open").Msg("open logs/app.log: permission denied")
	middle := smerrors.New("registry.create").Err(inner).Msg("construction failed")
	outer := smerrors.New("logfacade.CreateFileSink").Err(middle).Msg("sink unavailable")

	chain := errorChain(outer)
	assert.Equal(t, []string{
		"sink unavailable",
		"construction failed",
		"open logs/app.log: permission denied",
	}, chain)

	wrapped := smerrors.New("wrap.Std").Errorf("wrap: %w", outer)
	chain2 := errorChain(wrapped)
	assert.True(t, strings.HasPrefix(chain2[0], "wrap:"))
	assert.Equal(t, chain[len(chain)-1], chain2[len(chain2)-1])
	assert.Equal(t, "sink unavailable -> construction failed -> open logs/app.log: permission denied", flattenError(outer))
}

func TestJoinChain(t *testing.T) {
	assert.Equal(t, "", joinChain(nil))
	assert.Equal(t, "a -> b", joinChain([]string{"a", "b"}))
}

func TestErrorBridge(t *testing.T) {
	var got []string
	b := &ErrorBridge{}

	b.Report("dropped: no handler")
	b.Set(func(msg string) { got = append(got, msg) })
	b.Report("first")
	b.ReportError(nil)
	b.ReportError(smerrors.New("x").Err(ErrNotFound).Msg("lookup failed"))

	b.Set(func(msg string) { got = append(got, "replaced:"+msg) })
	b.Report("second")
	b.Clear()
	b.Report("after clear")

	var nilBridge *ErrorBridge
	assert.NotPanics(t, func() { nilBridge.Report("nil") })

	assert.Equal(t, []string{"first", "lookup failed -> not found", "replaced:second"}, got)
}
