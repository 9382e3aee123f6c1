package logfacade

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
)

func TestFormatArgs(t *testing.T) {
	args := NewVarArgs().AddString("world").AddInt32(42).AddBool(true)

	tests := []struct {
		name   string
		format string
		want   string
	}{
		{"sequential", "hello {} ({})", "hello world (42)"},
		{"positional", "{1} {0} {1}", "42 world 42"},
		{"format spec ignored", "{:>8} {1:x}", "world 42"},
		{"escaped braces", "{{}} {}", "{} world"},
		{"missing argument kept", "{} {} {} {}", "world 42 true {}"},
		{"out of range index", "{7}", "{7}"},
		{"named field kept", "{name}", "{name}"},
		{"unterminated", "tail {", "tail {"},
		{"no fields", "plain text", "plain text"},
		{"lone closing brace", "a } b", "a } b"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := formatArgs(nil, tt.format, newArgList(args))
			assert.Equal(t, tt.want, string(got))
		})
	}
}

func TestFormatArgs_UnpackedList(t *testing.T) {
	a := NewVarArgs()
	for i := 0; i < PackedArgLimit+2; i++ {
		a.AddInt(i)
	}
	l := newArgList(a)
	assert.False(t, l.Packed())
	assert.Equal(t, "0 1 17", string(formatArgs(nil, "{} {} {17}", l)))
}

func TestAppendArg(t *testing.T) {
	tests := []struct {
		name string
		args *VarArgs
		want string
	}{
		{"negative int", NewVarArgs().AddInt32(-5), "-5"},
		{"uint64", NewVarArgs().AddUint64(18446744073709551615), "18446744073709551615"},
		{"bool", NewVarArgs().AddBool(false), "false"},
		{"char", NewVarArgs().AddChar('Q'), "Q"},
		{"double", NewVarArgs().AddDouble(0.125), "0.125"},
		{"pointer", NewVarArgs().AddPointer(0xbeef), "0xbeef"},
		{"wide surrogate pair", NewVarArgs().AddWString([]uint16{0xd83d, 0xde00}), "\U0001F600"},
		{"byte string", NewVarArgs().AddUString([]byte("raw")), "raw"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, string(formatArgs(nil, "{}", newArgList(tt.args))))
		})
	}
}

func TestRenderPrintf_Truncates(t *testing.T) {
	assert.Equal(t, "n=7 s=x", renderPrintf("n=%d s=%s", []any{7, "x"}))

	long := strings.Repeat("a", 3000)
	got := renderPrintf("%s", []any{long})
	assert.Len(t, got, printfBufferSize-1)
	assert.Equal(t, long[:printfBufferSize-1], got)

	split := strings.Repeat("a", printfBufferSize-2) + "é"
	got = renderPrintf("%s", []any{split})
	assert.True(t, utf8.ValidString(got))
	assert.Equal(t, strings.Repeat("a", printfBufferSize-2), got)

	huge := strings.Repeat("b", 2*maxPooledLineBuf)
	assert.Len(t, renderPrintf("%s", []any{huge}), printfBufferSize-1)
}
