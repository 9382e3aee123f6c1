package logfacade

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestLevel_Ordering(t *testing.T) {
	levels := []Level{LevelTrace, LevelDebug, LevelInfo, LevelWarn, LevelError, LevelCritical, LevelOff}
	for i, l := range levels {
		assert.Equal(t, Level(i), l)
	}
}

func TestLevelFromUint(t *testing.T) {
	assert.Equal(t, LevelWarn, LevelFromUint(3))
	assert.Equal(t, LevelOff, LevelFromUint(6))
	assert.Equal(t, LevelOff, LevelFromUint(1000))
}

func TestParseLevel(t *testing.T) {
	tests := map[string]Level{
		"trace":   LevelTrace,
		"DEBUG":   LevelDebug,
		" info ":  LevelInfo,
		"warn":    LevelWarn,
		"warning": LevelWarn,
		"err":     LevelError,
		"fatal":   LevelCritical,
		"off":     LevelOff,
	}
	for in, want := range tests {
		got, ok := ParseLevel(in)
		assert.True(t, ok, in)
		assert.Equal(t, want, got, in)
	}
	_, ok := ParseLevel("loud")
	assert.False(t, ok)
}

func TestLevel_ZerologMapping(t *testing.T) {
	for l := LevelTrace; l <= LevelOff; l++ {
		back, ok := levelFromZerolog(l.zerologLevel())
		assert.True(t, ok)
		assert.Equal(t, l, back)
	}
	_, ok := levelFromZerolog(zerolog.NoLevel)
	assert.False(t, ok)
	assert.Equal(t, "unknown", Level(9).String())
}
