package logfacade

import (
	"strings"

	"github.com/rs/zerolog"
)

// Level is the closed, ordered severity enumeration shared with callers as an
// unsigned integer.
type Level uint32

const (
	LevelTrace Level = iota
	LevelDebug
	LevelInfo
	LevelWarn
	LevelError
	LevelCritical
	LevelOff
)

var levelNames = [...]string{"trace", "debug", "info", "warning", "error", "critical", "off"}

// String returns the lowercase level name.
func (l Level) String() string {
	if l.valid() {
		return levelNames[l]
	}
	return "unknown"
}

func (l Level) valid() bool {
	return l <= LevelOff
}

// LevelFromUint converts a raw level. Unknown values become LevelOff, which is
// how logger configuration treats them.
func LevelFromUint(v uint32) Level {
	l := Level(v)
	if !l.valid() {
		return LevelOff
	}
	return l
}

// ParseLevel parses a level name. "warn", "err" and "fatal" are accepted as
// aliases.
func ParseLevel(s string) (Level, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "trace":
		return LevelTrace, true
	case "debug":
		return LevelDebug, true
	case "info":
		return LevelInfo, true
	case "warn", "warning":
		return LevelWarn, true
	case "error", "err":
		return LevelError, true
	case "critical", "fatal":
		return LevelCritical, true
	case "off", "disabled":
		return LevelOff, true
	}
	return LevelOff, false
}

// zerologLevel maps to the engine level. Critical maps to zerolog's fatal level;
// events are always emitted with WithLevel so the process never exits.
func (l Level) zerologLevel() zerolog.Level {
	switch l {
	case LevelTrace:
		return zerolog.TraceLevel
	case LevelDebug:
		return zerolog.DebugLevel
	case LevelInfo:
		return zerolog.InfoLevel
	case LevelWarn:
		return zerolog.WarnLevel
	case LevelError:
		return zerolog.ErrorLevel
	case LevelCritical:
		return zerolog.FatalLevel
	default:
		return zerolog.Disabled
	}
}

func levelFromZerolog(zl zerolog.Level) (Level, bool) {
	switch zl {
	case zerolog.TraceLevel:
		return LevelTrace, true
	case zerolog.DebugLevel:
		return LevelDebug, true
	case zerolog.InfoLevel:
		return LevelInfo, true
	case zerolog.WarnLevel:
		return LevelWarn, true
	case zerolog.ErrorLevel:
		return LevelError, true
	case zerolog.FatalLevel, zerolog.PanicLevel:
		return LevelCritical, true
	case zerolog.Disabled:
		return LevelOff, true
	}
	return LevelOff, false
}

// levelFromRecord recovers the level of a rendered zerolog record from its
// level field value.
func levelFromRecord(name string) (Level, bool) {
	if name == emptyString {
		return LevelOff, false
	}
	zl, err := zerolog.ParseLevel(name)
	if err != nil {
		return LevelOff, false
	}
	return levelFromZerolog(zl)
}
