package logfacade

import (
	"io"
	"os"
	"sync"

	"github.com/rs/zerolog"
)

// ANSI color codes
const (
	colorReset  = "\033[0m"
	colorRed    = "\033[31m"
	colorGreen  = "\033[32m"
	colorYellow = "\033[33m"
	colorCyan   = "\033[36m"
	colorGray   = "\033[37m"
	colorBold   = "\033[1m"
	colorOnRed  = "\033[41m"
)

func levelColor(l zerolog.Level) string {
	switch l {
	case zerolog.TraceLevel:
		return colorGray
	case zerolog.DebugLevel:
		return colorCyan
	case zerolog.InfoLevel:
		return colorGreen
	case zerolog.WarnLevel:
		return colorYellow + colorBold
	case zerolog.ErrorLevel:
		return colorRed + colorBold
	case zerolog.FatalLevel, zerolog.PanicLevel:
		return colorBold + colorOnRed
	}
	return emptyString
}

// consoleSink writes lines to a terminal stream, optionally colored by level.
// Console streams are unbuffered so lines interleave correctly with other
// output.
type consoleSink struct {
	mu    sync.Locker
	out   io.Writer
	color bool
}

func newConsoleSink(out io.Writer, multiThreaded, color bool) *consoleSink {
	return &consoleSink{mu: sinkLock(multiThreaded), out: out, color: color}
}

func (s *consoleSink) Write(p []byte) (int, error) {
	return s.WriteLevel(zerolog.NoLevel, p)
}

func (s *consoleSink) WriteLevel(l zerolog.Level, p []byte) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	code := emptyString
	if s.color {
		code = levelColor(l)
	}
	if code == emptyString {
		return s.out.Write(p)
	}
	body := p
	nl := len(body) > 0 && body[len(body)-1] == '\n'
	if nl {
		body = body[:len(body)-1]
	}
	line := make([]byte, 0, len(code)+len(body)+len(colorReset)+1)
	line = append(line, code...)
	line = append(line, body...)
	line = append(line, colorReset...)
	if nl {
		line = append(line, '\n')
	}
	if _, err := s.out.Write(line); err != nil {
		return 0, err
	}
	return len(p), nil
}

func (s *consoleSink) Flush() error {
	if f, ok := s.out.(interface{ Sync() error }); ok && s.out != os.Stdout && s.out != os.Stderr {
		return f.Sync()
	}
	return nil
}

// Close leaves the process streams open.
func (s *consoleSink) Close() error { return nil }
