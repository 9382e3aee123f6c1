package logfacade

import (
	"os"
	"strconv"
	"time"

	"github.com/goccy/go-json"
	"github.com/rs/zerolog"
)

var shortLevelNames = [...]string{"T", "D", "I", "W", "E", "C", "O"}

// record is the part of a zerolog JSON line the pattern renderer needs.
type record struct {
	Level   string `json:"level"`
	Message string `json:"message"`
	Logger  string `json:"logger"`
}

func decodeRecord(p []byte) (record, error) {
	var rec record
	err := json.Unmarshal(p, &rec)
	return rec, err
}

type segment struct {
	lit  string
	flag byte
}

// linePattern is a compiled line layout. Supported flags:
//
//	%v message   %n logger name   %l level   %L short level
//	%Y year  %m month  %d day  %H hour  %M minute  %S second
//	%e milliseconds  %f microseconds  %P process id  %% percent
//
// Unknown flags are copied verbatim. The special pattern "json" passes the
// engine's JSON record through unchanged.
type linePattern struct {
	source   string
	raw      bool
	segments []segment
}

func compilePattern(p string) *linePattern {
	if p == emptyString {
		p = DefaultPattern
	}
	lp := &linePattern{source: p}
	if p == JSONPattern {
		lp.raw = true
		return lp
	}
	lit := make([]byte, 0, len(p))
	flush := func() {
		if len(lit) > 0 {
			lp.segments = append(lp.segments, segment{lit: string(lit)})
			lit = lit[:0]
		}
	}
	for i := 0; i < len(p); i++ {
		if p[i] != '%' || i+1 == len(p) {
			lit = append(lit, p[i])
			continue
		}
		i++
		switch f := p[i]; f {
		case '%':
			lit = append(lit, '%')
		case 'v', 'n', 'l', 'L', 'Y', 'm', 'd', 'H', 'M', 'S', 'e', 'f', 'P':
			flush()
			lp.segments = append(lp.segments, segment{flag: f})
		default:
			lit = append(lit, '%', f)
		}
	}
	flush()
	return lp
}

func appendPadded(dst []byte, v, width int) []byte {
	s := strconv.Itoa(v)
	for i := len(s); i < width; i++ {
		dst = append(dst, '0')
	}
	return append(dst, s...)
}

// render appends the formatted line, newline included.
func (lp *linePattern) render(dst []byte, rec record, t time.Time) []byte {
	for _, seg := range lp.segments {
		if seg.flag == 0 {
			dst = append(dst, seg.lit...)
			continue
		}
		switch seg.flag {
		case 'v':
			dst = append(dst, rec.Message...)
		case 'n':
			dst = append(dst, rec.Logger...)
		case 'l':
			if l, ok := levelFromRecord(rec.Level); ok {
				dst = append(dst, l.String()...)
			}
		case 'L':
			if l, ok := levelFromRecord(rec.Level); ok {
				dst = append(dst, shortLevelNames[l]...)
			}
		case 'Y':
			dst = appendPadded(dst, t.Year(), 4)
		case 'm':
			dst = appendPadded(dst, int(t.Month()), 2)
		case 'd':
			dst = appendPadded(dst, t.Day(), 2)
		case 'H':
			dst = appendPadded(dst, t.Hour(), 2)
		case 'M':
			dst = appendPadded(dst, t.Minute(), 2)
		case 'S':
			dst = appendPadded(dst, t.Second(), 2)
		case 'e':
			dst = appendPadded(dst, t.Nanosecond()/int(time.Millisecond), 3)
		case 'f':
			dst = appendPadded(dst, t.Nanosecond()/int(time.Microsecond), 6)
		case 'P':
			dst = strconv.AppendInt(dst, int64(os.Getpid()), 10)
		}
	}
	return append(dst, '\n')
}

// engineLevel extracts the zerolog level of a JSON record for level-aware
// sinks. Records without a level (bit-flag-only calls) report NoLevel.
func engineLevel(rec record) zerolog.Level {
	if rec.Level == emptyString {
		return zerolog.NoLevel
	}
	zl, err := zerolog.ParseLevel(rec.Level)
	if err != nil {
		return zerolog.NoLevel
	}
	return zl
}
