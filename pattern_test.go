package logfacade

import (
	"os"
	"strconv"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPattern_Render(t *testing.T) {
	ts := time.Date(2024, time.March, 5, 7, 8, 9, 123456789, time.UTC)
	rec := record{Level: "warn", Message: "disk low", Logger: "store"}

	tests := []struct {
		pattern string
		want    string
	}{
		{DefaultPattern, "[2024-03-05 07:08:09.123] [store] [warning] disk low\n"},
		{"", "[2024-03-05 07:08:09.123] [store] [warning] disk low\n"},
		{"%L %v", "W disk low\n"},
		{"%f", "123456\n"},
		{"100%% %v", "100% disk low\n"},
		{"%q %v", "%q disk low\n"},
		{"trailing %", "trailing %\n"},
		{"pid=%P", "pid=" + strconv.Itoa(os.Getpid()) + "\n"},
	}
	for _, tt := range tests {
		t.Run(tt.pattern, func(t *testing.T) {
			got := compilePattern(tt.pattern).render(nil, rec, ts)
			assert.Equal(t, tt.want, string(got))
		})
	}
}

func TestPattern_UnleveledRecord(t *testing.T) {
	rec := record{Message: "category only", Logger: "net"}
	got := compilePattern("[%l] %v").render(nil, rec, time.Now())
	assert.Equal(t, "[] category only\n", string(got))
	assert.Equal(t, zerolog.NoLevel, engineLevel(rec))
}

func TestPattern_JSON(t *testing.T) {
	lp := compilePattern(JSONPattern)
	assert.True(t, lp.raw)
	assert.Empty(t, lp.segments)
}

func TestDecodeRecord(t *testing.T) {
	rec, err := decodeRecord([]byte(`{"level":"fatal","logger":"app","time":"2024-01-01T00:00:00Z","message":"m"}` + "\n"))
	require.NoError(t, err)
	assert.Equal(t, record{Level: "fatal", Message: "m", Logger: "app"}, rec)
	assert.Equal(t, zerolog.FatalLevel, engineLevel(rec))

	l, ok := levelFromRecord(rec.Level)
	assert.True(t, ok)
	assert.Equal(t, LevelCritical, l)

	_, err = decodeRecord([]byte("not json"))
	assert.Error(t, err)
}
