package zerologcolor_test

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pkt.systems/colorlog"
	"pkt.systems/colorlog/zerologcolor"
)

func plainFormat(thread bool) colorlog.FormatFunc {
	return colorlog.NewFormatterBuilder().WithColor(colorlog.ColorNever).WithThread(thread).Build()
}

func TestWriterRendersEvent(t *testing.T) {
	var buf bytes.Buffer
	w := zerologcolor.New(&buf, plainFormat(false))
	event := `{"level":"error","time":"2024-01-02T03:04:05Z","caller":"/src/app/app.go:42","message":"boom"}` + "\n"
	n, err := w.Write([]byte(event))
	require.NoError(t, err)
	assert.Equal(t, len(event), n)
	assert.Equal(t, "[2024-01-02 03:04:05.000000 +00:00] Error [app.go:42] boom\n", buf.String())
}

func TestWriterWithZerologLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := zerolog.New(zerologcolor.New(&buf, plainFormat(true))).
		With().Timestamp().Caller().Str("thread", "worker-9").Logger()
	logger.Warn().Int("attempt", 2).Str("user", "bob smith").Msg("retrying")

	line := buf.String()
	assert.Contains(t, line, "] Warn  [worker-9] [writer_test.go:")
	assert.True(t, strings.HasSuffix(line, `] retrying attempt=2 user="bob smith"`+"\n"), "got %q", line)
}

func TestWriterLevels(t *testing.T) {
	cases := map[string]colorlog.Severity{
		"trace":   colorlog.SeverityTrace,
		"debug":   colorlog.SeverityDebug,
		"info":    colorlog.SeverityInfo,
		"warn":    colorlog.SeverityWarn,
		"error":   colorlog.SeverityError,
		"fatal":   colorlog.SeverityError,
		"panic":   colorlog.SeverityError,
		"":        colorlog.SeverityInfo,
		"bananas": colorlog.SeverityInfo,
	}
	for level, want := range cases {
		assert.Equal(t, want, zerologcolor.Severity(level), "level %q", level)
	}
}

func TestWriterMissingFields(t *testing.T) {
	var buf bytes.Buffer
	w := zerologcolor.New(&buf, plainFormat(true))
	_, err := w.Write([]byte(`{"time":"2024-01-02T03:04:05Z","error":"disk full"}`))
	require.NoError(t, err)
	assert.Equal(t, "[2024-01-02 03:04:05.000000 +00:00] Info  [<unnamed>] [:0] error=\"disk full\"\n", buf.String())
}

func TestWriterCustomThreadField(t *testing.T) {
	var buf bytes.Buffer
	w := zerologcolor.New(&buf, plainFormat(true))
	w.ThreadFieldName = "goroutine"
	_, err := w.Write([]byte(`{"level":"debug","goroutine":"g7","message":"m"}`))
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "Debug [g7] [:0] m")
}

func TestWriterColor(t *testing.T) {
	var buf bytes.Buffer
	format := colorlog.NewFormatterBuilder().WithColor(colorlog.ColorAlways).Build()
	_, err := zerologcolor.New(&buf, format).Write([]byte(`{"level":"trace","message":"deep"}`))
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "\x1b[35mTrace\x1b[0m")
	assert.True(t, strings.HasSuffix(buf.String(), "] deep\n"))
}

func TestWriterRejectsInvalidJSON(t *testing.T) {
	var buf bytes.Buffer
	_, err := zerologcolor.New(&buf, plainFormat(false)).Write([]byte("not json"))
	require.Error(t, err)
	assert.Empty(t, buf.String())
}

type brokenWriter struct{}

func (brokenWriter) Write([]byte) (int, error) { return 0, errors.New("closed") }

func TestWriterPropagatesWriteError(t *testing.T) {
	_, err := zerologcolor.New(brokenWriter{}, plainFormat(false)).Write([]byte(`{"message":"x"}`))
	require.EqualError(t, err, "closed")
}
