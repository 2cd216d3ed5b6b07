// Package zerologcolor renders zerolog JSON events as colorlog lines, in the
// same spirit as zerolog.ConsoleWriter.
package zerologcolor

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"pkt.systems/colorlog"
	"pkt.systems/colorlog/internal/kv"
)

// DefaultThreadFieldName is the event field read as the thread name.
const DefaultThreadFieldName = "thread"

// Writer is an io.Writer suitable for zerolog.New. Each JSON event written to
// it is rendered as one newline-terminated line on Out.
type Writer struct {
	Out    io.Writer
	Format colorlog.FormatFunc
	// ThreadFieldName overrides DefaultThreadFieldName.
	ThreadFieldName string

	mu sync.Mutex
}

// New returns a Writer rendering to out with format. A nil format is built
// with colorlog defaults.
func New(out io.Writer, format colorlog.FormatFunc) *Writer {
	if format == nil {
		format = colorlog.NewFormatterBuilder().Build()
	}
	return &Writer{Out: out, Format: format}
}

// Write decodes p as one or more zerolog JSON events and renders them.
func (w *Writer) Write(p []byte) (int, error) {
	dec := json.NewDecoder(bytes.NewReader(p))
	dec.UseNumber()
	var out bytes.Buffer
	for {
		evt := make(map[string]any)
		if err := dec.Decode(&evt); err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return 0, fmt.Errorf("cannot decode event: %w", err)
		}
		rec, clock := w.record(evt)
		if err := w.format()(&out, clock, &rec); err != nil {
			return 0, err
		}
		out.WriteByte('\n')
	}
	if out.Len() == 0 {
		return len(p), nil
	}

	w.mu.Lock()
	defer w.mu.Unlock()
	dst := w.Out
	if dst == nil {
		dst = io.Discard
	}
	if _, err := dst.Write(out.Bytes()); err != nil {
		return 0, err
	}
	return len(p), nil
}

func (w *Writer) format() colorlog.FormatFunc {
	if w.Format == nil {
		return colorlog.NewFormatterBuilder().Build()
	}
	return w.Format
}

func (w *Writer) record(evt map[string]any) (colorlog.Record, colorlog.Clock) {
	threadField := w.ThreadFieldName
	if threadField == "" {
		threadField = DefaultThreadFieldName
	}
	rec := colorlog.Record{Severity: colorlog.SeverityInfo}

	if v, ok := evt[zerolog.LevelFieldName].(string); ok {
		rec.Severity = Severity(v)
	}
	if v, ok := evt[zerolog.CallerFieldName].(string); ok {
		rec.File, rec.Line = splitCaller(v)
	}
	if v, ok := evt[threadField]; ok {
		rec.Thread = kv.String(v)
	}

	clock := time.Now
	if v, ok := evt[zerolog.TimestampFieldName]; ok {
		if ts, ok := parseTime(v); ok {
			clock = func() time.Time { return ts }
		}
	}

	var msg []byte
	if v, ok := evt[zerolog.MessageFieldName]; ok {
		msg = append(msg, kv.String(v)...)
	}
	keys := make([]string, 0, len(evt))
	for key := range evt {
		switch key {
		case zerolog.LevelFieldName, zerolog.TimestampFieldName, zerolog.MessageFieldName,
			zerolog.CallerFieldName, threadField:
			continue
		}
		keys = append(keys, key)
	}
	sort.Strings(keys)
	for _, key := range keys {
		msg = kv.AppendPair(msg, key, kv.String(evt[key]))
	}
	rec.Message = strings.TrimPrefix(string(msg), " ")
	return rec, clock
}

// Severity maps a zerolog level name onto the colorlog severity scale.
// Fatal and panic render as Error; unknown or absent levels render as Info.
func Severity(level string) colorlog.Severity {
	parsed, err := zerolog.ParseLevel(level)
	if err != nil {
		return colorlog.SeverityInfo
	}
	switch parsed {
	case zerolog.TraceLevel:
		return colorlog.SeverityTrace
	case zerolog.DebugLevel:
		return colorlog.SeverityDebug
	case zerolog.WarnLevel:
		return colorlog.SeverityWarn
	case zerolog.ErrorLevel, zerolog.FatalLevel, zerolog.PanicLevel:
		return colorlog.SeverityError
	default:
		return colorlog.SeverityInfo
	}
}

func splitCaller(caller string) (string, int) {
	i := strings.LastIndexByte(caller, ':')
	if i < 0 {
		return filepath.Base(caller), 0
	}
	line, err := strconv.Atoi(caller[i+1:])
	if err != nil {
		return filepath.Base(caller), 0
	}
	return filepath.Base(caller[:i]), line
}

func parseTime(v any) (time.Time, bool) {
	switch val := v.(type) {
	case string:
		ts, err := time.Parse(zerolog.TimeFieldFormat, val)
		if err != nil {
			return time.Time{}, false
		}
		return ts, true
	case json.Number:
		n, err := val.Int64()
		if err != nil {
			f, ferr := val.Float64()
			if ferr != nil {
				return time.Time{}, false
			}
			n = int64(f)
		}
		switch zerolog.TimeFieldFormat {
		case zerolog.TimeFormatUnixMs:
			return time.UnixMilli(n), true
		case zerolog.TimeFormatUnixMicro:
			return time.UnixMicro(n), true
		case zerolog.TimeFormatUnixNano:
			return time.Unix(0, n), true
		default:
			return time.Unix(n, 0), true
		}
	}
	return time.Time{}, false
}
