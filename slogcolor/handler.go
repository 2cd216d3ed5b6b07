// Package slogcolor registers a colorlog formatter with log/slog.
package slogcolor

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"path/filepath"
	"runtime"
	"sync"
	"time"

	"pkt.systems/colorlog"
	"pkt.systems/colorlog/internal/kv"
)

// LevelTrace is the slog level rendered as colorlog.SeverityTrace.
const LevelTrace = slog.Level(-8)

// Options configures a Handler.
type Options struct {
	// Level is the minimum level handled. Defaults to slog.LevelInfo.
	Level slog.Leveler
}

// Handler is a slog.Handler that renders each record as one colorlog line.
type Handler struct {
	format colorlog.FormatFunc
	level  slog.Leveler
	mu     *sync.Mutex
	w      io.Writer
	attrs  []byte
	group  string
}

// NewHandler returns a Handler writing newline-terminated lines rendered by
// format to w. A nil format is built with colorlog defaults.
func NewHandler(w io.Writer, format colorlog.FormatFunc, opts *Options) *Handler {
	if w == nil {
		w = io.Discard
	}
	if format == nil {
		format = colorlog.NewFormatterBuilder().Build()
	}
	h := &Handler{format: format, mu: &sync.Mutex{}, w: w, level: slog.LevelInfo}
	if opts != nil && opts.Level != nil {
		h.level = opts.Level
	}
	return h
}

// Enabled reports whether the handler handles records at the given level.
func (h *Handler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.level.Level()
}

// Handle renders r. The thread segment comes from colorlog.ThreadNameFromContext.
func (h *Handler) Handle(ctx context.Context, r slog.Record) error {
	rec := colorlog.Record{
		Severity: Severity(r.Level),
		Thread:   colorlog.ThreadNameFromContext(ctx),
	}
	if r.PC != 0 {
		frames := runtime.CallersFrames([]uintptr{r.PC})
		frame, _ := frames.Next()
		if frame.File != "" {
			rec.File = filepath.Base(frame.File)
			rec.Line = frame.Line
		}
	}

	msg := make([]byte, 0, len(r.Message)+len(h.attrs)+16*r.NumAttrs())
	msg = append(msg, r.Message...)
	msg = append(msg, h.attrs...)
	r.Attrs(func(a slog.Attr) bool {
		msg = appendAttr(msg, h.group, a)
		return true
	})
	rec.Message = string(msg)

	ts := r.Time
	clock := func() time.Time {
		if ts.IsZero() {
			return time.Now()
		}
		return ts
	}

	var line bytes.Buffer
	if err := h.format(&line, clock, &rec); err != nil {
		return err
	}
	line.WriteByte('\n')

	h.mu.Lock()
	defer h.mu.Unlock()
	_, err := h.w.Write(line.Bytes())
	return err
}

// WithAttrs returns a Handler that appends attrs to every line.
func (h *Handler) WithAttrs(attrs []slog.Attr) slog.Handler {
	if len(attrs) == 0 {
		return h
	}
	clone := *h
	clone.attrs = append([]byte(nil), h.attrs...)
	for _, a := range attrs {
		clone.attrs = appendAttr(clone.attrs, h.group, a)
	}
	return &clone
}

// WithGroup returns a Handler that qualifies subsequent attribute keys with name.
func (h *Handler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}
	clone := *h
	if h.group != "" {
		clone.group = h.group + "." + name
	} else {
		clone.group = name
	}
	return &clone
}

// Severity maps a slog level onto the colorlog severity scale.
func Severity(level slog.Level) colorlog.Severity {
	switch {
	case level >= slog.LevelError:
		return colorlog.SeverityError
	case level >= slog.LevelWarn:
		return colorlog.SeverityWarn
	case level >= slog.LevelInfo:
		return colorlog.SeverityInfo
	case level >= slog.LevelDebug:
		return colorlog.SeverityDebug
	default:
		return colorlog.SeverityTrace
	}
}

func appendAttr(dst []byte, group string, a slog.Attr) []byte {
	a.Value = a.Value.Resolve()
	if a.Equal(slog.Attr{}) {
		return dst
	}
	key := a.Key
	if group != "" && key != "" {
		key = group + "." + key
	} else if key == "" {
		key = group
	}
	if a.Value.Kind() == slog.KindGroup {
		for _, member := range a.Value.Group() {
			dst = appendAttr(dst, key, member)
		}
		return dst
	}
	var value string
	switch a.Value.Kind() {
	case slog.KindTime:
		value = a.Value.Time().Format(time.RFC3339Nano)
	case slog.KindAny:
		value = kv.String(a.Value.Any())
	default:
		value = a.Value.String()
	}
	return kv.AppendPair(dst, key, value)
}
