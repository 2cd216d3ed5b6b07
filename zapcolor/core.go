// Package zapcolor provides a zapcore.Core that renders entries as colorlog
// lines.
package zapcolor

import (
	"bytes"
	"path/filepath"
	"sort"
	"time"

	"go.uber.org/zap/zapcore"

	"pkt.systems/colorlog"
	"pkt.systems/colorlog/internal/kv"
)

type core struct {
	zapcore.LevelEnabler
	format colorlog.FormatFunc
	out    zapcore.WriteSyncer
	fields []zapcore.Field
}

// NewCore returns a zapcore.Core writing entries rendered by format to out.
// The zap logger name is rendered as the thread name.
func NewCore(format colorlog.FormatFunc, out zapcore.WriteSyncer, enab zapcore.LevelEnabler) zapcore.Core {
	if format == nil {
		format = colorlog.NewFormatterBuilder().Build()
	}
	return &core{LevelEnabler: enab, format: format, out: out}
}

func (c *core) With(fields []zapcore.Field) zapcore.Core {
	clone := *c
	clone.fields = make([]zapcore.Field, 0, len(c.fields)+len(fields))
	clone.fields = append(clone.fields, c.fields...)
	clone.fields = append(clone.fields, fields...)
	return &clone
}

func (c *core) Check(ent zapcore.Entry, ce *zapcore.CheckedEntry) *zapcore.CheckedEntry {
	if c.Enabled(ent.Level) {
		return ce.AddCore(ent, c)
	}
	return ce
}

func (c *core) Write(ent zapcore.Entry, fields []zapcore.Field) error {
	enc := zapcore.NewMapObjectEncoder()
	for _, f := range c.fields {
		f.AddTo(enc)
	}
	for _, f := range fields {
		f.AddTo(enc)
	}
	keys := make([]string, 0, len(enc.Fields))
	for key := range enc.Fields {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	msg := []byte(ent.Message)
	for _, key := range keys {
		msg = kv.AppendPair(msg, key, kv.String(enc.Fields[key]))
	}

	rec := colorlog.Record{
		Severity: Severity(ent.Level),
		Thread:   ent.LoggerName,
		Message:  string(msg),
	}
	if ent.Caller.Defined {
		rec.File = filepath.Base(ent.Caller.File)
		rec.Line = ent.Caller.Line
	}
	ts := ent.Time
	clock := func() time.Time {
		if ts.IsZero() {
			return time.Now()
		}
		return ts
	}

	var line bytes.Buffer
	if err := c.format(&line, clock, &rec); err != nil {
		return err
	}
	line.WriteByte('\n')
	if _, err := c.out.Write(line.Bytes()); err != nil {
		return err
	}
	if ent.Level > zapcore.ErrorLevel {
		// Panic and fatal entries may end the process before zap syncs.
		return c.out.Sync()
	}
	return nil
}

func (c *core) Sync() error {
	return c.out.Sync()
}

// Severity maps a zap level onto the colorlog severity scale. Levels above
// error render as Error and levels below debug as Trace.
func Severity(level zapcore.Level) colorlog.Severity {
	switch {
	case level >= zapcore.ErrorLevel:
		return colorlog.SeverityError
	case level == zapcore.WarnLevel:
		return colorlog.SeverityWarn
	case level == zapcore.InfoLevel:
		return colorlog.SeverityInfo
	case level == zapcore.DebugLevel:
		return colorlog.SeverityDebug
	default:
		return colorlog.SeverityTrace
	}
}
