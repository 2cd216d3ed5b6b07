package colorlog

import (
	"io"
	"strconv"
	"sync"
	"time"

	"pkt.systems/colorlog/ansi"
)

const (
	lineBufferDefaultCap = 256
	lineBufferMaxCap     = 64 << 10
)

type lineBuffer struct {
	buf []byte
}

var lineBufferPool = sync.Pool{
	New: func() any {
		return &lineBuffer{buf: make([]byte, 0, lineBufferDefaultCap)}
	},
}

func acquireLineBuffer() *lineBuffer {
	lb := lineBufferPool.Get().(*lineBuffer)
	lb.buf = lb.buf[:0]
	return lb
}

func releaseLineBuffer(lb *lineBuffer) {
	if cap(lb.buf) > lineBufferMaxCap {
		return
	}
	lb.buf = lb.buf[:0]
	lineBufferPool.Put(lb)
}

// lineLayout appends one rendered line for rec, stamped with t, to buf.
type lineLayout func(buf []byte, t time.Time, rec *Record) []byte

var emptyRecord Record

// emit renders rec with layout and hands the line to w in a single Write.
func emit(w io.Writer, now Clock, rec *Record, layout lineLayout) error {
	if w == nil {
		w = io.Discard
	}
	if rec == nil {
		rec = &emptyRecord
	}
	var t time.Time
	if now != nil {
		t = now()
	} else {
		t = time.Now()
	}
	lb := acquireLineBuffer()
	lb.buf = layout(lb.buf, t, rec)
	n, err := w.Write(lb.buf)
	if err == nil && n < len(lb.buf) {
		err = io.ErrShortWrite
	}
	releaseLineBuffer(lb)
	return err
}

func formatPlain(w io.Writer, now Clock, rec *Record) error {
	return emit(w, now, rec, appendPlain)
}

func formatColor(w io.Writer, now Clock, rec *Record) error {
	return emit(w, now, rec, appendColor)
}

func formatPlainThread(w io.Writer, now Clock, rec *Record) error {
	return emit(w, now, rec, appendPlainThread)
}

func formatColorThread(w io.Writer, now Clock, rec *Record) error {
	return emit(w, now, rec, appendColorThread)
}

// [ts] Severity [file:line] message
func appendPlain(buf []byte, t time.Time, rec *Record) []byte {
	buf = append(buf, '[')
	buf = appendTimestamp(buf, t)
	buf = append(buf, "] "...)
	buf = append(buf, rec.Severity.String()...)
	return appendLocationPlain(buf, rec)
}

// [ts] Sever [thread] [file:line] message
func appendPlainThread(buf []byte, t time.Time, rec *Record) []byte {
	buf = append(buf, '[')
	buf = appendTimestamp(buf, t)
	buf = append(buf, "] "...)
	buf = append(buf, rec.Severity.padded()...)
	buf = append(buf, " ["...)
	buf = append(buf, threadName(rec)...)
	buf = append(buf, ']')
	return appendLocationPlain(buf, rec)
}

func appendLocationPlain(buf []byte, rec *Record) []byte {
	buf = append(buf, " ["...)
	buf = append(buf, rec.File...)
	buf = append(buf, ':')
	buf = strconv.AppendInt(buf, int64(rec.Line), 10)
	buf = append(buf, "] "...)
	return append(buf, rec.Message...)
}

func appendColor(buf []byte, t time.Time, rec *Record) []byte {
	color := rec.Severity.Color()
	buf = append(buf, '[')
	buf = appendTimestampColor(buf, t, color)
	buf = append(buf, "] "...)
	buf = ansi.Append(buf, color, rec.Severity.String())
	return appendLocationColor(buf, rec, color)
}

func appendColorThread(buf []byte, t time.Time, rec *Record) []byte {
	color := rec.Severity.Color()
	buf = append(buf, '[')
	buf = appendTimestampColor(buf, t, color)
	buf = append(buf, "] "...)
	buf = ansi.Append(buf, color, rec.Severity.padded())
	buf = append(buf, " ["...)
	buf = ansi.Append(buf, color, threadName(rec))
	buf = append(buf, ']')
	return appendLocationColor(buf, rec, color)
}

func appendTimestampColor(buf []byte, t time.Time, color string) []byte {
	buf = append(buf, color...)
	buf = appendTimestamp(buf, t)
	return append(buf, ansi.Reset...)
}

func appendLocationColor(buf []byte, rec *Record, color string) []byte {
	buf = append(buf, " ["...)
	buf = ansi.Append(buf, color, rec.File)
	buf = append(buf, ':')
	buf = append(buf, color...)
	buf = strconv.AppendInt(buf, int64(rec.Line), 10)
	buf = append(buf, ansi.Reset...)
	buf = append(buf, "] "...)
	return append(buf, rec.Message...)
}

func threadName(rec *Record) string {
	if rec.Thread == "" {
		return unnamedThread
	}
	return rec.Thread
}
