package colorlog

import (
	"context"
	"time"
)

// Clock supplies the current time when a line is rendered.
type Clock func() time.Time

// Record is the host's view of a single log event. The formatter only reads
// it and retains nothing after the call returns.
type Record struct {
	Severity Severity
	// File is the source file name; empty when the host captured no location.
	File string
	// Line is the source line; zero when the host captured no location.
	Line int
	// Thread is the display name of the emitting thread or goroutine. Only the
	// thread layout reads it.
	Thread  string
	Message string
}

// unnamedThread is rendered when the thread layout sees an empty Thread.
const unnamedThread = "<unnamed>"

type threadNameKey struct{}

// ContextWithThreadName returns a child context carrying name as the thread
// identity adapters place in Record.Thread.
func ContextWithThreadName(ctx context.Context, name string) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}
	return context.WithValue(ctx, threadNameKey{}, name)
}

// ThreadNameFromContext returns the thread name stored by
// ContextWithThreadName, or "" when there is none.
func ThreadNameFromContext(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	name, _ := ctx.Value(threadNameKey{}).(string)
	return name
}
