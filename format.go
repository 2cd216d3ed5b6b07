package colorlog

import "io"

// FormatFunc renders rec as one line (without a trailing newline) and writes
// it to w. now is consulted once per call; a nil now means time.Now. Write
// errors are returned unchanged and a short write reports io.ErrShortWrite.
//
// A FormatFunc holds no mutable state and may be called concurrently.
type FormatFunc func(w io.Writer, now Clock, rec *Record) error

// FormatterBuilder configures and builds a FormatFunc. The zero value is
// equivalent to NewFormatterBuilder().
type FormatterBuilder struct {
	color  ColorPolicy
	thread bool
	env    Environment
}

// NewFormatterBuilder returns a builder using ColorAuto, no thread identity and
// the live process environment.
func NewFormatterBuilder() FormatterBuilder {
	return FormatterBuilder{color: ColorAuto}
}

// WithColor replaces the colour policy.
func (b FormatterBuilder) WithColor(policy ColorPolicy) FormatterBuilder {
	b.color = policy
	return b
}

// WithThread selects the layout that renders Record.Thread after the
// severity, padding severity labels to a fixed width.
func (b FormatterBuilder) WithThread(enabled bool) FormatterBuilder {
	b.thread = enabled
	return b
}

// WithEnvironment overrides the environment ColorAuto is resolved against.
// A nil env restores the live process environment.
func (b FormatterBuilder) WithEnvironment(env Environment) FormatterBuilder {
	b.env = env
	return b
}

// Policy returns the configured colour policy.
func (b FormatterBuilder) Policy() ColorPolicy { return b.color }

// Build resolves the colour policy once and returns the matching rendering
// strategy. Later environment changes do not affect the returned FormatFunc.
func (b FormatterBuilder) Build() FormatFunc {
	env := b.env
	if env == nil {
		env = ProcessEnvironment()
	}
	color := Resolve(b.color, env)
	switch {
	case color && b.thread:
		return formatColorThread
	case color:
		return formatColor
	case b.thread:
		return formatPlainThread
	default:
		return formatPlain
	}
}

// Format renders rec with colour regardless of environment.
//
// Deprecated: build a formatter with NewFormatterBuilder instead.
func Format(w io.Writer, now Clock, rec *Record) error {
	return formatColor(w, now, rec)
}
