package colorlog

import (
	"io"
	"os"
)

// TermEnvKey is the environment variable consulted by ColorAuto.
const TermEnvKey = "TERM"

// Environment is the view of process state that colour resolution depends on.
// Implementations must be free of side effects.
type Environment interface {
	// IsTerminal reports whether the log destination is an interactive terminal.
	IsTerminal() bool
	// LookupEnv behaves like os.LookupEnv.
	LookupEnv(key string) (string, bool)
}

// ProcessEnvironment returns the live environment of the process, with stderr
// as the destination stream.
func ProcessEnvironment() Environment {
	return WriterEnvironment(os.Stderr)
}

// WriterEnvironment returns the live process environment with w as the
// destination stream. Writers that are not backed by a file descriptor are
// never terminals.
func WriterEnvironment(w io.Writer) Environment {
	return writerEnvironment{w: w}
}

type writerEnvironment struct {
	w io.Writer
}

func (e writerEnvironment) IsTerminal() bool {
	if e.w == nil {
		return false
	}
	return isTerminal(e.w)
}

func (writerEnvironment) LookupEnv(key string) (string, bool) {
	return os.LookupEnv(key)
}

// StaticEnvironment is a synthetic Environment with fixed answers.
type StaticEnvironment struct {
	Terminal bool
	Vars     map[string]string
}

// IsTerminal implements Environment.
func (e StaticEnvironment) IsTerminal() bool { return e.Terminal }

// LookupEnv implements Environment.
func (e StaticEnvironment) LookupEnv(key string) (string, bool) {
	v, ok := e.Vars[key]
	return v, ok
}

// Resolve decides whether output should be colourised under policy given env.
// ColorAuto requires a terminal destination and a TERM value other than
// "dumb"; an unset TERM disables colour while an empty one does not.
func Resolve(policy ColorPolicy, env Environment) bool {
	switch policy {
	case ColorAlways:
		return true
	case ColorNever:
		return false
	}
	if env == nil {
		env = ProcessEnvironment()
	}
	if !env.IsTerminal() {
		return false
	}
	value, ok := env.LookupEnv(TermEnvKey)
	if !ok {
		return false
	}
	return value != "dumb"
}
