package colorlog

import (
	"io"

	"github.com/mattn/go-isatty"
	"golang.org/x/term"
)

type fdWriter interface {
	Fd() uintptr
}

// isTerminal reports whether w is backed by a file descriptor attached to an
// interactive terminal. Cygwin and MSYS pseudo terminals count as terminals.
func isTerminal(w io.Writer) bool {
	f, ok := w.(fdWriter)
	if !ok {
		return false
	}
	fd := f.Fd()
	if term.IsTerminal(int(fd)) {
		return true
	}
	return isatty.IsCygwinTerminal(fd)
}
