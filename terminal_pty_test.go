//go:build linux || darwin || dragonfly || freebsd || netbsd || openbsd || solaris

package colorlog_test

import (
	"bytes"
	"testing"

	"github.com/creack/pty"

	"pkt.systems/colorlog"
)

func TestWriterEnvironmentPTY(t *testing.T) {
	ptmx, tty, err := pty.Open()
	if err != nil {
		t.Fatalf("pty open: %v", err)
	}
	t.Cleanup(func() {
		_ = tty.Close()
		_ = ptmx.Close()
	})

	env := colorlog.WriterEnvironment(tty)
	if !env.IsTerminal() {
		t.Fatalf("expected pty slave to be a terminal")
	}

	t.Setenv("TERM", "xterm-256color")
	if !colorlog.Resolve(colorlog.ColorAuto, env) {
		t.Fatalf("auto resolved false on a capable terminal")
	}
	t.Setenv("TERM", "dumb")
	if colorlog.Resolve(colorlog.ColorAuto, env) {
		t.Fatalf("auto resolved true on a dumb terminal")
	}
}

func TestBuildFreezesDecision(t *testing.T) {
	ptmx, tty, err := pty.Open()
	if err != nil {
		t.Fatalf("pty open: %v", err)
	}
	t.Cleanup(func() {
		_ = tty.Close()
		_ = ptmx.Close()
	})

	t.Setenv("TERM", "xterm")
	format := colorlog.NewFormatterBuilder().WithEnvironment(colorlog.WriterEnvironment(tty)).Build()
	t.Setenv("TERM", "dumb")

	var buf bytes.Buffer
	if err := format(&buf, fixedClock, &colorlog.Record{Severity: colorlog.SeverityWarn, Message: "m"}); err != nil {
		t.Fatalf("format: %v", err)
	}
	if !bytes.ContainsRune(buf.Bytes(), 0x1b) {
		t.Fatalf("decision was re-evaluated after build: %q", buf.String())
	}
}
