package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runDemo(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := newRootCmd(&out)
	cmd.SetArgs(args)
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	err := cmd.Execute()
	return out.String(), err
}

func TestDemoBackends(t *testing.T) {
	for _, backend := range []string{backendSlog, backendZerolog, backendZap} {
		t.Run(backend, func(t *testing.T) {
			out, err := runDemo(t, "--backend", backend, "--color", "never")
			require.NoError(t, err)
			lines := strings.Split(strings.TrimSpace(out), "\n")
			require.Len(t, lines, 5)
			for i, sev := range []string{"Error", "Warn", "Info", "Debug", "Trace"} {
				assert.Contains(t, lines[i], "] "+sev+" [")
			}
			assert.NotContains(t, out, "\x1b[")
		})
	}
}

func TestDemoColorAlways(t *testing.T) {
	out, err := runDemo(t, "--color", "always", "--thread")
	require.NoError(t, err)
	assert.Contains(t, out, "\x1b[31mError\x1b[0m")
	assert.Contains(t, out, "\x1b[35mTrace\x1b[0m")
	assert.Contains(t, out, "[\x1b[32mmain\x1b[0m]")
}

func TestDemoAutoOnBufferIsPlain(t *testing.T) {
	t.Setenv("TERM", "xterm-256color")
	out, err := runDemo(t)
	require.NoError(t, err)
	assert.NotContains(t, out, "\x1b[")
}

func TestDemoRejectsBadColor(t *testing.T) {
	_, err := runDemo(t, "--color", "Always")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid color choice value")
}

func TestDemoRejectsBadBackend(t *testing.T) {
	_, err := runDemo(t, "--backend", "logrus")
	require.Error(t, err)
}
