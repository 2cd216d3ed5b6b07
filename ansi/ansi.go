// Package ansi provides the ANSI escape sequences used by colorlog's colorized
// rendering strategies. The palette is fixed: every severity maps to exactly
// one of the basic foreground colours below.
package ansi

// Reset is the ANSI escape code that clears all terminal styling; the
// remaining constants are the foreground colours keyed to severities.
const (
	Reset   = "\x1b[0m"
	Red     = "\x1b[31m"
	Green   = "\x1b[32m"
	Yellow  = "\x1b[33m"
	Blue    = "\x1b[34m"
	Magenta = "\x1b[35m"
)

// Append writes s to dst wrapped in color and Reset.
func Append(dst []byte, color, s string) []byte {
	dst = append(dst, color...)
	dst = append(dst, s...)
	return append(dst, Reset...)
}

// Wrap returns s wrapped in color and Reset.
func Wrap(color, s string) string {
	return color + s + Reset
}

// Strip removes CSI escape sequences from s. It is meant for tests and for
// sinks that must never see colour codes.
func Strip(s string) string {
	out := make([]byte, 0, len(s))
	for i := 0; i < len(s); i++ {
		if s[i] == 0x1b && i+1 < len(s) && s[i+1] == '[' {
			j := i + 2
			for j < len(s) && (s[j] < 0x40 || s[j] > 0x7e) {
				j++
			}
			i = j
			continue
		}
		out = append(out, s[i])
	}
	return string(out)
}
