package colorlog

import (
	"fmt"

	"pkt.systems/colorlog/ansi"
)

// Severity is the ordered category of a log event. Lower values are more
// severe: SeverityError < SeverityWarn < ... < SeverityTrace.
type Severity uint8

const (
	SeverityError Severity = iota
	SeverityWarn
	SeverityInfo
	SeverityDebug
	SeverityTrace
)

// severityWidth is the length of the longest severity name.
const severityWidth = len("Error")

var severityNames = [...]string{
	SeverityError: "Error",
	SeverityWarn:  "Warn",
	SeverityInfo:  "Info",
	SeverityDebug: "Debug",
	SeverityTrace: "Trace",
}

// padded names for the thread layout, left aligned to severityWidth.
var severityPadded = [...]string{
	SeverityError: "Error",
	SeverityWarn:  "Warn ",
	SeverityInfo:  "Info ",
	SeverityDebug: "Debug",
	SeverityTrace: "Trace",
}

var severityColors = [...]string{
	SeverityError: ansi.Red,
	SeverityWarn:  ansi.Yellow,
	SeverityInfo:  ansi.Green,
	SeverityDebug: ansi.Blue,
	SeverityTrace: ansi.Magenta,
}

// Severities lists every severity from most to least severe.
func Severities() []Severity {
	return []Severity{SeverityError, SeverityWarn, SeverityInfo, SeverityDebug, SeverityTrace}
}

// Valid reports whether s is one of the five defined severities.
func (s Severity) Valid() bool {
	return int(s) < len(severityNames)
}

// String returns the canonical name of s.
func (s Severity) String() string {
	if !s.Valid() {
		return fmt.Sprintf("Severity(%d)", uint8(s))
	}
	return severityNames[s]
}

// Color returns the ANSI foreground escape associated with s. Severities
// outside the defined set have no colour.
func (s Severity) Color() string {
	if !s.Valid() {
		return ""
	}
	return severityColors[s]
}

func (s Severity) padded() string {
	if !s.Valid() {
		return fmt.Sprintf("%-*s", severityWidth, s.String())
	}
	return severityPadded[s]
}
