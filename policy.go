package colorlog

import (
	"errors"
	"fmt"
	"os"
)

// ColorPolicy declares whether colour escape codes should be emitted.
type ColorPolicy uint8

const (
	// ColorAuto colours output only when stderr is a terminal and TERM names a
	// capable terminal (set and not "dumb").
	ColorAuto ColorPolicy = iota
	// ColorAlways always emits colour.
	ColorAlways
	// ColorNever never emits colour.
	ColorNever
)

// ErrInvalidColorPolicy is returned when a textual colour policy is not one of
// "always", "auto" or "never".
var ErrInvalidColorPolicy = errors.New("invalid color choice value")

// ParseColorPolicy converts a textual token into a ColorPolicy. Matching is
// case sensitive and accepts exactly "always", "auto" and "never".
func ParseColorPolicy(value string) (ColorPolicy, error) {
	switch value {
	case "always":
		return ColorAlways, nil
	case "auto":
		return ColorAuto, nil
	case "never":
		return ColorNever, nil
	default:
		return ColorAuto, fmt.Errorf("%w %q (want always, auto or never)", ErrInvalidColorPolicy, value)
	}
}

// ColorPolicyFromEnv looks up key in the environment and parses it into a
// ColorPolicy. The boolean reports whether the variable was set; a set but
// unparsable value yields ErrInvalidColorPolicy.
func ColorPolicyFromEnv(key string) (ColorPolicy, bool, error) {
	if key == "" {
		return ColorAuto, false, nil
	}
	value, ok := os.LookupEnv(key)
	if !ok {
		return ColorAuto, false, nil
	}
	policy, err := ParseColorPolicy(value)
	return policy, true, err
}

// String returns the canonical token for p.
func (p ColorPolicy) String() string {
	switch p {
	case ColorAlways:
		return "always"
	case ColorAuto:
		return "auto"
	case ColorNever:
		return "never"
	default:
		return fmt.Sprintf("ColorPolicy(%d)", uint8(p))
	}
}

// Set implements pflag.Value so a ColorPolicy can back a command line flag.
func (p *ColorPolicy) Set(value string) error {
	parsed, err := ParseColorPolicy(value)
	if err != nil {
		return err
	}
	*p = parsed
	return nil
}

// Type implements pflag.Value.
func (p *ColorPolicy) Type() string { return "always|auto|never" }

// MarshalText implements encoding.TextMarshaler.
func (p ColorPolicy) MarshalText() ([]byte, error) {
	switch p {
	case ColorAlways, ColorAuto, ColorNever:
		return []byte(p.String()), nil
	default:
		return nil, fmt.Errorf("%w %s", ErrInvalidColorPolicy, p.String())
	}
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (p *ColorPolicy) UnmarshalText(text []byte) error {
	return p.Set(string(text))
}
