package colorlog

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

// FromEnvOption customizes FormatterFromEnv behavior.
type FromEnvOption func(*fromEnvConfig)

type fromEnvConfig struct {
	prefix  string
	builder FormatterBuilder
}

// WithEnvPrefix overrides the environment variable prefix used by
// FormatterFromEnv.
func WithEnvPrefix(prefix string) FromEnvOption {
	return func(cfg *fromEnvConfig) {
		cfg.prefix = prefix
	}
}

// WithEnvBuilder seeds FormatterFromEnv with an explicitly configured builder.
func WithEnvBuilder(b FormatterBuilder) FromEnvOption {
	return func(cfg *fromEnvConfig) {
		cfg.builder = b
	}
}

// FormatterFromEnv builds a formatter from environment variables on top of an
// optional seeded builder. Environment values override seeded settings.
//
// Recognised variables are {prefix}COLOR (always|auto|never) and
// {prefix}THREAD (any strconv.ParseBool value). The default prefix is "LOG_".
// An unrecognised COLOR value fails the whole construction.
func FormatterFromEnv(opts ...FromEnvOption) (FormatFunc, error) {
	cfg := fromEnvConfig{prefix: "LOG_", builder: NewFormatterBuilder()}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	b := cfg.builder
	policy, ok, err := ColorPolicyFromEnv(cfg.prefix + "COLOR")
	if err != nil {
		return nil, fmt.Errorf("%sCOLOR: %w", cfg.prefix, err)
	}
	if ok {
		b = b.WithColor(policy)
	}
	if value, ok := os.LookupEnv(cfg.prefix + "THREAD"); ok {
		if parsed, ok := parseEnvBool(value); ok {
			b = b.WithThread(parsed)
		}
	}
	return b.Build(), nil
}

func parseEnvBool(value string) (bool, bool) {
	parsed, err := strconv.ParseBool(strings.TrimSpace(value))
	if err != nil {
		return false, false
	}
	return parsed, true
}
