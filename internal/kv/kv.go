// Package kv renders key=value pairs appended to a log message by the host
// adapters. Values that would be ambiguous on a console line are quoted.
package kv

import (
	"encoding"
	"encoding/json"
	"fmt"
	"strconv"
	"time"
)

var needsQuote = func() [256]bool {
	var table [256]bool
	for i := 0; i < 0x20; i++ {
		table[i] = true
	}
	table[0x7f] = true
	table['"'] = true
	table['\\'] = true
	table[' '] = true
	table['='] = true
	return table
}()

// AppendPair appends " key=value" to dst.
func AppendPair(dst []byte, key, value string) []byte {
	dst = append(dst, ' ')
	dst = append(dst, key...)
	dst = append(dst, '=')
	return AppendString(dst, value)
}

// AppendString appends s, quoted and escaped when it is empty or contains
// spaces, '=', quotes, backslashes or control bytes.
func AppendString(dst []byte, s string) []byte {
	if s == "" {
		return append(dst, '"', '"')
	}
	quote := false
	for i := 0; i < len(s); i++ {
		if needsQuote[s[i]] {
			quote = true
			break
		}
	}
	if !quote {
		return append(dst, s...)
	}
	dst = append(dst, '"')
	dst = appendEscaped(dst, s)
	return append(dst, '"')
}

func appendEscaped(dst []byte, s string) []byte {
	const hex = "0123456789abcdef"
	last := 0
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c >= 0x20 && c != 0x7f && c != '"' && c != '\\' {
			continue
		}
		dst = append(dst, s[last:i]...)
		switch c {
		case '\\', '"':
			dst = append(dst, '\\', c)
		case '\n':
			dst = append(dst, '\\', 'n')
		case '\r':
			dst = append(dst, '\\', 'r')
		case '\t':
			dst = append(dst, '\\', 't')
		default:
			dst = append(dst, '\\', 'x', hex[c>>4], hex[c&0x0f])
		}
		last = i + 1
	}
	return append(dst, s[last:]...)
}

// String converts an arbitrary field value to its console text.
func String(v any) string {
	switch val := v.(type) {
	case nil:
		return "<nil>"
	case string:
		return val
	case []byte:
		return string(val)
	case bool:
		return strconv.FormatBool(val)
	case int:
		return strconv.Itoa(val)
	case int64:
		return strconv.FormatInt(val, 10)
	case uint64:
		return strconv.FormatUint(val, 10)
	case float64:
		return strconv.FormatFloat(val, 'g', -1, 64)
	case json.Number:
		return val.String()
	case time.Time:
		return val.Format(time.RFC3339Nano)
	case time.Duration:
		return val.String()
	case error:
		return val.Error()
	case fmt.Stringer:
		return val.String()
	case encoding.TextMarshaler:
		if text, err := val.MarshalText(); err == nil {
			return string(text)
		}
	case map[string]any, []any:
		if data, err := json.Marshal(val); err == nil {
			return string(data)
		}
	}
	return fmt.Sprint(v)
}
