package kv

import (
	"encoding/json"
	"errors"
	"testing"
	"time"
)

func TestAppendPair(t *testing.T) {
	cases := []struct {
		key, value, want string
	}{
		{"user", "alice", " user=alice"},
		{"empty", "", ` empty=""`},
		{"space", "two words", ` space="two words"`},
		{"eq", "a=b", ` eq="a=b"`},
		{"quote", `say "hi"`, ` quote="say \"hi\""`},
		{"nl", "a\nb\tc", ` nl="a\nb\tc"`},
		{"ctl", "x\x01", ` ctl="x\x01"`},
		{"utf8", "snø", " utf8=snø"},
	}
	for _, tc := range cases {
		if got := string(AppendPair(nil, tc.key, tc.value)); got != tc.want {
			t.Fatalf("%s: got %q want %q", tc.key, got, tc.want)
		}
	}
}

func TestString(t *testing.T) {
	ts := time.Date(2024, time.January, 2, 3, 4, 5, 0, time.UTC)
	cases := []struct {
		in   any
		want string
	}{
		{nil, "<nil>"},
		{"s", "s"},
		{true, "true"},
		{42, "42"},
		{int64(-7), "-7"},
		{uint64(7), "7"},
		{1.5, "1.5"},
		{json.Number("12.0"), "12.0"},
		{ts, "2024-01-02T03:04:05Z"},
		{time.Second, "1s"},
		{errors.New("boom"), "boom"},
		{map[string]any{"a": 1}, `{"a":1}`},
		{[]any{"x", 2}, `["x",2]`},
		{struct{ A int }{1}, "{1}"},
	}
	for _, tc := range cases {
		if got := String(tc.in); got != tc.want {
			t.Fatalf("String(%#v) = %q want %q", tc.in, got, tc.want)
		}
	}
}
