// SPDX-License-Identifier: MIT
package config

import (
	"testing"
	"time"
)

func TestParseString(t *testing.T) {
	tests := []struct {
		name     string
		value    *string
		fallback string
		want     string
	}{
		{name: "unset returns default", value: nil, fallback: "dflt", want: "dflt"},
		{name: "empty returns default", value: ptr(""), fallback: "dflt", want: "dflt"},
		{name: "set returns value", value: ptr("custom"), fallback: "dflt", want: "custom"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			const key = "STASH_TEST_STRING"
			if tc.value != nil {
				t.Setenv(key, *tc.value)
			}
			if got := ParseString(key, tc.fallback); got != tc.want {
				t.Errorf("ParseString() = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestParseInt(t *testing.T) {
	tests := []struct {
		name     string
		value    *string
		fallback int
		want     int
	}{
		{name: "unset returns default", value: nil, fallback: 42, want: 42},
		{name: "valid integer", value: ptr("7"), fallback: 42, want: 7},
		{name: "invalid integer falls back", value: ptr("seven"), fallback: 42, want: 42},
		{name: "empty falls back", value: ptr(""), fallback: 42, want: 42},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			const key = "STASH_TEST_INT"
			if tc.value != nil {
				t.Setenv(key, *tc.value)
			}
			if got := ParseInt(key, tc.fallback); got != tc.want {
				t.Errorf("ParseInt() = %d, want %d", got, tc.want)
			}
		})
	}
}

func TestParseBool(t *testing.T) {
	tests := []struct {
		name     string
		value    *string
		fallback bool
		want     bool
	}{
		{name: "unset returns default", value: nil, fallback: true, want: true},
		{name: "true", value: ptr("true"), fallback: false, want: true},
		{name: "TRUE mixed case", value: ptr("TRUE"), fallback: false, want: true},
		{name: "one", value: ptr("1"), fallback: false, want: true},
		{name: "yes", value: ptr("yes"), fallback: false, want: true},
		{name: "false", value: ptr("false"), fallback: true, want: false},
		{name: "zero", value: ptr("0"), fallback: true, want: false},
		{name: "no", value: ptr("no"), fallback: true, want: false},
		{name: "garbage falls back", value: ptr("maybe"), fallback: true, want: true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			const key = "STASH_TEST_BOOL"
			if tc.value != nil {
				t.Setenv(key, *tc.value)
			}
			if got := ParseBool(key, tc.fallback); got != tc.want {
				t.Errorf("ParseBool() = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestParseDuration(t *testing.T) {
	tests := []struct {
		name     string
		value    *string
		fallback time.Duration
		want     time.Duration
	}{
		{name: "unset returns default", value: nil, fallback: 5 * time.Second, want: 5 * time.Second},
		{name: "valid duration", value: ptr("90s"), fallback: 5 * time.Second, want: 90 * time.Second},
		{name: "invalid duration falls back", value: ptr("soon"), fallback: 5 * time.Second, want: 5 * time.Second},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			const key = "STASH_TEST_DURATION"
			if tc.value != nil {
				t.Setenv(key, *tc.value)
			}
			if got := ParseDuration(key, tc.fallback); got != tc.want {
				t.Errorf("ParseDuration() = %s, want %s", got, tc.want)
			}
		})
	}
}

func TestParseFloat(t *testing.T) {
	const key = "STASH_TEST_FLOAT"
	if got := ParseFloat(key, 0.5); got != 0.5 {
		t.Errorf("ParseFloat() unset = %g, want 0.5", got)
	}
	t.Setenv(key, "0.25")
	if got := ParseFloat(key, 0.5); got != 0.25 {
		t.Errorf("ParseFloat() = %g, want 0.25", got)
	}
	t.Setenv(key, "not-a-float")
	if got := ParseFloat(key, 0.5); got != 0.5 {
		t.Errorf("ParseFloat() invalid = %g, want 0.5", got)
	}
}

func ptr(s string) *string { return &s }
