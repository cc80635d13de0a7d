// SPDX-License-Identifier: MIT

package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/ManuGH/stash/internal/log"
)

// ParseString reads a string from an environment variable or returns the
// default. The chosen source is logged at debug level for observability.
func ParseString(key, defaultValue string) string {
	v, ok := lookup(key)
	if !ok || v == "" {
		logDefault(key, defaultValue, ok)
		return defaultValue
	}
	logger := log.WithComponent("config")
	logger.Debug().
		Str("key", key).
		Str("value", maskSensitive(key, v)).
		Str("source", "environment").
		Msg("using environment variable")
	return v
}

// ParseInt reads an integer from an environment variable or returns the
// default. Invalid values fall back to the default with a warning.
func ParseInt(key string, defaultValue int) int {
	v, ok := lookup(key)
	if !ok || v == "" {
		logDefault(key, strconv.Itoa(defaultValue), ok)
		return defaultValue
	}
	i, err := strconv.Atoi(v)
	if err != nil {
		logInvalid(key, v, strconv.Itoa(defaultValue))
		return defaultValue
	}
	return i
}

// ParseBool reads a boolean from an environment variable or returns the
// default. It accepts "true", "false", "1", "0", "yes", "no" (case-insensitive).
func ParseBool(key string, defaultValue bool) bool {
	v, ok := lookup(key)
	if !ok || v == "" {
		logDefault(key, strconv.FormatBool(defaultValue), ok)
		return defaultValue
	}
	switch strings.ToLower(v) {
	case "true", "1", "yes":
		return true
	case "false", "0", "no":
		return false
	default:
		logInvalid(key, v, strconv.FormatBool(defaultValue))
		return defaultValue
	}
}

// ParseDuration reads a duration in Go format (e.g. "5s") from an environment
// variable or returns the default.
func ParseDuration(key string, defaultValue time.Duration) time.Duration {
	v, ok := lookup(key)
	if !ok || v == "" {
		logDefault(key, defaultValue.String(), ok)
		return defaultValue
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		logInvalid(key, v, defaultValue.String())
		return defaultValue
	}
	return d
}

// ParseFloat reads a float64 from an environment variable or returns the default.
func ParseFloat(key string, defaultValue float64) float64 {
	v, ok := lookup(key)
	if !ok || v == "" {
		logDefault(key, strconv.FormatFloat(defaultValue, 'f', -1, 64), ok)
		return defaultValue
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		logInvalid(key, v, strconv.FormatFloat(defaultValue, 'f', -1, 64))
		return defaultValue
	}
	return f
}

func lookup(key string) (string, bool) {
	return os.LookupEnv(key)
}

// maskSensitive hides values of keys that look like secrets.
func maskSensitive(key, value string) string {
	lower := strings.ToLower(key)
	if strings.Contains(lower, "token") || strings.Contains(lower, "password") || strings.Contains(lower, "secret") {
		return "***"
	}
	return value
}

func logDefault(key, defaultValue string, present bool) {
	logger := log.WithComponent("config")
	e := logger.Debug().
		Str("key", key).
		Str("default", defaultValue).
		Str("source", "default")
	if present {
		e.Msg("using default value (environment variable is empty)")
		return
	}
	e.Msg("using default value")
}

func logInvalid(key, value, defaultValue string) {
	logger := log.WithComponent("config")
	logger.Warn().
		Str("key", key).
		Str("value", value).
		Str("default", defaultValue).
		Msg("invalid value in environment variable, using default")
}
