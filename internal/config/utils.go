package config

import (
	"reflect"
)

// BoolValue returns *p, or defaultValue when the directive was not set.
func BoolValue(p *bool, defaultValue bool) bool {
	if p == nil {
		return defaultValue
	}
	return *p
}

// SetThen provides a utility to select the first value if set, otherwise defaults.
func SetThen[T any](value T, defaultValue T) T {
	if reflect.ValueOf(&value).Elem().IsZero() {
		return defaultValue
	}
	return value
}

// ColorEnabled reports whether terminal output may be colored.
func ColorEnabled(cfg *Config) bool {
	if cfg == nil {
		return true
	}
	return BoolValue(cfg.Output.Color, true)
}
