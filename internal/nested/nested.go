// Package nested provides optional lookup over decoded JSON values.
// Upstream schedule payloads are deeply nested and every field is optional,
// so callers walk paths of keys/indices and fall back to a default on any
// missing or incompatible step instead of checking each level by hand.
package nested

import (
	"strconv"
	"strings"
)

// Get walks root through the given path segments. Segments may be string keys
// (for map[string]any) or int indices (for []any). The second return value is
// false when any step is missing or the value at that step has the wrong shape.
func Get(root any, path ...any) (any, bool) {
	current := root
	for _, step := range path {
		switch key := step.(type) {
		case string:
			m, ok := current.(map[string]any)
			if !ok {
				return nil, false
			}
			current, ok = m[key]
			if !ok {
				return nil, false
			}
		case int:
			s, ok := current.([]any)
			if !ok || key < 0 || key >= len(s) {
				return nil, false
			}
			current = s[key]
		default:
			return nil, false
		}
	}
	return current, true
}

// String returns the string at path, or def when absent or not a string.
func String(root any, def string, path ...any) string {
	val, ok := Get(root, path...)
	if !ok {
		return def
	}
	s, ok := val.(string)
	if !ok {
		return def
	}
	return s
}

// Int returns the integer at path, or def when absent or non-numeric.
// JSON numbers decode as float64; numeric strings are accepted too since the
// upstream API has been observed returning both for the same field.
func Int(root any, def int, path ...any) int {
	val, ok := Get(root, path...)
	if !ok {
		return def
	}
	return toInt(val, def)
}

// Int64 returns the 64-bit integer at path, or def when absent or non-numeric.
func Int64(root any, def int64, path ...any) int64 {
	val, ok := Get(root, path...)
	if !ok {
		return def
	}
	switch v := val.(type) {
	case float64:
		return int64(v)
	case int:
		return int64(v)
	case int64:
		return v
	case string:
		if parsed, err := strconv.ParseInt(strings.TrimSpace(v), 10, 64); err == nil {
			return parsed
		}
	}
	return def
}

// Map returns the object at path, or nil when absent or not an object.
func Map(root any, path ...any) map[string]any {
	val, ok := Get(root, path...)
	if !ok {
		return nil
	}
	m, _ := val.(map[string]any)
	return m
}

// Slice returns the array at path, or nil when absent or not an array.
func Slice(root any, path ...any) []any {
	val, ok := Get(root, path...)
	if !ok {
		return nil
	}
	s, _ := val.([]any)
	return s
}

func toInt(val any, def int) int {
	switch v := val.(type) {
	case float64:
		return int(v)
	case int:
		return v
	case int64:
		return int(v)
	case string:
		if parsed, err := strconv.Atoi(strings.TrimSpace(v)); err == nil {
			return parsed
		}
	}
	return def
}
