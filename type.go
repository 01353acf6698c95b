// FILE: lixenwraith/mvconfig/type.go
package mvconfig

import (
	"strconv"
	"strings"
)

const yesToken = "yes"

// FirstValue returns the first value stored for key.
// The second return value is false if the key is absent or has no values.
func (m *MultiValueMap) FirstValue(key string) (string, bool) {
	vals := m.values[key]
	if len(vals) == 0 {
		return "", false
	}
	return vals[0], true
}

// FirstValueOr returns the first value stored for key, or defaultValue if there is none.
func (m *MultiValueMap) FirstValueOr(key, defaultValue string) string {
	if v, ok := m.FirstValue(key); ok {
		return v
	}
	return defaultValue
}

// FirstInt parses the first value for key as a decimal integer.
// A missing or unparsable value returns an error wrapping ErrValueFormat.
func (m *MultiValueMap) FirstInt(key string) (int, error) {
	v, ok := m.FirstValue(key)
	if !ok {
		return 0, valueFormatError(key, "has no value", nil)
	}
	return parseInt(key, v)
}

// FirstIntOr parses the first value for key as a decimal integer, returning
// defaultValue if the key has no value. A present but unparsable value is still an error.
func (m *MultiValueMap) FirstIntOr(key string, defaultValue int) (int, error) {
	v, ok := m.FirstValue(key)
	if !ok {
		return defaultValue, nil
	}
	return parseInt(key, v)
}

// FirstBool interprets the first value for key as a boolean.
// Only "true" (any case) is true; a missing value returns an error wrapping ErrValueFormat.
func (m *MultiValueMap) FirstBool(key string) (bool, error) {
	v, ok := m.FirstValue(key)
	if !ok {
		return false, valueFormatError(key, "has no value", nil)
	}
	return strings.EqualFold(v, "true"), nil
}

// FirstBoolOr interprets the first value for key as a boolean, returning
// defaultValue if the key has no value. "true" and "yes" (any case) are true.
func (m *MultiValueMap) FirstBoolOr(key string, defaultValue bool) bool {
	v, ok := m.FirstValue(key)
	if !ok {
		return defaultValue
	}
	return strings.EqualFold(v, "true") || strings.EqualFold(v, yesToken)
}

func parseInt(key, s string) (int, error) {
	i, err := strconv.Atoi(s)
	if err != nil {
		return 0, valueFormatError(key, "is not an integer", err)
	}
	return i, nil
}
