// FILE: lixenwraith/mvconfig/helper.go
package mvconfig

import (
	"fmt"
	"reflect"
	"slices"
	"strconv"
	"strings"
	"time"
)

// normalizePrefix appends KeySeparator to a non-blank prefix that lacks it.
// A blank prefix normalizes to the empty string.
func normalizePrefix(prefix string) string {
	if strings.TrimSpace(prefix) == "" {
		return ""
	}
	if !strings.HasSuffix(prefix, KeySeparator) {
		prefix += KeySeparator
	}
	return prefix
}

// stripPrefix reports whether key starts with prefix and returns the remainder.
// An empty prefix matches every key.
func stripPrefix(key, prefix string) (string, bool) {
	if !strings.HasPrefix(key, prefix) {
		return "", false
	}
	return key[len(prefix):], true
}

// splitValue splits value on a literal delimiter. Trailing empty fields are dropped;
// if that leaves nothing, the result is a single empty value.
// An empty delimiter returns the value unsplit.
func splitValue(value, delimiter string) []string {
	if delimiter == "" {
		return []string{value}
	}
	parts := strings.Split(value, delimiter)
	end := len(parts)
	for end > 0 && parts[end-1] == "" {
		end--
	}
	if end == 0 {
		return []string{""}
	}
	return parts[:end]
}

// flattenMap converts a nested map to a flat map[string]any with dot-notation paths.
// Any map keyed by strings (or untyped keys, as older YAML decoders produce) is descended.
func flattenMap(nested map[string]any, prefix string) map[string]any {
	flat := make(map[string]any)
	flattenInto(flat, reflect.ValueOf(nested), prefix)
	return flat
}

func flattenInto(flat map[string]any, mv reflect.Value, prefix string) {
	iter := mv.MapRange()
	for iter.Next() {
		newPath := fmt.Sprint(iter.Key().Interface())
		if prefix != "" {
			newPath = prefix + KeySeparator + newPath
		}

		value := iter.Value()
		if value.Kind() == reflect.Interface && !value.IsNil() {
			value = value.Elem()
		}
		if isNestedMap(value) {
			flattenInto(flat, value, newPath)
			continue
		}
		flat[newPath] = value.Interface()
	}
}

// isNestedMap reports whether v is a map whose keys can become path segments
func isNestedMap(v reflect.Value) bool {
	if v.Kind() != reflect.Map {
		return false
	}
	switch v.Type().Key().Kind() {
	case reflect.String, reflect.Interface:
		return true
	}
	return false
}

// isNilLeaf reports whether value is nil or a nil pointer or interface
func isNilLeaf(value any) bool {
	if value == nil {
		return true
	}
	rv := reflect.ValueOf(value)
	switch rv.Kind() {
	case reflect.Ptr, reflect.Interface:
		return rv.IsNil()
	}
	return false
}

// sortedKeys returns the keys of m in lexical order
func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}

// formatValues converts a leaf value from a decoded document or struct into property values.
// Slices and arrays yield one value per element, pointers are followed and nil yields an empty string.
func formatValues(value any) []string {
	if value == nil {
		return []string{""}
	}

	rv := reflect.ValueOf(value)
	if rv.Kind() == reflect.Ptr {
		if rv.IsNil() {
			return []string{""}
		}
		return formatValues(rv.Elem().Interface())
	}
	if (rv.Kind() == reflect.Slice || rv.Kind() == reflect.Array) && rv.Type().Elem().Kind() != reflect.Uint8 {
		out := make([]string, 0, rv.Len())
		for i := 0; i < rv.Len(); i++ {
			out = append(out, formatScalar(rv.Index(i).Interface()))
		}
		return out
	}

	return []string{formatScalar(value)}
}

// formatScalar renders a single value in its natural textual form
func formatScalar(value any) string {
	switch v := value.(type) {
	case nil:
		return ""
	case string:
		return v
	case []byte:
		return string(v)
	case bool:
		return strconv.FormatBool(v)
	case time.Time:
		return v.Format(time.RFC3339)
	case time.Duration:
		return v.String()
	case fmt.Stringer:
		return v.String()
	}

	rv := reflect.ValueOf(value)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return strconv.FormatInt(rv.Int(), 10)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return strconv.FormatUint(rv.Uint(), 10)
	case reflect.Float32:
		return strconv.FormatFloat(rv.Float(), 'f', -1, 32)
	case reflect.Float64:
		return strconv.FormatFloat(rv.Float(), 'f', -1, 64)
	default:
		return fmt.Sprintf("%v", value)
	}
}
