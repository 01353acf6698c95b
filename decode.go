// FILE: lixenwraith/mvconfig/decode.go
package mvconfig

import (
	"fmt"
	"reflect"

	"github.com/mitchellh/mapstructure"
)

// DefaultTagName is the struct tag read by DefaultsFromStruct when none is given
const DefaultTagName = "toml"

// DefaultsFromStruct derives a defaults map from a struct or pointer to struct.
// Field names come from tagName tags (DefaultTagName if empty), nested structs become
// dotted keys, string-keyed map fields become dotted keys and slice fields become
// multiple values. Nil pointer and interface fields are omitted. Keys are in sorted order.
func DefaultsFromStruct(structWithDefaults any, tagName string) (*MultiValueMap, error) {
	rv := reflect.ValueOf(structWithDefaults)
	if rv.Kind() == reflect.Ptr {
		if rv.IsNil() {
			return nil, fmt.Errorf("DefaultsFromStruct requires a non-nil struct pointer")
		}
		rv = rv.Elem()
	}
	if rv.Kind() != reflect.Struct {
		return nil, fmt.Errorf("DefaultsFromStruct requires a struct, got %T", structWithDefaults)
	}
	if tagName == "" {
		tagName = DefaultTagName
	}

	nested := make(map[string]any)
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:  &nested,
		TagName: tagName,
	})
	if err != nil {
		return nil, fmt.Errorf("decoder creation failed: %w", err)
	}
	if err := decoder.Decode(rv.Interface()); err != nil {
		return nil, fmt.Errorf("failed to decode defaults struct %T: %w", structWithDefaults, err)
	}

	flat := flattenMap(nested, "")
	defaults := New()
	for _, k := range sortedKeys(flat) {
		// Unset optional sections stay absent
		if isNilLeaf(flat[k]) {
			continue
		}
		defaults.Put(k, formatValues(flat[k])...)
	}
	return defaults, nil
}
