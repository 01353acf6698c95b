// FILE: lixenwraith/mvconfig/merge_test.go
package mvconfig

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMergeLayerOrder(t *testing.T) {
	log, lines := captureLogger()

	defaults := NewSingle("app.a", "default")
	raw := NewSingle("a", "raw")
	props := StaticProperties(map[string]string{"app.a": "sys"})

	result := merge(mergeConfig{
		prefix:         "app.",
		defaults:       defaults,
		systemDefaults: true,
		systemOverride: true,
		properties:     props,
		log:            log,
	}, raw)

	v, _ := result.Values("a")
	assert.Equal(t, []string{"sys"}, v)

	var layers []string
	for _, l := range *lines {
		if !strings.Contains(l, `"msg"="applied layer"`) {
			continue
		}
		for _, layer := range []Layer{LayerDefaults, LayerSystemDefaults, LayerRaw, LayerSystemOverrides} {
			if strings.Contains(l, `"layer"="`+string(layer)+`"`) {
				layers = append(layers, string(layer))
			}
		}
	}
	assert.Equal(t, []string{"defaults", "system-defaults", "raw", "system-overrides"}, layers)
	assert.Positive(t, countContaining(*lines, "replacing"))
}

func TestMergeSkipsDisabledLayers(t *testing.T) {
	log, lines := captureLogger()

	result := merge(mergeConfig{
		systemDefaults: true,
		systemOverride: true,
		properties:     StaticProperties(map[string]string{"k": "v"}),
		log:            log,
	}, nil)

	require.NotNil(t, result)
	assert.Equal(t, 0, result.Len())
	assert.Equal(t, 0, countContaining(*lines, "applied layer"))
}

func TestNormalizePrefix(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"", ""},
		{"  ", ""},
		{"app", "app."},
		{"app.", "app."},
		{"a.b", "a.b."},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, normalizePrefix(tt.in), "prefix %q", tt.in)
	}
}

func TestFormatValues(t *testing.T) {
	assert.Equal(t, []string{""}, formatValues(nil))
	assert.Equal(t, []string{"1", "2"}, formatValues([]int{1, 2}))
	assert.Equal(t, []string{"bytes"}, formatValues([]byte("bytes")))
	assert.Equal(t, []string{"1.5"}, formatValues(float32(1.5)))
	assert.Equal(t, []string{"false"}, formatValues(false))
	assert.Equal(t, []string{"42"}, formatValues(uint8(42)))

	n := 7
	var nilPtr *int
	assert.Equal(t, []string{"7"}, formatValues(&n))
	assert.Equal(t, []string{""}, formatValues(nilPtr))
}

func TestFlattenMap(t *testing.T) {
	flat := flattenMap(map[string]any{
		"a": map[string]any{
			"b": 1,
			"c": map[any]any{"d": "x"},
		},
		"labels": map[string]string{"env": "prod"},
		"e":      []any{"y"},
	}, "")

	assert.Equal(t, map[string]any{
		"a.b":        1,
		"a.c.d":      "x",
		"e":          []any{"y"},
		"labels.env": "prod",
	}, flat)
}
