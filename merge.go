// FILE: lixenwraith/mvconfig/merge.go
package mvconfig

import (
	"github.com/go-logr/logr"
)

// Layer identifies a step of the merge pipeline
type Layer string

const (
	// LayerDefaults copies the configured defaults map
	LayerDefaults Layer = "defaults"
	// LayerSystemDefaults applies process-wide properties as defaults
	LayerSystemDefaults Layer = "system-defaults"
	// LayerRaw applies the parsed or supplied input
	LayerRaw Layer = "raw"
	// LayerSystemOverrides applies process-wide properties over the input
	LayerSystemOverrides Layer = "system-overrides"
)

// layerStep is one stage of the merge pipeline applied to the accumulator
type layerStep struct {
	layer   Layer
	enabled bool
	apply   func(acc *MultiValueMap) int // Returns the number of keys written
}

// mergeConfig is the subset of builder state the merge reads
type mergeConfig struct {
	prefix         string
	defaults       *MultiValueMap
	systemDefaults bool
	systemOverride bool
	properties     PropertySource
	log            logr.Logger
}

// merge composes the final map from the layers, lowest precedence first.
// Every layer replaces whole value sequences per key; no layer appends to an earlier one.
func merge(cfg mergeConfig, raw *MultiValueMap) *MultiValueMap {
	hasPrefix := cfg.prefix != ""

	steps := []layerStep{
		{
			// Defaults: filtered and stripped by prefix when one is set, verbatim otherwise
			layer:   LayerDefaults,
			enabled: cfg.defaults != nil,
			apply: func(acc *MultiValueMap) int {
				return applyDefaults(acc, cfg.defaults, cfg.prefix, cfg.log)
			},
		},
		{
			// System defaults: only with a prefix; replaces existing keys
			layer:   LayerSystemDefaults,
			enabled: cfg.systemDefaults && hasPrefix && cfg.properties != nil,
			apply: func(acc *MultiValueMap) int {
				return applyProperties(acc, cfg.properties, cfg.prefix, cfg.log)
			},
		},
		{
			// Raw input: unconditional replace, prefix handling already done by the input's construction
			layer:   LayerRaw,
			enabled: raw != nil,
			apply: func(acc *MultiValueMap) int {
				return applyRaw(acc, raw, cfg.log)
			},
		},
		{
			// System overrides: same as system defaults but after the raw input
			layer:   LayerSystemOverrides,
			enabled: cfg.systemOverride && hasPrefix && cfg.properties != nil,
			apply: func(acc *MultiValueMap) int {
				return applyProperties(acc, cfg.properties, cfg.prefix, cfg.log)
			},
		},
	}

	acc := New()
	for _, step := range steps {
		if !step.enabled {
			continue
		}
		n := step.apply(acc)
		cfg.log.V(logLevelDebug).Info("applied layer", "layer", string(step.layer), "keys", n)
	}
	return acc
}

// applyDefaults copies defaults into acc, filtering and stripping by prefix
func applyDefaults(acc, defaults *MultiValueMap, prefix string, log logr.Logger) int {
	n := 0
	for k, v := range defaults.All() {
		key, ok := stripPrefix(k, prefix)
		if !ok {
			continue
		}
		log.V(logLevelTrace).Info("setting default", "key", key, "values", v)
		acc.Put(key, v...)
		n++
	}
	return n
}

// applyProperties replaces acc entries with prefixed properties split on SystemDelimiter
func applyProperties(acc *MultiValueMap, source PropertySource, prefix string, log logr.Logger) int {
	n := 0
	for _, p := range source.Properties() {
		key, ok := stripPrefix(p.Key, prefix)
		if !ok {
			continue
		}
		if old, exists := acc.Values(key); exists {
			log.V(logLevelTrace).Info("replacing existing entry", "key", key, "old", old)
		}
		values := splitValue(p.Value, SystemDelimiter)
		log.V(logLevelTrace).Info("setting property", "key", key, "values", values)
		acc.Put(key, values...)
		n++
	}
	return n
}

// applyRaw replaces acc entries with every entry of raw
func applyRaw(acc, raw *MultiValueMap, log logr.Logger) int {
	n := 0
	for k, v := range raw.All() {
		if old, exists := acc.Values(k); exists {
			log.V(logLevelTrace).Info("replacing old value", "key", k, "old", old)
		}
		acc.Put(k, v...)
		n++
	}
	return n
}
