// FILE: lixenwraith/mvconfig/builder.go
package mvconfig

import (
	"io"

	"github.com/go-logr/logr"
)

// Builder provides a fluent interface for building a MultiValueMap.
// A Builder is consumed by its first terminal Build* call.
type Builder struct {
	prefix         string
	delimiter      string
	quotedValues   bool
	systemDefaults bool
	systemOverride bool
	defaults       *MultiValueMap
	properties     PropertySource
	log            logr.Logger
	consumed       bool
}

// NewBuilder creates a builder reading process-wide properties from the environment
func NewBuilder() *Builder {
	return &Builder{
		properties: Environ(nil),
		log:        logr.Discard(),
	}
}

// WithPrefix restricts defaults, map input and process-wide properties to keys starting
// with prefix, and strips it from the resulting keys. A non-blank prefix gets a trailing
// "." if it lacks one.
func (b *Builder) WithPrefix(prefix string) *Builder {
	b.prefix = normalizePrefix(prefix)
	return b
}

// WithDelimiter sets the delimiter that splits values into multiple values.
// Process-wide properties always split on SystemDelimiter.
func (b *Builder) WithDelimiter(delimiter string) *Builder {
	b.delimiter = delimiter
	return b
}

// WithQuotedValues requires quoted values in text sources
func (b *Builder) WithQuotedValues() *Builder {
	b.quotedValues = true
	return b
}

// WithSystemDefaults applies process-wide properties under the prefix before the input
func (b *Builder) WithSystemDefaults() *Builder {
	b.systemDefaults = true
	return b
}

// WithSystemOverrides applies process-wide properties under the prefix after the input,
// overriding it
func (b *Builder) WithSystemOverrides() *Builder {
	b.systemOverride = true
	return b
}

// WithDefaults sets the map holding default values. It is only read.
func (b *Builder) WithDefaults(defaults *MultiValueMap) *Builder {
	b.defaults = defaults
	return b
}

// WithProperties replaces the process-wide property source
func (b *Builder) WithProperties(source PropertySource) *Builder {
	b.properties = source
	return b
}

// WithLogger sets the logger for malformed line warnings and trace output
func (b *Builder) WithLogger(log logr.Logger) *Builder {
	if log.GetSink() == nil {
		log = logr.Discard()
	}
	b.log = log
	return b
}

// Build creates a map from the defaults and process-wide properties alone
func (b *Builder) Build() (*MultiValueMap, error) {
	return b.finish(New())
}

// BuildReader parses key=value text from r and merges it
func (b *Builder) BuildReader(r io.Reader) (*MultiValueMap, error) {
	if err := b.consume(); err != nil {
		return nil, err
	}
	raw, err := parse(r, "", b.parseOptions())
	if err != nil {
		return nil, err
	}
	return b.merge(raw), nil
}

// BuildRaw merges a pre-built raw map. No prefix filtering is applied to raw.
func (b *Builder) BuildRaw(raw *MultiValueMap) (*MultiValueMap, error) {
	if raw == nil {
		raw = New()
	}
	return b.finish(raw)
}

// BuildStrings merges a flat key/value map. Keys are filtered and stripped by the
// prefix, values split by the delimiter. Keys are processed in sorted order.
func (b *Builder) BuildStrings(props map[string]string) (*MultiValueMap, error) {
	if b.consumed {
		return nil, ErrBuilderConsumed
	}

	raw := New()
	for _, k := range sortedKeys(props) {
		key, ok := stripPrefix(k, b.prefix)
		if !ok {
			continue
		}
		for _, v := range splitValue(props[k], b.delimiter) {
			b.log.V(logLevelTrace).Info("adding value", "key", key, "value", v)
			raw.Add(key, v)
		}
	}
	return b.finish(raw)
}

// BuildValues merges a nested untyped map such as a decoded document.
// Nested maps become dotted keys, slices become multiple values and the remaining
// handling matches BuildStrings. The delimiter only splits string scalars.
func (b *Builder) BuildValues(values map[string]any) (*MultiValueMap, error) {
	if b.consumed {
		return nil, ErrBuilderConsumed
	}

	flat := flattenMap(values, "")
	raw := New()
	for _, k := range sortedKeys(flat) {
		key, ok := stripPrefix(k, b.prefix)
		if !ok {
			continue
		}
		for _, v := range b.valuesOf(flat[k]) {
			b.log.V(logLevelTrace).Info("adding value", "key", key, "value", v)
			raw.Add(key, v)
		}
	}
	return b.finish(raw)
}

// valuesOf formats a leaf, splitting string scalars on the delimiter
func (b *Builder) valuesOf(leaf any) []string {
	if s, ok := leaf.(string); ok {
		return splitValue(s, b.delimiter)
	}
	return formatValues(leaf)
}

func (b *Builder) parseOptions() ParseOptions {
	return ParseOptions{
		Delimiter:    b.delimiter,
		QuotedValues: b.quotedValues,
		Logger:       b.log,
	}
}

// consume marks the builder used, failing if it already was
func (b *Builder) consume() error {
	if b.consumed {
		return ErrBuilderConsumed
	}
	b.consumed = true
	return nil
}

func (b *Builder) finish(raw *MultiValueMap) (*MultiValueMap, error) {
	if err := b.consume(); err != nil {
		return nil, err
	}
	return b.merge(raw), nil
}

func (b *Builder) merge(raw *MultiValueMap) *MultiValueMap {
	return merge(mergeConfig{
		prefix:         b.prefix,
		defaults:       b.defaults,
		systemDefaults: b.systemDefaults,
		systemOverride: b.systemOverride,
		properties:     b.properties,
		log:            b.log,
	}, raw)
}
