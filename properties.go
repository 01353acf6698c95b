// FILE: lixenwraith/mvconfig/properties.go
package mvconfig

import (
	"os"
	"strings"
)

// Property is a single process-wide key/value pair
type Property struct {
	Key   string
	Value string
}

// PropertySource supplies process-wide properties to the system layers of a build.
// Properties are returned in a stable order; a later duplicate key wins.
type PropertySource interface {
	Properties() []Property
}

// PropertySourceFunc adapts a function to a PropertySource
type PropertySourceFunc func() []Property

// Properties calls f
func (f PropertySourceFunc) Properties() []Property {
	return f()
}

// EnvTransformFunc converts an environment variable name to a property key.
// Returning an empty key skips the variable.
type EnvTransformFunc func(name string) string

// DefaultEnvTransform lowercases the name and turns underscores into dots,
// so APP_SERVER_PORT becomes app.server.port.
func DefaultEnvTransform(name string) string {
	return strings.ToLower(strings.ReplaceAll(name, "_", KeySeparator))
}

// Environ returns a PropertySource reading the process environment at build time.
// A nil transform uses DefaultEnvTransform.
func Environ(transform EnvTransformFunc) PropertySource {
	if transform == nil {
		transform = DefaultEnvTransform
	}
	return PropertySourceFunc(func() []Property {
		env := os.Environ()
		props := make([]Property, 0, len(env))
		for _, kv := range env {
			name, value, ok := strings.Cut(kv, "=")
			if !ok {
				continue
			}
			key := transform(name)
			if key == "" {
				continue
			}
			props = append(props, Property{Key: key, Value: value})
		}
		return props
	})
}

// StaticProperties returns a PropertySource over a fixed map, in sorted key order.
// The map is copied.
func StaticProperties(props map[string]string) PropertySource {
	fixed := make([]Property, 0, len(props))
	for _, k := range sortedKeys(props) {
		fixed = append(fixed, Property{Key: k, Value: props[k]})
	}
	return PropertySourceFunc(func() []Property {
		out := make([]Property, len(fixed))
		copy(out, fixed)
		return out
	})
}

// ArgProperties returns a PropertySource over command-line style arguments.
// Accepted forms are "--key=value", "--key value" and "--flag" (value "true").
// Non-flag arguments and a bare "--" are skipped.
func ArgProperties(args []string) PropertySource {
	parsed := parseArgs(args)
	return PropertySourceFunc(func() []Property {
		out := make([]Property, len(parsed))
		copy(out, parsed)
		return out
	})
}

// MultiSource concatenates sources in order, so later sources win on duplicate keys
func MultiSource(sources ...PropertySource) PropertySource {
	return PropertySourceFunc(func() []Property {
		var out []Property
		for _, s := range sources {
			if s == nil {
				continue
			}
			out = append(out, s.Properties()...)
		}
		return out
	})
}

// parseArgs processes command-line arguments into ordered properties
func parseArgs(args []string) []Property {
	var props []Property
	i := 0
	for i < len(args) {
		arg := args[i]
		if !strings.HasPrefix(arg, "--") {
			// Skip non-flag arguments
			i++
			continue
		}

		argContent := strings.TrimPrefix(arg, "--")
		if argContent == "" {
			// Skip "--" separator
			i++
			continue
		}

		var key, value string
		if k, v, ok := strings.Cut(argContent, "="); ok {
			key, value = k, v
			i++
		} else {
			key = argContent
			// Boolean flag if the next arg is another flag or there is none
			if i+1 >= len(args) || strings.HasPrefix(args[i+1], "--") {
				value = "true"
				i++
			} else {
				value = args[i+1]
				i += 2
			}
		}

		if key == "" {
			// Skip invalid flags like --=value
			continue
		}

		props = append(props, Property{Key: key, Value: value})
	}
	return props
}
