// FILE: lixenwraith/mvconfig/doc.go

// Package mvconfig provides multi-valued configuration maps for Go applications:
// ordered maps from a key to a sequence of values, built from key=value text,
// flat or nested key/value maps, TOML/YAML/JSON documents and process-wide
// properties, with layered default resolution.
//
// Features:
//   - Line-oriented key=value parsing with '#' and '!' comments
//   - Optional quoted values and delimiter-based multi-value splitting
//   - Prefix filtering with prefix stripping
//   - Layered defaults and overrides with a fixed, documented precedence
//   - Process-wide properties from the environment, CLI-style arguments or a fixed map
//   - Defaults derived from tagged structs
//   - Typed first-value accessors for strings, integers and booleans
//   - Structured logging through logr
//
// Quick Start:
//
//	defaults := mvconfig.New()
//	defaults.Put("app.hosts", "localhost")
//
//	props, err := mvconfig.NewBuilder().
//	    WithPrefix("app").
//	    WithDelimiter(",").
//	    WithDefaults(defaults).
//	    WithSystemOverrides().
//	    BuildFile("app.properties")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	hosts, _ := props.Values("hosts")
//	port, err := props.FirstIntOr("port", 8080)
//
// Prefix filtering applies to the defaults map, process-wide properties and
// map input (BuildStrings, BuildValues, and .toml/.yaml/.json files, which are
// decoded into nested maps). Key=value text from a reader or a .properties file
// is taken as written: its keys are neither filtered nor stripped, so in the
// example above app.properties holds "hosts=a,b", not "app.hosts=a,b".
//
// Precedence (lowest to highest):
//  1. Defaults map (filtered and stripped by prefix)
//  2. Process-wide properties, when used as defaults (prefix required)
//  3. The built input (file, reader, map or raw map), replacing defaults key by key
//  4. Process-wide properties, when used as overrides (prefix required)
//
// Every layer replaces the whole value sequence of a key; values from different
// layers are never appended together. Process-wide property values are always
// split on a comma, whatever delimiter is configured.
//
// Thread Safety:
// Building is synchronous and a Builder is single-use. A built MultiValueMap has
// no internal locking; concurrent mutation must be synchronized by the caller.
package mvconfig
