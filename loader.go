// FILE: lixenwraith/mvconfig/loader.go
package mvconfig

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// Format identifies the syntax of a configuration source
type Format string

const (
	// FormatProperties is line-oriented key=value text
	FormatProperties Format = "properties"
	// FormatTOML is a TOML document
	FormatTOML Format = "toml"
	// FormatYAML is a YAML document
	FormatYAML Format = "yaml"
	// FormatJSON is a JSON object
	FormatJSON Format = "json"
)

// BuildFile reads the file at path and merges it. Files ending in .toml, .yaml, .yml
// or .json are decoded as documents and handled like BuildValues; anything else is
// parsed as key=value text like BuildReader.
// Failure to open or read the file returns a *SourceError; failure to close it is only logged.
func (b *Builder) BuildFile(path string) (*MultiValueMap, error) {
	if b.consumed {
		return nil, ErrBuilderConsumed
	}
	if path == "" {
		return nil, &SourceError{Op: "open", Err: errors.New("no file path specified")}
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, &SourceError{Op: "open", Path: path, Err: err}
	}
	defer func() {
		if cerr := file.Close(); cerr != nil {
			b.log.Error(cerr, "failed to close config file", "path", path)
		}
	}()

	format := detectFileFormat(path)
	if format == FormatProperties {
		if err := b.consume(); err != nil {
			return nil, err
		}
		raw, err := parse(file, path, b.parseOptions())
		if err != nil {
			return nil, err
		}
		return b.merge(raw), nil
	}

	values, err := decodeDocument(file, path, format)
	if err != nil {
		return nil, err
	}
	return b.BuildValues(values)
}

// BuildDocument decodes a TOML, YAML or JSON document from r and merges it like BuildValues
func (b *Builder) BuildDocument(r io.Reader, format Format) (*MultiValueMap, error) {
	if b.consumed {
		return nil, ErrBuilderConsumed
	}
	if format == FormatProperties {
		return b.BuildReader(r)
	}
	values, err := decodeDocument(r, "", format)
	if err != nil {
		return nil, err
	}
	return b.BuildValues(values)
}

// BuildTOML decodes a TOML document from r and merges it
func (b *Builder) BuildTOML(r io.Reader) (*MultiValueMap, error) {
	return b.BuildDocument(r, FormatTOML)
}

// BuildYAML decodes a YAML document from r and merges it
func (b *Builder) BuildYAML(r io.Reader) (*MultiValueMap, error) {
	return b.BuildDocument(r, FormatYAML)
}

// BuildJSON decodes a JSON object from r and merges it
func (b *Builder) BuildJSON(r io.Reader) (*MultiValueMap, error) {
	return b.BuildDocument(r, FormatJSON)
}

// decodeDocument decodes r into a nested map. An empty YAML or JSON document yields an empty map.
func decodeDocument(r io.Reader, path string, format Format) (map[string]any, error) {
	doc := make(map[string]any)

	var err error
	switch format {
	case FormatTOML:
		_, err = toml.NewDecoder(r).Decode(&doc)
	case FormatYAML:
		err = yaml.NewDecoder(r).Decode(&doc)
	case FormatJSON:
		decoder := json.NewDecoder(r)
		decoder.UseNumber() // Preserve number precision
		err = decoder.Decode(&doc)
	default:
		return nil, &SourceError{Op: "decode", Path: path, Err: fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)}
	}

	if errors.Is(err, io.EOF) {
		return doc, nil
	}
	if err != nil {
		return nil, &SourceError{Op: "decode", Path: path, Err: fmt.Errorf("failed to parse %s: %w", format, err)}
	}
	return doc, nil
}

// detectFileFormat determines format from file extension
func detectFileFormat(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml", ".tml":
		return FormatTOML
	case ".yaml", ".yml":
		return FormatYAML
	case ".json":
		return FormatJSON
	default:
		return FormatProperties
	}
}
