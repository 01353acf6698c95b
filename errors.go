// FILE: lixenwraith/mvconfig/errors.go
package mvconfig

import (
	"errors"
	"fmt"
)

var (
	// ErrSource indicates the underlying text source could not be opened or read
	ErrSource = errors.New("configuration source error")

	// ErrValueFormat indicates a typed accessor found no value or an unparsable one
	ErrValueFormat = errors.New("value format error")

	// ErrBuilderConsumed is returned by a terminal build call on a builder that already built
	ErrBuilderConsumed = errors.New("builder already consumed")

	// ErrUnsupportedFormat indicates a structured document format that cannot be decoded
	ErrUnsupportedFormat = errors.New("unsupported document format")
)

// SourceError wraps a failure to open, read or decode a configuration source.
type SourceError struct {
	Op   string // "open", "read" or "decode"
	Path string // File path, empty for readers
	Err  error
}

func (e *SourceError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("%s: %s: %v", ErrSource, e.Op, e.Err)
	}
	return fmt.Sprintf("%s: %s '%s': %v", ErrSource, e.Op, e.Path, e.Err)
}

func (e *SourceError) Unwrap() error {
	return e.Err
}

// Is makes errors.Is(err, ErrSource) hold for every SourceError.
func (e *SourceError) Is(target error) bool {
	return target == ErrSource
}

// valueFormatError builds an ErrValueFormat for key with an optional cause
func valueFormatError(key, msg string, cause error) error {
	if cause != nil {
		return fmt.Errorf("%w: key %q %s: %w", ErrValueFormat, key, msg, cause)
	}
	return fmt.Errorf("%w: key %q %s", ErrValueFormat, key, msg)
}
