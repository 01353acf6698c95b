// FILE: lixenwraith/mvconfig/parser.go
package mvconfig

import (
	"bufio"
	"io"
	"strings"

	"github.com/go-logr/logr"
)

// ParseOptions configures how line-oriented property text is parsed
type ParseOptions struct {
	// Delimiter splits each value into multiple values (empty = no splitting)
	Delimiter string

	// QuotedValues requires values to be wrapped in double quotes; the text
	// between the first two quotes becomes the value
	QuotedValues bool

	// Logger receives malformed line warnings and trace output
	Logger logr.Logger
}

// DefaultParseOptions returns options with no delimiter, unquoted values and a discarding logger
func DefaultParseOptions() ParseOptions {
	return ParseOptions{
		Logger: logr.Discard(),
	}
}

// Malformed line reasons reported in warnings
const (
	reasonMissingEquals = "missing '='"
	reasonMissingValue  = "missing value after '='"
	reasonMissingQuote  = "missing '\"' around value"
)

// Parse reads key=value lines from r into a new MultiValueMap.
// Blank lines and lines starting with '#' or '!' are skipped. Malformed lines are
// logged and skipped. A read failure aborts parsing with a *SourceError.
func Parse(r io.Reader, opts ParseOptions) (*MultiValueMap, error) {
	return parse(r, "", opts)
}

// parse is Parse with the source path recorded in read errors
func parse(r io.Reader, path string, opts ParseOptions) (*MultiValueMap, error) {
	log := opts.Logger
	if log.GetSink() == nil {
		log = logr.Discard()
	}

	result := New()
	reader := bufio.NewReaderSize(r, initialLineBuffer)

	lineNo := 0
	for {
		raw, err := reader.ReadString('\n')
		if raw != "" {
			lineNo++
			line := strings.TrimSuffix(strings.TrimSuffix(raw, "\n"), "\r")
			parseInto(result, line, lineNo, opts, log)
		}
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, &SourceError{Op: "read", Path: path, Err: err}
		}
	}

	return result, nil
}

// parseInto adds the values of one line to result, logging malformed lines
func parseInto(result *MultiValueMap, line string, lineNo int, opts ParseOptions, log logr.Logger) {
	key, values, reason, ok := parseLine(line, opts)
	if !ok {
		if reason != "" {
			log.Info("ignored malformed line", "line", lineNo, "reason", reason, "text", line)
		}
		return
	}
	if key == "" {
		log.Info("line has empty key", "line", lineNo, "text", line)
	}

	for _, v := range values {
		log.V(logLevelTrace).Info("adding value", "key", key, "value", v)
		result.Add(key, v)
	}
}

// parseLine extracts the key and values of a single line.
// ok is false for skipped lines; reason is non-empty only when the line is malformed.
func parseLine(line string, opts ParseOptions) (key string, values []string, reason string, ok bool) {
	// Blank lines
	if strings.TrimSpace(line) == "" {
		return "", nil, "", false
	}

	// Comments
	if line[0] == '#' || line[0] == '!' {
		return "", nil, "", false
	}

	eq := strings.IndexByte(line, '=')
	if eq == -1 {
		return "", nil, reasonMissingEquals, false
	}
	if eq == len(line)-1 {
		return "", nil, reasonMissingValue, false
	}

	key = strings.TrimSpace(line[:eq])
	value := strings.TrimSpace(line[eq+1:])

	if opts.QuotedValues {
		first := strings.IndexByte(value, '"')
		if first == -1 || first == len(value)-1 {
			return "", nil, reasonMissingQuote, false
		}
		next := strings.IndexByte(value[first+1:], '"')
		if next == -1 {
			return "", nil, reasonMissingQuote, false
		}
		value = value[first+1 : first+1+next]
	}

	return key, splitValue(value, opts.Delimiter), "", true
}
