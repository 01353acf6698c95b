// FILE: lixenwraith/mvconfig/limits.go
package mvconfig

// Parsing and merging constants.
const (
	// KeySeparator terminates a normalized prefix
	KeySeparator = "."

	// SystemDelimiter splits process-wide property values, independent of the configured delimiter
	SystemDelimiter = ","

	// initialLineBuffer is the line reader's buffer size; longer lines are still read whole
	initialLineBuffer = 64 * 1024
)

// Log verbosity levels passed to logr's V.
const (
	logLevelDebug = 1 // Layer application summaries
	logLevelTrace = 2 // Every value added or replaced
)
