package vibeeq

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrNoFileSelected is returned when the user cancels file selection.
	// Callers treat it as a silent no-op.
	ErrNoFileSelected = errors.New("no file selected")
	// ErrEmptyPreset is returned when no band list can be found in the input
	ErrEmptyPreset = errors.New("no valid EQ bands found")
	// ErrNotReady is returned when the daemon or its plugins are not installed
	ErrNotReady = errors.New("system is not ready: missing dependencies")
)

// JSONError reports an input file that is not parseable JSON
type JSONError struct {
	Err error
}

func (e *JSONError) Error() string {
	return fmt.Sprintf("malformed JSON: %v", e.Err)
}

func (e *JSONError) Unwrap() error { return e.Err }

// BandError reports a band whose fields cannot be read as numbers
type BandError struct {
	Index int
	Field string
	Value string
}

func (e *BandError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("malformed band %d: expected an object, got %s", e.Index, e.Value)
	}
	return fmt.Sprintf("malformed band %d: %s is not a number: %s", e.Index, e.Field, e.Value)
}

// ToolError reports a failed invocation of the external daemon
type ToolError struct {
	Args   []string
	Stderr string
	Err    error
}

func (e *ToolError) Error() string {
	msg := fmt.Sprintf("%s failed: %v", strings.Join(e.Args, " "), e.Err)
	if s := strings.TrimSpace(e.Stderr); s != "" {
		msg += "\n" + s
	}
	return msg
}

func (e *ToolError) Unwrap() error { return e.Err }
