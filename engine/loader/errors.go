package loader

import "fmt"

// ParseError reports a malformed record. It aborts the load of the file it occurred in.
type ParseError struct {
	// File is the scene or material library being parsed.
	File string

	// Line is the 1-based line number of the record.
	Line int

	// Field names the offending record or token, e.g. "vt" or "f[2]".
	Field string

	Err error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("[%s: %d] %s: %v", e.File, e.Line, e.Field, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// ResourceLoadFailure reports a scene, material library or texture that could not be fetched.
type ResourceLoadFailure struct {
	// Resource is the location that failed.
	Resource string

	Err error
}

func (e *ResourceLoadFailure) Error() string {
	return fmt.Sprintf("failed to load %s: %v", e.Resource, e.Err)
}

func (e *ResourceLoadFailure) Unwrap() error {
	return e.Err
}
