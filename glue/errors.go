package glue

import "fmt"

// ValidationError reports invalid input detected before any request is
// sent. Index is the position of the offending batch entry, or -1 when
// the input as a whole is invalid.
type ValidationError struct {
	Index int
	Err   error
}

func (e *ValidationError) Error() string {
	if e.Index < 0 {
		return fmt.Sprintf("invalid input: %v", e.Err)
	}
	return fmt.Sprintf("invalid entry at index %d: %v", e.Index, e.Err)
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

// FileReadError reports that an attachment source file could not be
// read. Raised before any request is sent.
type FileReadError struct {
	Path string
	Err  error
}

func (e *FileReadError) Error() string {
	return fmt.Sprintf("read attachment %s: %v", e.Path, e.Err)
}

func (e *FileReadError) Unwrap() error {
	return e.Err
}

// APIError is a non-2xx response. The body is returned as received, the
// client does not reinterpret it.
type APIError struct {
	StatusCode int
	Body       []byte
}

func (e *APIError) Error() string {
	return fmt.Sprintf("invalid status code, got: %d", e.StatusCode)
}
