package gridblur

import (
	"errors"
	"fmt"
)

// ErrResourceNotFound is returned when a Source has no resource under the requested name.
var ErrResourceNotFound = errors.New("resource not found")

// DecodeError reports a source that could not be turned into pixels:
// malformed JSON, an undecodable raster, or an empty image.
type DecodeError struct {
	Name string
	Err  error
}

func (e *DecodeError) Error() string {
	if e.Name == "" {
		return fmt.Sprintf("decode: %v", e.Err)
	}
	return fmt.Sprintf("decode %s: %v", e.Name, e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }

func decodeErrorf(name, format string, v ...any) error {
	return &DecodeError{Name: name, Err: fmt.Errorf(format, v...)}
}
