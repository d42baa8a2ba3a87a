package clean

import (
	"errors"
	"fmt"
)

var (
	ErrInputNotFound = errors.New("input file not found")
	ErrInputRead     = errors.New("input file unreadable")
	ErrOutputWrite   = errors.New("output file not written")
)

// FileError is a whole-file failure. errors.Is matches both the Kind
// sentinel and the underlying cause.
type FileError struct {
	Op   string
	Path string
	Kind error
	Err  error
}

func (e *FileError) Error() string {
	return fmt.Sprintf("%s %q: %v: %v", e.Op, e.Path, e.Kind, e.Err)
}

func (e *FileError) Unwrap() []error { return []error{e.Kind, e.Err} }
