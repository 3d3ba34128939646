package store

import (
	"errors"
	"fmt"
)

// ErrUnsupportedFormat is returned when a persistence format name is unknown.
var ErrUnsupportedFormat = errors.New("unsupported data format")

// ParseError reports stored content that could not be decoded into tasks.
// It is never recovered from internally: a corrupt file fails the load.
type ParseError struct {
	Path   string
	Format Format
	Err    error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse %s tasks from %s: %v", e.Format, e.Path, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
