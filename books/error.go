package books

import (
	"errors"
	"fmt"
)

var (
	ErrDecode        = errors.New("cannot decode book list")
	ErrRequestFailed = errors.New("book list request failed")
)

// A StatusError reports a response from the library API outside the 2xx range.
//
// A StatusError is an ErrRequestFailed.
type StatusError struct {
	Code   int
	Status string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%s: %s", ErrRequestFailed, e.Status)
}

// Unwrap lets errors.Is match ErrRequestFailed.
func (e *StatusError) Unwrap() error { return ErrRequestFailed }
