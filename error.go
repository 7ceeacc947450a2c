package bookstore

import "errors"

// Errors shared by every bookstore package.
// Wrap them with context, e.g., fmt.Errorf("%w: nil logger.Logger", ErrMissingData).
var (
	ErrBadConfig   = errors.New("bad config")
	ErrMissingData = errors.New("missing data")
	ErrNotExist    = errors.New("not exist")
	ErrNotValid    = errors.New("invalid")
)
