package resp

import (
	"errors"

	"github.com/xy-planning-network/bookstore"
)

var (
	ErrBadConfig   = bookstore.ErrBadConfig
	ErrDone        = errors.New("request ctx done")
	ErrMissingData = bookstore.ErrMissingData
)
