package routes

import "errors"

var (
	ErrDuplicateName = errors.New("duplicate route name")
	ErrDuplicatePath = errors.New("duplicate route path")
	ErrInvalidParams = errors.New("invalid route params")
	ErrInvalidPath   = errors.New("invalid route path")
	ErrMissingName   = errors.New("missing route name")
	ErrRouteNotFound = errors.New("route not found")
)
