package ir

import "errors"

var (
	ErrScalar = errors.New("not a scalar value")
)
