package jsoncodec

import "errors"

var (
	ErrCycle    = errors.New("circular reference in json value")
	ErrValidate = errors.New("invalid json source")
	ErrHiFi     = errors.New("malformed high-fidelity document")
)
