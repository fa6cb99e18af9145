package xmlcodec

import (
	"errors"

	"github.com/signadot/xnode-format/go-xnode/dom"
)

var (
	ErrParse    = dom.ErrParse
	ErrValidate = errors.New("invalid xml source")
	ErrOutput   = errors.New("xml output error")
)
