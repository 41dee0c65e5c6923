package sil

import "errors"

var (
	ErrCompiled           = errors.New("sil: system already compiled")
	ErrNotCompiled        = errors.New("sil: system not compiled")
	ErrNoFinalVoting      = errors.New("sil: final voting not set")
	ErrTooManyVariables   = errors.New("sil: too many elements and element types")
	ErrUnknownElementType = errors.New("sil: unknown element type")
	ErrUnknownElement     = errors.New("sil: unknown element")
	ErrNegativeRedundancy = errors.New("sil: negative redundancy")
	ErrInvalidElementType = errors.New("sil: invalid element type")
	ErrInvalidIntegration = errors.New("sil: invalid integration range")
)
