package cinoas

import "errors"

// Errors used throughout
var (
	ErrDimensionMismatch   = errors.New("block dimensions do not agree")
	ErrZeroDenominator     = errors.New("selection denominator is zero")
	ErrOutOfRange          = errors.New("requested more orbitals than the manifold holds")
	ErrConflictingCriteria = errors.New("both threshold and fixed count supplied for one manifold")
	ErrBadNormalization    = errors.New("cumulative fraction exceeds 1, 1-RDM not normalized")
)
