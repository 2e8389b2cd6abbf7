package RBF1D

import "errors"

var (
	ErrEmptyInput     = errors.New("no centers supplied")
	ErrShapeMismatch  = errors.New("number of centers and samples differ")
	ErrNotInitialized = errors.New("spline is not initialized")
	ErrNaNInput       = errors.New("NaN in centers or samples")
)
