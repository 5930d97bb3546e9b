package vector

import "errors"

var (
	// ErrVectorLengthMismatch indicates two vectors have different dimensions.
	ErrVectorLengthMismatch = errors.New("vector length mismatch")

	// ErrTooFewVectors is returned when the input holds fewer than two vectors.
	ErrTooFewVectors = errors.New("need at least two vectors")

	// ErrDimensionMismatch is returned when the input vectors are not all the same size.
	ErrDimensionMismatch = errors.New("all vectors must be the same size")
)
