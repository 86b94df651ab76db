package grid

import "errors"

var (
	// ErrOutOfBounds indicates access through a point outside [0,width) x [0,height).
	ErrOutOfBounds = errors.New("grid: point out of bounds")
	// ErrNumericConversion indicates a coordinate or value does not fit its target type.
	ErrNumericConversion = errors.New("grid: value does not fit the target numeric type")
	// ErrEmptyGrid indicates an aggregate was requested on a grid without cells.
	ErrEmptyGrid = errors.New("grid: grid has no cells")
)
