package grid

import "fmt"

// Value is the set of cell types a numeric Grid can hold.
type Value interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64
}

// Limits returns the smallest and largest value representable by V.
func Limits[V Value]() (lo, hi V) {
	hi = 1
	for next := hi<<1 | 1; next > hi; next = hi<<1 | 1 {
		hi = next
	}
	var zero V
	if zero-1 < zero {
		lo = -hi - 1
	}
	return lo, hi
}

// Convert converts n to T, failing with ErrNumericConversion when it does not fit.
func Convert[T Value](n int64) (T, error) {
	v := T(n)
	if int64(v) != n || (v < 0) != (n < 0) {
		return v, fmt.Errorf("%w: %d as %T", ErrNumericConversion, n, v)
	}
	return v, nil
}
