package koch

import "golang.org/x/exp/constraints"

// Returns the smallest of two ordered values.
func minOf[T constraints.Ordered](x, y T) T {
	if x < y {
		return x
	}
	return y
}

// Returns the biggest of two ordered values.
func maxOf[T constraints.Ordered](x, y T) T {
	if x > y {
		return x
	}
	return y
}
