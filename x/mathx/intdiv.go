package mathx

import "golang.org/x/exp/constraints"

// RoundDiv returns a/b rounded half up. b == 0 yields 0.
func RoundDiv[T constraints.Unsigned](a, b T) T {
	if b == 0 {
		return 0
	}
	return (a + b/2) / b
}

// DivOr returns a/b, or def when b is zero.
func DivOr[T constraints.Unsigned](a, b, def T) T {
	if b == 0 {
		return def
	}
	return a / b
}
