package math

import "golang.org/x/exp/constraints"

// Clamp returns the value `f` clamped to the range [low, high].
// It works for any numeric type (integers and floats).
func Clamp[T constraints.Ordered](f, low, high T) T {
	if f < low {
		return low
	}
	if f > high {
		return high
	}
	return f
}

// Approach moves src toward target by at most diff, never overshooting.
func Approach[T constraints.Integer | constraints.Float](src, target, diff T) T {
	if target > src {
		if src+diff < target {
			return src + diff
		}
		return target
	}
	if target < src {
		if src-diff > target {
			return src - diff
		}
		return target
	}
	return target
}
