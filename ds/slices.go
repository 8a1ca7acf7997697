package ds

import (
	"github.com/samber/lo"
)

// Repeat returns n copies of t.
func Repeat[T any](n int, t T) []T {
	if n <= 0 {
		return []T{}
	}
	return lo.Times(n, func(_ int) T { return t })
}

// ShallowCopy returns a copy of ts with its own backing array.
func ShallowCopy[T any](ts []T) []T {
	dst := make([]T, len(ts))
	copy(dst, ts)
	return dst
}
