// Package mergescan intersects sequences by sorting and walking them in step.
package mergescan

import (
	"cmp"
	"slices"
)

// Intersect returns the values present in both a and b, in increasing
// order and without repeats. The inputs are not modified.
func Intersect[T cmp.Ordered](a, b []T) []T {
	return IntersectSorted(sortedCopy(a), sortedCopy(b))
}

// IntersectSorted is Intersect for inputs already in non-decreasing order.
// A hit is recorded only when it exceeds the previous hit, which drops the
// repeats that equal runs on both sides would otherwise produce.
func IntersectSorted[T cmp.Ordered](a, b []T) []T {
	var out []T
	i, j := 0, 0
	for i < len(a) && j < len(b) {
		switch x, y := a[i], b[j]; {
		case x == y:
			if len(out) == 0 || x > out[len(out)-1] {
				out = append(out, x)
			}
			i++
			j++
		case x < y:
			i++
		default:
			j++
		}
	}
	return out
}

func sortedCopy[T cmp.Ordered](s []T) []T {
	c := slices.Clone(s)
	slices.Sort(c)
	return c
}
