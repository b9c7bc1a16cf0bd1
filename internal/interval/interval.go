// Package interval implements closed integer ranges.
package interval

import (
	"fmt"
	"strconv"
	"strings"
)

// Range is the closed interval [Lo, Hi].
type Range struct {
	Lo, Hi int
}

// Parse reads "lo-hi". lo must not exceed hi.
func Parse(s string) (Range, error) {
	los, his, ok := strings.Cut(s, "-")
	if !ok {
		return Range{}, fmt.Errorf("range %q: missing '-'", s)
	}
	lo, err := strconv.Atoi(los)
	if err != nil {
		return Range{}, fmt.Errorf("range %q: bad lower bound: %w", s, err)
	}
	hi, err := strconv.Atoi(his)
	if err != nil {
		return Range{}, fmt.Errorf("range %q: bad upper bound: %w", s, err)
	}
	if lo > hi {
		return Range{}, fmt.Errorf("range %q: lower bound exceeds upper bound", s)
	}
	return Range{Lo: lo, Hi: hi}, nil
}

// Contains reports whether o lies entirely within r.
func (r Range) Contains(o Range) bool {
	return r.Lo <= o.Lo && o.Hi <= r.Hi
}

// Overlaps reports whether r and o share at least one value, that is,
// neither lies entirely before the other.
func (r Range) Overlaps(o Range) bool {
	return r.Lo <= o.Hi && o.Lo <= r.Hi
}

func (r Range) String() string {
	return fmt.Sprintf("%d-%d", r.Lo, r.Hi)
}
