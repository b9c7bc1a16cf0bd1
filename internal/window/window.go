// Package window finds the first run of distinct values in a sequence using
// a sliding frequency count.
package window

// Counter tracks value frequencies inside a window together with the
// number of values currently seen more than once.
type Counter[T comparable] struct {
	counts     map[T]int
	duplicates int
}

// NewCounter returns an empty Counter.
func NewCounter[T comparable]() *Counter[T] {
	return &Counter[T]{counts: make(map[T]int)}
}

// Add counts one occurrence of v.
func (c *Counter[T]) Add(v T) {
	c.counts[v]++
	if c.counts[v] == 2 {
		c.duplicates++
	}
}

// Remove drops one occurrence of v. Removing an absent value is a no-op.
func (c *Counter[T]) Remove(v T) {
	n, ok := c.counts[v]
	if !ok {
		return
	}
	if n == 2 {
		c.duplicates--
	}
	if n == 1 {
		delete(c.counts, v)
		return
	}
	c.counts[v] = n - 1
}

// Count returns the occurrences of v.
func (c *Counter[T]) Count(v T) int { return c.counts[v] }

// Distinct returns the number of different values held.
func (c *Counter[T]) Distinct() int { return len(c.counts) }

// Duplicates returns the number of values held more than once.
func (c *Counter[T]) Duplicates() int { return c.duplicates }

// FirstUnique returns the 1-based position of the last element of the first
// window of width w whose elements are all distinct. ok is false when no
// such window exists or w <= 0.
func FirstUnique[T comparable](seq []T, w int) (pos int, ok bool) {
	if w <= 0 || len(seq) < w {
		return 0, false
	}
	c := NewCounter[T]()
	for i, v := range seq {
		c.Add(v)
		if i >= w {
			c.Remove(seq[i-w])
		}
		if i >= w-1 && c.Duplicates() == 0 {
			return i + 1, true
		}
	}
	return 0, false
}

// NaiveFirstUnique recomputes every window from scratch.
func NaiveFirstUnique[T comparable](seq []T, w int) (pos int, ok bool) {
	if w <= 0 {
		return 0, false
	}
	for end := w; end <= len(seq); end++ {
		seen := make(map[T]bool, w)
		unique := true
		for _, v := range seq[end-w : end] {
			if seen[v] {
				unique = false
				break
			}
			seen[v] = true
		}
		if unique {
			return end, true
		}
	}
	return 0, false
}
