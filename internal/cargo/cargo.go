// Package cargo models numbered crate stacks and the crane moves between
// them.
package cargo

import (
	"slices"
	"strings"

	"aoc2022/internal/puzzle"
)

// Mode selects how a multi-crate move orders the moved crates.
type Mode int

const (
	// OneByOne moves crates one at a time, reversing their order.
	OneByOne Mode = iota
	// Batch lifts the crates together, keeping their order.
	Batch
)

func (m Mode) String() string {
	if m == Batch {
		return "batch"
	}
	return "one-by-one"
}

// Cargo is a set of lanes, each a stack whose last element is the top.
// Lanes are addressed by 0-based index.
type Cargo struct {
	lanes [][]byte
}

// New returns a Cargo with n empty lanes.
func New(n int) *Cargo {
	return &Cargo{lanes: make([][]byte, n)}
}

// Lanes returns the number of lanes.
func (c *Cargo) Lanes() int { return len(c.lanes) }

// Lane returns a copy of lane i, bottom first.
func (c *Cargo) Lane(i int) []byte { return slices.Clone(c.lanes[i]) }

// Push puts crate on top of lane i.
func (c *Cargo) Push(i int, crate byte) {
	c.lanes[i] = append(c.lanes[i], crate)
}

// Clone returns an independent copy.
func (c *Cargo) Clone() *Cargo {
	out := &Cargo{lanes: make([][]byte, len(c.lanes))}
	for i, l := range c.lanes {
		out.lanes[i] = slices.Clone(l)
	}
	return out
}

// Move relocates n crates from lane from to lane to. The request is
// validated before any lane changes, so a rejected move leaves c untouched.
func (c *Cargo) Move(n, from, to int, mode Mode) error {
	if from < 0 || from >= len(c.lanes) {
		return puzzle.Logicf("move", "source lane %d out of range (have %d)", from+1, len(c.lanes))
	}
	if to < 0 || to >= len(c.lanes) {
		return puzzle.Logicf("move", "destination lane %d out of range (have %d)", to+1, len(c.lanes))
	}
	if n < 0 || n > len(c.lanes[from]) {
		return puzzle.Logicf("move", "cannot move %d crates from lane %d holding %d", n, from+1, len(c.lanes[from]))
	}
	// Popping and pushing on the same lane puts every crate back where it was.
	if from == to {
		return nil
	}
	src := c.lanes[from]
	cut := len(src) - n
	moved := slices.Clone(src[cut:])
	c.lanes[from] = src[:cut]
	if mode == OneByOne {
		slices.Reverse(moved)
	}
	c.lanes[to] = append(c.lanes[to], moved...)
	return nil
}

// Tops returns the top crate of every lane; empty lanes read as a space.
func (c *Cargo) Tops() string {
	var b strings.Builder
	for _, l := range c.lanes {
		if len(l) == 0 {
			b.WriteByte(' ')
			continue
		}
		b.WriteByte(l[len(l)-1])
	}
	return b.String()
}
