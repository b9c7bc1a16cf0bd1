package puzzle

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// Registry maps day numbers to solvers.
type Registry struct {
	byDay map[int]Solver
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{byDay: make(map[int]Solver)}
}

// Register adds s. Registering the same day twice panics.
func (r *Registry) Register(s Solver) {
	day := s.Info().Day
	if day <= 0 {
		panic(fmt.Sprintf("puzzle: invalid day %d", day))
	}
	if _, ok := r.byDay[day]; ok {
		panic(fmt.Sprintf("puzzle: day %d registered twice", day))
	}
	r.byDay[day] = s
}

// Lookup resolves a day key such as "7", "07", "day7" or "day07".
func (r *Registry) Lookup(key string) (Solver, error) {
	day, err := ParseDay(key)
	if err != nil {
		return nil, err
	}
	s, ok := r.byDay[day]
	if !ok {
		return nil, fmt.Errorf("no puzzle registered for day %d", day)
	}
	return s, nil
}

// Day returns the solver for day, if any.
func (r *Registry) Day(day int) (Solver, bool) {
	s, ok := r.byDay[day]
	return s, ok
}

// All returns the registered solvers ordered by day.
func (r *Registry) All() []Solver {
	out := make([]Solver, 0, len(r.byDay))
	for _, s := range r.byDay {
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Info().Day < out[j].Info().Day })
	return out
}

// ParseDay parses a day key.
func ParseDay(key string) (int, error) {
	s := strings.TrimPrefix(strings.ToLower(strings.TrimSpace(key)), "day")
	n, err := strconv.Atoi(s)
	if err != nil || n <= 0 {
		return 0, fmt.Errorf("invalid day %q", key)
	}
	return n, nil
}
