package segments

import (
	"slices"
	"sort"
)

// Segments represents a step function over the integers as a canonical list of
// breakpoints. The zero value is an empty function, ready to use.
type Segments[T Number] struct {
	points []Breakpoint[T]
}

// NewFromValues creates a new Segments holding values as the intensities of the
// positions starting at start. Positions outside of [start, start+len(values))
// have intensity 0.
func NewFromValues[T Number](start int64, values []T) *Segments[T] {
	s := &Segments[T]{}
	n := len(values)
	if n == 0 {
		return s
	}
	s.points = make([]Breakpoint[T], 0, n+1)
	for i, v := range values {
		if i == 0 || v != values[i-1] {
			s.points = append(s.points, Breakpoint[T]{Start: start + int64(i), Value: v})
		}
	}
	var zero T
	s.points = append(s.points, Breakpoint[T]{Start: start + int64(n), Value: zero})
	s.compress()
	return s
}

// NewFromBreakpoints creates a new Segments from an arbitrary list of breakpoints.
// The list does not need to be sorted or canonical. When several breakpoints share
// the same start the last one in points wins. If the last breakpoint has a
// non-zero value, that intensity extends to every position after it.
func NewFromBreakpoints[T Number](points []Breakpoint[T]) *Segments[T] {
	s := &Segments[T]{points: slices.Clone(points)}
	sort.SliceStable(s.points, func(i, j int) bool {
		return s.points[i].Start < s.points[j].Start
	})
	out := s.points[:0]
	for _, p := range s.points {
		if n := len(out); n > 0 && out[n-1].Start == p.Start {
			out[n-1] = p
			continue
		}
		out = append(out, p)
	}
	s.points = out
	s.compress()
	return s
}

// Add adds amount to the intensity of every position in [from, to). The call
// does nothing if the interval is empty or amount is 0.
func (s *Segments[T]) Add(from, to int64, amount T) {
	if (span{from, to}).empty() || amount == 0 {
		return
	}
	s.apply(from, to, func(v T) T { return v + amount })
}

// Set sets the intensity of every position in [from, to) to amount. The call
// does nothing if the interval is empty.
func (s *Segments[T]) Set(from, to int64, amount T) {
	if (span{from, to}).empty() {
		return
	}
	s.apply(from, to, func(T) T { return amount })
}

// Breakpoints returns a copy of the breakpoints of s.
func (s *Segments[T]) Breakpoints() []Breakpoint[T] {
	points := make([]Breakpoint[T], len(s.points))
	copy(points, s.points)
	return points
}

// Len returns the number of breakpoints.
func (s *Segments[T]) Len() int {
	return len(s.points)
}

// Reset sets the intensity of every position back to 0.
func (s *Segments[T]) Reset() {
	s.points = nil
}

// Equal reports whether s and x describe the same function.
func (s *Segments[T]) Equal(x *Segments[T]) bool {
	return slices.Equal(s.points, x.points)
}

// apply replaces the intensity v of every position in [from, to) with f(v).
// Cutting at both ends first means f is only ever applied to whole breakpoints,
// and the scan stops exactly at to.
func (s *Segments[T]) apply(from, to int64, f func(T) T) {
	s.cut(from)
	s.cut(to)
	for i := s.search(from); i < len(s.points) && s.points[i].Start < to; i++ {
		s.points[i].Value = f(s.points[i].Value)
	}
	s.compress()
}

// search returns the index of the first breakpoint starting at or after x.
func (s *Segments[T]) search(x int64) int {
	return sort.Search(len(s.points), func(i int) bool {
		return s.points[i].Start >= x
	})
}

// cut makes sure a breakpoint starts at x, inserting one carrying the
// intensity in effect at x if needed.
func (s *Segments[T]) cut(x int64) {
	i := s.search(x)
	if i < len(s.points) && s.points[i].Start == x {
		return
	}
	var v T
	if i > 0 {
		v = s.points[i-1].Value
	}
	s.points = slices.Insert(s.points, i, Breakpoint[T]{Start: x, Value: v})
}

// compress restores the canonical form: runs of equal values are merged into
// their first breakpoint, then zero breakpoints that carry no information are
// dropped. Running it on a canonical list leaves the list unchanged.
func (s *Segments[T]) compress() {
	if len(s.points) == 0 {
		return
	}
	merged := s.points[:1]
	for _, p := range s.points[1:] {
		if p.Value != merged[len(merged)-1].Value {
			merged = append(merged, p)
		}
	}
	out := merged[:0]
	for i, p := range merged {
		if p.Value == 0 {
			if i == 0 {
				continue
			}
			if i < len(merged)-1 && merged[i+1].Value == 0 {
				continue
			}
		}
		out = append(out, p)
	}
	s.points = out
}

// clone returns a copy of s.
func (s *Segments[T]) clone() *Segments[T] {
	return &Segments[T]{points: slices.Clone(s.points)}
}
