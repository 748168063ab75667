package segments

import "math"

// At returns the intensity of position x.
func (s *Segments[T]) At(x int64) T {
	// index of the first breakpoint starting after x
	i := s.search(x)
	if i < len(s.points) && s.points[i].Start == x {
		i++
	}
	if i == 0 {
		var zero T
		return zero
	}
	return s.points[i-1].Value
}

// Runs returns the stretches of positions with a non-zero intensity, in order.
// A non-zero last breakpoint, which only NewFromBreakpoints can produce, yields a
// run ending at math.MaxInt64.
func (s *Segments[T]) Runs() []Run[T] {
	var runs []Run[T]
	for i, p := range s.points {
		if p.Value == 0 {
			continue
		}
		end := int64(math.MaxInt64)
		if i < len(s.points)-1 {
			end = s.points[i+1].Start
		}
		runs = append(runs, Run[T]{From: p.Start, To: end, Value: p.Value})
	}
	return runs
}

// Contains reports whether position x belongs to the run.
func (r Run[T]) Contains(x int64) bool {
	return span{r.From, r.To}.contains(x)
}
