package segments

// Number is the set of types usable as intensity values.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// A Breakpoint marks the position at which the intensity changes to Value.
// The value holds until the start of the next breakpoint.
type Breakpoint[T Number] struct {
	Start int64
	Value T
}

// A Run is a finite stretch of positions [From, To) sharing the same
// non-zero intensity.
type Run[T Number] struct {
	From  int64
	To    int64
	Value T
}

// span represents a half-open interval.
type span struct {
	from int64
	to   int64
}

// empty reports whether the interval contains no position.
func (x span) empty() bool {
	return x.from >= x.to
}

// contains reports whether n lies within the interval.
func (x span) contains(n int64) bool {
	return x.from <= n && n < x.to
}
