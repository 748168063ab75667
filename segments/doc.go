/*
Package segments implements a run-length representation of an integer indexed
step function. It defines the type Segments, with methods for applying range
updates and reading the resulting breakpoints, and the type Store, with methods
for interacting with a collection of named segment lists.

A Segments value holds the intensity of every integer position as an ordered list
of breakpoints. A breakpoint (start, value) means that positions from start up to
the next breakpoint have intensity value. Positions before the first breakpoint
have intensity 0, and a trailing breakpoint with value 0 marks the point where the
function returns to 0 for good:

	s := segments.Segments[int]{}
	s.Add(10, 30, 1) // [[10,1],[30,0]]
	s.Add(20, 40, 1) // [[10,1],[20,2],[30,1],[40,0]]

Ranges are half-open. The list is kept in canonical form after every update:
starts are strictly increasing, adjacent values differ and the first value is never
0. A function that is 0 everywhere is represented by an empty list.

Values are compared with ==. For floating point intensities this means that updates
which cancel out only approximately leave breakpoints behind, and NaN never merges
with its neighbours.

A Segments value is not safe for concurrent use. A Store is a wrapper around a map
of segment lists that provides convenience methods safe to use from multiple
goroutines.
*/
package segments
