package tsp

import "fmt"

// Route is a closed tour over city indices: Route[0] and Route[len-1] are the
// start city (index 0) and the interior is a permutation of 1..n-1.
type Route []int

// Copy returns an independent copy of the route.
func (r Route) Copy() Route {
	c := make(Route, len(r))
	copy(c, r)
	return c
}

// Validate checks that r is a valid tour over n cities.
func (r Route) Validate(n int) error {
	if len(r) != n+1 {
		return fmt.Errorf("%w: route length must be %d (got %d)", ErrInvalidInput, n+1, len(r))
	}
	if r[0] != 0 || r[n] != 0 {
		return fmt.Errorf("%w: route must start and end at the start city (got %d ... %d)", ErrInvalidInput, r[0], r[n])
	}
	seen := make([]bool, n)
	for i := 1; i < n; i++ {
		c := r[i]
		if c <= 0 || c >= n {
			return fmt.Errorf("%w: route[%d]=%d out of range [1,%d)", ErrInvalidInput, i, c, n)
		}
		if seen[c] {
			return fmt.Errorf("%w: duplicate city %d in route", ErrInvalidInput, c)
		}
		seen[c] = true
	}
	return nil
}

// newRoute wraps an interior permutation as [0, perm..., 0].
func newRoute(perm []int) Route {
	r := make(Route, len(perm)+2)
	copy(r[1:], perm)
	return r
}
