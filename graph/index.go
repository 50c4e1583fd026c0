package graph

import "fmt"

// Index is the bijection between locations and dense state indices.
// byLocation maps Location → state; byState is the reverse lookup.
// An Index is immutable once built and safe for concurrent reads.
type Index struct {
	byLocation map[Location]int
	byState    []Location
}

// newIndex assigns states in declaration order. Callers validate uniqueness
// and non-emptiness first; newIndex keeps the first occurrence of a duplicate.
//
// Complexity: O(N).
func newIndex(locations []Location) *Index {
	x := &Index{
		byLocation: make(map[Location]int, len(locations)),
		byState:    make([]Location, 0, len(locations)),
	}
	var loc Location
	for _, loc = range locations {
		if _, seen := x.byLocation[loc]; seen {
			continue
		}
		x.byLocation[loc] = len(x.byState)
		x.byState = append(x.byState, loc)
	}

	return x
}

// Len returns the number of states N.
func (x *Index) Len() int { return len(x.byState) }

// Encode returns the state index of loc.
// Errors: ErrUnknownLocation (wrapped with the location).
//
// Complexity: O(1).
func (x *Index) Encode(loc Location) (int, error) {
	i, ok := x.byLocation[loc]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownLocation, loc)
	}

	return i, nil
}

// Decode returns the location of state i.
// Errors: ErrStateOutOfRange (wrapped with the index).
//
// Complexity: O(1).
func (x *Index) Decode(i int) (Location, error) {
	if i < 0 || i >= len(x.byState) {
		return "", fmt.Errorf("%w: %d not in [0,%d)", ErrStateOutOfRange, i, len(x.byState))
	}

	return x.byState[i], nil
}

// Has reports whether loc is part of the declared set.
func (x *Index) Has(loc Location) bool {
	_, ok := x.byLocation[loc]
	return ok
}

// Locations returns the locations ordered by state index (copy).
func (x *Index) Locations() []Location {
	out := make([]Location, len(x.byState))
	copy(out, x.byState)

	return out
}
