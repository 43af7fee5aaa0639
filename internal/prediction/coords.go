package prediction

import (
	"fmt"
	"strconv"
	"strings"
)

// Coords is the position of a prediction in a matrix (2 indices) or tensor (N indices).
type Coords []int

// Compare compares the coordinates lexicographically.
// It returns -1, 0 or +1, or ErrArityMismatch if the coordinates have a different number of indices.
func (c Coords) Compare(other Coords) (int, error) {
	if len(c) != len(other) {
		return 0, fmt.Errorf("%v vs %v: %w", c, other, ErrArityMismatch)
	}
	for i := range c {
		switch {
		case c[i] < other[i]:
			return -1, nil
		case c[i] > other[i]:
			return 1, nil
		}
	}
	return 0, nil
}

// String formats the coordinates as a tuple e.g. (1, 2).
func (c Coords) String() string {
	ss := make([]string, len(c))
	for i, x := range c {
		ss[i] = strconv.Itoa(x)
	}
	return "(" + strings.Join(ss, ", ") + ")"
}

func (c Coords) clone() Coords {
	cc := make(Coords, len(c))
	copy(cc, c)
	return cc
}
