package strategy

import "strings"

// Element is a single move: the set of logical table positions to flip. Elements are immutable.
type Element struct {
	indices []int
}

// NewElement creates an Element flipping the provided positions. Positions are not checked against
// any table size: a table wraps them modulo its length, just like RotatingTable.Flip.
func NewElement(indices ...int) Element {
	e := Element{indices: make([]int, len(indices))}
	copy(e.indices, indices)
	return e
}

// Indices returns a copy of the positions flipped by the element
func (e Element) Indices() []int {
	indices := make([]int, len(e.indices))
	copy(indices, e.indices)
	return indices
}

// Len returns the number of positions in the element
func (e Element) Len() int {
	return len(e.indices)
}

// Contains reports whether the element acts on position p of a table of length l
func (e Element) Contains(p, l int) bool {
	for _, i := range e.indices {
		if wrap(i, l) == p {
			return true
		}
	}
	return false
}

// PrettyPrint renders the element as a mask over a table of length l, e.g. "1|0|1|0"
func (e Element) PrettyPrint(l int) string {
	output := make([]string, 0, l)
	for p := 0; p < l; p++ {
		if e.Contains(p, l) {
			output = append(output, "1")
		} else {
			output = append(output, "0")
		}
	}
	return strings.Join(output, "|")
}

func wrap(n, l int) int {
	if l <= 0 {
		return n
	}
	n %= l
	if n < 0 {
		n += l
	}
	return n
}
