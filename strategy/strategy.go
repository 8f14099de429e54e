package strategy

import "errors"

// ErrInvalidLength is returned when a strategy is created without any elements
var ErrInvalidLength = errors.New("strategy: invalid length")

// Strategy is a fixed sequence of moves, replayed cyclically. The list of elements is never modified,
// so clones of a Strategy can safely share it while each keeps its own cursor.
type Strategy struct {
	idx      int
	elements []Element
}

// New creates a Strategy that starts at the first element
func New(elements []Element) (*Strategy, error) {
	if len(elements) == 0 {
		return nil, ErrInvalidLength
	}
	e := make([]Element, len(elements))
	copy(e, elements)
	return &Strategy{elements: e}, nil
}

// MustNew is New, but panics on error. Intended for literal strategies.
func MustNew(elements ...Element) *Strategy {
	s, err := New(elements)
	if err != nil {
		panic(err)
	}
	return s
}

// Len returns the number of moves in one cycle of the strategy
func (s *Strategy) Len() int {
	return len(s.elements)
}

// Cursor returns the position of the element that Next will return
func (s *Strategy) Cursor() int {
	return s.idx
}

// Next returns the element at the cursor and advances the cursor, wrapping at the end of the sequence
func (s *Strategy) Next() Element {
	e := s.elements[s.idx]
	s.idx = (s.idx + 1) % len(s.elements)
	return e
}

// Elements returns the moves of the strategy, in order
func (s *Strategy) Elements() []Element {
	e := make([]Element, len(s.elements))
	copy(e, s.elements)
	return e
}

// Restart returns a Strategy with the same moves and its own cursor, set to the first element
func (s *Strategy) Restart() *Strategy {
	return &Strategy{elements: s.elements}
}

// Clone returns a Strategy with the same moves and its own cursor, set to the current position
func (s *Strategy) Clone() *Strategy {
	return &Strategy{idx: s.idx, elements: s.elements}
}
