package strategy

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseElement reads a move written as a comma-separated list of positions, e.g. "0,2".
// A blank string is the empty move.
func ParseElement(input string) (Element, error) {
	input = strings.TrimSpace(input)
	if input == "" {
		return NewElement(), nil
	}
	fields := strings.Split(input, ",")
	indices := make([]int, 0, len(fields))
	for _, field := range fields {
		n, err := strconv.Atoi(strings.TrimSpace(field))
		if err != nil {
			return Element{}, fmt.Errorf("invalid move %q: %w", input, err)
		}
		indices = append(indices, n)
	}
	return NewElement(indices...), nil
}

// Parse creates a Strategy from a list of moves, each in the format accepted by ParseElement
func Parse(moves []string) (*Strategy, error) {
	elements := make([]Element, 0, len(moves))
	for _, move := range moves {
		e, err := ParseElement(move)
		if err != nil {
			return nil, err
		}
		elements = append(elements, e)
	}
	return New(elements)
}
