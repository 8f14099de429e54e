package table

import (
	"errors"
	"strings"

	"github.com/duganc/spinning-switches/random"
	"github.com/duganc/spinning-switches/strategy"
)

// ErrInvalidLength is returned when a table is created without any switches
var ErrInvalidLength = errors.New("table: invalid length")

// RotatingTable is a circular arrangement of switches. Rotating the table only moves the offset:
// logical position n always refers to physical switch (offset + n) mod Len().
type RotatingTable struct {
	offset   int
	switches []Switch
}

// New creates a RotatingTable from the provided switches, with no rotation applied
func New(switches []Switch) (*RotatingTable, error) {
	if len(switches) == 0 {
		return nil, ErrInvalidLength
	}
	s := make([]Switch, len(switches))
	copy(s, switches)
	return &RotatingTable{switches: s}, nil
}

// MustNew is New, but panics on error. Intended for literal tables.
func MustNew(switches ...Switch) *RotatingTable {
	t, err := New(switches)
	if err != nil {
		panic(err)
	}
	return t
}

// Len returns the number of switches on the table
func (t *RotatingTable) Len() int {
	return len(t.switches)
}

// Offset returns the physical index of logical position 0
func (t *RotatingTable) Offset() int {
	return t.offset
}

// Get returns the state of the switch at logical position n
func (t *RotatingTable) Get(n int) bool {
	return t.switches[t.index(n)].State()
}

// IsOn reports whether all switches are on. The result does not depend on the rotation.
func (t *RotatingTable) IsOn() bool {
	for _, s := range t.switches {
		if !s.State() {
			return false
		}
	}
	return true
}

// Flip toggles the switch at logical position n
func (t *RotatingTable) Flip(n int) {
	t.switches[t.index(n)].Flip()
}

// Rotate advances the rotation by n positions. Negative values rotate backwards.
func (t *RotatingTable) Rotate(n int) {
	t.offset = t.index(n)
}

// RotateRandomly rotates the table by a uniformly random amount in [0, Len())
func (t *RotatingTable) RotateRandomly(r random.Source) {
	t.Rotate(r.Intn(t.Len()))
}

// ApplyElement flips every logical position listed in the element. An index listed twice is flipped twice.
func (t *RotatingTable) ApplyElement(e strategy.Element) {
	for _, n := range e.Indices() {
		t.Flip(n)
	}
}

// States returns the switch states in physical order
func (t *RotatingTable) States() []bool {
	states := make([]bool, 0, len(t.switches))
	for _, s := range t.switches {
		states = append(states, s.State())
	}
	return states
}

// PrettyPrint renders the switches in physical order, e.g. "1|0|1|1"
func (t *RotatingTable) PrettyPrint() string {
	output := make([]string, 0, len(t.switches))
	for _, s := range t.switches {
		output = append(output, s.String())
	}
	return strings.Join(output, "|")
}

func (t *RotatingTable) index(n int) int {
	l := len(t.switches)
	return (t.offset + mod(n, l)) % l
}

func mod(n, l int) int {
	n %= l
	if n < 0 {
		n += l
	}
	return n
}
