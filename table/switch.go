package table

import "github.com/duganc/spinning-switches/random"

// Switch is a single binary cell of a RotatingTable
type Switch uint8

const (
	Off Switch = iota
	On
)

// NewSwitch creates a Switch in the requested state
func NewSwitch(state bool) Switch {
	if state {
		return On
	}
	return Off
}

// RandomSwitch creates a Switch whose state is decided by a fair coin
func RandomSwitch(r random.Source) Switch {
	return NewSwitch(random.Coin(r))
}

// State reports whether the switch is on
func (s Switch) State() bool {
	return s == On
}

// Flip toggles the switch
func (s *Switch) Flip() {
	*s = NewSwitch(!s.State())
}

func (s Switch) String() string {
	if s.State() {
		return "1"
	}
	return "0"
}
