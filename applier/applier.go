package applier

import (
	"github.com/duganc/spinning-switches/random"
	"github.com/duganc/spinning-switches/strategy"
	"github.com/duganc/spinning-switches/table"
)

// Move describes one application of a strategy element to a table
type Move struct {
	Step    int
	Size    int
	Element strategy.Element
	Before  string
	After   string
}

// Observer is called after every move
type Observer func(move Move)

// Applier applies a Strategy to a RotatingTable, one move at a time. The Applier owns both: neither should be
// used elsewhere once wrapped.
type Applier struct {
	table    *table.RotatingTable
	strategy *strategy.Strategy
	observer Observer
	spin     random.Source
	steps    int
}

// Option configures an Applier
type Option func(*Applier)

// WithObserver reports each move to the provided Observer
func WithObserver(o Observer) Option {
	return func(a *Applier) {
		a.observer = o
	}
}

// WithSpin rotates the table by a random amount before each move
func WithSpin(r random.Source) Option {
	return func(a *Applier) {
		a.spin = r
	}
}

// New creates an Applier for the table and strategy
func New(t *table.RotatingTable, s *strategy.Strategy, options ...Option) *Applier {
	a := &Applier{
		table:    t,
		strategy: s,
	}
	for _, option := range options {
		option(a)
	}
	return a
}

// IsOn reports whether all switches of the table are on
func (a *Applier) IsOn() bool {
	return a.table.IsOn()
}

// Apply performs the next move of the strategy. Apply keeps working once the table is solved.
func (a *Applier) Apply() {
	if a.spin != nil {
		a.table.RotateRandomly(a.spin)
	}

	var before string
	if a.observer != nil {
		before = a.table.PrettyPrint()
	}

	element := a.strategy.Next()
	a.table.ApplyElement(element)
	a.steps++

	if a.observer != nil {
		a.observer(Move{
			Step:    a.steps,
			Size:    a.table.Len(),
			Element: element,
			Before:  before,
			After:   a.table.PrettyPrint(),
		})
	}
}

// Steps returns the number of moves applied so far
func (a *Applier) Steps() int {
	return a.steps
}

// Table returns the table being solved
func (a *Applier) Table() *table.RotatingTable {
	return a.table
}

// Strategy returns the strategy being applied
func (a *Applier) Strategy() *strategy.Strategy {
	return a.strategy
}
