package simulation

import (
	"errors"
	"fmt"

	"github.com/duganc/spinning-switches/applier"
	"github.com/duganc/spinning-switches/random"
	"github.com/duganc/spinning-switches/table"
)

// DefaultBudget is the default maximum number of moves per trial
const DefaultBudget = 1000

// TimeoutError is returned when a strategy does not solve the table within the step budget
type TimeoutError struct {
	Budget int
}

func (e *TimeoutError) Error() string {
	return fmt.Sprintf("timed out after %d steps", e.Budget)
}

// IsTimeout reports whether err is, or wraps, a TimeoutError
func IsTimeout(err error) bool {
	var timeout *TimeoutError
	return errors.As(err, &timeout)
}

// BuildRandomTable creates a table of the requested size, with each switch set at random
func BuildRandomTable(size int, r random.Source) (*table.RotatingTable, error) {
	if size < 0 {
		size = 0
	}
	switches := make([]table.Switch, 0, size)
	for i := 0; i < size; i++ {
		switches = append(switches, table.RandomSwitch(r))
	}
	return table.New(switches)
}

// RunTrial applies moves until all switches are on, checking before every move. It returns the number of moves
// that were applied, i.e. 0 if the table was solved to begin with. If the table isn't solved after budget checks,
// RunTrial returns a TimeoutError.
func RunTrial(a *applier.Applier, budget int) (int, error) {
	for i := 0; i < budget; i++ {
		if a.IsOn() {
			return i, nil
		}
		a.Apply()
	}
	return 0, &TimeoutError{Budget: budget}
}
