package simulation_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/duganc/spinning-switches/applier"
	"github.com/duganc/spinning-switches/random"
	"github.com/duganc/spinning-switches/simulation"
	"github.com/duganc/spinning-switches/strategy"
	"github.com/duganc/spinning-switches/table"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildRandomTable(t *testing.T) {
	_, err := simulation.BuildRandomTable(0, random.New(1))
	assert.ErrorIs(t, err, table.ErrInvalidLength)

	t1, err := simulation.BuildRandomTable(16, random.New(1))
	require.NoError(t, err)
	t2, err := simulation.BuildRandomTable(16, random.New(1))
	require.NoError(t, err)

	assert.Equal(t, 16, t1.Len())
	assert.Zero(t, t1.Offset())
	assert.Equal(t, t1.States(), t2.States())
}

func TestRunTrial(t *testing.T) {
	testCases := []struct {
		name     string
		switches []table.Switch
		moves    []strategy.Element
		budget   int
		steps    int
		timeout  bool
	}{
		{
			name:     "already solved",
			switches: []table.Switch{table.On, table.On},
			moves:    []strategy.Element{strategy.NewElement(0)},
			budget:   10,
			steps:    0,
		},
		{
			name:     "solved after two moves",
			switches: []table.Switch{table.Off, table.Off},
			moves:    []strategy.Element{strategy.NewElement(), strategy.NewElement(0, 1)},
			budget:   10,
			steps:    2,
		},
		{
			name:     "scenario",
			switches: []table.Switch{table.On, table.Off, table.On, table.Off},
			moves:    []strategy.Element{strategy.NewElement(0, 1, 2, 3), strategy.NewElement(0, 2), strategy.NewElement()},
			budget:   simulation.DefaultBudget,
			steps:    2,
		},
		{
			name:     "never solved",
			switches: []table.Switch{table.On, table.Off},
			moves:    []strategy.Element{strategy.NewElement(0, 1)},
			budget:   10,
			timeout:  true,
		},
		{
			name:     "solved by the last move of the budget",
			switches: []table.Switch{table.Off, table.Off},
			moves:    []strategy.Element{strategy.NewElement(0, 1)},
			budget:   1,
			timeout:  true,
		},
		{
			name:     "solved within budget",
			switches: []table.Switch{table.Off, table.Off},
			moves:    []strategy.Element{strategy.NewElement(0, 1)},
			budget:   2,
			steps:    1,
		},
	}

	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			a := applier.New(table.MustNew(tt.switches...), strategy.MustNew(tt.moves...))
			steps, err := simulation.RunTrial(a, tt.budget)
			if tt.timeout {
				var timeout *simulation.TimeoutError
				require.True(t, errors.As(err, &timeout))
				assert.Equal(t, tt.budget, timeout.Budget)
				assert.Equal(t, tt.budget, a.Steps())
				assert.True(t, simulation.IsTimeout(fmt.Errorf("trial: %w", err)))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.steps, steps)
			assert.Equal(t, tt.steps, a.Steps())
			assert.True(t, a.IsOn())
		})
	}
}

func TestTimeoutError(t *testing.T) {
	err := &simulation.TimeoutError{Budget: 1000}
	assert.Equal(t, "timed out after 1000 steps", err.Error())
	assert.False(t, simulation.IsTimeout(errors.New("timed out after 1000 steps")))
	assert.False(t, simulation.IsTimeout(nil))
}

func TestRunTrial_Presets(t *testing.T) {
	testCases := []struct {
		preset string
		size   int
	}{
		{preset: "two-switch", size: 2},
		{preset: "four-switch", size: 4},
	}

	for _, tt := range testCases {
		t.Run(tt.preset, func(t *testing.T) {
			s, err := strategy.Preset(tt.preset)
			require.NoError(t, err)

			// every possible starting position, with and without spinning the table
			for pattern := 0; pattern < 1<<tt.size; pattern++ {
				switches := make([]table.Switch, tt.size)
				for i := range switches {
					switches[i] = table.NewSwitch(pattern&(1<<i) != 0)
				}

				for _, spin := range []bool{false, true} {
					var options []applier.Option
					if spin {
						options = append(options, applier.WithSpin(random.New(int64(pattern))))
					}
					steps, err := simulation.RunTrial(applier.New(table.MustNew(switches...), s.Clone(), options...), simulation.DefaultBudget)
					require.NoError(t, err, fmt.Sprintf("pattern: %b, spin: %v", pattern, spin))
					assert.LessOrEqual(t, steps, s.Len())
				}
			}
		})
	}
}
