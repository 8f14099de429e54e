package configuration_test

import (
	"testing"

	"github.com/duganc/spinning-switches/configuration"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetConfigFromArgs(t *testing.T) {
	testCases := []struct {
		name string
		args []string
		pass bool
		eval func(cfg *configuration.Configuration) bool
	}{
		{
			name: "invalid",
			args: []string{"hello", "world"},
		},
		{
			name: "set debug",
			args: []string{"--debug"},
			pass: true,
			eval: func(cfg *configuration.Configuration) bool { return cfg.Debug },
		},
		{
			name: "defaults",
			args: []string{},
			pass: true,
			eval: func(cfg *configuration.Configuration) bool {
				return cfg.Size == 4 && cfg.Trials == 1000 && cfg.Budget == 1000 &&
					cfg.Strategy.Preset == "four-switch" && len(cfg.Strategy.Moves) == 0 &&
					cfg.PrometheusPort == 0 && !cfg.Spin
			},
		},
		{
			name: "override size",
			args: []string{"--size=2", "--strategy=two-switch"},
			pass: true,
			eval: func(cfg *configuration.Configuration) bool {
				return cfg.Size == 2 && cfg.Strategy.Preset == "two-switch"
			},
		},
		{
			name: "invalid strategy",
			args: []string{"--strategy=foo"},
		},
		{
			name: "invalid size",
			args: []string{"--size=0"},
		},
		{
			name: "invalid budget",
			args: []string{"--budget=0"},
		},
		{
			name: "moves",
			args: []string{"--move=0,1", "--move=0", "--move=0,1"},
			pass: true,
			eval: func(cfg *configuration.Configuration) bool {
				return len(cfg.Strategy.Moves) == 3 && cfg.Strategy.Moves[0] == "0,1"
			},
		},
	}

	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := configuration.GetConfigFromArgs(tt.args)
			if !tt.pass {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			if tt.eval != nil {
				assert.True(t, tt.eval(&cfg))
			}
		})
	}
}

func TestStrategyConfiguration_Build(t *testing.T) {
	s, err := configuration.StrategyConfiguration{Preset: "four-switch"}.Build()
	require.NoError(t, err)
	assert.Equal(t, 15, s.Len())

	s, err = configuration.StrategyConfiguration{Preset: "four-switch", Moves: []string{"0,1", ""}}.Build()
	require.NoError(t, err)
	assert.Equal(t, 2, s.Len())

	_, err = configuration.StrategyConfiguration{Moves: []string{"a"}}.Build()
	assert.Error(t, err)
}
