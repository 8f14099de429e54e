package configuration

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/duganc/spinning-switches/strategy"
	"github.com/duganc/spinning-switches/version"
	"gopkg.in/alecthomas/kingpin.v2"
)

type Configuration struct {
	Debug          bool
	PrometheusPort int
	SimulationConfiguration
}

type SimulationConfiguration struct {
	Size     int
	Trials   int
	Budget   int
	Seed     int64
	Spin     bool
	FailFast bool
	Strategy StrategyConfiguration
}

type StrategyConfiguration struct {
	Preset string
	Moves  []string
}

// Build returns the configured strategy: the custom moves, if any were provided, or the preset
func (c StrategyConfiguration) Build() (*strategy.Strategy, error) {
	if len(c.Moves) > 0 {
		return strategy.Parse(c.Moves)
	}
	return strategy.Preset(c.Preset)
}

func GetConfigFromArgs(args []string) (Configuration, error) {
	var cfg Configuration

	a := kingpin.New(filepath.Base(os.Args[0]), "spinning switches simulator")
	a.Version(version.BuildVersion)
	a.HelpFlag.Short('h')
	a.VersionFlag.Short('v')
	a.Flag("debug", "Log debug messages").Short('d').Default("false").BoolVar(&cfg.Debug)
	a.Flag("port", "Prometheus metrics listener port (0: disabled)").Default("0").IntVar(&cfg.PrometheusPort)
	a.Flag("size", "Number of switches on the table").Short('n').Default("4").IntVar(&cfg.Size)
	a.Flag("trials", "Number of trials to run").Short('t').Default("1000").IntVar(&cfg.Trials)
	a.Flag("budget", "Maximum number of moves per trial").Default("1000").IntVar(&cfg.Budget)
	a.Flag("seed", "Random seed (0: seed from the current time)").Default("0").Int64Var(&cfg.Seed)
	a.Flag("spin", "Rotate the table randomly before each move").Default("false").BoolVar(&cfg.Spin)
	a.Flag("fail-fast", "Stop at the first trial that times out").Default("false").BoolVar(&cfg.FailFast)
	a.Flag("strategy", "Predefined strategy").Short('s').Default("four-switch").EnumVar(&cfg.Strategy.Preset, strategy.PresetNames()...)
	a.Flag("move", "Custom strategy move, as a comma-separated list of positions (repeatable; overrides --strategy)").Short('m').StringsVar(&cfg.Strategy.Moves)

	if _, err := a.Parse(args); err != nil {
		return cfg, fmt.Errorf("invalid command line arguments: %w", err)
	}
	if cfg.Size < 1 {
		return cfg, fmt.Errorf("invalid size: %d", cfg.Size)
	}
	if cfg.Budget < 1 {
		return cfg, fmt.Errorf("invalid budget: %d", cfg.Budget)
	}
	return cfg, nil
}
