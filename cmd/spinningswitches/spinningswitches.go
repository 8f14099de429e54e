package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/duganc/spinning-switches/applier"
	"github.com/duganc/spinning-switches/configuration"
	"github.com/duganc/spinning-switches/random"
	"github.com/duganc/spinning-switches/server"
	"github.com/duganc/spinning-switches/simulation"
	"github.com/duganc/spinning-switches/version"
	"github.com/prometheus/client_golang/prometheus"
	log "github.com/sirupsen/logrus"
)

func main() {
	cfg, err := configuration.GetConfigFromArgs(os.Args[1:])
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	log.WithField("version", version.BuildVersion).Info("starting")
	if cfg.Debug {
		log.SetLevel(log.DebugLevel)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err = run(ctx, cfg, prometheus.DefaultRegisterer); err != nil {
		log.WithError(err).Error("simulation failed")
		os.Exit(1)
	}
	log.Info("exiting")
}

func run(ctx context.Context, cfg configuration.Configuration, registerer prometheus.Registerer) error {
	r, err := makeRunner(cfg.SimulationConfiguration)
	if err != nil {
		return err
	}
	if err = registerer.Register(r); err != nil {
		return fmt.Errorf("metrics: %w", err)
	}

	var s *server.Server
	errCh := make(chan error, 1)
	if cfg.PrometheusPort > 0 {
		s = server.New(cfg.PrometheusPort, r)
		go func() { errCh <- s.Run() }()
	}

	summary, err := r.Run(ctx)
	fmt.Printf("trials: %d, solved: %d, timed out: %d, steps: min %d / mean %.2f / max %d\n",
		summary.Trials, summary.Solved, summary.TimedOut, summary.MinSteps, summary.Mean(), summary.MaxSteps)

	if s != nil {
		// keep the results available until we're told to stop
		select {
		case <-ctx.Done():
		case err2 := <-errCh:
			log.WithError(err2).Error("server failed")
		}
		if err2 := s.Shutdown(); err2 != nil {
			log.WithError(err2).Warning("failed to shut down server")
		}
	}
	return err
}

func makeRunner(cfg configuration.SimulationConfiguration) (*simulation.Runner, error) {
	s, err := cfg.Strategy.Build()
	if err != nil {
		return nil, fmt.Errorf("strategy: %w", err)
	}

	r := simulation.NewRunner(cfg.Size, cfg.Trials, s)
	r.Budget = cfg.Budget
	r.Spin = cfg.Spin
	r.FailFast = cfg.FailFast
	if cfg.Seed != 0 {
		r.Random = random.New(cfg.Seed)
	}
	if log.IsLevelEnabled(log.DebugLevel) {
		r.Observer = applier.LogObserver(log.WithField("component", "applier"))
	}
	return r, nil
}
