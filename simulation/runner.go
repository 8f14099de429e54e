package simulation

import (
	"context"
	"fmt"
	"sync"

	"github.com/duganc/spinning-switches/applier"
	"github.com/duganc/spinning-switches/random"
	"github.com/duganc/spinning-switches/strategy"
	"github.com/prometheus/client_golang/prometheus"
	log "github.com/sirupsen/logrus"
)

// Summary holds the results of a batch of trials
type Summary struct {
	Trials     int `json:"trials"`
	Solved     int `json:"solved"`
	TimedOut   int `json:"timed_out"`
	MinSteps   int `json:"min_steps"`
	MaxSteps   int `json:"max_steps"`
	TotalSteps int `json:"total_steps"`
}

// Mean returns the average number of steps of the solved trials
func (s Summary) Mean() float64 {
	if s.Solved == 0 {
		return 0
	}
	return float64(s.TotalSteps) / float64(s.Solved)
}

func (s *Summary) add(steps int, err error) {
	s.Trials++
	if err != nil {
		s.TimedOut++
		return
	}
	if s.Solved == 0 || steps < s.MinSteps {
		s.MinSteps = steps
	}
	if steps > s.MaxSteps {
		s.MaxSteps = steps
	}
	s.Solved++
	s.TotalSteps += steps
}

// Runner runs a strategy against a number of randomly initialized tables
type Runner struct {
	Size     int
	Trials   int
	Budget   int
	Strategy *strategy.Strategy
	Random   random.Source
	Spin     bool
	FailFast bool
	Logger   *log.Entry
	Observer applier.Observer

	summary  Summary
	lock     sync.RWMutex
	trials   *prometheus.CounterVec
	steps    *prometheus.HistogramVec
}

var _ prometheus.Collector = &Runner{}

// NewRunner creates a Runner for the strategy, using the default budget and the global random source
func NewRunner(size, trials int, s *strategy.Strategy) *Runner {
	return &Runner{
		Size:     size,
		Trials:   trials,
		Budget:   DefaultBudget,
		Strategy: s,
		Random:   random.Global(),
		Logger:   log.WithField("component", "runner"),
		trials: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "spinningswitches_trials_total",
			Help: "Number of trials run, by result",
		}, []string{"result"}),
		steps: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "spinningswitches_trial_steps",
			Help:    "Number of moves needed to solve a table",
			Buckets: prometheus.ExponentialBuckets(1, 2, 11),
		}, []string{"size"}),
	}
}

// Run performs the trials and returns their Summary. Timeouts are counted, unless FailFast is set,
// in which case the first timeout ends the run and is returned as an error.
func (r *Runner) Run(ctx context.Context) (Summary, error) {
	r.lock.Lock()
	r.summary = Summary{}
	r.lock.Unlock()

	r.Logger.WithFields(log.Fields{
		"size":     r.Size,
		"trials":   r.Trials,
		"budget":   r.Budget,
		"strategy": r.Strategy.Len(),
		"spin":     r.Spin,
	}).Info("simulation started")

	for i := 0; i < r.Trials; i++ {
		select {
		case <-ctx.Done():
			return r.Summary(), ctx.Err()
		default:
		}

		steps, err := r.runTrial()
		if err != nil && !IsTimeout(err) {
			return r.Summary(), fmt.Errorf("trial %d: %w", i+1, err)
		}
		r.record(steps, err)

		if err != nil {
			r.Logger.WithError(err).WithField("trial", i+1).Warning("strategy failed")
			if r.FailFast {
				return r.Summary(), fmt.Errorf("trial %d: %w", i+1, err)
			}
			continue
		}
		r.Logger.WithFields(log.Fields{"trial": i + 1, "steps": steps}).Debug("table solved")
	}

	summary := r.Summary()
	r.Logger.WithFields(log.Fields{
		"solved":   summary.Solved,
		"timedOut": summary.TimedOut,
		"mean":     summary.Mean(),
		"max":      summary.MaxSteps,
	}).Info("simulation finished")
	return summary, nil
}

func (r *Runner) runTrial() (int, error) {
	t, err := BuildRandomTable(r.Size, r.Random)
	if err != nil {
		return 0, fmt.Errorf("table: %w", err)
	}
	var options []applier.Option
	if r.Observer != nil {
		options = append(options, applier.WithObserver(r.Observer))
	}
	if r.Spin {
		options = append(options, applier.WithSpin(r.Random))
	}
	return RunTrial(applier.New(t, r.Strategy.Restart(), options...), r.Budget)
}

func (r *Runner) record(steps int, err error) {
	r.lock.Lock()
	r.summary.add(steps, err)
	r.lock.Unlock()

	if err != nil {
		r.trials.WithLabelValues("timeout").Inc()
		return
	}
	r.trials.WithLabelValues("solved").Inc()
	r.steps.WithLabelValues(fmt.Sprint(r.Size)).Observe(float64(steps))
}

// Summary returns the results of the current, or last, run
func (r *Runner) Summary() Summary {
	r.lock.RLock()
	defer r.lock.RUnlock()
	return r.summary
}

// Describe implements the prometheus.Collector interface
func (r *Runner) Describe(ch chan<- *prometheus.Desc) {
	r.trials.Describe(ch)
	r.steps.Describe(ch)
}

// Collect implements the prometheus.Collector interface
func (r *Runner) Collect(ch chan<- prometheus.Metric) {
	r.trials.Collect(ch)
	r.steps.Collect(ch)
}
