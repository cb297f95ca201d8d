// Package pipeline runs a friendly-string count as a staged batch job. Each
// run walks a statekit machine through loading, encoding, aggregation and
// reduction, timing and logging every stage.
package pipeline

import (
	"fmt"
	"runtime"
	"time"

	"github.com/felixgeelhaar/bolt/v3"
	"github.com/felixgeelhaar/statekit"
	"github.com/google/uuid"

	"github.com/axiomhq/patterns"
	"github.com/axiomhq/patterns/internal/logging"
)

// Source supplies the input corpus. A Source is loaded exactly once per run.
type Source interface {
	Load() ([][]byte, error)
}

// SourceFunc adapts a function to Source.
type SourceFunc func() ([][]byte, error)

// Load calls f.
func (f SourceFunc) Load() ([][]byte, error) { return f() }

// Result describes a completed run.
type Result struct {
	RunID     string
	Strings   int // input strings
	Bytes     int // bytes encoded
	Distinct  int // distinct patterns
	Friendly  int
	Unique    int
	Table     *patterns.FrequencyTable
	Path      []State
	Durations map[State]time.Duration
	State     State
}

// Error is returned when a run aborts. It records the stage that failed.
type Error struct {
	RunID string
	Stage State
	Path  []State
	Err   error
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %v", e.Stage, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

// Pipeline is reusable; every Run gets its own interpreter and run ID.
type Pipeline struct {
	workers  int
	strategy patterns.Strategy
	logger   *bolt.Logger
	machine  *statekit.MachineConfig[*runContext]
}

// Option configures a Pipeline.
type Option func(*Pipeline)

// WithWorkers sets the worker count. Non-positive values select
// runtime.GOMAXPROCS(0).
func WithWorkers(n int) Option {
	return func(p *Pipeline) {
		if n > 0 {
			p.workers = n
		}
	}
}

// WithStrategy sets the aggregation strategy.
func WithStrategy(s patterns.Strategy) Option {
	return func(p *Pipeline) { p.strategy = s }
}

// WithLogger sets the logger. A nil logger discards output.
func WithLogger(l *bolt.Logger) Option {
	return func(p *Pipeline) {
		if l != nil {
			p.logger = l
		}
	}
}

// New returns a Pipeline configured by opts.
func New(opts ...Option) (*Pipeline, error) {
	machine, err := newMachine()
	if err != nil {
		return nil, fmt.Errorf("building pipeline machine: %w", err)
	}
	p := &Pipeline{
		workers:  runtime.GOMAXPROCS(0),
		strategy: patterns.Partitioned,
		logger:   logging.Discard(),
		machine:  machine,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p, nil
}

// Workers returns the configured worker count.
func (p *Pipeline) Workers() int { return p.workers }

// Strategy returns the configured aggregation strategy.
func (p *Pipeline) Strategy() patterns.Strategy { return p.strategy }

// Run loads src and counts its friendly strings. A load failure moves the run
// to the failed state and returns an *Error; no partial result is returned.
func (p *Pipeline) Run(src Source) (*Result, error) {
	rc := newRunContext(uuid.NewString(), p.logger)
	interp := statekit.NewInterpreter(p.machine)
	interp.UpdateContext(func(c **runContext) { *c = rc })
	interp.Start()
	defer interp.Stop()

	logging.With(p.logger.Info(),
		logging.RunID(rc.runID),
		logging.Workers(p.workers),
		logging.Str("strategy", p.strategy.String()),
	).Msg("pipeline started")

	interp.Send(statekit.Event{Type: eventLoad})
	inputs, err := src.Load()
	if err != nil {
		interp.Send(statekit.Event{Type: eventFail})
		logging.With(p.logger.Error(),
			logging.RunID(rc.runID),
			logging.Stage(string(StateLoading)),
			logging.ErrorField(err),
		).Msg("pipeline failed")
		return nil, &Error{RunID: rc.runID, Stage: StateLoading, Path: rc.path, Err: err}
	}

	var n int
	for _, in := range inputs {
		n += len(in)
	}

	interp.Send(statekit.Event{Type: eventEncode})
	encoded := patterns.EncodeParallel(inputs, p.workers)

	interp.Send(statekit.Event{Type: eventAggregate})
	table := patterns.Aggregate(encoded, p.strategy, p.workers)

	interp.Send(statekit.Event{Type: eventReduce})
	friendly := patterns.Reduce(table, p.workers)

	interp.Send(statekit.Event{Type: eventFinish})

	res := &Result{
		RunID:     rc.runID,
		Strings:   len(inputs),
		Bytes:     n,
		Distinct:  table.Len(),
		Friendly:  friendly,
		Unique:    table.Unique(),
		Table:     table,
		Path:      rc.path,
		Durations: rc.durations,
		State:     State(interp.State().Value),
	}
	logging.With(p.logger.Info(),
		logging.RunID(res.RunID),
		logging.Strings(res.Strings),
		logging.Int("distinct", res.Distinct),
		logging.Int("friendly", res.Friendly),
	).Msg("pipeline complete")
	return res, nil
}
