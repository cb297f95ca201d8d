package pipeline

import (
	"time"

	"github.com/felixgeelhaar/bolt/v3"
	"github.com/felixgeelhaar/statekit"

	"github.com/axiomhq/patterns/internal/logging"
)

// State is a pipeline stage.
type State string

// Pipeline stages, in execution order. Failed is reachable only from Loading.
const (
	StateIdle        State = "idle"
	StateLoading     State = "loading"
	StateEncoding    State = "encoding"
	StateAggregating State = "aggregating"
	StateReducing    State = "reducing"
	StateDone        State = "done"
	StateFailed      State = "failed"
)

const (
	eventLoad      statekit.EventType = "LOAD"
	eventEncode    statekit.EventType = "ENCODE"
	eventAggregate statekit.EventType = "AGGREGATE"
	eventReduce    statekit.EventType = "REDUCE"
	eventFinish    statekit.EventType = "FINISH"
	eventFail      statekit.EventType = "FAIL"
)

// runContext carries per-run bookkeeping through the state machine.
type runContext struct {
	runID     string
	logger    *bolt.Logger
	state     State
	entered   time.Time
	path      []State
	durations map[State]time.Duration
}

func newRunContext(runID string, logger *bolt.Logger) *runContext {
	return &runContext{
		runID:     runID,
		logger:    logger,
		state:     StateIdle,
		entered:   time.Now(),
		path:      []State{StateIdle},
		durations: make(map[State]time.Duration),
	}
}

// newMachine builds the pipeline statechart:
//
//	idle -> loading -> encoding -> aggregating -> reducing -> done
//	           \-> failed
func newMachine() (*statekit.MachineConfig[*runContext], error) {
	b := statekit.NewMachine[*runContext]("pipeline").
		WithInitial(statekit.StateID(StateIdle)).
		WithContext(&runContext{})
	for _, s := range []State{StateIdle, StateLoading, StateEncoding, StateAggregating, StateReducing, StateDone, StateFailed} {
		b = b.WithAction(entryAction(s), enter(s))
	}

	return b.
		State(statekit.StateID(StateIdle)).
			OnEntry(entryAction(StateIdle)).
			On(eventLoad).Target(statekit.StateID(StateLoading)).
			Done().
		State(statekit.StateID(StateLoading)).
			OnEntry(entryAction(StateLoading)).
			On(eventEncode).Target(statekit.StateID(StateEncoding)).
			On(eventFail).Target(statekit.StateID(StateFailed)).
			Done().
		State(statekit.StateID(StateEncoding)).
			OnEntry(entryAction(StateEncoding)).
			On(eventAggregate).Target(statekit.StateID(StateAggregating)).
			Done().
		State(statekit.StateID(StateAggregating)).
			OnEntry(entryAction(StateAggregating)).
			On(eventReduce).Target(statekit.StateID(StateReducing)).
			Done().
		State(statekit.StateID(StateReducing)).
			OnEntry(entryAction(StateReducing)).
			On(eventFinish).Target(statekit.StateID(StateDone)).
			Done().
		State(statekit.StateID(StateDone)).
			Final().
			OnEntry(entryAction(StateDone)).
			Done().
		State(statekit.StateID(StateFailed)).
			Final().
			OnEntry(entryAction(StateFailed)).
			Done().
		Build()
}

func entryAction(s State) statekit.ActionType { return statekit.ActionType("enter_" + string(s)) }

// enter closes the timing of the stage being left and opens s.
func enter(s State) func(**runContext, statekit.Event) {
	return func(ctx **runContext, _ statekit.Event) {
		if ctx == nil || *ctx == nil || (*ctx).durations == nil {
			return
		}
		c := *ctx
		if c.state == s {
			return
		}
		now := time.Now()
		if c.state != "" {
			d := now.Sub(c.entered)
			c.durations[c.state] += d
			if c.logger != nil && c.state != StateIdle {
				logging.With(c.logger.Debug(),
					logging.RunID(c.runID),
					logging.Stage(string(c.state)),
					logging.Duration(d),
				).Msg("stage complete")
			}
		}
		c.state = s
		c.entered = now
		c.path = append(c.path, s)
	}
}
