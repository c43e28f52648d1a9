// Copyright (C) 2023 Huawei Technologies Co., Ltd. All rights reserved.
// SPDX-License-Identifier: MIT

// Package race runs a single trial of an ordering experiment: it builds a
// fresh shared state, spawns the racing tasks, joins them and classifies
// what they left behind.
package race

import (
	"context"
	"errors"
	"fmt"
	"runtime"
	"sync"
	"sync/atomic"
	"time"

	"golang.org/x/sync/errgroup"

	"flagrace/core"
	"flagrace/logger"
	"flagrace/shared"
	"flagrace/tools"
)

// DefaultSpinTimeout bounds every busy wait of a trial.
const DefaultSpinTimeout = time.Second

func init() {
	tools.RegEnv("FLAGRACE_SPIN_TIMEOUT", DefaultSpinTimeout.String(),
		"Bound on the time a reader spins on a flag before the trial times out")
}

// Config configures the runner.
type Config struct {
	SpinTimeout time.Duration // bound of every busy wait
	SafeLog     bool          // use the mutex-guarded log
	Slots       int           // fence demonstration slots
}

// DefaultConfig returns a default runner configuration.
func DefaultConfig() Config {
	return Config{
		SpinTimeout: tools.GetEnvDuration("FLAGRACE_SPIN_TIMEOUT", DefaultSpinTimeout),
		Slots:       shared.DefaultSlots,
	}
}

// Result is what a single trial produced.
type Result struct {
	Mode    core.Mode
	Outcome core.Outcome
	Log     string        // final log of a flag race
	Visible int           // payload elements or fence slots seen by the reader
	Elapsed time.Duration // spawn to join
}

// Runner executes trials. It is safe to use from several goroutines; every
// trial works on its own shared state.
type Runner struct {
	cfg  Config
	warn sync.Once

	// delays the publishing writer, tests use it to force a timeout
	writerDelay time.Duration
}

// NewRunner returns a runner with the given configuration.
func NewRunner(cfg Config) *Runner {
	if cfg.SpinTimeout <= 0 {
		cfg.SpinTimeout = DefaultSpinTimeout
	}
	if cfg.Slots <= 0 {
		cfg.Slots = shared.DefaultSlots
	}
	return &Runner{cfg: cfg}
}

// Config returns the runner configuration.
func (r *Runner) Config() Config {
	return r.cfg
}

// Race runs one trial of mode m on a fresh shared state and blocks until
// every task has been joined. A reader that gives up waiting yields a
// TimedOut result together with an error wrapping core.ErrTimeout.
func (r *Runner) Race(ctx context.Context, m core.Mode) (Result, error) {
	if !m.Valid() {
		return Result{}, fmt.Errorf("%w: unknown mode %v", core.ErrInvalidParameter, m)
	}
	r.warn.Do(func() {
		if runtime.GOMAXPROCS(0) < 2 {
			logger.Warnf("GOMAXPROCS=%d: tasks are interleaved by preemption only", runtime.GOMAXPROCS(0))
		}
	})

	var (
		s   = shared.New(m, shared.Config{SafeLog: r.cfg.SafeLog, Slots: r.cfg.Slots})
		res = Result{Mode: m}
		ts  = time.Now()
		err error
	)
	switch {
	case m.Symmetric():
		err = r.flagRace(ctx, s, &res)
	case m == core.ModeReleaseAcquire:
		err = r.publish(ctx, s, &res)
	case m == core.ModeFence:
		err = r.fence(ctx, s, &res)
	}
	res.Elapsed = time.Since(ts)

	if errors.Is(err, core.ErrTimeout) {
		res.Outcome = core.TimedOut
	}
	// one line per trial, skip the formatting on the hot path
	if logger.GetLevel() >= logger.DEBUG {
		logger.Debugf("trial %v: outcome=%s visible=%d elapsed=%v", m, res.Outcome.Label(), res.Visible, res.Elapsed)
	}
	return res, err
}

// flagRace runs the symmetric two-flag race. Both tasks are held at a start
// line so that their flag operations overlap as often as possible.
func (r *Runner) flagRace(ctx context.Context, s *shared.State, res *Result) error {
	var (
		arrived atomic.Int32
		start   shared.Flag
	)
	g, gctx := errgroup.WithContext(ctx)
	task := func(own, other *shared.Flag) func() error {
		return func() error {
			arrived.Add(1)
			if err := WaitFlag(gctx, &start, core.SeqCst, r.cfg.SpinTimeout); err != nil {
				return err
			}
			s.Set(own, true)
			if !s.Get(other) {
				s.Append('!')
			}
			return nil
		}
	}
	g.Go(task(&s.A, &s.B))
	g.Go(task(&s.B, &s.A))

	werr := Until(gctx, r.cfg.SpinTimeout, func() bool {
		return arrived.Load() == 2
	})
	// release the tasks even if they did not all arrive so that none waits
	// out its own timeout
	start.Store(true, core.SeqCst)
	if err := g.Wait(); err != nil {
		return err
	}
	if werr != nil {
		return werr
	}
	res.Log = s.Snapshot()
	res.Outcome = core.Outcome(res.Log)
	return nil
}

// publish runs the one-writer/one-reader demonstration: the writer fills
// the payload and releases the ready flag, the reader acquires the flag and
// checks the payload.
func (r *Runner) publish(ctx context.Context, s *shared.State, res *Result) error {
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		if r.writerDelay > 0 {
			time.Sleep(r.writerDelay)
		}
		s.Payload.Fill()
		s.Set(&s.Ready, true)
		return nil
	})
	g.Go(func() error {
		if err := WaitFlag(gctx, &s.Ready, s.Mode().LoadOrdering(), r.cfg.SpinTimeout); err != nil {
			return err
		}
		ok, n := s.Payload.Verify()
		res.Visible = n
		if ok {
			res.Outcome = core.Visible
		} else {
			res.Outcome = core.Torn
		}
		return nil
	})
	return g.Wait()
}

// fence runs the multi-slot demonstration: every writer fills its slot and
// releases the slot's flag; the reader waits for any slot, snapshots all
// flags with relaxed loads, issues an acquire fence and checks each slot it
// saw ready.
func (r *Runner) fence(ctx context.Context, s *shared.State, res *Result) error {
	g, gctx := errgroup.WithContext(ctx)
	for i := range s.Slots {
		i := i
		g.Go(func() error {
			if r.writerDelay > 0 {
				time.Sleep(r.writerDelay)
			}
			s.Slots[i].Data = shared.SlotValue(i)
			s.Set(&s.Slots[i].Ready, true)
			return nil
		})
	}
	g.Go(func() error {
		anyReady := func() bool {
			for i := range s.Slots {
				if s.Get(&s.Slots[i].Ready) {
					return true
				}
			}
			return false
		}
		if err := Until(gctx, r.cfg.SpinTimeout, anyReady); err != nil {
			return err
		}

		var observed []int
		for i := range s.Slots {
			if s.Get(&s.Slots[i].Ready) {
				observed = append(observed, i)
			}
		}
		flags := make([]*shared.Flag, 0, len(observed))
		for _, i := range observed {
			flags = append(flags, &s.Slots[i].Ready)
		}
		s.Fence(core.Acquire, flags...)

		res.Outcome = core.Visible
		res.Visible = len(observed)
		for _, i := range observed {
			if s.Slots[i].Data != shared.SlotValue(i) {
				res.Outcome = core.Torn
			}
		}
		return nil
	})
	return g.Wait()
}
