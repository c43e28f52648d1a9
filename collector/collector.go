// Copyright (C) 2023 Huawei Technologies Co., Ltd. All rights reserved.
// SPDX-License-Identifier: MIT

// Package collector repeats trials of an ordering experiment and tallies
// the outcomes they produce. The structure of a session is deterministic,
// always the requested number of trials; the distribution is not.
package collector

import (
	"context"
	"errors"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"flagrace/core"
	"flagrace/logger"
	"flagrace/race"
)

// Racer runs one trial of mode m on fresh state.
type Racer interface {
	Race(ctx context.Context, m core.Mode) (race.Result, error)
}

// Config represents the configuration of a collector
type Config struct {
	FailFast bool // abort the session on the first timed out trial
	Parallel int  // sessions run at once by Compare, all if zero
}

// Collector drives sessions of trials.
type Collector struct {
	cfg   Config
	racer Racer
}

// NewCollector returns a collector running its trials on r.
func NewCollector(cfg Config, r Racer) *Collector {
	return &Collector{
		cfg:   cfg,
		racer: r,
	}
}

// Validate rejects a session request before anything runs.
func Validate(m core.Mode, repetitions int) error {
	if !m.Valid() {
		return fmt.Errorf("%w: unknown mode %v", core.ErrInvalidParameter, m)
	}
	if repetitions <= 0 {
		return fmt.Errorf("%w: repetitions must be positive, got %d", core.ErrInvalidParameter, repetitions)
	}
	return nil
}

// Run executes repetitions trials of mode m and returns their tally.
//
// A timed out trial is counted and logged and the session goes on, unless
// the collector is configured to fail fast; then, as for any other error,
// the partial tally is returned along with the error.
func (c *Collector) Run(ctx context.Context, m core.Mode, repetitions int) (*Tally, error) {
	if err := Validate(m, repetitions); err != nil {
		return nil, err
	}
	t := NewTally(m, repetitions)
	defer func() {
		t.Elapsed = time.Since(t.Started)
	}()

	logger.Infof("session %v: %d trials of %v", t.Session, repetitions, m)
	for i := 0; i < repetitions; i++ {
		res, err := c.racer.Race(ctx, m)
		switch {
		case errors.Is(err, core.ErrTimeout):
			t.AddTimeout()
			t.Stats.AddTime(core.TimedOut.Label(), res.Elapsed)
			logger.Warnf("trial %d of %v: %v", i+1, m, err)
			if c.cfg.FailFast {
				return t, fmt.Errorf("trial %d: %w", i+1, err)
			}
		case err != nil:
			return t, fmt.Errorf("trial %d: %w", i+1, err)
		default:
			t.Add(res.Outcome)
			t.Stats.AddTime(res.Outcome.Label(), res.Elapsed)
		}
	}
	return t, nil
}

// Compare runs one session per mode, concurrently, and returns the tallies
// in the order of modes. Each tally keeps its own timing statistics. Tallies of sessions that failed may be partial or
// nil; the first error is returned.
func (c *Collector) Compare(ctx context.Context, modes []core.Mode, repetitions int) ([]*Tally, error) {
	for _, m := range modes {
		if err := Validate(m, repetitions); err != nil {
			return nil, err
		}
	}

	tallies := make([]*Tally, len(modes))
	var g errgroup.Group
	if c.cfg.Parallel > 0 {
		g.SetLimit(c.cfg.Parallel)
	}
	for i, m := range modes {
		i, m := i, m
		g.Go(func() error {
			t, err := c.Run(ctx, m, repetitions)
			tallies[i] = t
			return err
		})
	}
	return tallies, g.Wait()
}
