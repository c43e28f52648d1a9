// Copyright (C) 2023 Huawei Technologies Co., Ltd. All rights reserved.
// SPDX-License-Identifier: MIT

package collector

import (
	"context"
	"sync"

	"flagrace/core"
	"flagrace/race"
)

// MockTrial is one scripted answer of a Mock.
type MockTrial struct {
	Outcome core.Outcome
	Err     error
}

// Mock is a Racer that replays scripted trials, for testing.
type Mock struct {
	mu     sync.Mutex
	Script []MockTrial // trial i answers Script[i%len(Script)]
	Calls  int
}

// Race returns the next scripted trial.
func (c *Mock) Race(_ context.Context, m core.Mode) (race.Result, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	i := c.Calls
	c.Calls++
	if len(c.Script) == 0 {
		return race.Result{Mode: m}, nil
	}
	tr := c.Script[i%len(c.Script)]
	return race.Result{Mode: m, Outcome: tr.Outcome, Log: string(tr.Outcome)}, tr.Err
}
