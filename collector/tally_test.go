// Copyright (C) 2023 Huawei Technologies Co., Ltd. All rights reserved.
// SPDX-License-Identifier: MIT

package collector

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"flagrace/core"
)

func TestTallyPercent(t *testing.T) {
	tally := NewTally(core.ModeSeqCst, 4)
	assert.Zero(t, tally.Percent(core.OneMark))

	tally.Add(core.OneMark)
	tally.Add(core.OneMark)
	tally.Add(core.OneMark)
	tally.Add(core.NoMark)
	assert.Equal(t, 75.0, tally.Percent(core.OneMark))
	assert.Equal(t, 25.0, tally.Percent(core.NoMark))
	assert.Zero(t, tally.Percent(core.TwoMarks))
}

func TestTallyOutcomes(t *testing.T) {
	tally := NewTally(core.ModeSeqCst, 3)
	tally.Add(core.OneMark)
	tally.Add("?")
	assert.Equal(t, []core.Outcome{core.NoMark, core.OneMark, core.TwoMarks, "?"}, tally.Outcomes())
	assert.Equal(t, []core.Outcome{core.OneMark, "?"}, tally.Observed())
}

func TestTallySnapshot(t *testing.T) {
	tally := NewTally(core.ModeRelaxed, 10)
	tally.Add(core.OneMark)
	tally.AddTimeout()
	tally.Elapsed = time.Second

	snap := tally.Snapshot()
	tally.Add(core.OneMark)
	tally.Add(core.TwoMarks)

	assert.Equal(t, 1, snap.Count(core.OneMark))
	assert.Zero(t, snap.Count(core.TwoMarks))
	assert.Equal(t, 1, snap.Timeouts)
	assert.Equal(t, tally.Session, snap.Session)
	assert.Equal(t, tally.Started, snap.Started)
	assert.Equal(t, time.Second, snap.Elapsed)
}

func TestTallyJSON(t *testing.T) {
	tally := NewTally(core.ModeSeqCst, 3)
	tally.Add(core.NoMark)
	tally.Add(core.OneMark)
	tally.Add(core.OneMark)

	b, err := json.Marshal(tally)
	require.Nil(t, err)
	assert.JSONEq(t, `{"": 1, "!": 2}`, string(b))
}

func TestStats(t *testing.T) {
	s := NewStats()
	s.AddTime("a", 2*time.Millisecond)
	s.AddTime("a", 4*time.Millisecond)

	mean, sd, n := s.GetTime("a")
	assert.Equal(t, 3*time.Millisecond, mean)
	assert.Equal(t, time.Millisecond, sd)
	assert.Equal(t, 2, n)

	mean, sd, n = s.GetTime("b")
	assert.Zero(t, mean)
	assert.Zero(t, sd)
	assert.Zero(t, n)

	assert.Contains(t, s.String(), "Mean time a: 3ms")
}
