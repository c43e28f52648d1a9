// Copyright (C) 2023 Huawei Technologies Co., Ltd. All rights reserved.
// SPDX-License-Identifier: MIT

package collector

import (
	"encoding/json"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"

	"flagrace/core"
	"flagrace/logger"
)

// Tally maps outcomes to the number of trials that produced them during one
// session. Timed out trials are kept apart from the outcome counts.
type Tally struct {
	Session   uuid.UUID
	Mode      core.Mode
	Requested int
	Counts    map[core.Outcome]int
	Timeouts  int
	Started   time.Time
	Elapsed   time.Duration
	Stats     *Stats // trial durations of this session only, tagged by outcome label
}

// NewTally returns an empty tally for a session of mode m.
func NewTally(m core.Mode, requested int) *Tally {
	return &Tally{
		Session:   uuid.New(),
		Mode:      m,
		Requested: requested,
		Counts:    make(map[core.Outcome]int),
		Started:   time.Now(),
		Stats:     NewStats(),
	}
}

// Add counts one trial that produced o.
func (t *Tally) Add(o core.Outcome) {
	t.Counts[o]++
}

// AddTimeout counts one trial whose reader timed out.
func (t *Tally) AddTimeout() {
	t.Timeouts++
}

// Count returns the number of trials that produced o.
func (t *Tally) Count(o core.Outcome) int {
	return t.Counts[o]
}

// Total returns the number of trials that produced an outcome.
func (t *Tally) Total() int {
	n := 0
	for _, c := range t.Counts {
		n += c
	}
	return n
}

// Trials returns the number of trials run, timeouts included.
func (t *Tally) Trials() int {
	return t.Total() + t.Timeouts
}

// Complete reports whether every requested trial was run.
func (t *Tally) Complete() bool {
	return t.Trials() == t.Requested
}

// Percent returns the share of o among the trials that produced an outcome.
func (t *Tally) Percent(o core.Outcome) float64 {
	total := t.Total()
	if total == 0 {
		return 0
	}
	return 100 * float64(t.Counts[o]) / float64(total)
}

// Outcomes returns the outcomes to report: the ones the mode allows, in
// their canonical order, followed by any other outcome that was counted.
func (t *Tally) Outcomes() []core.Outcome {
	var (
		out  []core.Outcome
		seen = make(map[core.Outcome]bool)
	)
	for _, o := range core.AllowedOutcomes(t.Mode) {
		out = append(out, o)
		seen[o] = true
	}
	var extra []core.Outcome
	for o := range t.Counts {
		if !seen[o] {
			extra = append(extra, o)
		}
	}
	sort.Slice(extra, func(i, j int) bool { return extra[i] < extra[j] })
	return append(out, extra...)
}

// Observed returns the outcomes counted at least once.
func (t *Tally) Observed() []core.Outcome {
	var out []core.Outcome
	for _, o := range t.Outcomes() {
		if t.Counts[o] > 0 {
			out = append(out, o)
		}
	}
	return out
}

// Snapshot returns a deep copy of the tally, safe to report while the
// session goes on. Stats is shared, it has its own lock.
func (t *Tally) Snapshot() *Tally {
	cp := *t
	cp.Counts = make(map[core.Outcome]int, len(t.Counts))
	if err := copier.CopyWithOption(&cp.Counts, t.Counts, copier.Option{DeepCopy: true}); err != nil {
		logger.Fatalf("could not copy tally: %v", err)
	}
	return &cp
}

// MarshalJSON encodes the outcome counts as a plain object keyed by the
// log value, e.g., {"": 412, "!": 580, "!!": 8}.
func (t *Tally) MarshalJSON() ([]byte, error) {
	m := make(map[string]int, len(t.Counts))
	for o, c := range t.Counts {
		m[string(o)] = c
	}
	return json.Marshal(m)
}
