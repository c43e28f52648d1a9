// Copyright (C) 2023 Huawei Technologies Co., Ltd. All rights reserved.
// SPDX-License-Identifier: MIT

// Package checker evaluates a session tally against the ordering contract
// of its mode: which outcomes may appear, which must never appear, and
// which are expected to show up given enough trials.
package checker

import (
	"fmt"
	"strings"

	"flagrace/collector"
	"flagrace/core"
	"flagrace/logger"
)

// CheckStatus represents the outcome of a check run
type CheckStatus int

//go:generate go run golang.org/x/tools/cmd/stringer -type=CheckStatus
const (
	// CheckUndefined represents a check with outcome Undefined
	CheckUndefined CheckStatus = iota
	// CheckOK represents a check with outcome OK
	CheckOK
	// CheckNotSafe represents a check with outcome NotSafe
	CheckNotSafe
	// CheckIncomplete represents a check with outcome Incomplete
	CheckIncomplete
	// CheckInvalid represents a check with outcome Invalid
	CheckInvalid
	// CheckTimeout represents a check with outcome Timeout
	CheckTimeout
)

// CheckResult is a pair of CheckStatus and output string
type CheckResult struct {
	Status        CheckStatus
	Output        string
	NumExecutions int
}

// Config selects which expectations are enforced.
type Config struct {
	// RequireExpected fails the check when an outcome expected for the mode
	// was never observed. Reachability depends on the host, so this is off
	// by default.
	RequireExpected bool
	// MaxTimeouts is the number of timed out trials tolerated.
	MaxTimeouts int
}

// Check evaluates tally t. The first violated expectation, in order of
// severity, determines the status; Output lists all of them.
func Check(t *collector.Tally, cfg Config) CheckResult {
	if t == nil {
		return CheckResult{Status: CheckInvalid, Output: "no tally"}
	}
	var (
		r     = CheckResult{Status: CheckOK, NumExecutions: t.Trials()}
		notes []string
	)
	fail := func(s CheckStatus, format string, args ...any) {
		if r.Status == CheckOK {
			r.Status = s
		}
		notes = append(notes, fmt.Sprintf(format, args...))
	}

	for _, o := range core.ForbiddenOutcomes(t.Mode) {
		if c := t.Count(o); c > 0 {
			fail(CheckNotSafe, "forbidden outcome %s observed %d times under %v", o.Label(), c, t.Mode)
		}
	}
	for _, o := range t.Observed() {
		if !core.IsAllowed(t.Mode, o) {
			fail(CheckInvalid, "outcome %s cannot be produced under %v", o.Label(), t.Mode)
		}
	}
	if t.Trials() != t.Requested {
		fail(CheckInvalid, "%d outcomes and %d timeouts for %d requested trials", t.Total(), t.Timeouts, t.Requested)
	}
	if t.Timeouts > cfg.MaxTimeouts {
		fail(CheckTimeout, "%d trials timed out, %d tolerated", t.Timeouts, cfg.MaxTimeouts)
	}
	if cfg.RequireExpected {
		for _, o := range core.ExpectedOutcomes(t.Mode) {
			if t.Count(o) == 0 {
				fail(CheckIncomplete, "outcome %s never observed in %d trials", o.Label(), t.Total())
			}
		}
	}

	r.Output = strings.Join(notes, "\n")
	logger.Debugf("check %v: %v %q", t.Mode, r.Status, r.Output)
	return r
}

// Unobserved returns the allowed outcomes of the tally's mode that were
// never counted.
func Unobserved(t *collector.Tally) []core.Outcome {
	var out []core.Outcome
	for _, o := range core.AllowedOutcomes(t.Mode) {
		if t.Count(o) == 0 && !core.IsForbidden(t.Mode, o) {
			out = append(out, o)
		}
	}
	return out
}
