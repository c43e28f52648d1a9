// Copyright (C) 2023 Huawei Technologies Co., Ltd. All rights reserved.
// SPDX-License-Identifier: MIT

package core

import "strconv"

// Outcome is the terminal, immutable result of one run.
type Outcome string

const (
	// NoMark means both tasks saw the other's flag set.
	NoMark Outcome = ""
	// OneMark means exactly one task saw the other's flag unset.
	OneMark Outcome = "!"
	// TwoMarks means both tasks saw the other's flag unset.
	TwoMarks Outcome = "!!"
	// Visible means the reader observed the flag and the complete payload.
	Visible Outcome = "ok"
	// Torn means the reader observed the flag but only part of the payload.
	Torn Outcome = "torn"
	// TimedOut is reported for runs whose reader gave up waiting.
	TimedOut Outcome = "timeout"
)

// Label returns the outcome quoted, so that the empty log stays visible
// in reports.
func (o Outcome) Label() string {
	return strconv.Quote(string(o))
}

// AllowedOutcomes lists the outcomes a run of mode m may legally produce,
// excluding timeouts.
func AllowedOutcomes(m Mode) []Outcome {
	switch {
	case m.Symmetric():
		return []Outcome{NoMark, OneMark, TwoMarks}
	case m == ModeReleaseAcquire || m == ModeFence:
		return []Outcome{Visible, Torn}
	default:
		return nil
	}
}

// ForbiddenOutcomes lists the outcomes whose occurrence under mode m means
// the ordering contract was broken.
//
// Under SeqCst the four flag operations fall in one total order, so one
// store always precedes both loads and "!!" cannot happen, even though
// older notes on this experiment list it as a possible SeqCst result. The
// publish
// demonstrations must never see a partial payload.
func ForbiddenOutcomes(m Mode) []Outcome {
	switch m {
	case ModeSeqCst:
		return []Outcome{TwoMarks}
	case ModeReleaseAcquire, ModeFence:
		return []Outcome{Torn}
	default:
		return nil
	}
}

// ExpectedOutcomes lists the outcomes that should show up at least once in
// a long enough session of mode m. Whether they do depends on the host and
// the scheduler.
func ExpectedOutcomes(m Mode) []Outcome {
	switch m {
	case ModeSeqCst:
		return []Outcome{NoMark, OneMark}
	case ModeRelaxed:
		return []Outcome{NoMark, OneMark, TwoMarks}
	case ModeReleaseAcquire, ModeFence:
		return []Outcome{Visible}
	default:
		return nil
	}
}

// IsAllowed reports whether o may be produced by a run of mode m.
func IsAllowed(m Mode, o Outcome) bool {
	for _, a := range AllowedOutcomes(m) {
		if a == o {
			return true
		}
	}
	return false
}

// IsForbidden reports whether o breaks the ordering contract of mode m.
func IsForbidden(m Mode, o Outcome) bool {
	for _, f := range ForbiddenOutcomes(m) {
		if f == o {
			return true
		}
	}
	return false
}
