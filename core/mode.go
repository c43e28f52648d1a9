// Copyright (C) 2023 Huawei Technologies Co., Ltd. All rights reserved.
// SPDX-License-Identifier: MIT

package core

import (
	"fmt"
	"strings"
)

// Mode selects the experiment and the ordering discipline applied to every
// flag operation of a run.
type Mode int

const (
	// InvalidMode represents any unknown mode
	InvalidMode Mode = iota
	// ModeRelaxed runs the symmetric flag race with relaxed flags
	ModeRelaxed
	// ModeReleaseAcquire runs the one-writer/one-reader publish demonstration
	ModeReleaseAcquire
	// ModeSeqCst runs the symmetric flag race with sequentially consistent flags
	ModeSeqCst
	// ModeFence runs the multi-slot publish demonstration synchronized by an acquire fence
	ModeFence
)

var modeNames = map[Mode]string{
	ModeRelaxed:        "relaxed",
	ModeReleaseAcquire: "release-acquire",
	ModeSeqCst:         "seqcst",
	ModeFence:          "fence",
}

// Modes returns every valid mode in declaration order.
func Modes() []Mode {
	return []Mode{ModeRelaxed, ModeReleaseAcquire, ModeSeqCst, ModeFence}
}

// ModeNames returns the command line names of all valid modes.
func ModeNames() []string {
	var names []string
	for _, m := range Modes() {
		names = append(names, m.String())
	}
	return names
}

func (m Mode) String() string {
	if name, ok := modeNames[m]; ok {
		return name
	}
	return fmt.Sprintf("Mode(%d)", int(m))
}

// ParseMode parses a mode name as accepted on the command line.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "relaxed":
		return ModeRelaxed, nil
	case "release-acquire", "release_acquire", "acqrel", "release_acquire_demo":
		return ModeReleaseAcquire, nil
	case "seqcst", "seq_cst", "sc":
		return ModeSeqCst, nil
	case "fence":
		return ModeFence, nil
	default:
		return InvalidMode, fmt.Errorf("%w: unknown mode '%s' (want %s)",
			ErrInvalidParameter, s, strings.Join(ModeNames(), "|"))
	}
}

// Valid reports whether m is one of the known modes.
func (m Mode) Valid() bool {
	_, ok := modeNames[m]
	return ok
}

// StoreOrdering is the ordering of every flag store in a run of mode m.
func (m Mode) StoreOrdering() Ordering {
	switch m {
	case ModeRelaxed:
		return Relaxed
	case ModeReleaseAcquire, ModeFence:
		return Release
	case ModeSeqCst:
		return SeqCst
	default:
		return Invalid
	}
}

// LoadOrdering is the ordering of every flag load in a run of mode m.
// In fence mode the loads are relaxed and the acquire side is carried by
// a standalone fence.
func (m Mode) LoadOrdering() Ordering {
	switch m {
	case ModeRelaxed, ModeFence:
		return Relaxed
	case ModeReleaseAcquire:
		return Acquire
	case ModeSeqCst:
		return SeqCst
	default:
		return Invalid
	}
}

// Symmetric reports whether the mode runs the two-flag race rather than a
// publish demonstration.
func (m Mode) Symmetric() bool {
	return m == ModeRelaxed || m == ModeSeqCst
}
