// Copyright (C) 2023 Huawei Technologies Co., Ltd. All rights reserved.
// SPDX-License-Identifier: MIT

// Package shared holds the state two racing tasks share during a single run.
// A State is built fresh for every run and never reused.
package shared

import (
	"sync/atomic"

	"flagrace/core"
)

// DefaultSlots is the number of slots of the fence demonstration.
const DefaultSlots = 10

// Config selects the variant of the shared state.
type Config struct {
	SafeLog bool // guard the log with a mutex instead of leaving it unsynchronized
	Slots   int  // number of fence demonstration slots, DefaultSlots if zero
}

// State is the shared state of one run under one mode.
type State struct {
	mode core.Mode

	A Flag
	B Flag

	Ready   Flag
	Payload Payload

	Slots []Slot

	log   Log
	fence uint32
}

// New returns a fresh state for one run of mode m.
func New(m core.Mode, cfg Config) *State {
	s := &State{mode: m}
	if cfg.SafeLog {
		s.log = &LockedLog{}
	} else {
		s.log = &UnsyncLog{}
	}
	if m == core.ModeFence {
		n := cfg.Slots
		if n <= 0 {
			n = DefaultSlots
		}
		s.Slots = make([]Slot, n)
	}
	return s
}

// Mode returns the mode the state was built for.
func (s *State) Mode() core.Mode {
	return s.mode
}

// Set stores v to f with the store ordering of the mode.
func (s *State) Set(f *Flag, v bool) {
	f.Store(v, s.mode.StoreOrdering())
}

// Get loads f with the load ordering of the mode.
func (s *State) Get(f *Flag) bool {
	return f.Load(s.mode.LoadOrdering())
}

// Append adds c to the log.
func (s *State) Append(c byte) {
	s.log.Append(c)
}

// Snapshot returns the log contents.
func (s *State) Snapshot() string {
	return s.log.Snapshot()
}

// Fence issues a standalone fence of ordering o.
//
// Go has no standalone fence, so one is built from atomics. The release
// half is a sequentially consistent read-modify-write of the state's fence
// word. The acquire half re-reads each flag in observed atomically; a flag
// that a preceding relaxed load saw set is seen set again and the re-read
// synchronizes with the releasing store, which is the edge an acquire fence
// after that relaxed load would establish.
func (s *State) Fence(o core.Ordering, observed ...*Flag) {
	if !core.Fence.Allows(o) || o == core.Relaxed {
		return
	}
	if o.Releases() {
		atomic.AddUint32(&s.fence, 1)
	}
	if o.Acquires() {
		// the values are already known, these loads only order what follows
		for _, f := range observed {
			_ = f.Load(core.Acquire)
		}
		_ = atomic.LoadUint32(&s.fence)
	}
}
