// Copyright (C) 2023 Huawei Technologies Co., Ltd. All rights reserved.
// SPDX-License-Identifier: MIT

package shared

import (
	"sync/atomic"

	"flagrace/core"
)

// Flag is a single-bit signal shared between the tasks of one run.
//
// Go's sync/atomic operations are sequentially consistent, which satisfies
// Release, Acquire and SeqCst. Relaxed accesses are plain word-sized
// accesses: the Go memory model guarantees they are not torn but gives
// them no ordering, so the hardware is free to reorder them.
type Flag struct {
	v uint32
}

// Store writes the flag with ordering o. An ordering a store cannot carry
// is promoted to SeqCst.
func (f *Flag) Store(val bool, o core.Ordering) {
	if !core.Store.Allows(o) {
		o = core.SeqCst
	}
	var u uint32
	if val {
		u = 1
	}
	if o == core.Relaxed {
		f.storeRelaxed(u)
		return
	}
	atomic.StoreUint32(&f.v, u)
}

// Load reads the flag with ordering o. An ordering a load cannot carry is
// promoted to SeqCst.
func (f *Flag) Load(o core.Ordering) bool {
	if !core.Load.Allows(o) {
		o = core.SeqCst
	}
	if o == core.Relaxed {
		return f.loadRelaxed() != 0
	}
	return atomic.LoadUint32(&f.v) != 0
}

//go:noinline
func (f *Flag) storeRelaxed(u uint32) {
	f.v = u
}

//go:noinline
func (f *Flag) loadRelaxed() uint32 {
	return f.v
}
