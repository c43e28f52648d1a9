// Copyright (C) 2023 Huawei Technologies Co., Ltd. All rights reserved.
// SPDX-License-Identifier: MIT

package core

//go:generate go run golang.org/x/tools/cmd/stringer -type=Ordering

// Ordering represents the memory ordering of an atomic operation
type Ordering int

const (
	// Invalid  memory ordering
	Invalid Ordering = iota
	// SeqCst memory ordering
	SeqCst
	// Acquire memory ordering
	Acquire
	// Release memory ordering
	Release
	// Relaxed memory ordering
	Relaxed
)

const (
	releaseBit = 0b01
	acquireBit = 0b10
)

var (
	map4 = map[int]Ordering{
		0b00:                    Relaxed,
		releaseBit:              Release,
		acquireBit:              Acquire,
		acquireBit | releaseBit: SeqCst,
	}

	orderMap = map[AtomicOp]map[int]Ordering{
		Fence: map4,
		Load: {
			0b00:                    Relaxed,
			acquireBit:              Acquire,
			acquireBit | releaseBit: SeqCst,
		},
		Store: {
			0b00:                    Relaxed,
			releaseBit:              Release,
			acquireBit | releaseBit: SeqCst,
		},
	}
)

// Bits returns the acquire/release bit pair of the ordering, the inverse of
// AtomicOp.GetOrdering. Invalid has no bit pair and returns -1.
func (o Ordering) Bits() int {
	for bits, ord := range map4 {
		if ord == o {
			return bits
		}
	}
	return -1
}

// Acquires reports whether a load with this ordering synchronizes with a
// releasing store it observes.
func (o Ordering) Acquires() bool {
	return o != Invalid && o.Bits()&acquireBit != 0
}

// Releases reports whether a store with this ordering publishes the writes
// that precede it.
func (o Ordering) Releases() bool {
	return o != Invalid && o.Bits()&releaseBit != 0
}
