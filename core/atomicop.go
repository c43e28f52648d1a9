// Copyright (C) 2023 Huawei Technologies Co., Ltd. All rights reserved.
// SPDX-License-Identifier: MIT

package core

//go:generate go run golang.org/x/tools/cmd/stringer -type=AtomicOp

// AtomicOp represents types of atomic operations performed on a flag
type AtomicOp int

const (
	// InvalidOp represents a InvalidOp operation
	InvalidOp AtomicOp = iota
	// Fence represents a standalone Fence operation
	Fence
	// Load represents a Load operation
	Load
	// Store represents a Store operation
	Store
)

// GetOrdering returns the ordering of an atomic operation given a bit pair.
// Bit pairs that the operation cannot carry, such as a releasing load,
// return Invalid.
func (op AtomicOp) GetOrdering(val int) Ordering {
	return orderMap[op][val]
}

// Allows reports whether the operation can be performed with ordering o.
func (op AtomicOp) Allows(o Ordering) bool {
	bits := o.Bits()
	if bits < 0 {
		return false
	}
	return op.GetOrdering(bits) == o
}
