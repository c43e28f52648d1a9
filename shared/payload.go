// Copyright (C) 2023 Huawei Technologies Co., Ltd. All rights reserved.
// SPDX-License-Identifier: MIT

package shared

// PayloadLen is the number of elements of a published payload.
const PayloadLen = 10

// Payload is the non-atomic data a writer publishes behind a flag.
type Payload [PayloadLen]uint64

// Fill writes element i as i+1 with plain stores.
func (p *Payload) Fill() {
	for i := range p {
		p[i] = uint64(i + 1)
	}
}

// Verify reports whether the payload was fully written and how many
// elements hold their final value.
func (p *Payload) Verify() (bool, int) {
	n := 0
	for i := range p {
		if p[i] == uint64(i+1) {
			n++
		}
	}
	return n == len(p), n
}

// Slot is one element of the fence demonstration: a value computed by its
// own writer and the flag announcing it.
type Slot struct {
	Data  uint64
	Ready Flag
}

// SlotValue is the value the writer of slot i stores.
func SlotValue(i int) uint64 {
	return uint64(i+1) * 0x9e3779b97f4a7c15
}
