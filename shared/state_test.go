// Copyright (C) 2023 Huawei Technologies Co., Ltd. All rights reserved.
// SPDX-License-Identifier: MIT

package shared

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"

	"flagrace/core"
)

func TestFreshStateFlagsUnset(t *testing.T) {
	for _, m := range core.Modes() {
		for _, safe := range []bool{false, true} {
			s := New(m, Config{SafeLog: safe})
			t.Run(m.String(), func(t *testing.T) {
				assert.False(t, s.Get(&s.A))
				assert.False(t, s.Get(&s.B))
				assert.False(t, s.Get(&s.Ready))
				for i := range s.Slots {
					assert.False(t, s.Get(&s.Slots[i].Ready))
				}
				assert.Equal(t, "", s.Snapshot())
			})
		}
	}
}

func TestFlagOrderings(t *testing.T) {
	for _, o := range []core.Ordering{core.Relaxed, core.Release, core.Acquire, core.SeqCst, core.Invalid} {
		t.Run(o.String(), func(t *testing.T) {
			var f Flag
			assert.False(t, f.Load(o))
			f.Store(true, o)
			assert.True(t, f.Load(o))
			assert.True(t, f.Load(core.SeqCst))
			f.Store(false, o)
			assert.False(t, f.Load(core.Relaxed))
		})
	}
}

func TestStateSetGet(t *testing.T) {
	s := New(core.ModeSeqCst, Config{})
	s.Set(&s.A, true)
	assert.True(t, s.Get(&s.A))
	assert.False(t, s.Get(&s.B))
	assert.Equal(t, core.ModeSeqCst, s.Mode())
}

func TestUnsyncLog(t *testing.T) {
	var l UnsyncLog
	assert.Equal(t, "", l.Snapshot())
	l.Append('!')
	l.Append('!')
	assert.Equal(t, "!!", l.Snapshot())
	for i := 0; i < 2*logCapacity; i++ {
		l.Append('x')
	}
	assert.Len(t, l.Snapshot(), logCapacity)
}

func TestLockedLogConcurrent(t *testing.T) {
	const writers = 64
	var (
		l  LockedLog
		wg sync.WaitGroup
	)
	wg.Add(writers)
	for i := 0; i < writers; i++ {
		go func() {
			defer wg.Done()
			l.Append('!')
		}()
	}
	wg.Wait()
	assert.Len(t, l.Snapshot(), writers)
}

func TestSafeLogSelection(t *testing.T) {
	_, ok := New(core.ModeRelaxed, Config{}).log.(*UnsyncLog)
	assert.True(t, ok)
	_, ok = New(core.ModeRelaxed, Config{SafeLog: true}).log.(*LockedLog)
	assert.True(t, ok)
}

func TestPayload(t *testing.T) {
	var p Payload
	ok, n := p.Verify()
	assert.False(t, ok)
	assert.Equal(t, 0, n)

	p.Fill()
	ok, n = p.Verify()
	assert.True(t, ok)
	assert.Equal(t, PayloadLen, n)
	assert.Equal(t, uint64(10), p[9])

	p[4] = 0
	ok, n = p.Verify()
	assert.False(t, ok)
	assert.Equal(t, PayloadLen-1, n)
}

func TestSlots(t *testing.T) {
	assert.Len(t, New(core.ModeFence, Config{}).Slots, DefaultSlots)
	assert.Len(t, New(core.ModeFence, Config{Slots: 3}).Slots, 3)
	assert.Nil(t, New(core.ModeSeqCst, Config{}).Slots)
	assert.NotEqual(t, SlotValue(0), SlotValue(1))
}

func TestFence(t *testing.T) {
	s := New(core.ModeFence, Config{})
	s.Fence(core.Relaxed)
	assert.Equal(t, uint32(0), s.fence)
	s.Fence(core.Release)
	assert.Equal(t, uint32(1), s.fence)
	s.Slots[0].Ready.Store(true, core.Release)
	s.Fence(core.Acquire, &s.Slots[0].Ready)
	s.Fence(core.SeqCst)
	assert.Equal(t, uint32(2), s.fence)
}
