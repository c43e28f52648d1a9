// Copyright (C) 2023 Huawei Technologies Co., Ltd. All rights reserved.
// SPDX-License-Identifier: MIT

package core

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseMode(t *testing.T) {
	testCases := []struct {
		in   string
		mode Mode
		err  bool
	}{
		{in: "relaxed", mode: ModeRelaxed},
		{in: "release-acquire", mode: ModeReleaseAcquire},
		{in: "release_acquire_demo", mode: ModeReleaseAcquire},
		{in: "SeqCst", mode: ModeSeqCst},
		{in: " fence ", mode: ModeFence},
		{in: "", err: true},
		{in: "acquire", err: true},
	}
	for _, tc := range testCases {
		t.Run(tc.in, func(t *testing.T) {
			m, err := ParseMode(tc.in)
			if tc.err {
				assert.True(t, errors.Is(err, ErrInvalidParameter))
				assert.False(t, m.Valid())
				return
			}
			assert.Nil(t, err)
			assert.Equal(t, tc.mode, m)
		})
	}
}

func TestModeRoundTrip(t *testing.T) {
	for _, m := range Modes() {
		t.Run(m.String(), func(t *testing.T) {
			p, err := ParseMode(m.String())
			assert.Nil(t, err)
			assert.Equal(t, m, p)
		})
	}
	assert.Equal(t, "Mode(0)", InvalidMode.String())
}

func TestModeOrderings(t *testing.T) {
	for _, m := range Modes() {
		t.Run(m.String(), func(t *testing.T) {
			assert.True(t, Store.Allows(m.StoreOrdering()))
			assert.True(t, Load.Allows(m.LoadOrdering()))
		})
	}
	assert.Equal(t, Release, ModeReleaseAcquire.StoreOrdering())
	assert.Equal(t, Acquire, ModeReleaseAcquire.LoadOrdering())
	assert.Equal(t, Relaxed, ModeFence.LoadOrdering())
	assert.Equal(t, Invalid, InvalidMode.StoreOrdering())
}

func TestOutcomeSets(t *testing.T) {
	for _, m := range Modes() {
		t.Run(m.String(), func(t *testing.T) {
			for _, o := range ExpectedOutcomes(m) {
				assert.True(t, IsAllowed(m, o))
				assert.False(t, IsForbidden(m, o))
			}
			for _, o := range ForbiddenOutcomes(m) {
				assert.True(t, IsAllowed(m, o))
			}
			assert.False(t, IsAllowed(m, TimedOut))
		})
	}
	assert.True(t, IsForbidden(ModeSeqCst, TwoMarks))
	assert.False(t, IsForbidden(ModeRelaxed, TwoMarks))
	assert.Contains(t, ExpectedOutcomes(ModeRelaxed), TwoMarks)
	assert.NotContains(t, ExpectedOutcomes(ModeSeqCst), TwoMarks)
	assert.Equal(t, `""`, NoMark.Label())
	assert.Equal(t, `"!!"`, TwoMarks.Label())
}
