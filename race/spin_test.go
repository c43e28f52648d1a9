// Copyright (C) 2023 Huawei Technologies Co., Ltd. All rights reserved.
// SPDX-License-Identifier: MIT

package race

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"flagrace/core"
	"flagrace/shared"
)

func TestWaitFlagSet(t *testing.T) {
	var f shared.Flag
	f.Store(true, core.Release)
	assert.Nil(t, WaitFlag(context.Background(), &f, core.Acquire, time.Millisecond))
}

func TestWaitFlagTimeout(t *testing.T) {
	var f shared.Flag
	ts := time.Now()
	err := WaitFlag(context.Background(), &f, core.Acquire, 10*time.Millisecond)
	assert.True(t, errors.Is(err, core.ErrTimeout))
	assert.GreaterOrEqual(t, time.Since(ts), 10*time.Millisecond)
	assert.Less(t, time.Since(ts), 5*time.Second)
}

func TestWaitFlagCanceled(t *testing.T) {
	var f shared.Flag
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err := WaitFlag(ctx, &f, core.SeqCst, time.Hour)
	assert.True(t, errors.Is(err, context.Canceled))
}

func TestWaitFlagLateStore(t *testing.T) {
	var f shared.Flag
	go func() {
		time.Sleep(5 * time.Millisecond)
		f.Store(true, core.SeqCst)
	}()
	assert.Nil(t, WaitFlag(context.Background(), &f, core.SeqCst, time.Second))
}

func TestBackoffDefaultTimeout(t *testing.T) {
	b := newBackoff(0)
	assert.Equal(t, DefaultSpinTimeout, b.timeout)
	assert.Equal(t, minSleep, b.sleep)
}
