// Copyright (C) 2023 Huawei Technologies Co., Ltd. All rights reserved.
// SPDX-License-Identifier: MIT

package race

import (
	"context"
	"fmt"
	"runtime"
	"time"

	"flagrace/core"
	"flagrace/shared"
)

const (
	// iterations that only yield before the backoff starts sleeping
	spinYields = 128
	minSleep   = time.Microsecond
	maxSleep   = time.Millisecond
)

// backoff bounds a busy wait: it first yields the processor, then sleeps
// with exponentially growing pauses until the deadline passes.
type backoff struct {
	deadline time.Time
	timeout  time.Duration
	spins    int
	sleep    time.Duration
}

func newBackoff(timeout time.Duration) *backoff {
	if timeout <= 0 {
		timeout = DefaultSpinTimeout
	}
	return &backoff{
		deadline: time.Now().Add(timeout),
		timeout:  timeout,
		sleep:    minSleep,
	}
}

// wait pauses once. It returns an error wrapping core.ErrTimeout once the
// deadline has passed, or the context error if ctx is done.
func (b *backoff) wait(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if b.spins < spinYields {
		b.spins++
		runtime.Gosched()
		return nil
	}
	if time.Now().After(b.deadline) {
		return fmt.Errorf("%w: no progress after %v", core.ErrTimeout, b.timeout)
	}
	time.Sleep(b.sleep)
	if b.sleep *= 2; b.sleep > maxSleep {
		b.sleep = maxSleep
	}
	return nil
}

// Until spins until cond holds, bounded by timeout.
func Until(ctx context.Context, timeout time.Duration, cond func() bool) error {
	b := newBackoff(timeout)
	for !cond() {
		if err := b.wait(ctx); err != nil {
			return err
		}
	}
	return nil
}

// WaitFlag spins until f, loaded with ordering o, reads true.
func WaitFlag(ctx context.Context, f *shared.Flag, o core.Ordering, timeout time.Duration) error {
	return Until(ctx, timeout, func() bool {
		return f.Load(o)
	})
}
