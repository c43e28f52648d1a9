// Copyright (C) 2023 Huawei Technologies Co., Ltd. All rights reserved.
// SPDX-License-Identifier: MIT

package shared

import "sync"

// logCapacity bounds the log; a flag race appends at most twice.
const logCapacity = 8

// Log is the character sequence both race tasks append to.
type Log interface {
	Append(c byte)
	Snapshot() string
}

// UnsyncLog is appended to without any mutual exclusion. Concurrent appends
// may lose one another, which is the corruption the flags do not prevent.
// The fixed backing array keeps a lost update from ever indexing out of
// bounds.
type UnsyncLog struct {
	buf [logCapacity]byte
	n   int
}

// Append adds c to the log without synchronization.
func (l *UnsyncLog) Append(c byte) {
	n := l.n
	if n >= len(l.buf) {
		return
	}
	l.buf[n] = c
	l.n = n + 1
}

// Snapshot returns the log contents. It is only meaningful once every
// appending task has been joined.
func (l *UnsyncLog) Snapshot() string {
	return string(l.buf[:l.n])
}

// LockedLog is the mutex-guarded contrast to UnsyncLog.
type LockedLog struct {
	mu  sync.Mutex
	buf []byte
}

// Append adds c to the log.
func (l *LockedLog) Append(c byte) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.buf = append(l.buf, c)
}

// Snapshot returns a copy of the log contents.
func (l *LockedLog) Snapshot() string {
	l.mu.Lock()
	defer l.mu.Unlock()
	return string(l.buf)
}
