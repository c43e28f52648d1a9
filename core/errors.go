// Copyright (C) 2023 Huawei Technologies Co., Ltd. All rights reserved.
// SPDX-License-Identifier: MIT

package core

import "errors"

var (
	// ErrInvalidParameter is returned when a session is requested with an
	// unknown mode or a non-positive number of repetitions. Nothing runs.
	ErrInvalidParameter = errors.New("invalid parameter")
	// ErrTimeout is returned when a reader gave up waiting on a flag.
	ErrTimeout = errors.New("timeout")
)
