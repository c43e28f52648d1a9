// Copyright (C) 2023 Huawei Technologies Co., Ltd. All rights reserved.
// SPDX-License-Identifier: MIT

//go:build race
// +build race

package race

// the unsynchronized log and relaxed flags are racy on purpose
const raceEnabled = true
