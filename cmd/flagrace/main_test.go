// Copyright (C) 2023 Huawei Technologies Co., Ltd. All rights reserved.
// SPDX-License-Identifier: MIT

package main

import (
	"bytes"
	"os"
	"testing"
	"time"

	"github.com/fatih/color"

	"flagrace/collector"
	"flagrace/logger"
	"flagrace/race"
	"flagrace/shared"
)

// setup resets the flags to their defaults, routes the racers to mock and
// captures the output.
func setup(t *testing.T, mock *collector.Mock) *bytes.Buffer {
	var buf bytes.Buffer
	color.NoColor = true
	logger.SetOutput(&buf)
	logger.SetLevel(logger.ERROR)

	rootFlags.log = "ERROR"
	rootFlags.debug = false
	rootFlags.quiet = false
	rootFlags.color = "never"
	runFlags.mode = "seqcst"
	runFlags.repetitions = 10
	runFlags.timeout = time.Second
	runFlags.failFast = false
	runFlags.safeLog = false
	runFlags.slots = shared.DefaultSlots
	runFlags.json = false
	runFlags.stats = false
	runFlags.csvFile = ""
	runFlags.outputFn = ""
	checkFlags.requireExpected = false
	checkFlags.maxTimeouts = 0
	compareFlags.modes = []string{"relaxed", "seqcst"}
	compareFlags.parallel = 0

	prev := newRacer
	if mock != nil {
		newRacer = func(race.Config) collector.Racer { return mock }
	}
	t.Cleanup(func() {
		newRacer = prev
		logger.SetFileDescriptor(os.Stdout)
	})
	return &buf
}
