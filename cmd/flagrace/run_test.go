// Copyright (C) 2023 Huawei Technologies Co., Ltd. All rights reserved.
// SPDX-License-Identifier: MIT

package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"flagrace/collector"
	"flagrace/core"
)

func TestRunRejectsParameters(t *testing.T) {
	testCases := []struct {
		mode string
		n    int
	}{
		{mode: "bogus", n: 10},
		{mode: "seqcst", n: 0},
		{mode: "relaxed", n: -1},
	}
	for _, tc := range testCases {
		t.Run(fmt.Sprintf("%s/%d", tc.mode, tc.n), func(t *testing.T) {
			mock := &collector.Mock{}
			setup(t, mock)
			runFlags.mode = tc.mode
			runFlags.repetitions = tc.n

			err := runRun(nil, nil)
			assert.True(t, errors.Is(err, core.ErrInvalidParameter))
			assert.Equal(t, 1, getErrorCode(err))
			assert.Equal(t, "paramError", getErrorType(err))
			assert.Zero(t, mock.Calls)
		})
	}
}

func TestRunTable(t *testing.T) {
	mock := &collector.Mock{Script: []collector.MockTrial{{Outcome: core.OneMark}, {Outcome: core.NoMark}}}
	out := setup(t, mock)
	runFlags.stats = true

	require.Nil(t, runRun(nil, nil))
	assert.Equal(t, 10, mock.Calls)
	assert.Contains(t, out.String(), "Trials    : 10 of 10")
	assert.Contains(t, out.String(), "50.00%")
	assert.Contains(t, out.String(), "== TIMING ==")
}

func TestRunJSON(t *testing.T) {
	mock := &collector.Mock{Script: []collector.MockTrial{{Outcome: core.OneMark}}}
	out := setup(t, mock)
	runFlags.json = true
	runFlags.repetitions = 4

	require.Nil(t, runRun(nil, nil))
	var doc struct {
		Mode   string         `json:"mode"`
		Counts map[string]int `json:"counts"`
	}
	require.Nil(t, json.Unmarshal(out.Bytes(), &doc))
	assert.Equal(t, "seqcst", doc.Mode)
	assert.Equal(t, map[string]int{"!": 4}, doc.Counts)
}

func TestRunFailFast(t *testing.T) {
	mock := &collector.Mock{Script: []collector.MockTrial{
		{Outcome: core.Visible},
		{Err: fmt.Errorf("%w: no progress", core.ErrTimeout)},
	}}
	setup(t, mock)
	runFlags.mode = "release-acquire"
	runFlags.failFast = true

	err := runRun(nil, nil)
	assert.True(t, errors.Is(err, core.ErrTimeout))
	assert.Equal(t, 1, getErrorCode(err))
	assert.Equal(t, 2, mock.Calls)
}

func TestRunOutputAndCSV(t *testing.T) {
	var (
		dir    = t.TempDir()
		output = filepath.Join(dir, "report.txt")
		csv    = filepath.Join(dir, "log.csv")
		mock   = &collector.Mock{Script: []collector.MockTrial{{Outcome: core.OneMark}}}
	)
	setup(t, mock)
	runFlags.outputFn = output
	runFlags.csvFile = csv

	require.Nil(t, runRun(nil, nil))
	require.Nil(t, runRun(nil, nil))

	b, err := os.ReadFile(output)
	require.Nil(t, err)
	assert.Contains(t, string(b), "== OUTCOMES ==")

	b, err = os.ReadFile(csv)
	require.Nil(t, err)
	lines := strings.Split(strings.TrimSpace(string(b)), "\n")
	require.Len(t, lines, 3)
	assert.True(t, strings.HasPrefix(lines[0], "# date"))
	assert.Contains(t, lines[1], `, seqcst, 10, 10, 0, "!"=10, `)
	assert.True(t, strings.HasSuffix(lines[2], ", -, none, 0"))
}

func TestRunJSONOutputFile(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "report.json")
	setup(t, &collector.Mock{Script: []collector.MockTrial{{Outcome: core.NoMark}}})
	runFlags.json = true
	runFlags.outputFn = fn

	require.Nil(t, runRun(nil, nil))
	b, err := os.ReadFile(fn)
	require.Nil(t, err)
	var doc struct {
		Counts map[string]int `json:"counts"`
	}
	require.Nil(t, json.Unmarshal(b, &doc))
	assert.Equal(t, map[string]int{"": 10}, doc.Counts)
}

func TestRunRealRacer(t *testing.T) {
	out := setup(t, nil)
	runFlags.mode = "release-acquire"
	runFlags.repetitions = 50

	require.Nil(t, runRun(nil, nil))
	assert.Contains(t, out.String(), "Trials    : 50 of 50")
}

func TestIsNoArgs(t *testing.T) {
	assert.Nil(t, IsNoArgs(nil, nil))
	err := IsNoArgs(nil, []string{"x"})
	assert.True(t, errors.Is(err, core.ErrInvalidParameter))
}
