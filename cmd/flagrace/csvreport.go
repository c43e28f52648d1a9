// Copyright (C) 2023 Huawei Technologies Co., Ltd. All rights reserved.
// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"strings"
	"time"

	"flagrace/collector"
	"flagrace/logger"
	"flagrace/tools"
)

type csvReport struct {
	tally  *collector.Tally
	status string
	err    error
}

const (
	dateTime = "2006-01-02 15:04:05"
)

func (csv csvReport) counts() string {
	var parts []string
	for _, o := range csv.tally.Observed() {
		parts = append(parts, fmt.Sprintf("%s=%d", o.Label(), csv.tally.Count(o)))
	}
	return strings.Join(parts, ";")
}

func (csv csvReport) save(filename string) {
	if filename == "" {
		return
	}
	fp, withHeader, err := tools.OpenAppend(filename)
	if err != nil {
		logger.Errorf("could not open file: %v", filename)
		return
	}
	defer func() {
		if err := fp.Close(); err != nil {
			logger.Warnf("error closing file: %v", err)
		}
	}()

	if withHeader {
		fmt.Fprint(fp, "# date, session, mode, repetitions, trials, timeouts, counts, duration, status, error_type, exit_code")
		fmt.Fprintln(fp)
	}

	t := csv.tally
	fmt.Fprintf(fp, "%s, %v, %v, %d, %d, %d, %s, %v, %s, %s, %d\n",
		time.Now().Format(dateTime),
		t.Session,
		t.Mode,
		t.Requested,
		t.Trials(),
		t.Timeouts,
		csv.counts(),
		t.Elapsed,
		csv.status,
		getErrorType(csv.err),
		getErrorCode(csv.err))
}
