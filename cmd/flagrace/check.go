// Copyright (C) 2023 Huawei Technologies Co., Ltd. All rights reserved.
// SPDX-License-Identifier: MIT

package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"flagrace/checker"
	"flagrace/collector"
	"flagrace/logger"
)

var checkFlags = struct {
	requireExpected bool
	maxTimeouts     int
}{}

var checkCmd = cobra.Command{
	Use:   "check [flags]",
	Short: "Runs a session and checks the tally against the ordering contract of the mode",
	Args:  IsNoArgs,
	RunE:  checkRun,

	DisableFlagsInUseLine: true,
}

func initCheck() {
	flags := checkCmd.PersistentFlags()
	addRunFlags(flags)
	flags.BoolVar(&checkFlags.requireExpected, "require-expected", false,
		"fail if an outcome expected for the mode is never observed")
	flags.IntVar(&checkFlags.maxTimeouts, "max-timeouts", 0, "number of timed out trials tolerated")
	rootCmd.AddCommand(&checkCmd)
}

func checkResults(result checker.CheckResult, t *collector.Tally) (err error) {
	logger.Println("== CHECK =====================================")
	logger.Println()
	if result.Status != checker.CheckOK {
		logger.Println(result.Output)
		logger.Println()
		err = cfail(result.Status, fmt.Errorf("%s", result.Output))
	}
	if un := checker.Unobserved(t); len(un) > 0 {
		logger.Printf("Unobserved\n  %v\n\n", labels(un))
	}
	logger.Printf("Status\n  %v\n\n", result.Status)
	logger.Printf("Executions\n  %d\n", result.NumExecutions)
	logger.Println()
	return
}

func checkRun(_ *cobra.Command, _ []string) (err error) {
	var (
		ctx    = context.Background()
		t      *collector.Tally
		result checker.CheckResult
	)
	defer func() {
		if t != nil {
			csvReport{tally: t, status: result.Status.String(), err: err}.save(runFlags.csvFile)
		}
	}()

	t, err = runSession(ctx)
	if t == nil {
		return err
	}
	if err != nil {
		logger.Debugf("session aborted: %v", err)
	}
	if perr := printTallies(ctx, t.Snapshot()); perr != nil {
		return perr
	}

	result = checker.Check(t, checker.Config{
		RequireExpected: checkFlags.requireExpected,
		MaxTimeouts:     checkFlags.maxTimeouts,
	})
	if cerr := checkResults(result, t); cerr != nil {
		return cerr
	}
	return err
}
