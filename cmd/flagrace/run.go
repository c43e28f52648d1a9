// Copyright (C) 2023 Huawei Technologies Co., Ltd. All rights reserved.
// SPDX-License-Identifier: MIT

package main

import (
	"context"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"flagrace/collector"
	"flagrace/core"
	"flagrace/logger"
	"flagrace/race"
	"flagrace/report"
	"flagrace/shared"
	"flagrace/tools"
)

var runFlags = struct {
	mode        string
	repetitions int
	timeout     time.Duration
	failFast    bool
	safeLog     bool
	slots       int
	json        bool
	stats       bool
	csvFile     string
	outputFn    string
}{}

var runCmd = cobra.Command{
	Use:   "run [flags]",
	Short: "Runs a session of trials and prints the outcome tally",
	Args:  IsNoArgs,
	RunE:  runRun,

	DisableFlagsInUseLine: true,
}

func initRun() {
	addRunFlags(runCmd.PersistentFlags())
	rootCmd.AddCommand(&runCmd)
}

// addRunFlags adds the flags shared by every command that runs sessions.
func addRunFlags(flags *pflag.FlagSet) {
	flags.StringVarP(&runFlags.mode, "mode", "m", tools.GetEnv("FLAGRACE_DEFAULT_MODE"),
		"experiment and ordering ("+strings.Join(core.ModeNames(), "|")+")")
	addSessionFlags(flags)
	flags.StringVar(&runFlags.csvFile, "csv-log", "", "CSV file to append the final result to")
	flags.StringVarP(&runFlags.outputFn, "output", "o", "", "also write the report to this file")
}

// addSessionFlags adds the flags configuring the trials of a session.
func addSessionFlags(flags *pflag.FlagSet) {
	flags.IntVarP(&runFlags.repetitions, "repetitions", "n", tools.GetEnvInt("FLAGRACE_REPETITIONS", 10000),
		"number of trials")
	flags.DurationVar(&runFlags.timeout, "timeout", tools.GetEnvDuration("FLAGRACE_SPIN_TIMEOUT", race.DefaultSpinTimeout),
		"bound on a reader spinning on a flag, e.g., 500ms.\nA trial whose reader exceeds it is counted as a timeout")
	flags.BoolVar(&runFlags.failFast, "fail-fast", false, "abort the session at the first timed out trial")
	flags.BoolVar(&runFlags.safeLog, "safe-log", false, "guard the log with a mutex (contrast to the default unsynchronized log)")
	flags.IntVar(&runFlags.slots, "slots", shared.DefaultSlots, "number of slots in fence mode")
	flags.BoolVar(&runFlags.json, "json", false, "print the report as JSON")
	flags.BoolVar(&runFlags.stats, "stats", false, "print trial timing statistics")
}

// newRacer builds the racer of a session; tests replace it.
var newRacer = func(cfg race.Config) collector.Racer {
	return race.NewRunner(cfg)
}

func newCollector(ccfg collector.Config) *collector.Collector {
	cfg := race.Config{
		SpinTimeout: runFlags.timeout,
		SafeLog:     runFlags.safeLog,
		Slots:       runFlags.slots,
	}
	if cfg.SafeLog {
		logger.Info("using the mutex-guarded log")
	}
	ccfg.FailFast = runFlags.failFast
	return collector.NewCollector(ccfg, newRacer(cfg))
}

// runSession parses the mode and runs one session. The tally is nil only
// if the request was rejected before any trial.
func runSession(ctx context.Context) (*collector.Tally, error) {
	m, err := core.ParseMode(runFlags.mode)
	if err != nil {
		return nil, classify(err)
	}
	if err := collector.Validate(m, runFlags.repetitions); err != nil {
		return nil, classify(err)
	}
	t, err := newCollector(collector.Config{}).Run(ctx, m, runFlags.repetitions)
	return t, classify(err)
}

// printTallies prints the reports of the tallies in the selected format.
func printTallies(ctx context.Context, tallies ...*collector.Tally) error {
	var (
		env = report.DetectEnvironment(ctx)
		out strings.Builder
	)
	if runFlags.json {
		b, err := report.JSON(&env, tallies...)
		if err != nil {
			return cerror(internalError, err)
		}
		out.Write(b)
		out.WriteString("\n")
	} else {
		opts := report.Options{Env: &env, Timing: runFlags.stats}
		for _, t := range tallies {
			if t == nil {
				continue
			}
			out.WriteString(report.Table(t, opts))
		}
	}
	logger.Print(out.String())
	if fn := runFlags.outputFn; fn != "" {
		if err := tools.Dump(&out, fn); err != nil {
			logger.Warnf("could not write report: %v", err)
		}
	}
	return nil
}

func runRun(_ *cobra.Command, _ []string) (err error) {
	var (
		ctx = context.Background()
		t   *collector.Tally
	)
	defer func() {
		if t != nil {
			csvReport{tally: t, status: "-", err: err}.save(runFlags.csvFile)
		}
	}()

	t, err = runSession(ctx)
	if t == nil {
		return err
	}
	if perr := printTallies(ctx, t.Snapshot()); perr != nil && err == nil {
		err = perr
	}
	return err
}
