// Copyright (C) 2023 Huawei Technologies Co., Ltd. All rights reserved.
// SPDX-License-Identifier: MIT

package main

import (
	"context"
	"fmt"
	"runtime"

	"github.com/spf13/cobra"

	"flagrace/collector"
	"flagrace/core"
)

const cpuFactor = 2

var compareFlags = struct {
	modes    []string
	parallel uint
}{}

var compareCmd = cobra.Command{
	Use:   "compare [flags]",
	Short: "Runs one session per mode and prints their tallies side by side",
	Args:  IsNoArgs,
	RunE:  compareRun,

	DisableFlagsInUseLine: true,
}

func initCompare() {
	flags := compareCmd.PersistentFlags()
	flags.StringSliceVar(&compareFlags.modes, "modes", []string{"relaxed", "seqcst"}, "list of modes to compare")
	flags.UintVarP(&compareFlags.parallel, "parallel", "p", 0, "sessions running at once, 0 for half of the CPUs")
	addSessionFlags(flags)
	rootCmd.AddCommand(&compareCmd)
}

func compareRun(_ *cobra.Command, _ []string) error {
	var (
		ctx   = context.Background()
		modes []core.Mode
	)
	for _, s := range compareFlags.modes {
		m, err := core.ParseMode(s)
		if err != nil {
			return classify(err)
		}
		modes = append(modes, m)
	}
	if len(modes) == 0 {
		return cerror(paramError, fmt.Errorf("%w: no modes to compare", core.ErrInvalidParameter))
	}

	c := newCollector(collector.Config{
		Parallel: int(defaultInstances(compareFlags.parallel)),
	})

	tallies, err := c.Compare(ctx, modes, runFlags.repetitions)
	if tallies == nil {
		return classify(err)
	}
	if perr := printTallies(ctx, tallies...); perr != nil {
		return perr
	}
	return classify(err)
}

// defaultInstances returns nb or, if zero, half of the CPUs: every session
// occupies at least two of them.
func defaultInstances(nb uint) uint {
	if nb != 0 {
		return nb
	}
	cpus := uint(runtime.NumCPU())
	if cpus == 1 {
		return 1
	}
	return cpus / cpuFactor
}
