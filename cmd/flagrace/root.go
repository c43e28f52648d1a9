// Copyright (C) 2023 Huawei Technologies Co., Ltd. All rights reserved.
// SPDX-License-Identifier: MIT

// Package main is the flagrace program: it races tasks over shared flags
// under a chosen memory ordering and reports the outcomes it observed.
package main

import (
	"os"
	"strings"

	"github.com/spf13/cobra"

	"flagrace/core"
	"flagrace/logger"
	"flagrace/report"
	"flagrace/tools"
)

var rootCmd = cobra.Command{
	Use:           "flagrace",
	Short:         "Explore which outcomes memory orderings allow and which actually happen",
	Long:          "",
	SilenceUsage:  true,
	SilenceErrors: true,

	TraverseChildren: true,
	Run: func(cmd *cobra.Command, args []string) {
		logger.Println("run 'flagrace -h' for help")
	},
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		logger.SetLevel(logger.ParseLevel(rootFlags.log))
		if rootFlags.debug {
			logger.SetLevel(logger.DEBUG)
		}
		if rootFlags.quiet {
			logger.SetFileDescriptor(nil)
		}
		if err := report.SetColor(rootFlags.color); err != nil {
			return cerror(paramError, err)
		}
		return nil
	},
}

func init() {
	tools.RegEnv("FLAGRACE_DEFAULT_MODE", core.ModeSeqCst.String(), "Default mode ("+strings.Join(core.ModeNames(), "|")+")")
	tools.RegEnv("FLAGRACE_REPETITIONS", "10000", "Default number of trials per session")

	helpMessage :=
		`flagrace -- Empirical exploration of atomic memory orderings`

	helpMessage += "\n\nEnvironment Variables:"
	for _, ev := range tools.GetEnvvars() {
		helpMessage += "\n  " + ev.Name + " " +
			"(default: \"" + ev.Defv + "\")\n\t" + ev.Desc
	}
	rootCmd.Long = helpMessage

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&rootFlags.log, "log", "ERROR", "log level (ERROR|WARN|INFO|DEBUG)")
	flags.BoolVarP(&rootFlags.debug, "debug", "d", false, "set debug mode")
	flags.BoolVarP(&rootFlags.quiet, "quiet", "q", false, "do not produce output")
	flags.StringVar(&rootFlags.color, "color", "auto", "colored output (auto|always|never)")

	rootCmd.SetHelpCommand(&cobra.Command{Hidden: true})
	initRun()
	initCheck()
	initCompare()
}

var rootFlags struct {
	log   string
	debug bool
	quiet bool
	color string
}

type errCode struct {
	err  error
	code int
}

func handlePanic() {
	e := recover()
	if e == nil {
		return
	}
	exit, ok := e.(errCode)
	if !ok {
		panic(e)
	}
	if exit.err != nil {
		logger.Printf("panic: %v\n", exit.err)
	}
	os.Exit(exit.code)
}

func main() {
	if !rootFlags.debug {
		defer handlePanic()
	}
	if err := rootCmd.Execute(); err != nil {
		var (
			code = getErrorCode(err)
			msg  = getErrorMessage(err)
		)
		if msg != "" {
			logger.Println(msg)
		}
		os.Exit(code)
	}
}
