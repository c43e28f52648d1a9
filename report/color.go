// Copyright (C) 2023 Huawei Technologies Co., Ltd. All rights reserved.
// SPDX-License-Identifier: MIT

package report

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"golang.org/x/term"

	"flagrace/core"
)

var (
	noneColor = color.New(color.FgCyan).SprintFunc()
	oneColor  = color.New(color.FgGreen).SprintFunc()
	twoColor  = color.New(color.FgYellow).SprintFunc()
	badColor  = color.New(color.FgRed, color.Bold).SprintFunc()
	timeColor = color.New(color.FgBlue).SprintFunc()

	headerColor = color.New(color.BgCyan, color.FgBlack).SprintFunc()
)

// SetColor configures colored output: "always", "never", or "auto" to
// color only when standard output is a terminal.
func SetColor(when string) error {
	switch when {
	case "always":
		color.NoColor = false
	case "never":
		color.NoColor = true
	case "auto", "":
		color.NoColor = !term.IsTerminal(int(os.Stdout.Fd()))
	default:
		return fmt.Errorf("%w: unknown color mode '%s' (want auto|always|never)", core.ErrInvalidParameter, when)
	}
	return nil
}

func colorize(m core.Mode, o core.Outcome, s string) string {
	switch {
	case core.IsForbidden(m, o) || !core.IsAllowed(m, o):
		return badColor(s)
	case o == core.NoMark || o == core.Visible:
		return noneColor(s)
	case o == core.OneMark:
		return oneColor(s)
	case o == core.TwoMarks:
		return twoColor(s)
	default:
		return s
	}
}
