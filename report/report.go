// Copyright (C) 2023 Huawei Technologies Co., Ltd. All rights reserved.
// SPDX-License-Identifier: MIT

// Package report renders session tallies as text tables or JSON documents.
package report

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"flagrace/collector"
	"flagrace/core"
)

const rule = "=============================================="

func section(title string) string {
	title = "== " + title + " "
	return headerColor(title+rule[len(title):]) + "\n\n"
}

// Options selects the optional parts of a report.
type Options struct {
	Env    *Environment
	Timing bool // print the trial durations of the session
}

// Table renders t as a text report.
func Table(t *collector.Tally, opts Options) string {
	var b strings.Builder

	b.WriteString(section("SESSION"))
	fmt.Fprintf(&b, "  Session   : %v\n", t.Session)
	fmt.Fprintf(&b, "  Mode      : %v (store %v, load %v)\n", t.Mode, t.Mode.StoreOrdering(), t.Mode.LoadOrdering())
	fmt.Fprintf(&b, "  Trials    : %d of %d\n", t.Trials(), t.Requested)
	fmt.Fprintf(&b, "  Timeouts  : %s\n", timeColor(fmt.Sprint(t.Timeouts)))
	fmt.Fprintf(&b, "  Elapsed   : %v\n", t.Elapsed.Round(time.Microsecond))
	if env := opts.Env; env != nil {
		fmt.Fprintf(&b, "  Host      : %s/%s, GOMAXPROCS=%d, %d cpus", env.GOOS, env.GOARCH, env.GOMAXPROCS, env.LogicalCPUs)
		if env.Model != "" {
			fmt.Fprintf(&b, ", %s", env.Model)
		}
		b.WriteString("\n")
	}
	b.WriteString("\n")

	b.WriteString(section("OUTCOMES"))
	for _, o := range t.Outcomes() {
		label := fmt.Sprintf("%-8s", o.Label())
		fmt.Fprintf(&b, "  %s %8d  %6.2f%%", colorize(t.Mode, o, label), t.Count(o), t.Percent(o))
		if core.IsForbidden(t.Mode, o) {
			b.WriteString("  (forbidden)")
		}
		b.WriteString("\n")
	}
	b.WriteString("\n")

	if opts.Timing && t.Stats != nil {
		b.WriteString(section("TIMING"))
		b.WriteString(t.Stats.String())
		b.WriteString("\n")
	}
	return b.String()
}

// Document is the JSON form of a report.
type Document struct {
	Session  string             `json:"session"`
	Mode     string             `json:"mode"`
	Trials   int                `json:"trials"`
	Timeouts int                `json:"timeouts"`
	Counts   *collector.Tally   `json:"counts"`
	Percent  map[string]float64 `json:"percent"`
	Elapsed  string             `json:"elapsed"`
	Env      *Environment       `json:"environment,omitempty"`
}

// NewDocument builds the JSON form of t.
func NewDocument(t *collector.Tally, env *Environment) Document {
	doc := Document{
		Session:  t.Session.String(),
		Mode:     t.Mode.String(),
		Trials:   t.Trials(),
		Timeouts: t.Timeouts,
		Counts:   t,
		Percent:  make(map[string]float64),
		Elapsed:  t.Elapsed.String(),
		Env:      env,
	}
	for o := range t.Counts {
		doc.Percent[string(o)] = t.Percent(o)
	}
	return doc
}

// JSON renders one document per tally, indented.
func JSON(env *Environment, tallies ...*collector.Tally) ([]byte, error) {
	var docs []Document
	for _, t := range tallies {
		if t != nil {
			docs = append(docs, NewDocument(t, env))
		}
	}
	if len(docs) == 1 {
		return json.MarshalIndent(docs[0], "", "  ")
	}
	return json.MarshalIndent(docs, "", "  ")
}
