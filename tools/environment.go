// Copyright (C) 2023 Huawei Technologies Co., Ltd. All rights reserved.
// SPDX-License-Identifier: MIT

package tools

import (
	"os"
	"sort"
	"strconv"
	"sync"
	"time"

	"flagrace/logger"
)

// Envvar describes an environment variable understood by flagrace.
type Envvar struct {
	Name string
	Defv string
	Desc string
}

var (
	envMu   sync.Mutex
	envvars = map[string]Envvar{}
)

// RegEnv registers an environment variable with its default value and a
// description for the help message. Registering a name twice keeps the
// last registration.
func RegEnv(name, defv, desc string) {
	envMu.Lock()
	defer envMu.Unlock()
	envvars[name] = Envvar{Name: name, Defv: defv, Desc: desc}
}

// GetEnvvars returns all registered environment variables sorted by name.
func GetEnvvars() []Envvar {
	envMu.Lock()
	defer envMu.Unlock()
	var evs []Envvar
	for _, ev := range envvars {
		evs = append(evs, ev)
	}
	sort.Slice(evs, func(i, j int) bool { return evs[i].Name < evs[j].Name })
	return evs
}

// GetEnv returns the value of a registered environment variable or its
// default value if unset.
func GetEnv(name string) string {
	if val, has := os.LookupEnv(name); has {
		return val
	}
	envMu.Lock()
	defer envMu.Unlock()
	ev, ok := envvars[name]
	if !ok {
		logger.Debugf("environment variable %s not registered", name)
	}
	return ev.Defv
}

// GetEnvInt parses GetEnv(name) as an integer. Unparsable values are
// reported and replaced by defv.
func GetEnvInt(name string, defv int) int {
	s := GetEnv(name)
	if s == "" {
		return defv
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		logger.Warnf("ignoring %s=%q: %v", name, s, err)
		return defv
	}
	return v
}

// GetEnvDuration parses GetEnv(name) as a duration, e.g., 500ms or 2s.
// Unparsable values are reported and replaced by defv.
func GetEnvDuration(name string, defv time.Duration) time.Duration {
	s := GetEnv(name)
	if s == "" {
		return defv
	}
	v, err := time.ParseDuration(s)
	if err != nil {
		logger.Warnf("ignoring %s=%q: %v", name, s, err)
		return defv
	}
	return v
}
