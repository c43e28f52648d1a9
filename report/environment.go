// Copyright (C) 2023 Huawei Technologies Co., Ltd. All rights reserved.
// SPDX-License-Identifier: MIT

package report

import (
	"context"
	"runtime"

	"github.com/shirou/gopsutil/v3/cpu"

	"flagrace/logger"
)

// Environment describes the host a session ran on. Outcome distributions
// depend on it, so it is printed with every report.
type Environment struct {
	GOOS        string `json:"goos"`
	GOARCH      string `json:"goarch"`
	GOMAXPROCS  int    `json:"gomaxprocs"`
	LogicalCPUs int    `json:"logical_cpus"`
	Model       string `json:"cpu_model,omitempty"`
}

// DetectEnvironment inspects the host. CPU details that cannot be read are
// left empty.
func DetectEnvironment(ctx context.Context) Environment {
	env := Environment{
		GOOS:        runtime.GOOS,
		GOARCH:      runtime.GOARCH,
		GOMAXPROCS:  runtime.GOMAXPROCS(0),
		LogicalCPUs: runtime.NumCPU(),
	}
	if n, err := cpu.CountsWithContext(ctx, true); err == nil && n > 0 {
		env.LogicalCPUs = n
	} else if err != nil {
		logger.Debugf("could not count cpus: %v", err)
	}
	infos, err := cpu.InfoWithContext(ctx)
	if err != nil {
		logger.Debugf("could not read cpu info: %v", err)
		return env
	}
	if len(infos) > 0 {
		env.Model = infos[0].ModelName
	}
	return env
}
