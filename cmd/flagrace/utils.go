// Copyright (C) 2023 Huawei Technologies Co., Ltd. All rights reserved.
// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"flagrace/core"
)

// IsNoArgs ensures there are no positional arguments
func IsNoArgs(_ *cobra.Command, args []string) error {
	if len(args) > 0 {
		return cerror(paramError, fmt.Errorf("%w: unexpected arguments %v", core.ErrInvalidParameter, args))
	}
	return nil
}

func labels(outcomes []core.Outcome) string {
	var ls []string
	for _, o := range outcomes {
		ls = append(ls, o.Label())
	}
	return strings.Join(ls, " ")
}
