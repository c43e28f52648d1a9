// Copyright (C) 2023 Huawei Technologies Co., Ltd. All rights reserved.
// SPDX-License-Identifier: MIT

// Package tools contains helpers shared by the flagrace packages: the
// registry of environment variables and file utilities.
package tools

import (
	"errors"
	"fmt"
	"os"

	"flagrace/logger"
)

const fileMode = 0600

// FileExists returns nil if a file exists otherwise an error
func FileExists(fn string) error {
	if _, err := os.Stat(fn); errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("file does not exist: %s", fn)
	}
	return nil
}

// Dump writes the string representation of m to a file, truncating it.
func Dump(m fmt.Stringer, fn string) error {
	logger.Debugf("Dump file '%s'", fn)
	out, err := os.OpenFile(fn,
		os.O_TRUNC|os.O_WRONLY|os.O_CREATE, fileMode)
	if err != nil {
		return err
	}
	defer func() {
		if err := out.Close(); err != nil {
			logger.Warnf("error closing file: %v", err)
		}
	}()
	_, err = fmt.Fprint(out, m)
	return err
}

// OpenAppend opens fn for appending, creating it if needed. created is
// true if the file did not exist before.
func OpenAppend(fn string) (fp *os.File, created bool, err error) {
	created = FileExists(fn) != nil
	fp, err = os.OpenFile(fn, os.O_APPEND|os.O_WRONLY|os.O_CREATE, fileMode)
	return fp, created, err
}
