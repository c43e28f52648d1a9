// Copyright (C) 2023 Huawei Technologies Co., Ltd. All rights reserved.
// SPDX-License-Identifier: MIT

package main

import (
	"errors"
	"fmt"

	"flagrace/checker"
	"flagrace/core"
	"flagrace/logger"
)

type errorType int

const (
	noError errorType = iota
	internalError
	paramError
	timeoutError
	checkFail
)

var errorNames = map[errorType]string{
	noError:       "noError",
	internalError: "internalError",
	paramError:    "paramError",
	timeoutError:  "timeoutError",
	checkFail:     "checkFail",
}

// exit codes: every error is 1, except a failed check
var exitCodes = map[errorType]int{
	noError:       0,
	internalError: 1,
	paramError:    1,
	timeoutError:  1,
	checkFail:     2,
}

func (t errorType) String() string {
	if name, ok := errorNames[t]; ok {
		return name
	}
	return fmt.Sprintf("errorType(%d)", int(t))
}

type cliError struct {
	typ    errorType
	status checker.CheckStatus
	err    error
}

func cfail(s checker.CheckStatus, err error) *cliError {
	return &cliError{
		typ:    checkFail,
		status: s,
		err:    err,
	}
}

func (e *cliError) Error() string {
	switch e.typ {
	case checkFail:
		logger.Debugf("%v: %v", e.typ, e.status)
		return ""
	default:
		return e.err.Error()
	}
}

func (e *cliError) Unwrap() error {
	return e.err
}

func (e *cliError) Code() int {
	return exitCodes[e.typ]
}

func cerror(typ errorType, err error) *cliError {
	return &cliError{
		typ: typ,
		err: err,
	}
}

// classify wraps an error of a session with the matching error type.
func classify(err error) error {
	var ce *cliError
	switch {
	case err == nil:
		return nil
	case errors.As(err, &ce):
		return err
	case errors.Is(err, core.ErrInvalidParameter):
		return cerror(paramError, err)
	case errors.Is(err, core.ErrTimeout):
		return cerror(timeoutError, err)
	default:
		return cerror(internalError, err)
	}
}

func getErrorType(err error) string {
	if err == nil {
		return "none"
	}
	var ce *cliError
	if errors.As(err, &ce) {
		return ce.typ.String()
	}
	return internalError.String()
}

func getErrorCode(err error) int {
	if err == nil {
		return 0
	}
	var ce *cliError
	if errors.As(err, &ce) {
		return ce.Code()
	}
	return -1
}

func getErrorMessage(err error) string {
	if err == nil {
		return ""
	}
	return err.Error()
}
