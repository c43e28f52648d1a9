// Copyright (C) 2023 Huawei Technologies Co., Ltd. All rights reserved.
// SPDX-License-Identifier: MIT

// Package logger implements a simple logger with a few error levels.
package logger

import (
	"bufio"
	"fmt"
	"io"
	"log"
	"os"
	"strings"
	"sync"

	"github.com/fatih/color"
)

// Level represents the amount of detail in which the log is output.
type Level int

const (
	fatal Level = iota
	// ERROR only log errors
	ERROR
	// WARN only log warnings and errors
	WARN
	// INFO log information, warnings and errors
	INFO
	// DEBUG log as much as possible
	DEBUG
)

var (
	// race tasks log from their own goroutines
	mu     sync.Mutex
	logger *bufio.Writer
	level  = ERROR

	prefixes = map[Level]string{
		ERROR: color.New(color.FgRed).Sprint("error: "),
		WARN:  color.New(color.FgYellow).Sprint("warn: "),
		INFO:  "",
		DEBUG: color.New(color.FgBlue).Sprint("debug: "),
	}
)

func init() {
	logger = bufio.NewWriter(os.Stdout)
}

// SetFileDescriptor sets the file descriptor to which the output is sent.
// If fd is nil, no output is shown.
func SetFileDescriptor(fd *os.File) {
	if fd == nil {
		SetOutput(nil)
		return
	}
	SetOutput(fd)
}

// SetOutput redirects the output to w. If w is nil, no output is shown.
func SetOutput(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	if w == nil {
		logger = nil
		return
	}
	logger = bufio.NewWriter(w)
}

// SetLevel reconfigures the error level of the logger.
func SetLevel(l Level) {
	mu.Lock()
	defer mu.Unlock()
	level = l
}

// GetLevel returns the current error level.
func GetLevel() Level {
	mu.Lock()
	defer mu.Unlock()
	return level
}

// ParseLevel maps a level name (ERROR|WARN|INFO|DEBUG) to a Level.
// Unknown names map to ERROR.
func ParseLevel(s string) Level {
	switch strings.ToUpper(s) {
	case "DEBUG":
		return DEBUG
	case "INFO":
		return INFO
	case "WARN":
		return WARN
	default:
		return ERROR
	}
}

// Fatal works as Error, but aborts the program.
func Fatal(args ...any) {
	Println(args...)
	fail()
}

// Fatalf works as Errorf, but aborts the program.
func Fatalf(format string, args ...any) {
	Printf(format, args...)
	Println()
	fail()
}

// Error works as fmt.Print, but it adds a newline at the end of the format string.
func Error(args ...any) {
	leveled(ERROR, fmt.Sprint(args...))
}

// Errorf works as fmt.Printf, but it adds a newline at the end of the format string.
func Errorf(format string, args ...any) {
	leveled(ERROR, fstr(format, args...))
}

// Warn works as fmt.Print when error level is WARN. It adds a newline at the end of the format string.
func Warn(args ...any) {
	leveled(WARN, fmt.Sprint(args...))
}

// Warnf works as fmt.Printf when error level is WARN. It adds a newline at the end of the format string.
func Warnf(format string, args ...any) {
	leveled(WARN, fstr(format, args...))
}

// Info works as fmt.Print when error level is INFO. It adds a newline at the end of the format string.
func Info(args ...any) {
	leveled(INFO, fmt.Sprint(args...))
}

// Infof works as fmt.Printf when error level is INFO. It adds a newline at the end of the format string.
func Infof(format string, args ...any) {
	leveled(INFO, fstr(format, args...))
}

// Debug works as fmt.Print when error level is DEBUG. It adds a newline at the end of the format string.
func Debug(args ...any) {
	leveled(DEBUG, fmt.Sprint(args...))
}

// Debugf works as fmt.Printf when error level is DEBUG. It adds a newline at the end of the format string.
func Debugf(format string, args ...any) {
	leveled(DEBUG, fstr(format, args...))
}

// Print works as fmt.Print, but flushes the file descriptor.
func Print(args ...any) {
	fprint(args...)
}

// Println works as fmt.Println, but flushes the file descriptor.
func Println(args ...any) {
	fprintln(args...)
}

// Printf works as fmt.Printf, but flushes the file descriptor.
func Printf(format string, args ...any) {
	fprint(fstr(format, args...))
}

var fstr = fmt.Sprintf

func leveled(l Level, msg string) {
	mu.Lock()
	defer mu.Unlock()
	if logger == nil || level < l {
		return
	}
	write(func(w io.Writer) (int, error) {
		return fmt.Fprintln(w, prefixes[l]+msg)
	})
}

func fprint(args ...any) {
	mu.Lock()
	defer mu.Unlock()
	write(func(w io.Writer) (int, error) {
		return fmt.Fprint(w, args...)
	})
}

func fprintln(args ...any) {
	mu.Lock()
	defer mu.Unlock()
	write(func(w io.Writer) (int, error) {
		return fmt.Fprintln(w, args...)
	})
}

// write must be called with mu held.
func write(f func(io.Writer) (int, error)) {
	if logger == nil {
		return
	}
	if _, err := f(logger); err != nil {
		fail()
	}
	if logger.Flush() != nil {
		fail()
	}
}

func fail() {
	// use fatal instead of panic to make linter happy
	log.Fatal()
}
