// Copyright 2014-2025 Ulrich Kunitz. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package xlog provides a Logger interface for optional debug output and a
leveled logger for the commands of the module.

Library packages accept a Logger, which is supported by the log.Logger type.
If the Logger interface is nil, the functions Print, Printf and Println don't
do anything, so a library doesn't need to check for the logger before
formatting.

The commands use the package-level functions Verbose, Verbosef, Debug,
Debugf, Warn, Warnf, Fatal and Fatalf. Verbose output requires LevelVerbose
and debug output LevelDebug, set with SetLevel; warnings are suppressed by
LevelQuiet.
*/
package xlog

import (
	"fmt"
	"io"
	"log"
	"os"
	"sync"
)

// Logger is the interface required for debug output. The log.Logger type
// supports this interface.
type Logger interface {
	Output(calldepth int, s string) error
}

// Print outputs the arguments using the logger. If the logger is nil nothing
// will be printed.
func Print(l Logger, v ...interface{}) {
	if l != nil {
		l.Output(2, fmt.Sprint(v...))
	}
}

// Printf prints the arguments using the format string. If the logger argument
// is nil nothing will be printed.
func Printf(l Logger, format string, v ...interface{}) {
	if l != nil {
		l.Output(2, fmt.Sprintf(format, v...))
	}
}

// Println prints the arguments and adds a newline. If the logger argument is
// nil nothing will be printed.
func Println(l Logger, v ...interface{}) {
	if l != nil {
		l.Output(2, fmt.Sprintln(v...))
	}
}

// Level controls the output of the package-level functions.
type Level int

// Levels supported by SetLevel.
const (
	LevelQuiet Level = iota - 1
	LevelNormal
	LevelVerbose
	LevelDebug
)

var (
	mu    sync.Mutex
	level = LevelNormal
	std   = log.New(os.Stderr, "", 0)
)

// SetLevel sets the output level.
func SetLevel(l Level) {
	mu.Lock()
	level = l
	mu.Unlock()
}

// GetLevel returns the output level.
func GetLevel() Level {
	mu.Lock()
	defer mu.Unlock()
	return level
}

// SetPrefix sets the prefix of the standard logger, usually the command
// name followed by a colon.
func SetPrefix(prefix string) { std.SetPrefix(prefix) }

// SetOutput sets the destination of the standard logger.
func SetOutput(w io.Writer) { std.SetOutput(w) }

// Std returns the standard logger if the level is at least l, otherwise
// it returns nil. The result can be used where a Logger is required.
func Std(l Level) Logger {
	if GetLevel() < l {
		return nil
	}
	return std
}

// Verbose writes its arguments if the level is LevelVerbose or higher.
func Verbose(v ...interface{}) {
	if GetLevel() >= LevelVerbose {
		std.Output(2, fmt.Sprint(v...))
	}
}

// Verbosef formats its arguments if the level is LevelVerbose or higher.
func Verbosef(format string, v ...interface{}) {
	if GetLevel() >= LevelVerbose {
		std.Output(2, fmt.Sprintf(format, v...))
	}
}

// Debug writes its arguments if the level is LevelDebug.
func Debug(v ...interface{}) {
	if GetLevel() >= LevelDebug {
		std.Output(2, fmt.Sprint(v...))
	}
}

// Debugf formats its arguments if the level is LevelDebug.
func Debugf(format string, v ...interface{}) {
	if GetLevel() >= LevelDebug {
		std.Output(2, fmt.Sprintf(format, v...))
	}
}

// Warn writes a warning unless the level is LevelQuiet.
func Warn(v ...interface{}) {
	if GetLevel() > LevelQuiet {
		std.Output(2, fmt.Sprint(v...))
	}
}

// Warnf formats a warning unless the level is LevelQuiet.
func Warnf(format string, v ...interface{}) {
	if GetLevel() > LevelQuiet {
		std.Output(2, fmt.Sprintf(format, v...))
	}
}

// Fatal writes its arguments and exits the program with status 1. The
// output is written regardless of the level.
func Fatal(v ...interface{}) {
	std.Output(2, fmt.Sprint(v...))
	os.Exit(1)
}

// Fatalf formats its arguments and exits the program with status 1.
func Fatalf(format string, v ...interface{}) {
	std.Output(2, fmt.Sprintf(format, v...))
	os.Exit(1)
}
