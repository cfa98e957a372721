// Copyright 2014-2025 Ulrich Kunitz. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package xlog

import (
	"bytes"
	"log"
	"os"
	"strings"
	"testing"
)

func TestNilLogger(t *testing.T) {
	var l Logger
	Print(l, "a")
	Printf(l, "%d", 1)
	Println(l, "b")
}

func TestPrintf(t *testing.T) {
	var buf bytes.Buffer
	l := log.New(&buf, "test: ", 0)
	Printf(l, "code %d", 256)
	Print(l, "eod")
	Println(l, "clear")
	want := "test: code 256\ntest: eod\ntest: clear\n"
	if s := buf.String(); s != want {
		t.Fatalf("output %q; want %q", s, want)
	}
}

func TestLevels(t *testing.T) {
	var buf bytes.Buffer
	SetOutput(&buf)
	SetPrefix("xlog: ")
	defer func() {
		SetOutput(os.Stderr)
		SetPrefix("")
		SetLevel(LevelNormal)
	}()

	tests := []struct {
		level   Level
		verbose bool
		debug   bool
		warn    bool
		std     bool
	}{
		{LevelQuiet, false, false, false, false},
		{LevelNormal, false, false, true, false},
		{LevelVerbose, true, false, true, false},
		{LevelDebug, true, true, true, true},
	}
	for _, tc := range tests {
		SetLevel(tc.level)
		if l := GetLevel(); l != tc.level {
			t.Fatalf("GetLevel() = %d; want %d", l, tc.level)
		}
		buf.Reset()
		Verbosef("verbose %d", tc.level)
		if got := strings.Contains(buf.String(), "verbose"); got != tc.verbose {
			t.Errorf("level %d: verbose output %t; want %t",
				tc.level, got, tc.verbose)
		}
		buf.Reset()
		Debugf("debug %d", tc.level)
		if got := strings.Contains(buf.String(), "debug"); got != tc.debug {
			t.Errorf("level %d: debug output %t; want %t",
				tc.level, got, tc.debug)
		}
		buf.Reset()
		Warn("warning")
		if got := buf.String() == "xlog: warning\n"; got != tc.warn {
			t.Errorf("level %d: warn output %q", tc.level, buf.String())
		}
		if got := Std(LevelDebug) != nil; got != tc.std {
			t.Errorf("level %d: Std(LevelDebug) != nil is %t;"+
				" want %t", tc.level, got, tc.std)
		}
	}
}
