// Copyright 2025 Ulrich Kunitz. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command ocfcat decodes OCF compressed document blobs.
package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/kr/pretty"
	"github.com/ogier/pflag"

	"github.com/ulikunitz/ocf"
	"github.com/ulikunitz/ocf/lzw"
	"github.com/ulikunitz/ocf/xlog"
)

const usageStr = `Usage: ocfcat [OPTION]... [FILE]...
Decode FILEs compressed with OCF compression (by default, decode FILE.ocf
into FILE and remove FILE.ocf).

  -b, --base64       input is base64 encoded
  -c, --stdout       write to standard output and don't delete input files
  -f, --force        force overwrite of output file
  -h, --help         give this help
  -k, --keep         keep (don't delete) input files
  -q, --quiet        suppress all warnings
  -v, --verbose      verbose mode
      --debug        write decoder trace and configuration
  -V, --version      display version string
      --charset=CS   convert output from character set CS to UTF-8
      --late-change  increase code width at the power of two (baseline LZW)
      --strict       report blobs without EOD code as error
      --table=KIND   code table: chain (default) or trie

With no file, or when FILE is -, read standard input.
`

// version is set by the linker.
var version = "dev"

// options contains the parsed command line flags.
type options struct {
	base64     bool
	stdout     bool
	force      bool
	keep       bool
	strict     bool
	lateChange bool
	table      string
	charset    string
}

// readerConfig converts the options into the configuration for the OCF
// reader.
func (o *options) readerConfig() (cfg ocf.ReaderConfig, err error) {
	if cfg.LZW.Table, err = lzw.ParseTableKind(o.table); err != nil {
		return cfg, err
	}
	if o.lateChange {
		cfg.LZW.WidthChange = lzw.LateChange
	}
	cfg.LZW.RequireEOD = o.strict
	cfg.LZW.Logger = xlog.Std(xlog.LevelDebug)
	return cfg, cfg.Verify()
}

func usage(w io.Writer) {
	fmt.Fprint(w, usageStr)
}

func main() {
	cmdName := filepath.Base(os.Args[0])
	xlog.SetPrefix(fmt.Sprintf("%s: ", cmdName))

	pflag.CommandLine = pflag.NewFlagSet(cmdName, pflag.ExitOnError)
	pflag.SetInterspersed(true)
	pflag.Usage = func() { usage(os.Stderr); os.Exit(1) }
	var (
		opts    options
		help    = pflag.BoolP("help", "h", false, "")
		quiet   = pflag.BoolP("quiet", "q", false, "")
		verbose = pflag.BoolP("verbose", "v", false, "")
		debug   = pflag.Bool("debug", false, "")
		vers    = pflag.BoolP("version", "V", false, "")
	)
	pflag.BoolVarP(&opts.base64, "base64", "b", false, "")
	pflag.BoolVarP(&opts.stdout, "stdout", "c", false, "")
	pflag.BoolVarP(&opts.force, "force", "f", false, "")
	pflag.BoolVarP(&opts.keep, "keep", "k", false, "")
	pflag.BoolVar(&opts.strict, "strict", false, "")
	pflag.BoolVar(&opts.lateChange, "late-change", false, "")
	pflag.StringVar(&opts.table, "table", lzw.ChainTable.String(), "")
	pflag.StringVar(&opts.charset, "charset", "", "")
	pflag.Parse()

	if *help {
		usage(os.Stdout)
		os.Exit(0)
	}
	if *vers {
		fmt.Printf("ocfcat %s\n", version)
		os.Exit(0)
	}
	switch {
	case *quiet:
		xlog.SetLevel(xlog.LevelQuiet)
	case *debug:
		xlog.SetLevel(xlog.LevelDebug)
	case *verbose:
		xlog.SetLevel(xlog.LevelVerbose)
	}

	cfg, err := opts.readerConfig()
	if err != nil {
		xlog.Fatal(err)
	}
	c := cfg
	c.LZW.Logger = nil
	xlog.Debugf("configuration %s", pretty.Sprint(c))

	args := pflag.Args()
	if len(args) == 0 {
		args = []string{"-"}
	}
	exit := 0
	for _, path := range args {
		if err := processFile(path, &opts, cfg); err != nil {
			exit = 1
		}
	}
	os.Exit(exit)
}
