// Copyright 2025 Ulrich Kunitz. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bufio"
	"encoding/base64"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"

	"github.com/ulikunitz/ocf"
	"github.com/ulikunitz/ocf/xlog"
)

const ocfSuffix = ".ocf"

// signalHandler removes the temporary file if the program is
// interrupted. The returned quit channel must be closed to terminate the
// handler goroutine.
func signalHandler(tmpPath string) chan<- struct{} {
	quit := make(chan struct{})
	sigch := make(chan os.Signal, 1)
	signal.Notify(sigch, os.Interrupt)
	go func() {
		select {
		case <-quit:
			signal.Stop(sigch)
			return
		case <-sigch:
			if tmpPath != "-" {
				os.Remove(tmpPath)
			}
			os.Exit(7)
		}
	}()
	return quit
}

// outputPaths computes the output path and the temporary path for the
// given input path. The path "-" stands for standard input and output.
func outputPaths(path string, opts *options) (out, tmp string, err error) {
	if path == "-" || opts.stdout {
		return "-", "-", nil
	}
	if path == "" {
		return "", "", errors.New("path is empty")
	}
	if !strings.HasSuffix(path, ocfSuffix) {
		return "", "", fmt.Errorf("path %s has no suffix %s",
			path, ocfSuffix)
	}
	out = path[:len(path)-len(ocfSuffix)]
	if out == "" || strings.HasSuffix(out, string(os.PathSeparator)) {
		return "", "", fmt.Errorf(
			"path %s has only suffix %s as filename",
			path, ocfSuffix)
	}
	return out, out + ".decode", nil
}

// openFile opens a regular file for reading or returns stdin for "-".
func openFile(path string) (f *os.File, err error) {
	if path == "-" {
		return os.Stdin, nil
	}
	fi, err := os.Lstat(path)
	if err != nil {
		return nil, err
	}
	if !fi.Mode().IsRegular() {
		return nil, fmt.Errorf("%s is not a regular file", path)
	}
	return os.Open(path)
}

// createFile creates the temporary output file or returns stdout for "-".
func createFile(tmpPath string, opts *options) (f *os.File, err error) {
	if tmpPath == "-" {
		return os.Stdout, nil
	}
	if opts.force {
		os.Remove(tmpPath)
	}
	return os.OpenFile(tmpPath, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0666)
}

// decode decodes the data from r and writes it to w.
func decode(w io.Writer, r io.Reader, opts *options, cfg ocf.ReaderConfig) (n int64, err error) {
	br := bufio.NewReader(r)
	var z io.Reader = br
	if opts.base64 {
		z = bufio.NewReader(base64.NewDecoder(base64.StdEncoding, br))
	}
	dec, err := ocf.NewReaderConfig(z, cfg)
	if err != nil {
		return 0, err
	}
	var out io.Reader = dec
	if opts.charset != "" {
		if out, err = charsetReader(dec, opts.charset); err != nil {
			return 0, err
		}
	}
	bw := bufio.NewWriter(w)
	n, err = io.Copy(bw, out)
	if ferr := bw.Flush(); err == nil {
		err = ferr
	}
	return n, err
}

// decodeFile decodes the file at path into tmpPath.
func decodeFile(path, tmpPath string, opts *options, cfg ocf.ReaderConfig) (err error) {
	r, err := openFile(path)
	if err != nil {
		return err
	}
	if r != os.Stdin {
		defer r.Close()
	}

	w, err := createFile(tmpPath, opts)
	if err != nil {
		return err
	}
	if w != os.Stdout {
		defer func() {
			if cerr := w.Close(); err == nil {
				err = cerr
			}
		}()
	}

	n, err := decode(w, r, opts, cfg)
	xlog.Verbosef("%s: %d bytes decoded", path, n)
	return err
}

// userPathError represents a path error presentable to a user. In
// difference to os.PathError it removes the information of the
// operation returning the error.
type userPathError struct {
	Path string
	Err  error
}

// Error provides the error string for the path error.
func (e *userPathError) Error() string {
	return e.Path + ": " + e.Err.Error()
}

// Unwrap returns the underlying error.
func (e *userPathError) Unwrap() error { return e.Err }

// userError removes the operation from an os.PathError. The information
// that lstat failed is not relevant for ocfcat users.
func userError(err error) error {
	var pe *os.PathError
	if !errors.As(err, &pe) {
		return err
	}
	return &userPathError{Path: pe.Path, Err: pe.Err}
}

// processFile decodes the file at path. Errors are reported as warnings
// and returned.
func processFile(path string, opts *options, cfg ocf.ReaderConfig) (err error) {
	defer func() {
		if err != nil {
			xlog.Warn(userError(err))
		}
	}()
	outputPath, tmpPath, err := outputPaths(path, opts)
	if err != nil {
		return err
	}
	if outputPath != "-" {
		if _, err = os.Lstat(outputPath); err == nil && !opts.force {
			return fmt.Errorf("file %s exists", outputPath)
		}
	}
	defer func() {
		if tmpPath != "-" {
			os.Remove(tmpPath)
		}
	}()
	quit := signalHandler(tmpPath)
	defer close(quit)

	if err = decodeFile(path, tmpPath, opts, cfg); err != nil {
		return err
	}
	if tmpPath != "-" {
		if err = os.Rename(tmpPath, outputPath); err != nil {
			return err
		}
	}
	if !opts.keep && !opts.stdout && path != "-" {
		if err = os.Remove(path); err != nil {
			return err
		}
	}
	return nil
}
