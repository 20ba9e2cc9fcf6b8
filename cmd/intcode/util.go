// This file is part of intcode - https://github.com/db47h/intcode
//
// Copyright 2016 Denis Bernard <db047h@gmail.com>
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/db47h/intcode/vm"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// Exit codes.
const (
	exitUsage = 1
	exitLoad  = 2
	exitRun   = 4
)

// GetFlag gets an expected boolean flag, or exits if an error arises.
func GetFlag(cmd *cobra.Command, flag string) bool {
	r, err := cmd.Flags().GetBool(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(exitUsage)
	}
	return r
}

// GetInt gets an expected int flag, or exits if an error arises.
func GetInt(cmd *cobra.Command, flag string) int {
	r, err := cmd.Flags().GetInt(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(exitUsage)
	}
	return r
}

// GetInt64 gets an expected int64 flag, or exits if an error arises.
func GetInt64(cmd *cobra.Command, flag string) int64 {
	r, err := cmd.Flags().GetInt64(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(exitUsage)
	}
	return r
}

// GetCells gets an expected int64 slice flag as a slice of cells, or exits if
// an error arises.
func GetCells(cmd *cobra.Command, flag string) []vm.Cell {
	r, err := cmd.Flags().GetInt64Slice(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(exitUsage)
	}
	return cells(r)
}

func cells(a []int64) []vm.Cell {
	if len(a) == 0 {
		return nil
	}
	c := make([]vm.Cell, len(a))
	for i, v := range a {
		c[i] = vm.Cell(v)
	}
	return c
}

// fail logs err and exits with the given status. Stack traces are only
// printed in verbose mode.
func fail(err error, status int) {
	if log.IsLevelEnabled(log.DebugLevel) {
		log.Errorf("%+v", err)
	} else if pe, ok := err.(vm.ErrParse); ok {
		for _, e := range pe {
			log.Errorln(e)
		}
	} else {
		log.Errorln(err)
	}
	os.Exit(status)
}

func loadProgram(fileName string, size int) vm.Image {
	img, err := vm.Load(fileName, size)
	if err != nil {
		fail(err, exitLoad)
	}
	log.WithFields(log.Fields{
		"file":  fileName,
		"cells": len(img),
	}).Debug("program loaded")
	return img
}

// prompter returns a function reading input values from r, one per line. It
// returns nil if in is not a terminal.
func prompter(in *os.File, out io.Writer) func() (vm.Cell, error) {
	if !term.IsTerminal(int(in.Fd())) {
		return nil
	}
	return newPrompter(bufio.NewReader(in), out)
}

func newPrompter(r *bufio.Reader, out io.Writer) func() (vm.Cell, error) {
	return func() (vm.Cell, error) {
		for {
			fmt.Fprint(out, "input: ")
			l, err := r.ReadString('\n')
			l = strings.TrimSpace(l)
			if l == "" && err != nil {
				if err == io.EOF {
					err = errors.Wrap(vm.ErrInputExhausted, "end of input")
				}
				return 0, err
			}
			v, perr := strconv.ParseInt(l, 10, 64)
			if perr == nil {
				return vm.Cell(v), nil
			}
			if err != nil {
				return 0, errors.Wrapf(perr, "input %q", l)
			}
			fmt.Fprintf(out, "invalid input %q\n", l)
		}
	}
}
