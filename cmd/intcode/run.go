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
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/db47h/intcode/vm"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var runCmd = &cobra.Command{
	Use:   "run [flags] program",
	Short: "Run an intcode program.",
	Long: `Run an intcode program with the given input values and print its output
values, one per line.`,
	Run: runRunCmd,
}

func runRunCmd(cmd *cobra.Command, args []string) {
	if len(args) != 1 {
		fmt.Println(cmd.UsageString())
		os.Exit(exitUsage)
	}
	var (
		inputs = GetCells(cmd, "input")
		size   = GetInt(cmd, "size")
		dump   = GetFlag(cmd, "dump")
	)
	i, err := vm.New(loadProgram(args[0], size),
		vm.Logger(log.StandardLogger()),
		vm.Name(filepath.Base(args[0])))
	if err != nil {
		fail(err, exitUsage)
	}
	out, err := execute(i, inputs, prompter(os.Stdin, os.Stderr))
	for _, v := range out {
		fmt.Println(v)
	}
	if dump {
		if derr := dumpVM(i, os.Stdout); derr != nil && err == nil {
			err = derr
		}
	}
	if err != nil {
		fail(err, exitRun)
	}
}

// execute runs i until it halts. Input instructions consume inputs first,
// then values returned by prompt if not nil. It returns the output values
// produced so far, even on error.
func execute(i *vm.Instance, inputs []vm.Cell, prompt func() (vm.Cell, error)) ([]vm.Cell, error) {
	var (
		out   []vm.Cell
		steps int64
	)
	st, err := i.Run()
	for err == nil {
		steps += i.InstructionCount()
		if h, ok := st.(vm.Halted); ok {
			log.WithField("steps", steps).Debug("program halted")
			return append(out, h.Output...), nil
		}
		// flush output before asking for more input
		out = append(out, i.ReadOutput()...)
		var v vm.Cell
		switch {
		case len(inputs) > 0:
			v, inputs = inputs[0], inputs[1:]
		case prompt != nil:
			if v, err = prompt(); err != nil {
				return out, errors.Wrapf(err, "@pc=%d", i.PC)
			}
		default:
			return out, errors.Wrapf(vm.ErrInputExhausted, "@pc=%d", i.PC)
		}
		st, err = i.Resume(v)
	}
	return append(out, i.ReadOutput()...), err
}

// dumpVM writes the program counter and memory image of i to w.
func dumpVM(i *vm.Instance, w io.Writer) error {
	if _, err := fmt.Fprintf(w, "pc: %d\n", i.PC); err != nil {
		return err
	}
	return i.Image.Dump(w)
}

func init() {
	rootCmd.AddCommand(runCmd)
	runCmd.Flags().Int64SliceP("input", "i", nil, "input `value` (can be specified multiple times or comma separated)")
	runCmd.Flags().Bool("dump", false, "dump the program counter and memory image upon exit")
	runCmd.Flags().Int("size", 0, "minimum memory size in cells")
}
