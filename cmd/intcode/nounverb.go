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
	"os"

	"github.com/db47h/intcode/vm"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var nounVerbCmd = &cobra.Command{
	Use:   "nounverb [flags] program",
	Short: "Run a program with patched noun and verb.",
	Long: `Write the noun and verb at addresses 1 and 2, run the program and print the
value left in cell 0. With --target, search for the noun and verb producing
the target value and print 100*noun+verb.`,
	Run: runNounVerbCmd,
}

func runNounVerbCmd(cmd *cobra.Command, args []string) {
	if len(args) != 1 {
		fmt.Println(cmd.UsageString())
		os.Exit(exitUsage)
	}
	prog := loadProgram(args[0], 0)
	if cmd.Flags().Changed("target") {
		noun, verb, err := vm.FindNounVerb(prog, vm.Cell(GetInt64(cmd, "target")))
		if err != nil {
			fail(err, exitRun)
		}
		log.WithFields(log.Fields{
			"noun": noun,
			"verb": verb,
		}).Debug("match")
		fmt.Println(100*noun + verb)
		return
	}
	v, err := patchedResult(prog, vm.Cell(GetInt64(cmd, "noun")), vm.Cell(GetInt64(cmd, "verb")))
	if err != nil {
		fail(err, exitRun)
	}
	fmt.Println(v)
}

// patchedResult runs prog with the given noun and verb and returns cell 0.
func patchedResult(prog vm.Image, noun, verb vm.Cell) (vm.Cell, error) {
	mem, err := vm.RunPatched(prog, map[int]vm.Cell{1: noun, 2: verb}, vm.Logger(log.StandardLogger()))
	if err != nil {
		return 0, err
	}
	return mem[0], nil
}

func init() {
	rootCmd.AddCommand(nounVerbCmd)
	nounVerbCmd.Flags().Int64("noun", 12, "value written at address 1")
	nounVerbCmd.Flags().Int64("verb", 2, "value written at address 2")
	nounVerbCmd.Flags().Int64("target", 0, "search for the noun and verb producing this value")
}
