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

	"github.com/db47h/intcode/amp"
	"github.com/db47h/intcode/vm"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var searchCmd = &cobra.Command{
	Use:   "search [flags] program",
	Short: "Search for the best amplifier phase settings.",
	Long: `Run one amplifier per phase setting for every ordering of the phase settings
and print the highest signal sent by the last amplifier.`,
	Run: runSearchCmd,
}

func runSearchCmd(cmd *cobra.Command, args []string) {
	if len(args) != 1 {
		fmt.Println(cmd.UsageString())
		os.Exit(exitUsage)
	}
	var (
		feedback = GetFlag(cmd, "feedback")
		phases   = GetCells(cmd, "phases")
		seed     = GetInt64(cmd, "seed")
		mode     = amp.Chain
	)
	if feedback {
		mode = amp.Feedback
	}
	if len(phases) == 0 {
		phases = defaultPhases(mode)
	}
	prog := loadProgram(args[0], 0)
	res, err := amp.MaxSignal(prog, phases, mode,
		amp.Seed(vm.Cell(seed)),
		amp.Logger(log.StandardLogger()))
	if err != nil {
		fail(err, exitRun)
	}
	if term.IsTerminal(int(os.Stdout.Fd())) {
		fmt.Printf("%d (phases %v)\n", res.Signal, res.Phases)
	} else {
		fmt.Println(res.Signal)
	}
}

func defaultPhases(m amp.Mode) []vm.Cell {
	if m == amp.Feedback {
		return []vm.Cell{5, 6, 7, 8, 9}
	}
	return []vm.Cell{0, 1, 2, 3, 4}
}

func init() {
	rootCmd.AddCommand(searchCmd)
	searchCmd.Flags().Bool("feedback", false, "connect the last amplifier to the first one")
	searchCmd.Flags().Int64Slice("phases", nil, "phase settings (default 0,1,2,3,4 or 5,6,7,8,9 with --feedback)")
	searchCmd.Flags().Int64("seed", 0, "input signal of the first amplifier")
}
