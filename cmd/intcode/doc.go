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

// The intcode command line tool runs intcode programs and searches for the
// amplifier phase settings producing the highest signal.
//
// Usage:
//
//	intcode run [flags] program
//	intcode search [flags] program
//	intcode nounverb [flags] program
//
// Global flags:
//
//	-v, --verbose
//		  enable debug logging, and print stack traces on errors
//	--version
//		  print the version and exit
//
// The run command loads the program, runs it and prints its output values,
// one per line. Input values are given with -i, in the order they will be
// consumed:
//
//	intcode run -i 5 diagnostic.txt
//
// If the program needs more input values than provided and stdin is a
// terminal, run prompts for them. Otherwise it fails.
//
//	-i, --input value
//		  input value (can be specified multiple times or comma separated)
//	--dump
//		  dump the program counter and memory image upon exit
//	--size int
//		  minimum memory size in cells
//
// The search command runs one amplifier per phase setting, trying every
// ordering of the phase settings, and prints the highest signal. When stdout
// is a terminal, the matching phase settings are printed as well.
//
//	--feedback
//		  connect the last amplifier to the first one
//	--phases values
//		  phase settings (default 0,1,2,3,4 or 5,6,7,8,9 with --feedback)
//	--seed int
//		  input signal of the first amplifier
//
// The nounverb command writes a noun and a verb at addresses 1 and 2, runs
// the program, which must not read any input, and prints the value left in
// cell 0. With --target, it tries every noun and verb in [0, 100) instead and
// prints 100*noun+verb for the first pair producing the target value.
//
//	--noun int
//		  value written at address 1 (default 12)
//	--verb int
//		  value written at address 2 (default 2)
//	--target int
//		  value to search for
//
// Exit status is 1 for usage errors, 2 if the program cannot be loaded, and 4
// if it fails at run time.
package main
