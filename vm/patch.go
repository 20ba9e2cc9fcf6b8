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

package vm

import "github.com/pkg/errors"

// RunPatched runs a private copy of program with the given cells overwritten,
// and returns its memory once it halts. This is how programs that take no
// input report their result, usually in cell 0. The program must not execute
// any input instruction: RunPatched then fails with ErrInputExhausted.
//
// Patches are applied after the memory has been sized according to the
// MinSize option, if any.
func RunPatched(program Image, patches map[int]Cell, opts ...Option) (Image, error) {
	i, err := New(program.Clone(), opts...)
	if err != nil {
		return nil, err
	}
	for addr, v := range patches {
		if err = i.Image.Write(addr, v); err != nil {
			return nil, errors.Wrap(err, "patch")
		}
	}
	st, err := i.Run()
	if err != nil {
		return nil, err
	}
	if _, ok := st.(Halted); !ok {
		return nil, errors.Wrapf(ErrInputExhausted, "@pc=%d", i.PC)
	}
	return i.Image, nil
}

// NounVerbRange is the upper bound (excluded) of the nouns and verbs tried
// by FindNounVerb.
const NounVerbRange = 100

// FindNounVerb runs program with every noun and verb in [0, NounVerbRange)
// written at addresses 1 and 2 respectively, and returns the first pair for
// which the program leaves target in cell 0. Nouns are tried in increasing
// order, then verbs. Pairs that make the program fail are skipped.
//
// If no pair matches, the returned error is ErrNoMatch.
func FindNounVerb(program Image, target Cell, opts ...Option) (noun, verb Cell, err error) {
	if _, err = New(nil, opts...); err != nil {
		return 0, 0, err
	}
	for noun = 0; noun < NounVerbRange; noun++ {
		for verb = 0; verb < NounVerbRange; verb++ {
			mem, rerr := RunPatched(program, map[int]Cell{1: noun, 2: verb}, opts...)
			if rerr != nil {
				continue
			}
			if mem[0] == target {
				return noun, verb, nil
			}
		}
	}
	return 0, 0, errors.Wrapf(ErrNoMatch, "target %d", target)
}
