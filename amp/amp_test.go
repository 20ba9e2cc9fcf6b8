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

package amp_test

import (
	"testing"

	"github.com/db47h/intcode/amp"
	"github.com/db47h/intcode/vm"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	chain1 = vm.Image{3, 15, 3, 16, 1002, 16, 10, 16, 1, 16, 15, 15, 4, 15, 99, 0, 0}
	chain2 = vm.Image{3, 23, 3, 24, 1002, 24, 10, 24, 1002, 23, -1, 23,
		101, 5, 23, 23, 1, 24, 23, 23, 4, 23, 99, 0, 0}
	chain3 = vm.Image{3, 31, 3, 32, 1002, 32, 10, 32, 1001, 31, -2, 31, 1007, 31, 0, 33,
		1002, 33, 7, 33, 1, 33, 31, 31, 1, 32, 31, 31, 4, 31, 99, 0, 0, 0}
	feedback1 = vm.Image{3, 26, 1001, 26, -4, 26, 3, 27, 1002, 27, 2, 27, 1, 27, 26,
		27, 4, 27, 1001, 28, -1, 28, 1005, 28, 6, 99, 0, 0, 5}
	feedback2 = vm.Image{3, 52, 1001, 52, -5, 52, 3, 53, 1, 52, 56, 54, 1007, 54, 5, 55, 1005, 55, 26, 1001, 54,
		-5, 54, 1105, 1, 12, 1, 53, 54, 53, 1008, 54, 0, 55, 1001, 55, 1, 55, 2, 53, 55, 53, 4,
		53, 1001, 56, -1, 56, 1005, 56, 6, 99, 0, 0, 0, 0, 10}
)

func TestRunChain(t *testing.T) {
	var tests = []struct {
		name   string
		prog   vm.Image
		phases []vm.Cell
		signal vm.Cell
	}{
		{"chain1", chain1, []vm.Cell{4, 3, 2, 1, 0}, 43210},
		{"chain2", chain2, []vm.Cell{0, 1, 2, 3, 4}, 54321},
		{"chain3", chain3, []vm.Cell{1, 0, 4, 3, 2}, 65210},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			s, err := amp.RunChain(test.prog, test.phases)
			require.NoError(t, err)
			assert.Equal(t, test.signal, s)
		})
	}
}

func TestRunFeedback(t *testing.T) {
	s, err := amp.RunFeedback(feedback1, []vm.Cell{9, 8, 7, 6, 5})
	require.NoError(t, err)
	assert.Equal(t, vm.Cell(139629729), s)

	s, err = amp.RunFeedback(feedback2, []vm.Cell{9, 7, 8, 5, 6})
	require.NoError(t, err)
	assert.Equal(t, vm.Cell(18216), s)
}

func TestRun_programUntouched(t *testing.T) {
	orig := feedback1.Clone()
	_, err := amp.RunFeedback(feedback1, []vm.Cell{9, 8, 7, 6, 5})
	require.NoError(t, err)
	assert.Equal(t, orig, feedback1)
}

func TestMaxSignal(t *testing.T) {
	var tests = []struct {
		name   string
		prog   vm.Image
		mode   amp.Mode
		phases []vm.Cell
		res    amp.Result
	}{
		{"chain1", chain1, amp.Chain, []vm.Cell{0, 1, 2, 3, 4}, amp.Result{Signal: 43210, Phases: []vm.Cell{4, 3, 2, 1, 0}}},
		{"chain2", chain2, amp.Chain, []vm.Cell{0, 1, 2, 3, 4}, amp.Result{Signal: 54321, Phases: []vm.Cell{0, 1, 2, 3, 4}}},
		{"chain3", chain3, amp.Chain, []vm.Cell{0, 1, 2, 3, 4}, amp.Result{Signal: 65210, Phases: []vm.Cell{1, 0, 4, 3, 2}}},
		{"feedback1", feedback1, amp.Feedback, []vm.Cell{5, 6, 7, 8, 9}, amp.Result{Signal: 139629729, Phases: []vm.Cell{9, 8, 7, 6, 5}}},
		{"feedback2", feedback2, amp.Feedback, []vm.Cell{5, 6, 7, 8, 9}, amp.Result{Signal: 18216, Phases: []vm.Cell{9, 7, 8, 5, 6}}},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			res, err := amp.MaxSignal(test.prog, test.phases, test.mode)
			require.NoError(t, err)
			assert.Equal(t, test.res, res)
		})
	}
}

func TestSeed(t *testing.T) {
	// with a seed of 1, the last amplifier of chain1 outputs 143210
	s, err := amp.RunChain(chain1, []vm.Cell{4, 3, 2, 1, 0}, amp.Seed(1))
	require.NoError(t, err)
	assert.Equal(t, vm.Cell(143210), s)
}

func TestRing_once(t *testing.T) {
	r, err := amp.NewRing(chain1, []vm.Cell{1, 2}, amp.Chain)
	require.NoError(t, err)
	assert.Equal(t, 2, r.Len())
	s, err := r.Run()
	require.NoError(t, err)
	assert.Equal(t, vm.Cell(12), s)
	_, err = r.Run()
	assert.Error(t, err)
}

func TestErrors(t *testing.T) {
	var tests = []struct {
		name   string
		prog   vm.Image
		mode   amp.Mode
		phases []vm.Cell
		err    error
	}{
		{"no amplifiers", chain1, amp.Chain, nil, amp.ErrPrecondition},
		{"halts immediately", vm.Image{99}, amp.Chain, []vm.Cell{0}, amp.ErrPrecondition},
		{"halts after phase", vm.Image{3, 0, 99}, amp.Feedback, []vm.Cell{0, 1}, amp.ErrPrecondition},
		{"chain does not halt", feedback1, amp.Chain, []vm.Cell{9, 8, 7, 6, 5}, amp.ErrPrecondition},
		{"no signal", vm.Image{3, 0, 3, 0, 99}, amp.Chain, []vm.Cell{0}, amp.ErrNoSignal},
		{"no signal relayed", vm.Image{3, 0, 3, 0, 99}, amp.Chain, []vm.Cell{0, 1}, amp.ErrPrecondition},
		{"stalled", vm.Image{3, 0, 3, 0, 3, 0, 99}, amp.Feedback, []vm.Cell{0, 1}, amp.ErrStalled},
		{"bad opcode", vm.Image{3, 0, 3, 0, 42}, amp.Feedback, []vm.Cell{0, 1}, vm.ErrInvalidOpcode},
		{"bad address", vm.Image{3, 0, 3, 100, 99}, amp.Feedback, []vm.Cell{0}, vm.ErrAddressOutOfBounds},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			_, err := amp.Run(test.prog, test.phases, test.mode)
			require.Error(t, err)
			assert.Equal(t, test.err, errors.Cause(err), "%v", err)
		})
	}
}

func TestMaxSignal_error(t *testing.T) {
	_, err := amp.MaxSignal(vm.Image{3, 0, 3, 0, 42}, []vm.Cell{0, 1, 2}, amp.Feedback)
	require.Error(t, err)
	assert.Equal(t, vm.ErrInvalidOpcode, errors.Cause(err))
	assert.Contains(t, err.Error(), "phases [0 1 2]")
}

func TestLogger(t *testing.T) {
	l, hook := test.NewNullLogger()
	l.SetLevel(logrus.DebugLevel)
	_, err := amp.MaxSignal(chain1, []vm.Cell{0, 1}, amp.Chain, amp.Logger(l))
	require.NoError(t, err)
	require.NotNil(t, hook.LastEntry())
	assert.Equal(t, "search done", hook.LastEntry().Message)
	assert.Equal(t, 2, hook.LastEntry().Data["runs"])

	var halted int
	for _, e := range hook.AllEntries() {
		if e.Message == "amplifier halted" {
			halted++
		}
	}
	assert.Equal(t, 4, halted)
}

func TestVMOptions(t *testing.T) {
	_, err := amp.RunChain(chain1, []vm.Cell{0}, amp.VMOptions(vm.MinSize(-1)))
	assert.Error(t, err)

	s, err := amp.RunChain(chain1, []vm.Cell{1}, amp.VMOptions(vm.MinSize(100)))
	require.NoError(t, err)
	assert.Equal(t, vm.Cell(1), s)
}

func TestRun_signalBeforeHalt(t *testing.T) {
	// in x; out x+7; in y; halt
	prog := vm.Image{3, 20, 3, 21, 1001, 21, 7, 22, 4, 22, 3, 23, 99,
		0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0}
	s, err := amp.RunFeedback(prog, []vm.Cell{0})
	require.NoError(t, err)
	assert.Equal(t, vm.Cell(7), s)
}

// twoOut sends its phase then a signal on every turn, and computes the next
// signal as 10*x+y from the two values it receives. It halts after 3 turns.
var twoOut = vm.Image{
	3, 35, // in p
	3, 36, // in x
	1, 36, 35, 38, // a = x+p
	4, 35, // out p
	4, 38, // out a
	1001, 39, -1, 39, // c--
	1006, 39, 34, // jf c halt
	3, 36, // in x
	3, 37, // in y
	1002, 36, 10, 38, // a = 10*x
	1, 38, 37, 38, // a += y
	1105, 1, 8, // jmp 8
	99,
	0, 0, 0, 0, 3,
}

func TestRunFeedback_relayOrder(t *testing.T) {
	var tests = []struct {
		phases []vm.Cell
		signal vm.Cell
	}{
		{[]vm.Cell{1, 2, 3}, 112},
		{[]vm.Cell{3, 2, 1}, 332},
		{[]vm.Cell{1, 2}, 231},
	}
	for _, test := range tests {
		s, err := amp.RunFeedback(twoOut, test.phases)
		require.NoError(t, err, "%v", test.phases)
		assert.Equal(t, test.signal, s, "%v", test.phases)
	}
}

func TestRun_droppedSignals(t *testing.T) {
	// in x; out x; out x; halt
	prog := vm.Image{3, 9, 3, 10, 4, 10, 4, 10, 99, 0, 0}
	l, hook := test.NewNullLogger()
	l.SetLevel(logrus.DebugLevel)
	s, err := amp.RunChain(prog, []vm.Cell{0, 0}, amp.Seed(5), amp.Logger(l))
	require.NoError(t, err)
	assert.Equal(t, vm.Cell(5), s)

	var dropped []interface{}
	for _, e := range hook.AllEntries() {
		if e.Message == "signals sent to halted amplifier" {
			dropped = append(dropped, e.Data["dropped"])
		}
	}
	assert.Equal(t, []interface{}{1}, dropped)
}
