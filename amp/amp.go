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

// Package amp runs chains of intcode amplifiers.
//
// An amplifier is an intcode VM configured with a phase setting, its first
// input value. Amplifiers are connected in series: the output of each one is
// the input of the next. In feedback mode, the output of the last amplifier is
// fed back to the first one, and the amplifiers run in a loop until the last
// one halts.
//
// All amplifiers run in the caller's goroutine. They are scheduled
// cooperatively: an amplifier runs until it needs an input value it does not
// have, then the next one gets its turn.
package amp

import (
	"io"

	"github.com/db47h/intcode/vm"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// Errors returned by the orchestrator. Use errors.Cause to check for them.
var (
	// ErrPrecondition is returned when an amplifier program does not behave
	// as expected, e.g. it halts before reading its phase setting.
	ErrPrecondition = errors.New("amplifier precondition violated")
	// ErrNoSignal is returned when the last amplifier halts without producing
	// any output.
	ErrNoSignal = errors.New("no output signal")
	// ErrStalled is returned when all amplifiers wait for input and none of
	// them has output to relay.
	ErrStalled = errors.New("amplifiers stalled")
)

// Mode selects how amplifiers are connected.
type Mode int

// Amplifier connection modes.
const (
	Chain    Mode = iota // each amplifier runs once, in series
	Feedback             // the last amplifier feeds the first one
)

func (m Mode) String() string {
	switch m {
	case Chain:
		return "chain"
	case Feedback:
		return "feedback"
	}
	return "unknown"
}

type config struct {
	seed   vm.Cell
	log    logrus.FieldLogger
	vmOpts []vm.Option
}

// Option configures a Ring.
type Option func(*config)

// Seed sets the input signal of the first amplifier. The default is 0.
func Seed(v vm.Cell) Option {
	return func(c *config) { c.seed = v }
}

// Logger sets the logger used to report scheduling and search progress at
// debug level. Amplifier VMs log through it too.
func Logger(l logrus.FieldLogger) Option {
	return func(c *config) {
		if l != nil {
			c.log = l
		}
	}
}

// VMOptions sets options passed to every amplifier VM.
func VMOptions(opts ...vm.Option) Option {
	return func(c *config) { c.vmOpts = append(c.vmOpts, opts...) }
}

func newConfig(opts []Option) *config {
	l := logrus.New()
	l.Out = io.Discard
	c := &config{log: l}
	for _, opt := range opts {
		opt(c)
	}
	return c
}
