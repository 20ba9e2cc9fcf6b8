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

package amp

import (
	"strconv"

	"github.com/db47h/intcode/vm"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// slot is an amplifier in a Ring. While the amplifier is running, vm is set
// and its output queue is held by the VM. Once halted, vm is nil and output
// holds the final output queue until it is relayed.
type slot struct {
	vm     *vm.Instance
	phase  vm.Cell
	output []vm.Cell
}

func (s *slot) halted() bool {
	return s.vm == nil
}

// Ring is a series of amplifiers, one VM per phase setting.
type Ring struct {
	slots []slot
	mode  Mode
	cfg   *config
	done  bool
}

// NewRing creates one amplifier per phase setting, each running a private
// copy of program, and starts them with their phase setting as first input.
// Each amplifier must then wait for its input signal, otherwise NewRing fails
// with ErrPrecondition.
func NewRing(program vm.Image, phases []vm.Cell, mode Mode, opts ...Option) (*Ring, error) {
	if len(phases) == 0 {
		return nil, errors.Wrap(ErrPrecondition, "no amplifiers")
	}
	cfg := newConfig(opts)
	r := &Ring{
		slots: make([]slot, len(phases)),
		mode:  mode,
		cfg:   cfg,
	}
	for k, p := range phases {
		vmOpts := append([]vm.Option{
			vm.Logger(cfg.log),
			vm.Name("amp" + strconv.Itoa(k)),
		}, cfg.vmOpts...)
		i, err := vm.New(program.Clone(), vmOpts...)
		if err != nil {
			return nil, err
		}
		st, err := i.Resume(p)
		if err != nil {
			return nil, errors.Wrapf(err, "amplifier %d, phase %d", k, p)
		}
		if _, ok := st.(vm.AwaitingInput); !ok {
			return nil, errors.Wrapf(ErrPrecondition, "amplifier %d, phase %d: halted before reading its input signal", k, p)
		}
		r.slots[k] = slot{vm: i, phase: p}
	}
	return r, nil
}

// Len returns the number of amplifiers in the ring.
func (r *Ring) Len() int {
	return len(r.slots)
}

// Run runs the amplifiers until the last one halts and returns the last
// value it produced.
//
// The first amplifier receives the seed signal. An amplifier runs until it
// needs more input; its pending output is then relayed, in order, to the next
// amplifier which is resumed once per value. Control moves on to the next
// amplifier only once the current one has consumed all the values relayed to
// it. In Chain mode, every amplifier must halt after consuming its input
// signal and the last amplifier never feeds the first one. Values relayed to
// an amplifier that has already halted are dropped.
//
// A Ring can only be run once.
func (r *Ring) Run() (vm.Cell, error) {
	if r.done {
		return 0, errors.New("amp: ring already run")
	}
	r.done = true

	var (
		n       = len(r.slots)
		last    = n - 1
		cur     = 0
		pending = []vm.Cell{r.cfg.seed}
		idle    = 0 // moves to the next slot without any VM progress
		signal  vm.Cell
		sent    bool // the last amplifier produced at least one value
	)
	for {
		s := &r.slots[cur]
		if s.halted() {
			if len(pending) > 0 {
				r.cfg.log.WithFields(logrus.Fields{
					"amp":     cur,
					"dropped": len(pending),
				}).Debug("signals sent to halted amplifier")
			}
			pending, s.output = s.output, nil
			if cur == last {
				break
			}
		} else if len(pending) > 0 {
			v := pending[0]
			pending = pending[1:]
			st, err := s.vm.Resume(v)
			if err != nil {
				return 0, errors.Wrapf(err, "amplifier %d, phase %d", cur, s.phase)
			}
			idle = 0
			if h, ok := st.(vm.Halted); ok {
				r.cfg.log.WithFields(logrus.Fields{
					"amp":    cur,
					"output": h.Output,
				}).Debug("amplifier halted")
				s.vm, s.output = nil, h.Output
				if cur == last && len(h.Output) > 0 {
					signal, sent = h.Output[len(h.Output)-1], true
				}
			}
			continue
		} else {
			if r.mode == Chain {
				return 0, errors.Wrapf(ErrPrecondition, "amplifier %d, phase %d: waiting for input with no signal to relay", cur, s.phase)
			}
			pending = s.vm.ReadOutput()
			if cur == last && len(pending) > 0 {
				signal, sent = pending[len(pending)-1], true
			}
		}

		if len(pending) == 0 {
			idle++
			if idle >= n {
				return 0, errors.Wrapf(ErrStalled, "amplifier %d", cur)
			}
		}
		cur++
		if cur == n {
			cur = 0
		}
	}

	if !sent {
		return 0, errors.Wrapf(ErrNoSignal, "amplifier %d, phase %d", last, r.slots[last].phase)
	}
	return signal, nil
}
