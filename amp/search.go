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
	"github.com/db47h/intcode/perm"
	"github.com/db47h/intcode/vm"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// Run connects one amplifier per phase setting and returns the signal of the
// last one.
func Run(program vm.Image, phases []vm.Cell, mode Mode, opts ...Option) (vm.Cell, error) {
	r, err := NewRing(program, phases, mode, opts...)
	if err != nil {
		return 0, err
	}
	return r.Run()
}

// RunChain runs the amplifiers in series, once.
func RunChain(program vm.Image, phases []vm.Cell, opts ...Option) (vm.Cell, error) {
	return Run(program, phases, Chain, opts...)
}

// RunFeedback runs the amplifiers in a feedback loop until the last one halts.
func RunFeedback(program vm.Image, phases []vm.Cell, opts ...Option) (vm.Cell, error) {
	return Run(program, phases, Feedback, opts...)
}

// Result is the outcome of a phase settings search.
type Result struct {
	Signal vm.Cell   // highest signal
	Phases []vm.Cell // phase settings producing Signal
}

// MaxSignal tries every ordering of the given phase settings and returns the
// one producing the highest signal. The search stops on the first error, which
// is reported along with the phase settings that caused it.
func MaxSignal(program vm.Image, phases []vm.Cell, mode Mode, opts ...Option) (res Result, err error) {
	var (
		cfg   = newConfig(opts)
		found bool
		runs  int
	)
	perm.Each(phases, func(p []vm.Cell) bool {
		var s vm.Cell
		runs++
		if s, err = Run(program, p, mode, opts...); err != nil {
			err = errors.Wrapf(err, "phases %v", p)
			return false
		}
		if !found || s > res.Signal {
			found = true
			res.Signal = s
			res.Phases = append(res.Phases[:0], p...)
			cfg.log.WithFields(logrus.Fields{
				"signal": s,
				"phases": res.Phases,
			}).Debug("new max signal")
		}
		return true
	})
	if err != nil {
		return Result{}, err
	}
	cfg.log.WithFields(logrus.Fields{
		"mode": mode,
		"runs": runs,
	}).Debug("search done")
	return res, nil
}
