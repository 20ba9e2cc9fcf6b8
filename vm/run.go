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

import (
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// State is the state of a VM returned by Run and Resume. It is either
// AwaitingInput or Halted.
type State interface {
	state()
}

// AwaitingInput is returned when the VM reached an input instruction and no
// input value was available. The PC still points to the input instruction;
// resume execution with Instance.Resume.
type AwaitingInput struct {
	VM *Instance
}

// Halted is returned when the program has terminated. Output holds the output
// values that had not been read when the VM halted.
type Halted struct {
	Output []Cell
}

func (AwaitingInput) state() {}
func (Halted) state()        {}

// Run starts or continues execution of the VM with no input available.
//
// If an error occurs, the PC will point to the instruction that triggered
// the error. Errors are fatal: the instance should not be used anymore.
func (i *Instance) Run() (State, error) {
	return i.execute(0, false)
}

// Resume continues execution of the VM with v as the next input value. At most
// one value is consumed: if the program reaches another input instruction
// after consuming v, it is suspended again.
func (i *Instance) Resume(v Cell) (State, error) {
	return i.execute(v, true)
}

func (i *Instance) execute(input Cell, hasInput bool) (State, error) {
	if i.halted {
		panic("vm: execute on halted instance")
	}
	i.insCount = 0
	for {
		ins, err := Decode(i.Image, i.PC)
		if err != nil {
			return nil, err
		}
		switch ins.Op {
		case OpAdd:
			err = i.Image.Write(ins.Dest, ins.A+ins.B)
		case OpMul:
			err = i.Image.Write(ins.Dest, ins.A*ins.B)
		case OpInput:
			if !hasInput {
				i.log.WithFields(logrus.Fields{
					"pc":    i.PC,
					"steps": i.insCount,
				}).Debug("awaiting input")
				return AwaitingInput{i}, nil
			}
			err = i.Image.Write(ins.Dest, input)
			hasInput = false
		case OpOutput:
			i.output = append(i.output, ins.A)
		case OpJumpIfTrue:
			if ins.A != 0 {
				i.PC = ins.Dest
				i.insCount++
				continue
			}
		case OpJumpIfFalse:
			if ins.A == 0 {
				i.PC = ins.Dest
				i.insCount++
				continue
			}
		case OpLessThan:
			err = i.Image.Write(ins.Dest, bool2Cell(ins.A < ins.B))
		case OpEquals:
			err = i.Image.Write(ins.Dest, bool2Cell(ins.A == ins.B))
		case OpHalt:
			i.insCount++
			i.halted = true
			out := i.output
			i.output = nil
			i.log.WithFields(logrus.Fields{
				"pc":     i.PC,
				"steps":  i.insCount,
				"output": len(out),
			}).Debug("halted")
			return Halted{out}, nil
		}
		if err != nil {
			return nil, errors.Wrapf(err, "%v @pc=%d", ins, i.PC)
		}
		i.PC += ins.Size()
		i.insCount++
	}
}

func bool2Cell(b bool) Cell {
	if b {
		return 1
	}
	return 0
}

// Exec runs program with the given input values and returns its output. The
// program is run on a private copy of its image, program is never modified.
// Input values are consumed in order, one per input instruction; if the
// program needs more input than provided, Exec fails with ErrInputExhausted.
func Exec(program Image, inputs ...Cell) ([]Cell, error) {
	i, err := New(program.Clone())
	if err != nil {
		return nil, err
	}
	st, err := i.Run()
	for err == nil {
		if h, ok := st.(Halted); ok {
			return h.Output, nil
		}
		if len(inputs) == 0 {
			return nil, errors.Wrapf(ErrInputExhausted, "@pc=%d", i.PC)
		}
		v := inputs[0]
		inputs = inputs[1:]
		st, err = i.Resume(v)
	}
	return nil, err
}
