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
	"io"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// Instance represents an intcode VM instance.
type Instance struct {
	PC       int   // Program Counter (aka. Instruction Pointer)
	Image    Image // Memory image
	output   []Cell
	insCount int64
	halted   bool
	minSize  int
	name     string
	log      logrus.FieldLogger
}

// Option interface
type Option func(*Instance) error

// Logger sets the logger used to report suspensions and halts at debug level.
// The default is to discard log output.
func Logger(l logrus.FieldLogger) Option {
	return func(i *Instance) error {
		if l == nil {
			return errors.New("nil logger")
		}
		i.log = l
		return nil
	}
}

// Name sets the name under which the instance logs.
func Name(name string) Option {
	return func(i *Instance) error { i.name = name; return nil }
}

// MinSize sets the minimum memory size in cells. If the image is smaller, it
// is extended with zeroes when the instance is created. The memory never
// grows afterwards.
func MinSize(size int) Option {
	return func(i *Instance) error {
		if size < 0 {
			return errors.Errorf("invalid memory size %d", size)
		}
		i.minSize = size
		return nil
	}
}

var discard = func() *logrus.Logger {
	l := logrus.New()
	l.Out = io.Discard
	return l
}()

// SetOptions sets the provided options.
func (i *Instance) SetOptions(opts ...Option) error {
	for _, opt := range opts {
		if err := opt(i); err != nil {
			return err
		}
	}
	return nil
}

// New creates a new intcode Virtual Machine instance.
//
// The image parameter is the Cell array used as memory by the VM, usually
// loaded from file with the Load function. The instance takes ownership of
// the image: it must not be used by the caller nor shared with any other VM
// while the instance is in use. Use Image.Clone to run several instances of
// the same program.
//
// Options will be set by calling SetOptions.
func New(image Image, opts ...Option) (*Instance, error) {
	i := &Instance{
		PC:    0,
		Image: image,
		log:   discard,
	}
	if err := i.SetOptions(opts...); err != nil {
		return nil, err
	}
	i.Image = i.Image.grow(i.minSize)
	if i.name != "" {
		i.log = i.log.WithField("vm", i.name)
	}
	return i, nil
}

// Output returns the output values produced and not read yet. The returned
// slice must not be modified.
func (i *Instance) Output() []Cell {
	return i.output
}

// ReadOutput returns the pending output values in the order they were
// produced and clears the output queue.
func (i *Instance) ReadOutput() []Cell {
	out := i.output
	i.output = nil
	return out
}

// Halted returns true if the program has halted. A halted instance cannot be
// executed anymore.
func (i *Instance) Halted() bool {
	return i.halted
}

// InstructionCount returns the number of instructions executed during the
// last call to Run or Resume.
func (i *Instance) InstructionCount() int64 {
	return i.insCount
}
