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
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// Instruction is a decoded instruction. Operand values are resolved according
// to their addressing mode. Which fields are meaningful depends on Op:
//
//	add, mul, lt, eq:	A, B, Dest
//	in:			Dest
//	out:			A
//	jt, jf:			A, Dest (the jump target)
//	hlt:			none
type Instruction struct {
	Op   Opcode
	A, B Cell
	Dest int
}

// Size returns the number of memory cells used by the instruction, opcode
// included.
func (ins Instruction) Size() int {
	switch ins.Op {
	case OpAdd, OpMul, OpLessThan, OpEquals:
		return 4
	case OpJumpIfTrue, OpJumpIfFalse:
		return 3
	case OpInput, OpOutput:
		return 2
	}
	return 1
}

func (ins Instruction) String() string {
	var b strings.Builder
	b.WriteString(ins.Op.String())
	switch ins.Op {
	case OpAdd, OpMul, OpLessThan, OpEquals:
		b.WriteString(" " + strconv.FormatInt(int64(ins.A), 10))
		b.WriteString(" " + strconv.FormatInt(int64(ins.B), 10))
		b.WriteString(" @" + strconv.Itoa(ins.Dest))
	case OpJumpIfTrue, OpJumpIfFalse:
		b.WriteString(" " + strconv.FormatInt(int64(ins.A), 10))
		b.WriteString(" @" + strconv.Itoa(ins.Dest))
	case OpInput:
		b.WriteString(" @" + strconv.Itoa(ins.Dest))
	case OpOutput:
		b.WriteString(" " + strconv.FormatInt(int64(ins.A), 10))
	}
	return b.String()
}

// operand resolves the n-th operand (starting at 1) of the instruction word w
// located at pc.
func operand(mem Image, pc int, w Cell, n int) (Cell, error) {
	v, err := mem.Read(pc + n)
	if err != nil {
		return 0, err
	}
	switch m := mode(w, n); m {
	case Position:
		return mem.Read(int(v))
	case Immediate:
		return v, nil
	default:
		return 0, errors.Wrapf(ErrInvalidMode, "operand %d of %d @pc=%d", n, w, pc)
	}
}

// address returns the n-th operand of the instruction at pc as a literal
// address.
func address(mem Image, pc int, n int) (int, error) {
	v, err := mem.Read(pc + n)
	return int(v), err
}

// Decode decodes the instruction at address pc in mem. Decode does not modify
// mem.
func Decode(mem Image, pc int) (ins Instruction, err error) {
	w, err := mem.Read(pc)
	if err != nil {
		return ins, errors.Wrapf(err, "fetch @pc=%d", pc)
	}
	ins.Op = Opcode(w % 100)
	if w < 0 || !ins.Op.Valid() {
		return ins, errors.Wrapf(ErrInvalidOpcode, "%d @pc=%d", w, pc)
	}

	switch ins.Op {
	case OpAdd, OpMul, OpLessThan, OpEquals:
		if ins.A, err = operand(mem, pc, w, 1); err != nil {
			break
		}
		if ins.B, err = operand(mem, pc, w, 2); err != nil {
			break
		}
		ins.Dest, err = address(mem, pc, 3)
	case OpJumpIfTrue, OpJumpIfFalse:
		var t Cell
		if ins.A, err = operand(mem, pc, w, 1); err != nil {
			break
		}
		t, err = operand(mem, pc, w, 2)
		ins.Dest = int(t)
	case OpInput:
		ins.Dest, err = address(mem, pc, 1)
	case OpOutput:
		ins.A, err = operand(mem, pc, w, 1)
	}
	if err != nil && errors.Cause(err) == ErrAddressOutOfBounds {
		err = errors.Wrapf(err, "decode %v @pc=%d", ins.Op, pc)
	}
	return ins, err
}
