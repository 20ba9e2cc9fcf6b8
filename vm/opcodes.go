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

import "strconv"

// Opcode is the operation selector of an instruction word, i.e. its two low
// order decimal digits.
type Opcode Cell

// Intcode VM Opcodes.
const (
	OpAdd         Opcode = 1
	OpMul         Opcode = 2
	OpInput       Opcode = 3
	OpOutput      Opcode = 4
	OpJumpIfTrue  Opcode = 5
	OpJumpIfFalse Opcode = 6
	OpLessThan    Opcode = 7
	OpEquals      Opcode = 8
	OpHalt        Opcode = 99
)

var opcodes = map[Opcode]string{
	OpAdd:         "add",
	OpMul:         "mul",
	OpInput:       "in",
	OpOutput:      "out",
	OpJumpIfTrue:  "jt",
	OpJumpIfFalse: "jf",
	OpLessThan:    "lt",
	OpEquals:      "eq",
	OpHalt:        "hlt",
}

// String returns the opcode mnemonic.
func (op Opcode) String() string {
	if s, ok := opcodes[op]; ok {
		return s
	}
	return "op(" + strconv.Itoa(int(op)) + ")"
}

// Valid returns true if op is a known opcode.
func (op Opcode) Valid() bool {
	_, ok := opcodes[op]
	return ok
}

// Mode is an operand addressing mode.
type Mode Cell

// Addressing modes.
const (
	Position  Mode = 0 // the operand is the address of the value
	Immediate Mode = 1 // the operand is the value
)

func (m Mode) String() string {
	switch m {
	case Position:
		return "position"
	case Immediate:
		return "immediate"
	}
	return "mode(" + strconv.Itoa(int(m)) + ")"
}

// mode extracts the addressing mode of the n-th operand (starting at 1) from
// an instruction word.
func mode(w Cell, n int) Mode {
	d := w / 100
	for ; n > 1; n-- {
		d /= 10
	}
	return Mode(d % 10)
}
