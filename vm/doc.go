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

// Package vm implements the intcode VM.
//
// An intcode program is a flat list of integers loaded into a private memory
// Image. There are no registers: every instruction reads its operands from
// memory, either by address (position mode) or from the instruction stream
// itself (immediate mode), and writes its result back to memory.
//
//	opcode	name	args	description
//	------	----	----	-----------------------------------------------------
//	1	add	a b d	store a+b at address d
//	2	mul	a b d	store a*b at address d
//	3	in	d	store the next input value at address d
//	4	out	a	append a to the output queue
//	5	jt	a t	jump to t if a != 0
//	6	jf	a t	jump to t if a == 0
//	7	lt	a b d	store 1 at address d if a < b, 0 otherwise
//	8	eq	a b d	store 1 at address d if a == b, 0 otherwise
//	99	hlt		halt
//
// The two low order decimal digits of an instruction word select the opcode.
// The hundreds digit is the mode of the first operand, the thousands digit the
// mode of the second one. Destination operands are always addresses.
//
// Execution is cooperative: Run and Resume execute the program until it either
// halts or reaches an input instruction with no input value available. In the
// latter case the VM is suspended and the returned AwaitingInput state holds
// it, ready to be resumed with the next value. This is the only suspension
// point.
//
// Like in the Ngaro VM, the PC is not incremented in a single place; each
// opcode deals with it as needed. On error, the PC points to the instruction
// that triggered it.
package vm
