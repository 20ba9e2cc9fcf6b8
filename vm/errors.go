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

// Execution errors. They are always returned wrapped with some context, use
// errors.Cause to check for them:
//
//	if errors.Cause(err) == vm.ErrInvalidOpcode {
//		// ...
//	}
var (
	ErrInvalidOpcode      = errors.New("invalid opcode")
	ErrInvalidMode        = errors.New("invalid addressing mode")
	ErrAddressOutOfBounds = errors.New("address out of bounds")
	ErrInputExhausted     = errors.New("input exhausted")
)

// ErrNoMatch is returned by FindNounVerb when no noun and verb produce the
// requested value.
var ErrNoMatch = errors.New("no matching noun and verb")
