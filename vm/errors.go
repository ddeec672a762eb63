// This file is part of funge - https://github.com/db47h/funge
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
	"fmt"
	"strconv"

	"github.com/pkg/errors"
)

// Errno describes the nature of a VM fault.
type Errno int

// List of VM faults for Errno.
const (
	StackUnderflow Errno = iota + 1
	OutOfBounds
	ParseError
	UnknownInstruction
	DivisionByZero
	IOError
)

var strError = [...]string{
	StackUnderflow:     "stack underflow",
	OutOfBounds:        "grid access out of bounds",
	ParseError:         "invalid integer input",
	UnknownInstruction: "unknown instruction",
	DivisionByZero:     "division by zero",
	IOError:            "I/O error",
}

func (e Errno) Error() string {
	if e > 0 && int(e) < len(strError) {
		return strError[e]
	}
	return "errno " + strconv.Itoa(int(e))
}

// ErrTickLimit is returned by Run and Step when the instance has executed the
// maximum number of ticks set with the MaxTicks option.
var ErrTickLimit = errors.New("tick limit reached")

// Error describes the cause and the context of a VM fault.
//
// Errors returned by Run and Step can be matched against an Errno with
// errors.Is:
//
//	if errors.Is(err, vm.DivisionByZero) {
//		...
//	}
type Error struct {
	Errno Errno  // nature of the fault
	Err   error  // underlying error for IOError and ParseError
	Op    byte   // instruction that faulted
	Pos   Pos    // position of the faulting instruction
	Tick  int64  // tick number, 0 if the fault did not occur in the dispatcher
	Need  int    // operands needed when Errno is StackUnderflow
	Have  int    // operands available when Errno is StackUnderflow
	Row   Cell   // row coordinate when Errno is OutOfBounds
	Col   Cell   // column coordinate when Errno is OutOfBounds
	Stack []Cell // data stack at the time of the fault, top last
}

func (e *Error) Error() string {
	msg := e.Errno.Error()
	switch e.Errno {
	case StackUnderflow:
		if e.Tick > 0 {
			s := "s"
			if e.Need == 1 {
				s = ""
			}
			msg += fmt.Sprintf(": %q needs %d operand%s, stack has %d", e.Op, e.Need, s, e.Have)
		}
	case OutOfBounds:
		msg += fmt.Sprintf(": %q at row %d, column %d", e.Op, e.Row, e.Col)
	case UnknownInstruction:
		msg += fmt.Sprintf(" %q", e.Op)
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	if e.Tick > 0 {
		msg += " at " + e.Pos.String()
	}
	return msg
}

// Unwrap returns the underlying error, if any.
func (e *Error) Unwrap() error { return e.Err }

// Is reports whether target is the Errno of e.
func (e *Error) Is(target error) bool {
	n, ok := target.(Errno)
	return ok && n == e.Errno
}
