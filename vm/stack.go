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
	"github.com/db47h/funge/internal/ngi"
)

// Stack is the operand stack. The top of the stack is the last element of
// the slice.
type Stack []Cell

// Push pushes the argument on top of the stack.
func (s *Stack) Push(v Cell) {
	*s = append(*s, v)
}

// Pop removes the value on top of the stack and returns it. Popping an empty
// stack returns a StackUnderflow error.
func (s *Stack) Pop() (Cell, error) {
	l := len(*s) - 1
	if l < 0 {
		return 0, &Error{Errno: StackUnderflow, Need: 1}
	}
	v := (*s)[l]
	*s = (*s)[:l]
	return v, nil
}

// Len returns the stack depth.
func (s Stack) Len() int { return len(s) }

// pop is the unchecked version of Pop. The dispatcher checks instruction arity
// before calling it.
func (s *Stack) pop() Cell {
	l := len(*s) - 1
	v := (*s)[l]
	*s = (*s)[:l]
	return v
}

func (s Stack) top() Cell { return s[len(s)-1] }

// at returns the n-th element from the top, at(0) being the top.
func (s Stack) at(n int) Cell { return s[len(s)-1-n] }

// Show draws the stack contents on the terminal, bottom first, one element
// per line in screen columns 1 to width. At most rows elements are shown.
func (s Stack) Show(t Terminal, rows, width int) error {
	ew := ngi.NewErrWriter(t)
	for row := 1; row <= rows; row++ {
		t.MoveCursor(row, width)
		t.EraseToBOL()
	}
	for n, v := range s {
		if n >= rows {
			break
		}
		c := byte(v)
		if c < ' ' || c >= 0x7f {
			c = ' '
		}
		t.MoveCursor(n+1, 1)
		ew.Printf("%10d: '%c'", v, c)
	}
	return ew.Err
}
