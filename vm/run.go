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
	"io"
	"time"

	"github.com/pkg/errors"
)

// screen layout in trace mode.
const (
	traceStackWidth = 19
	traceGridLeft   = 20
)

// Run starts execution of the VM and returns when the program halts with @
// or on the first fault. If the program halted cleanly, err will be nil.
//
// Faults are returned as *Error values. A faulted VM cannot be resumed:
// subsequent calls to Run or Step return the same error.
func (i *Instance) Run() (err error) {
	defer func() {
		if e := recover(); e != nil {
			switch e := e.(type) {
			case error:
				err = errors.Wrapf(e, "Recovered error @%v, tick %d, stack %d", i.pc.Position(), i.ticks, len(i.stack))
				i.err = err
			default:
				panic(e)
			}
		}
	}()
	for {
		halted, err := i.Step()
		if err != nil || halted {
			return err
		}
	}
}

// Step executes a single tick: it advances the program counter, fetches the
// instruction under it and executes it. It returns true if the VM is halted.
func (i *Instance) Step() (halted bool, err error) {
	if i.err != nil {
		return true, i.err
	}
	if i.halted {
		return true, nil
	}
	if i.maxTicks > 0 && i.ticks >= i.maxTicks {
		i.err = ErrTickLimit
		i.log.Debug("tick limit reached", "ticks", i.ticks, "pos", i.pc.Position())
		return true, i.err
	}
	i.pc.Advance()
	i.ticks++
	pos := i.pc.Position()
	op := i.grid.Get(pos.Row, pos.Col)
	if i.term != nil {
		if err = i.trace(); err != nil {
			err = i.fault(op, &Error{Errno: IOError, Err: err})
		}
	}
	if err == nil {
		err = i.exec(op)
	}
	if err != nil {
		i.err = err
		i.log.Debug("fault", "err", err, "ticks", i.ticks, "pos", pos)
		return true, err
	}
	if i.halted {
		i.log.Debug("halt", "ticks", i.ticks, "pos", pos)
	}
	return i.halted, nil
}

func (i *Instance) trace() error {
	t := i.term
	if i.ticks == 1 {
		t.Clear()
	}
	if err := i.grid.Render(t, 1, traceGridLeft, i.pc.Position()); err != nil {
		return err
	}
	if err := i.stack.Show(t, i.grid.Height(), traceStackWidth); err != nil {
		return err
	}
	if err := t.Flush(); err != nil {
		return err
	}
	if i.delay > 0 {
		time.Sleep(i.delay)
	}
	return nil
}

// fault fills in the execution context of e.
func (i *Instance) fault(op byte, e *Error) *Error {
	e.Op = op
	e.Pos = i.pc.Position()
	e.Tick = i.ticks
	e.Stack = append([]Cell(nil), i.stack...)
	return e
}

// ioFault converts an error returned by the I/O port into a fault.
func (i *Instance) ioFault(op byte, err error) error {
	var e *Error
	if !errors.As(err, &e) {
		e = &Error{Errno: IOError, Err: err}
	}
	return i.fault(op, e)
}

func bool2Cell(b bool) Cell {
	if b {
		return 1
	}
	return 0
}

func (i *Instance) exec(op byte) error {
	if i.strMode {
		if op == '"' {
			i.strMode = false
		} else {
			i.stack.Push(Cell(op))
		}
		return nil
	}

	ins := instructions[op]
	if ins == nil {
		return i.fault(op, &Error{Errno: UnknownInstruction})
	}
	if n := len(i.stack); n < ins.pops {
		return i.fault(op, &Error{Errno: StackUnderflow, Need: ins.pops, Have: n})
	}
	if i.port == nil {
		switch op {
		case '&', '~', '.', ',':
			return i.fault(op, &Error{Errno: IOError, Err: errors.New("no I/O port")})
		}
	}

	s := &i.stack
	switch op {
	// control flow
	case '^':
		i.pc.SetDirection(Up)
	case 'v':
		i.pc.SetDirection(Down)
	case '>':
		i.pc.SetDirection(Right)
	case '<':
		i.pc.SetDirection(Left)
	case '_':
		if s.pop() == 0 {
			i.pc.SetDirection(Right)
		} else {
			i.pc.SetDirection(Left)
		}
	case '|':
		if s.pop() == 0 {
			i.pc.SetDirection(Down)
		} else {
			i.pc.SetDirection(Up)
		}
	case '?':
		i.pc.SetDirection(Direction(i.rnd.Intn(4)))
	case '#':
		i.pc.Advance()
	case '@':
		i.halted = true
	case ' ':

	// literals
	case '0', '1', '2', '3', '4', '5', '6', '7', '8', '9':
		s.Push(Cell(op - '0'))
	case '"':
		i.strMode = true

	// I/O
	case '&':
		v, err := i.port.ReadInt()
		if err != nil {
			return i.ioFault(op, err)
		}
		s.Push(v)
	case '~':
		v, err := i.port.ReadChar()
		if err != nil {
			if errors.Cause(err) != io.EOF {
				return i.ioFault(op, err)
			}
			v = -1
		}
		s.Push(v)
	case '.':
		if err := i.port.WriteInt(s.pop()); err != nil {
			return i.ioFault(op, err)
		}
	case ',':
		if err := i.port.WriteChar(s.pop()); err != nil {
			return i.ioFault(op, err)
		}

	// arithmetic
	case '/', '%':
		if s.top() == 0 {
			return i.fault(op, &Error{Errno: DivisionByZero})
		}
		y := s.pop()
		x := s.pop()
		if op == '/' {
			s.Push(x / y)
		} else {
			s.Push(x % y)
		}
	case '+':
		y := s.pop()
		x := s.pop()
		s.Push(x + y)
	case '-':
		y := s.pop()
		x := s.pop()
		s.Push(x - y)
	case '*':
		y := s.pop()
		x := s.pop()
		s.Push(x * y)
	case '`':
		y := s.pop()
		x := s.pop()
		s.Push(bool2Cell(x > y))
	case '!':
		s.Push(bool2Cell(s.pop() == 0))

	// stack
	case ':':
		s.Push(s.top())
	case '\\':
		l := len(*s)
		(*s)[l-1], (*s)[l-2] = (*s)[l-2], (*s)[l-1]
	case '$':
		s.pop()

	// grid
	case 'g':
		row, col := s.at(0), s.at(1)
		if !i.grid.In(int(row), int(col)) {
			return i.fault(op, &Error{Errno: OutOfBounds, Row: row, Col: col})
		}
		*s = (*s)[:len(*s)-2]
		s.Push(Cell(i.grid.Get(int(row), int(col))))
	case 'p':
		row, col := s.at(0), s.at(1)
		if !i.grid.In(int(row), int(col)) {
			return i.fault(op, &Error{Errno: OutOfBounds, Row: row, Col: col})
		}
		v := s.at(2)
		*s = (*s)[:len(*s)-3]
		i.grid.Put(byte(v), int(row), int(col))
	}
	return nil
}
