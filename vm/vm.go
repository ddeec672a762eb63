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
	"log/slog"
	"math/rand"
	"time"

	"github.com/pkg/errors"
)

// Cell is the type of values on the operand stack.
type Cell int32

// Instance represents a Befunge-93 interpreter session: a grid, an operand
// stack and a program counter.
type Instance struct {
	grid     *Grid
	stack    Stack
	pc       PC
	port     Port
	term     Terminal
	delay    time.Duration
	rnd      *rand.Rand
	log      *slog.Logger
	maxTicks int64
	ticks    int64
	strMode  bool
	halted   bool
	err      error
}

// Option interface
type Option func(*Instance) error

// IO sets the I/O port used by the &, ~, . and , instructions. Without a port,
// any of these instructions will fail with an IOError.
func IO(p Port) Option {
	return func(i *Instance) error {
		i.port = p
		return nil
	}
}

// Trace enables rendering of the grid and stack on the given Terminal after
// each tick, followed by a pause of the given duration.
func Trace(t Terminal, delay time.Duration) Option {
	return func(i *Instance) error {
		if delay < 0 {
			return errors.Errorf("negative trace delay %v", delay)
		}
		i.term = t
		i.delay = delay
		return nil
	}
}

// Rand sets the source of randomness for the ? instruction. The default is a
// source seeded with the current time.
func Rand(src rand.Source) Option {
	return func(i *Instance) error {
		i.rnd = rand.New(src)
		return nil
	}
}

// Logger sets the logger used for VM diagnostics. Logging is disabled by
// default.
func Logger(l *slog.Logger) Option {
	return func(i *Instance) error {
		i.log = l
		return nil
	}
}

// MaxTicks limits the number of ticks the VM will execute. Run and Step
// return ErrTickLimit once the limit is reached. The default, 0, means no
// limit.
func MaxTicks(n int64) Option {
	return func(i *Instance) error {
		if n < 0 {
			return errors.Errorf("negative tick limit %d", n)
		}
		i.maxTicks = n
		return nil
	}
}

// SetOptions sets the provided options.
func (i *Instance) SetOptions(opts ...Option) error {
	for _, opt := range opts {
		if err := opt(i); err != nil {
			return err
		}
	}
	return nil
}

// New creates a new VM instance that runs the program in the given grid. The
// grid is owned by the instance and modified in place by the p instruction.
//
// Options will be set by calling SetOptions.
func New(g *Grid, opts ...Option) (*Instance, error) {
	if g == nil {
		return nil, errors.New("nil grid")
	}
	i := &Instance{
		grid: g,
		pc:   NewPC(g.Width(), g.Height()),
	}
	if err := i.SetOptions(opts...); err != nil {
		return nil, err
	}
	if i.rnd == nil {
		i.rnd = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if i.log == nil {
		i.log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return i, nil
}

// Grid returns the instance's grid.
func (i *Instance) Grid() *Grid { return i.grid }

// Data returns the data stack. Note that value changes will be reflected in
// the instance's stack, but re-slicing will not affect it. To add/remove
// values on the data stack, use the Push and Pop functions.
func (i *Instance) Data() []Cell { return i.stack }

// Push pushes the argument on top of the data stack.
func (i *Instance) Push(v Cell) { i.stack.Push(v) }

// Pop pops the value on top of the data stack and returns it.
func (i *Instance) Pop() (Cell, error) { return i.stack.Pop() }

// PC returns the program counter position and direction.
func (i *Instance) PC() (Pos, Direction) { return i.pc.Position(), i.pc.Direction() }

// Ticks returns the number of ticks executed so far.
func (i *Instance) Ticks() int64 { return i.ticks }

// Halted reports whether the VM has stopped, either by executing @ or because
// of a fault.
func (i *Instance) Halted() bool { return i.halted || i.err != nil }

// Err returns the error that stopped the VM, if any.
func (i *Instance) Err() error { return i.err }
