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

import "strconv"

// Direction is the direction of travel of the program counter.
type Direction uint8

// Directions. The zero value is Right.
const (
	Right Direction = iota
	Down
	Left
	Up
)

var dirNames = [...]string{"right", "down", "left", "up"}

func (d Direction) String() string {
	if int(d) < len(dirNames) {
		return dirNames[d]
	}
	return "Direction(" + strconv.Itoa(int(d)) + ")"
}

// row and column deltas for each direction.
var deltas = [...]struct{ dr, dc int }{
	Right: {0, 1},
	Down:  {1, 0},
	Left:  {0, -1},
	Up:    {-1, 0},
}

// Pos is a grid position.
type Pos struct {
	Row, Col int
}

func (p Pos) String() string {
	return "(" + strconv.Itoa(p.Row) + ", " + strconv.Itoa(p.Col) + ")"
}

// PC is the program counter: a position on a w by h torus and a direction.
type PC struct {
	pos  Pos
	dir  Direction
	w, h int
}

// NewPC returns a program counter for a w by h grid, heading right. Its
// initial position is the last column of row 0 so that the first call to
// Advance lands on (0, 0).
func NewPC(w, h int) PC {
	return PC{pos: Pos{0, w - 1}, dir: Right, w: w, h: h}
}

// Advance moves the program counter by one cell in its current direction,
// wrapping around the grid edges.
func (p *PC) Advance() {
	d := deltas[p.dir]
	p.pos.Row = (p.pos.Row + d.dr + p.h) % p.h
	p.pos.Col = (p.pos.Col + d.dc + p.w) % p.w
}

// Position returns the current position.
func (p *PC) Position() Pos { return p.pos }

// Direction returns the current direction.
func (p *PC) Direction() Direction { return p.dir }

// SetDirection changes the direction. It takes effect on the next Advance.
func (p *PC) SetDirection(d Direction) { p.dir = d }
