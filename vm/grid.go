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
	"bytes"
	"strings"

	"github.com/db47h/funge/internal/ngi"
)

// Default grid dimensions for Befunge-93 programs.
const (
	Width  = 80
	Height = 25
)

// Blank is the value of empty grid cells.
const Blank = ' '

// Grid is the toroidal instruction memory of a Befunge program. Cells are
// stored in row-major order.
type Grid struct {
	w, h  int
	cells []byte
}

// NewGrid creates a new w by h grid from the given source lines. Each line
// fills the leading cells of one row. Lines longer than w are truncated, short
// lines and missing rows are padded with Blank. A zero or negative w or h
// selects the default Width or Height.
func NewGrid(lines []string, w, h int) *Grid {
	if w <= 0 {
		w = Width
	}
	if h <= 0 {
		h = Height
	}
	g := &Grid{w, h, bytes.Repeat([]byte{Blank}, w*h)}
	for row, l := range lines {
		if row >= h {
			break
		}
		if len(l) > w {
			l = l[:w]
		}
		copy(g.cells[row*w:], l)
	}
	return g
}

// Width returns the number of columns in the grid.
func (g *Grid) Width() int { return g.w }

// Height returns the number of rows in the grid.
func (g *Grid) Height() int { return g.h }

// In reports whether (row, col) is a valid grid position.
func (g *Grid) In(row, col int) bool {
	return row >= 0 && row < g.h && col >= 0 && col < g.w
}

// Get returns the value of the cell at (row, col). It panics if the position
// is out of bounds.
func (g *Grid) Get(row, col int) byte {
	if !g.In(row, col) {
		panic(errOutOfGrid(row, col))
	}
	return g.cells[row*g.w+col]
}

// Put sets the value of the cell at (row, col). It panics if the position is
// out of bounds.
func (g *Grid) Put(v byte, row, col int) {
	if !g.In(row, col) {
		panic(errOutOfGrid(row, col))
	}
	g.cells[row*g.w+col] = v
}

func errOutOfGrid(row, col int) error {
	return &Error{Errno: OutOfBounds, Row: Cell(row), Col: Cell(col)}
}

// Lines returns the contents of the grid as text lines with trailing blanks
// removed. Trailing empty lines are omitted.
func (g *Grid) Lines() []string {
	var lines []string
	last := 0
	for row := 0; row < g.h; row++ {
		l := strings.TrimRight(string(g.cells[row*g.w:(row+1)*g.w]), string(Blank))
		lines = append(lines, l)
		if l != "" {
			last = row + 1
		}
	}
	return lines[:last]
}

// Render draws the grid on the terminal with its top left corner at screen
// position (top, left), 1-based. The cell under cur is shown in reverse video.
// Non graphic characters are displayed as blanks.
func (g *Grid) Render(t Terminal, top, left int, cur Pos) error {
	ew := ngi.NewErrWriter(t)
	line := make([]byte, 0, g.w)
	for row := 0; row < g.h; row++ {
		t.MoveCursor(top+row, left)
		line = line[:0]
		for col := 0; col < g.w; col++ {
			c := g.cells[row*g.w+col]
			if c <= ' ' || c >= 0x7f {
				c = ' '
			}
			if row != cur.Row || col != cur.Col {
				line = append(line, c)
				continue
			}
			ew.Write(line)
			line = line[:0]
			t.Reverse()
			ew.Write([]byte{c})
			t.ResetAttr()
		}
		ew.Write(line)
	}
	return ew.Err
}
