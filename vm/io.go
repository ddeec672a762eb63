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
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/db47h/funge/internal/ngi"
	"github.com/pkg/errors"
)

// Port is the I/O capability used by the &, ~, . and , instructions.
//
// ReadInt and ReadChar may block until input is available. ReadChar must
// return io.EOF (possibly wrapped) at end of input; the VM then pushes -1.
type Port interface {
	ReadInt() (Cell, error)
	ReadChar() (Cell, error)
	WriteInt(v Cell) error
	WriteChar(v Cell) error
}

type flusher interface {
	Flush() error
}

func flush(w io.Writer) error {
	if f, ok := w.(flusher); ok {
		return f.Flush()
	}
	return nil
}

// readLine reads runes up to and including the next '\n'. The newline is not
// returned. A rune returned along with an error is kept. Backspace and delete erase the last rune. If echo is not nil,
// every rune read is echoed to it and '\r' also ends the line.
func readLine(r io.RuneReader, echo io.Writer) (string, error) {
	var b strings.Builder
	for {
		c, size, err := r.ReadRune()
		if size == 0 {
			if err == nil {
				err = io.ErrNoProgress
			}
			if err == io.EOF && b.Len() > 0 {
				return b.String(), nil
			}
			return b.String(), err
		}
		if c == '\n' || c == '\r' && echo != nil {
			if echo != nil {
				echo.Write([]byte("\r\n"))
			}
			return b.String(), nil
		}
		if c == '\b' || c == 0x7f {
			if s := b.String(); len(s) > 0 {
				_, sz := utf8.DecodeLastRuneInString(s)
				b.Reset()
				b.WriteString(s[:len(s)-sz])
				if echo != nil {
					echo.Write([]byte("\b \b"))
				}
			}
			continue
		}
		if echo != nil {
			echo.Write([]byte(string(c)))
		}
		b.WriteRune(c)
	}
}

func parseInt(line string) (Cell, error) {
	n, err := strconv.ParseInt(strings.TrimSpace(line), 10, 32)
	if err != nil {
		return 0, &Error{Errno: ParseError, Err: err}
	}
	return Cell(n), nil
}

// StreamPort is a Port reading from an io.Reader and writing to an io.Writer.
type StreamPort struct {
	r io.RuneReader
	w io.Writer
}

// NewPort returns a new StreamPort.
//
// Integer input is line based: ReadInt reads a whole line and parses it as a
// base 10 signed integer. Integers are written in decimal followed by a space.
// WriteChar writes the low 8 bits of its argument as a single byte. If w has a
// Flush() error method, it is called after each write.
func NewPort(r io.Reader, w io.Writer) *StreamPort {
	return &StreamPort{newRuneReader(r), w}
}

// ReadInt implements Port.
func (p *StreamPort) ReadInt() (Cell, error) {
	l, err := readLine(p.r, nil)
	if err != nil {
		return 0, errors.Wrap(err, "ReadInt")
	}
	return parseInt(l)
}

// ReadChar implements Port.
func (p *StreamPort) ReadChar() (Cell, error) {
	c, size, err := p.r.ReadRune()
	if size == 0 {
		if err == nil {
			err = io.ErrNoProgress
		}
		return 0, err
	}
	return Cell(c), nil
}

// WriteInt implements Port.
func (p *StreamPort) WriteInt(v Cell) error {
	ew := ngi.NewErrWriter(p.w)
	ew.WriteString(strconv.Itoa(int(v)))
	ew.Write([]byte{' '})
	if ew.Err != nil {
		return ew.Err
	}
	return flush(p.w)
}

// WriteChar implements Port.
func (p *StreamPort) WriteChar(v Cell) error {
	if _, err := p.w.Write([]byte{byte(v)}); err != nil {
		return errors.Wrap(err, "WriteChar")
	}
	return flush(p.w)
}

// CaretPort is a Port that places output at a caret position on a Terminal.
// It is used in trace mode to keep program I/O out of the way of the grid and
// stack display.
type CaretPort struct {
	r        io.RuneReader
	t        Terminal
	row, col int
	// Echo enables echoing of input characters. Set it when the terminal is in
	// raw mode.
	Echo bool
}

// NewCaretPort returns a new CaretPort reading from r and writing to t with
// its caret at the given screen position.
func NewCaretPort(r io.Reader, t Terminal, row, col int) *CaretPort {
	return &CaretPort{r: newRuneReader(r), t: t, row: row, col: col}
}

// Caret returns the current caret position.
func (p *CaretPort) Caret() (row, col int) { return p.row, p.col }

func (p *CaretPort) newLine() {
	p.row++
	p.col = 1
}

func (p *CaretPort) echo() io.Writer {
	if p.Echo {
		return p.t
	}
	return nil
}

// ReadInt implements Port.
func (p *CaretPort) ReadInt() (Cell, error) {
	p.t.MoveCursor(p.row, p.col)
	if err := p.t.Flush(); err != nil {
		return 0, err
	}
	l, err := readLine(p.r, p.echo())
	if err != nil {
		return 0, errors.Wrap(err, "ReadInt")
	}
	p.newLine()
	return parseInt(l)
}

// ReadChar implements Port.
func (p *CaretPort) ReadChar() (Cell, error) {
	p.t.MoveCursor(p.row, p.col)
	if err := p.t.Flush(); err != nil {
		return 0, err
	}
	c, size, err := p.r.ReadRune()
	if size == 0 {
		if err == nil {
			err = io.ErrNoProgress
		}
		return 0, err
	}
	if p.Echo && c == '\r' {
		c = '\n'
	}
	switch {
	case c == '\n':
		p.newLine()
	case p.Echo:
		p.t.Write([]byte(string(c)))
		p.col++
	}
	return Cell(c), nil
}

// WriteInt implements Port.
func (p *CaretPort) WriteInt(v Cell) error {
	p.t.MoveCursor(p.row, p.col)
	s := strconv.Itoa(int(v)) + " "
	if _, err := io.WriteString(p.t, s); err != nil {
		return errors.Wrap(err, "WriteInt")
	}
	p.col += len(s)
	return p.t.Flush()
}

// WriteChar implements Port.
func (p *CaretPort) WriteChar(v Cell) error {
	c := byte(v)
	if c == '\n' {
		p.newLine()
		return nil
	}
	p.t.MoveCursor(p.row, p.col)
	if _, err := p.t.Write([]byte{c}); err != nil {
		return errors.Wrap(err, "WriteChar")
	}
	p.col++
	return p.t.Flush()
}
