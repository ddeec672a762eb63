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
	"unicode/utf8"
)

// Terminal encapsulates methods provided by a terminal output. Apart from
// Write, all methods can be implemented as no-ops if the underlying output
// does not support the corresponding functionality.
//
// Flush writes any buffered unwritten output.
//
// Size returns the width and height of the terminal window. Should return 0, 0
// if unsupported.
//
// Clear clears the terminal screen and moves the cursor to the top left corner.
//
// MoveCursor moves the cursor to the specified 1-based row and column.
//
// Reverse switches to reverse video and ResetAttr resets all character
// attributes.
//
// EraseToBOL erases the current line from its start to the cursor.
type Terminal interface {
	io.Writer
	Flush() error
	Size() (width int, height int)
	Clear()
	MoveCursor(row, col int)
	Reverse()
	ResetAttr()
	EraseToBOL()
}

type vt100Terminal struct {
	io.Writer
	flush func() error
	size  func() (int, int)
}

func (t *vt100Terminal) Flush() error {
	if t.flush == nil {
		return nil
	}
	return t.flush()
}
func (t *vt100Terminal) Size() (width int, height int) {
	if t.size == nil {
		return 0, 0
	}
	return t.size()
}
func (t *vt100Terminal) Clear() {
	t.Write([]byte{'\033', '[', '2', 'J', '\033', '[', '1', ';', '1', 'H'})
}
func (t *vt100Terminal) MoveCursor(row, col int) {
	b := make([]byte, 0, 16)
	b = append(b, '\033', '[')
	b = strconv.AppendInt(b, int64(row), 10)
	b = append(b, ';')
	b = strconv.AppendInt(b, int64(col), 10)
	t.Write(append(b, 'H'))
}
func (t *vt100Terminal) Reverse()    { t.Write([]byte{'\033', '[', '7', 'm'}) }
func (t *vt100Terminal) ResetAttr()  { t.Write([]byte{'\033', '[', '0', 'm'}) }
func (t *vt100Terminal) EraseToBOL() { t.Write([]byte{'\033', '[', '1', 'K'}) }

// NewVT100Terminal returns a new Terminal implementation that uses VT100 escape
// sequences to implement the Clear, MoveCursor, Reverse, ResetAttr and
// EraseToBOL methods.
//
// The caller only needs to provide the functions implementing Flush and Size.
// Either of these functions may be nil, in which case they will be implemented
// as no-ops.
func NewVT100Terminal(w io.Writer, flush func() error, size func() (width int, height int)) Terminal {
	return &vt100Terminal{w, flush, size}
}

// runeReaderWrapper wraps a basic reader into a io.RuneReader. It reads one
// byte at a time so that it never consumes more input than needed. Bytes read
// past an invalid UTF-8 sequence are kept for the next call.
type runeReaderWrapper struct {
	io.Reader
	buf [utf8.UTFMax]byte
	n   int // pending bytes in buf
}

func (r *runeReaderWrapper) ReadRune() (ret rune, size int, err error) {
	for r.n < utf8.UTFMax && !utf8.FullRune(r.buf[:r.n]) {
		var n int
		n, err = r.Reader.Read(r.buf[r.n : r.n+1])
		r.n += n
		if err != nil {
			break
		}
	}
	if r.n == 0 {
		return 0, 0, err
	}
	ret, size = rune(r.buf[0]), 1
	if ret >= utf8.RuneSelf {
		ret, size = utf8.DecodeRune(r.buf[:r.n])
	}
	r.n = copy(r.buf[:], r.buf[size:r.n])
	if r.n > 0 {
		// report the error with the last pending byte
		err = nil
	}
	return ret, size, err
}

func newRuneReader(r io.Reader) io.RuneReader {
	switch rr := r.(type) {
	case nil:
		return nil
	case io.RuneReader:
		return rr
	default:
		return &runeReaderWrapper{Reader: r}
	}
}

type multiReader struct {
	readers []io.Reader
}

func (mr *multiReader) Read(p []byte) (n int, err error) {
	for len(mr.readers) > 0 {
		n, err = mr.readers[0].Read(p)
		if n > 0 || err != io.EOF {
			if err == io.EOF {
				// Don't return EOF yet. There may be more bytes
				// in the remaining readers.
				err = nil
			}
			return
		}
		if c, ok := mr.readers[0].(io.Closer); ok {
			c.Close()
		}
		mr.readers = mr.readers[1:]
	}
	return 0, io.EOF
}

// InputChain returns a reader that is the logical concatenation of the
// provided readers. Readers that implement io.Closer are closed as soon as
// they reach EOF. This is used to feed canned input to a program before
// switching to interactive input.
func InputChain(readers ...io.Reader) io.Reader {
	if len(readers) == 1 {
		return readers[0]
	}
	return &multiReader{append([]io.Reader(nil), readers...)}
}
