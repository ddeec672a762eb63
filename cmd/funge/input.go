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

package main

import (
	"io"
	"os"
	"strings"

	"github.com/peterh/liner"
)

type fileList []string

func (f *fileList) String() string     { return strings.Join(*f, ",") }
func (f *fileList) Set(s string) error { *f = append(*f, s); return nil }
func (f *fileList) Get() interface{}   { return *f }

// linerReader feeds lines read with a liner prompt to the VM. Each line is
// returned with a trailing '\n', so that the VM sees the same input as from a
// line buffered terminal.
type linerReader struct {
	ln  *liner.State
	buf []byte
}

func newLinerReader() *linerReader {
	ln := liner.NewLiner()
	ln.SetCtrlCAborts(true)
	return &linerReader{ln: ln}
}

func (r *linerReader) Read(p []byte) (int, error) {
	if len(r.buf) == 0 {
		line, err := r.ln.Prompt("")
		switch err {
		case nil:
		case liner.ErrPromptAborted:
			return 0, io.EOF
		default:
			return 0, err
		}
		if line != "" {
			r.ln.AppendHistory(line)
		}
		r.buf = append([]byte(line), '\n')
	}
	n := copy(p, r.buf)
	r.buf = r.buf[n:]
	return n, nil
}

func (r *linerReader) Close() error {
	return r.ln.Close()
}

// echoReader reads from a raw mode terminal one byte at a time. It returns
// io.EOF when it reads a CTRL-D and translates CR to LF. If w is not nil, bytes
// read are echoed to w.
type echoReader struct {
	r io.Reader
	w io.Writer
}

func (e *echoReader) Read(p []byte) (int, error) {
	if len(p) == 0 {
		return 0, nil
	}
	n, err := e.r.Read(p[:1])
	if n == 0 {
		return 0, err
	}
	c := p[0]
	switch c {
	case 4:
		return 0, io.EOF
	case '\r':
		p[0] = '\n'
	}
	if e.w == nil {
		return 1, err
	}
	switch c {
	case '\r', '\n':
		e.w.Write([]byte("\r\n"))
	case 8, 0x7f:
		e.w.Write([]byte("\b \b"))
	default:
		e.w.Write(p[:1])
	}
	if f, ok := e.w.(interface{ Flush() error }); ok {
		f.Flush()
	}
	return 1, err
}

// setupInput selects the input source for the VM. If stdin is not a
// terminal, it is used as is. Otherwise interactive input is read with
// line editing, or from a raw mode terminal when line editing is disabled or
// trace mode is on. The returned echo flag reports whether the caller is
// responsible for echoing input. The tearDown function, if not nil, must be
// called before exiting.
// setupInput returns the program input. Line editing and raw mode only apply
// when stdin is the process' standard input and a terminal.
func setupInput(cfg *config, stdin io.Reader, out io.Writer) (in io.Reader, echo bool, tearDown func(), err error) {
	if stdin != io.Reader(os.Stdin) || !isTerminal(os.Stdin) {
		return stdin, false, nil, nil
	}
	if !cfg.NoLiner && !cfg.Trace {
		lr := newLinerReader()
		return lr, false, func() { lr.Close() }, nil
	}
	if cfg.NoRaw {
		return os.Stdin, false, nil, nil
	}
	tearDown, err = setRawIO()
	if err != nil {
		// fall back to line buffered input
		return os.Stdin, false, nil, nil
	}
	if cfg.Trace {
		return &echoReader{os.Stdin, nil}, true, tearDown, nil
	}
	return &echoReader{os.Stdin, out}, false, tearDown, nil
}
