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
	"io/ioutil"
	"os"
	"strings"

	"github.com/pkg/errors"
)

// Parse reads a Befunge program from r and returns a w by h grid holding it.
// See NewGrid for the handling of w, h and of short or long lines.
//
// Lines are separated by '\n'. A trailing '\r' on a line is ignored.
func Parse(r io.Reader, w, h int) (*Grid, error) {
	b, err := ioutil.ReadAll(r)
	if err != nil {
		return nil, errors.Wrap(err, "Parse")
	}
	return ParseString(string(b), w, h), nil
}

// ParseString is like Parse but reads the program from a string.
func ParseString(src string, w, h int) *Grid {
	src = strings.TrimSuffix(src, "\n")
	lines := strings.Split(src, "\n")
	for n, l := range lines {
		lines[n] = strings.TrimSuffix(l, "\r")
	}
	return NewGrid(lines, w, h)
}

// Load loads a program from file fileName.
func Load(fileName string, w, h int) (*Grid, error) {
	f, err := os.Open(fileName)
	if err != nil {
		return nil, errors.Wrap(err, "Load")
	}
	defer f.Close()
	g, err := Parse(f, w, h)
	if err != nil {
		return nil, errors.Wrapf(err, "Load %v", fileName)
	}
	return g, nil
}
