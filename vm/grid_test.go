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

package vm_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/db47h/funge/vm"
)

func TestNewGrid(t *testing.T) {
	src := "v @_       v\n>0\"!dlroW\"v \nv  :#     < \n>\" ,olleH\" v\n   ^       <"
	g := vm.ParseString(src, 0, 0)
	if g.Width() != vm.Width || g.Height() != vm.Height {
		t.Fatalf("bad grid size %dx%d", g.Width(), g.Height())
	}
	lines := strings.Split(src, "\n")
	for row := 0; row < g.Height(); row++ {
		for col := 0; col < g.Width(); col++ {
			var want byte = vm.Blank
			if row < len(lines) && col < len(lines[row]) {
				want = lines[row][col]
			}
			if got := g.Get(row, col); got != want {
				t.Fatalf("(%d, %d): expected %q, got %q", row, col, want, got)
			}
		}
	}
}

func TestNewGrid_truncate(t *testing.T) {
	g := vm.NewGrid([]string{"abcdef", "gh", "ij", "kl"}, 4, 3)
	expected := []string{"abcd", "gh", "ij"}
	lines := g.Lines()
	if len(lines) != len(expected) {
		t.Fatalf("expected %q, got %q", expected, lines)
	}
	for n := range expected {
		if lines[n] != expected[n] {
			t.Errorf("line %d: expected %q, got %q", n, expected[n], lines[n])
		}
	}
}

func TestParse_crlf(t *testing.T) {
	g, err := vm.Parse(strings.NewReader("12\r\n\r\n3\r\n"), 0, 0)
	if err != nil {
		t.Fatal(err)
	}
	lines := g.Lines()
	if len(lines) != 3 || lines[0] != "12" || lines[1] != "" || lines[2] != "3" {
		t.Fatalf("bad lines: %q", lines)
	}
	if g.Get(0, 2) != vm.Blank {
		t.Fatalf("CR not stripped: %q", g.Get(0, 2))
	}
}

func TestGrid_putGet(t *testing.T) {
	g := vm.NewGrid(nil, 0, 0)
	g.Put('A', vm.Height-1, vm.Width-1)
	if v := g.Get(vm.Height-1, vm.Width-1); v != 'A' {
		t.Fatalf("expected 'A', got %q", v)
	}
	for _, p := range []vm.Pos{{Row: -1, Col: 0}, {Row: 0, Col: -1}, {Row: vm.Height, Col: 0}, {Row: 0, Col: vm.Width}} {
		if g.In(p.Row, p.Col) {
			t.Errorf("%v reported in bounds", p)
		}
	}
}

func TestGrid_Render(t *testing.T) {
	var b bytes.Buffer
	g := vm.NewGrid([]string{"ab", "c\x01"}, 2, 2)
	if err := g.Render(vm.NewVT100Terminal(&b, nil, nil), 3, 5, vm.Pos{Row: 1, Col: 0}); err != nil {
		t.Fatal(err)
	}
	expected := "\033[3;5Hab\033[4;5H\033[7mc\033[0m "
	if b.String() != expected {
		t.Fatalf("expected %q, got %q", expected, b.String())
	}
}
