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

package befunge93_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/db47h/funge/lang/befunge93"
	"github.com/db47h/funge/vm"
)

func run(t *testing.T, code, input string) (*vm.Instance, string) {
	var out bytes.Buffer
	i, err := vm.New(vm.ParseString(code, 0, 0),
		vm.IO(vm.NewPort(strings.NewReader(input), &out)),
		vm.MaxTicks(100000))
	if err != nil {
		t.Fatal(err)
	}
	if err = i.Run(); err != nil {
		t.Fatalf("%+v", err)
	}
	return i, out.String()
}

func TestSamples(t *testing.T) {
	var samples = []struct {
		name   string
		code   string
		input  string
		output string
	}{
		{"HelloWorld", befunge93.HelloWorld, "", "Hello World!"},
		{"Factorial", befunge93.Factorial, "", "120 "},
		{"Cat", befunge93.Cat, "Go 1.7 rocks\n", "Go 1.7 rocks\n"},
	}
	for _, s := range samples {
		if _, out := run(t, s.code, s.input); out != s.output {
			t.Errorf("%s: expected %q, got %q", s.name, s.output, out)
		}
	}
}

func TestDumpVM(t *testing.T) {
	i, _ := run(t, befunge93.Factorial, "")
	var b bytes.Buffer
	if err := befunge93.DumpVM(i, &b); err != nil {
		t.Fatal(err)
	}
	// the accumulator at (0, 0) holds 120, 'x'
	expected := "\x1C0\x1D1 12 0\x1Dx 100p:v\nv *g00:_00g.@\n>00p1-:^"
	if b.String() != expected {
		t.Fatalf("expected %q, got %q", expected, b.String())
	}
}
