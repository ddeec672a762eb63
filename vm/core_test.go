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
	"fmt"
	"strings"
	"testing"

	"github.com/db47h/funge/vm"
)

type C []vm.Cell

func setup(code string, input string, opts ...vm.Option) (*vm.Instance, *bytes.Buffer) {
	var out bytes.Buffer
	opts = append([]vm.Option{vm.IO(vm.NewPort(strings.NewReader(input), &out))}, opts...)
	i, err := vm.New(vm.ParseString(code, 0, 0), opts...)
	if err != nil {
		panic(err)
	}
	return i, &out
}

func check(t *testing.T, testName string, i *vm.Instance, stack C) bool {
	err := i.Run()
	if err != nil {
		t.Errorf("%s: %+v", testName, err)
		return false
	}
	stk := i.Data()
	diff := len(stk) != len(stack)
	if !diff {
		for i := range stack {
			if stack[i] != stk[i] {
				diff = true
				break
			}
		}
	}
	if diff {
		t.Errorf("%v", fmt.Errorf("%s: Stack error: expected %d, got %d", testName, stack, stk))
		return false
	}
	return true
}

var tests = [...]struct {
	name string
	code string
	data C
}{
	{"nop", " @", nil},
	{"digits", "0123456789@", C{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}},
	{"+", "23+@", C{5}},
	{"-", "23-   32-@", C{-1, 1}},
	{"*", "45*   05*@", C{20, 0}},
	{"/", "72/   07-2/@", C{3, -3}},
	{"%", "72%   07-2%@", C{1, -1}},
	{"`", "21`   12`   11`@", C{1, 0, 0}},
	{"!", "0!   5!@", C{1, 0}},
	{":", "5:@", C{5, 5}},
	{"swap", `12\@`, C{2, 1}},
	{"$", "12$@", C{1}},
	{"string", `"ab"@`, C{'a', 'b'}},
	{"string keeps instructions", `"@ 1"@`, C{'@', ' ', '1'}},
	{"bridge", "1#2@", C{1}},
	{"bridge over halt", "#@1@", C{1}},
	{"_ right", "0_1@", C{1}},
	{"_ left", "5_@", C{5}},
	{"| down", "10|\n  @", C{1}},
	{"| up", "1|" + strings.Repeat("\n", 24) + " @", nil},
	{"v >", "v\n>2@", C{2}},
	{"<", "<@1", C{1}},
	{"^", "3^" + strings.Repeat("\n", 24) + " @", C{3}},
	{"g", "50g@ Z", C{'Z'}},
	{"g blank", "94g@", C{' '}},
	{"p", "5900p00g@", C{5, 9}},
	{"p truncates", "88*4*00p00g@", C{0}},
	{"g unsigned", "88*4*1-00p00g@", C{255}},
}

func TestCore(t *testing.T) {
	for _, test := range tests {
		i, _ := setup(test.code, "", vm.MaxTicks(10000))
		check(t, test.name, i, test.data)
	}
}

func TestCore_wrapRight(t *testing.T) {
	// "1" at column 0, "2" at column 79 and no halt: the program runs until
	// the tick limit, pushing 1 and 2 alternately.
	i, _ := setup("1"+strings.Repeat(" ", 78)+"2", "", vm.MaxTicks(160))
	err := i.Run()
	if err != vm.ErrTickLimit {
		t.Fatalf("Unexpected error: %v", err)
	}
	stk := i.Data()
	if len(stk) != 4 || stk[0] != 1 || stk[1] != 2 || stk[2] != 1 || stk[3] != 2 {
		t.Fatalf("Stack error: %d", stk)
	}
}

func TestCore_overflow(t *testing.T) {
	// 9^16 does not fit in 32 bits.
	i, _ := setup("99*:*:*:*@", "")
	x := vm.Cell(43046721)
	check(t, "overflow", i, C{x * x})
}

func TestInstructionTable(t *testing.T) {
	for _, test := range []struct {
		op    byte
		name  string
		arity int
	}{
		{'p', "put", 3},
		{'\\', "swap", 2},
		{'7', "push 7", 0},
		{'_', "horizontal if", 1},
		{'x', "", -1},
		{0, "", -1},
	} {
		if n := vm.Mnemonic(test.op); n != test.name {
			t.Errorf("Mnemonic(%q): expected %q, got %q", test.op, test.name, n)
		}
		if a := vm.Arity(test.op); a != test.arity {
			t.Errorf("Arity(%q): expected %d, got %d", test.op, test.arity, a)
		}
	}
}
