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
	"fmt"
	"os"
	"strings"

	"github.com/db47h/funge/vm"
	"github.com/pkg/errors"
)

// Shows how to run a program with canned input.
func ExampleInstance_Run() {
	// read two integers and print their sum
	g := vm.ParseString("&&+.@", 0, 0)

	i, err := vm.New(g, vm.IO(vm.NewPort(strings.NewReader("19\n23\n"), os.Stdout)))
	if err == nil {
		err = i.Run()
	}
	if err != nil {
		panic(err)
	}

	// Output:
	// 42
}

// Shows how to single step a program and inspect the VM state.
func ExampleInstance_Step() {
	i, err := vm.New(vm.ParseString("v\n>12+@", 0, 0))
	if err != nil {
		panic(err)
	}
	for {
		halted, err := i.Step()
		if err != nil {
			panic(err)
		}
		pos, dir := i.PC()
		fmt.Printf("%v %q %-5v %v\n", pos, i.Grid().Get(pos.Row, pos.Col), dir, i.Data())
		if halted {
			break
		}
	}

	// Output:
	// (0, 0) 'v' down  []
	// (1, 0) '>' right []
	// (1, 1) '1' right [1]
	// (1, 2) '2' right [1 2]
	// (1, 3) '+' right [3]
	// (1, 4) '@' right [3]
}

// Shows how to handle VM faults.
func ExampleError() {
	i, err := vm.New(vm.ParseString("5 0/.@", 0, 0))
	if err != nil {
		panic(err)
	}
	err = i.Run()
	if errors.Is(err, vm.DivisionByZero) {
		var e *vm.Error
		errors.As(err, &e)
		fmt.Printf("%v\nstack: %v\n", err, e.Stack)
	}

	// Output:
	// division by zero at (0, 3)
	// stack: [5 0]
}
