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

// Package vm implements a Befunge-93 virtual machine.
//
// A Befunge program is a grid of characters, 80 columns by 25 rows by default.
// The program counter starts in the top left corner heading right and moves
// one cell per tick, wrapping around the grid edges. Each cell it lands on is
// executed as an instruction. Instructions exchange data through a single
// stack of 32 bits signed integers and can read and modify the grid with the
// g and p instructions.
//
// Program I/O goes through a Port. NewPort builds one from an io.Reader and an
// io.Writer, which is also how tests feed canned input to a program and
// capture its output.
//
// The VM stops when it executes @ or on the first fault. Faults are reported
// as *Error values: stack underflow, out of bounds g/p, invalid integer input,
// unknown instructions and division by zero are all fatal. Arithmetic wraps
// around on overflow, p stores the low 8 bits of the value and g pushes the
// cell value as an unsigned byte. When ~ reaches the end of input, it pushes
// -1.
package vm
