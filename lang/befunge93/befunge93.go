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

// Package befunge93 provides utility functions and sample programs for the
// Befunge-93 language running on a github.com/db47h/funge/vm instance.
package befunge93

// HelloWorld prints "Hello World!". The ',' at row 3, column 3 is skipped by
// the bridge on the first pass and serves as the output instruction of the
// printing loop.
const HelloWorld = "v @_        v\n" +
	">0\"!dlroW\"v\n" +
	"v  :#     <\n" +
	"> #,\" olleH\"v\n" +
	"   ^        <\n"

// Factorial prints 5! using grid cell (0, 0) as an accumulator.
const Factorial = "5 100p:v\n" +
	"v *g00:_00g.@\n" +
	">00p1-:^\n"

// Cat copies its input to its output until end of input.
const Cat = "~:1+!#@_,"
