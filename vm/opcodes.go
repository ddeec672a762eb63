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

// instruction describes a Befunge-93 instruction.
type instruction struct {
	name string
	pops int // operands needed on the stack
}

// The Befunge-93 instruction set. Any byte not listed here is an unknown
// instruction.
var instructionSet = map[byte]instruction{
	'^':  {"go up", 0},
	'v':  {"go down", 0},
	'>':  {"go right", 0},
	'<':  {"go left", 0},
	'_':  {"horizontal if", 1},
	'|':  {"vertical if", 1},
	'?':  {"go away", 0},
	'#':  {"bridge", 0},
	'@':  {"stop", 0},
	' ':  {"nop", 0},
	'"':  {"stringmode", 0},
	'&':  {"input integer", 0},
	'~':  {"input character", 0},
	'.':  {"output integer", 1},
	',':  {"output character", 1},
	'+':  {"add", 2},
	'-':  {"subtract", 2},
	'*':  {"multiply", 2},
	'/':  {"divide", 2},
	'%':  {"modulo", 2},
	'`':  {"greater", 2},
	'!':  {"not", 1},
	':':  {"duplicate", 1},
	'\\': {"swap", 2},
	'$':  {"pop", 1},
	'g':  {"get", 2},
	'p':  {"put", 3},
}

// instructions is instructionSet indexed by opcode for fast lookup in the
// dispatcher.
var instructions [256]*instruction

func init() {
	for c := '0'; c <= '9'; c++ {
		instructionSet[byte(c)] = instruction{"push " + string(c), 0}
	}
	for op, ins := range instructionSet {
		ins := ins
		instructions[op] = &ins
	}
}

// Mnemonic returns a descriptive name of the instruction op, or an empty
// string if op is not a valid instruction.
func Mnemonic(op byte) string {
	if ins := instructions[op]; ins != nil {
		return ins.name
	}
	return ""
}

// Arity returns the number of operands the instruction op pops from the stack.
// It returns -1 if op is not a valid instruction.
func Arity(op byte) int {
	if ins := instructions[op]; ins != nil {
		return ins.pops
	}
	return -1
}
