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


// The funge command line tool runs Befunge-93 programs with the package
// github.com/db47h/funge/vm.
//
// Usage:
//
//	funge [flags] program
//
//	-config filename
//		  load settings from YAML file filename
//	-debug
//		  enable debug diagnostics
//	-delay duration
//		  pause between ticks in trace mode (default 80ms)
//	-dump
//		  dump stack and grid upon exit
//	-height int
//		  grid height (default 25)
//	-max-ticks n
//		  abort after n ticks (0: no limit)
//	-noliner
//		  disable line editing of interactive input
//	-noraw
//		  disable raw terminal IO
//	-seed int
//		  random seed for the ? instruction (0: use current time)
//	-trace
//		  display the grid and stack while running
//	-width int
//		  grid width (default 80)
//	-with filename
//		  feed filename to the program input before stdin (can be specified multiple times)
//
// -config: settings are read from a YAML document whose keys are the flag
// names. Flags given on the command line take precedence over the file:
//
//	trace: true
//	delay: 20ms
//	seed: 42
//	max-ticks: 1000000
//
// -debug: logs faults and halts to stderr and prints the program counter, tick
// count and stack should the program fail.
//
// -dump: writes the stack, program counter and grid to stdout after the
// program halts. Fields are separated by ASCII group separators.
//
// -trace: clears the screen and redraws the grid with the current cell in
// reverse video, along with the stack, before each tick. Program output is
// written below the grid.
//
// -noliner: when stdin is a terminal, input lines are edited with a readline
// like line editor unless this flag or -trace is set. In that case funge
// switches the terminal to raw mode instead, unless -noraw is set.
//
// -with: input files are fed to the program in order of appearance on the
// command line. Interactive input resumes once all files are exhausted.
package main
