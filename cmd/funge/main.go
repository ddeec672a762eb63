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
	"bufio"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"math/rand"
	"os"
	"time"

	"github.com/db47h/funge/lang/befunge93"
	"github.com/db47h/funge/vm"
	"github.com/pkg/errors"
)

func newLogger(w io.Writer, debug bool) *slog.Logger {
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

func newVM(cfg *config, fileName string, input io.Reader, echo bool, output *bufio.Writer, size func() (int, int), log *slog.Logger) (*vm.Instance, error) {
	g, err := vm.Load(fileName, cfg.Width, cfg.Height)
	if err != nil {
		return nil, err
	}
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	opts := []vm.Option{
		vm.Logger(log),
		vm.MaxTicks(cfg.MaxTicks),
		vm.Rand(rand.NewSource(seed)),
	}
	if cfg.Trace {
		term := vm.NewVT100Terminal(output, output.Flush, size)
		// program I/O goes below the grid
		p := vm.NewCaretPort(input, term, g.Height()+5, 1)
		p.Echo = echo
		opts = append(opts, vm.IO(p), vm.Trace(term, cfg.Delay))
	} else {
		opts = append(opts, vm.IO(vm.NewPort(input, output)))
	}
	log.Debug("loaded program", "file", fileName, "width", g.Width(), "height", g.Height(), "seed", seed)
	return vm.New(g, opts...)
}

// exitStatus reports err on stderr and returns the process exit status.
func exitStatus(stderr io.Writer, cfg *config, i *vm.Instance, err error) int {
	if err == nil {
		return 0
	}
	if !cfg.Debug {
		fmt.Fprintf(stderr, "\n%v\n", err)
		return 1
	}
	fmt.Fprintf(stderr, "\n%+v\n", err)
	if i != nil {
		pos, dir := i.PC()
		fmt.Fprintf(stderr, "PC: %v %v, Ticks: %d, Stack: %v\n", pos, dir, i.Ticks(), i.Data())
	}
	return 1
}

// run runs the funge command with the given arguments, args[0] being the
// command name, and returns the process exit status.
func run(args []string, stdin io.Reader, stdout, stderr io.Writer) (status int) {
	var err error
	var i *vm.Instance

	cfg := defaultConfig()
	out := bufio.NewWriter(stdout)

	// flush output, catch and log errors
	defer func() {
		if status != 0 || err == flag.ErrHelp {
			return
		}
		if cfg.Trace && i != nil {
			fmt.Fprintf(out, "\033[%d;1H\n", i.Grid().Height()+6)
		}
		if ferr := out.Flush(); err == nil {
			err = ferr
		}
		if err == nil && cfg.Dump && i != nil {
			err = befunge93.DumpVM(i, stdout)
		}
		status = exitStatus(stderr, &cfg, i, err)
	}()

	var withFiles fileList

	fs := flag.NewFlagSet(args[0], flag.ContinueOnError)
	fs.SetOutput(stderr)
	bindFlags(fs, &cfg)
	configFile := fs.String("config", "", "load settings from YAML file `filename`")
	fs.Var(&withFiles, "with", "feed `filename` to the program input before stdin (can be specified multiple times)")
	fs.Usage = func() {
		fmt.Fprintf(stderr, "Usage: %s [flags] program\n\nFlags:\n", args[0])
		fs.PrintDefaults()
	}
	if err = fs.Parse(args[1:]); err != nil {
		status = 2
		if err == flag.ErrHelp {
			status = 0
		}
		return status
	}
	if fs.NArg() != 1 {
		fs.Usage()
		return 2
	}

	if *configFile != "" {
		if err = loadConfig(fs, &cfg, *configFile); err != nil {
			return
		}
	} else if err = cfg.validate(); err != nil {
		return
	}
	log := newLogger(stderr, cfg.Debug)

	input, echo, ioTearDownFn, err := setupInput(&cfg, stdin, out)
	if err != nil {
		return
	}
	if ioTearDownFn != nil {
		defer ioTearDownFn()
	}

	// -with files are read in order of appearance on the command line.
	var inputs []io.Reader
	for _, name := range withFiles {
		var f *os.File
		f, err = os.Open(name)
		if err != nil {
			err = errors.Wrap(err, "with")
			return
		}
		inputs = append(inputs, f)
	}
	input = vm.InputChain(append(inputs, input)...)

	var size func() (int, int)
	if f, ok := stdout.(*os.File); ok {
		size = consoleSize(f)
	}

	fileName := fs.Arg(0)
	i, err = newVM(&cfg, fileName, input, echo, out, size, log)
	if err != nil {
		return
	}
	if err = i.Run(); err != nil {
		err = errors.Wrap(err, fileName)
		return
	}
	log.Debug("program halted", "ticks", i.Ticks())
	return
}

func main() {
	os.Exit(run(os.Args, os.Stdin, os.Stdout, os.Stderr))
}
