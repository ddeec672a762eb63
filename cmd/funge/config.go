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
	"flag"
	"io"
	"os"
	"time"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// config holds the interpreter settings. Every field can be set from the
// command line or from a YAML config file.
type config struct {
	Trace    bool          `yaml:"trace"`
	Delay    time.Duration `yaml:"delay"`
	Seed     int64         `yaml:"seed"`
	Width    int           `yaml:"width"`
	Height   int           `yaml:"height"`
	MaxTicks int64         `yaml:"max-ticks"`
	NoRaw    bool          `yaml:"noraw"`
	NoLiner  bool          `yaml:"noliner"`
	Debug    bool          `yaml:"debug"`
	Dump     bool          `yaml:"dump"`
}

func defaultConfig() config {
	return config{
		Delay:  80 * time.Millisecond,
		Width:  80,
		Height: 25,
	}
}

// bindFlags registers the command line flags for cfg in fs.
func bindFlags(fs *flag.FlagSet, cfg *config) {
	fs.BoolVar(&cfg.Trace, "trace", cfg.Trace, "display the grid and stack while running")
	fs.DurationVar(&cfg.Delay, "delay", cfg.Delay, "pause between ticks in trace mode")
	fs.Int64Var(&cfg.Seed, "seed", cfg.Seed, "random seed for the ? instruction (0: use current time)")
	fs.IntVar(&cfg.Width, "width", cfg.Width, "grid width")
	fs.IntVar(&cfg.Height, "height", cfg.Height, "grid height")
	fs.Int64Var(&cfg.MaxTicks, "max-ticks", cfg.MaxTicks, "abort after `n` ticks (0: no limit)")
	fs.BoolVar(&cfg.NoRaw, "noraw", cfg.NoRaw, "disable raw terminal IO")
	fs.BoolVar(&cfg.NoLiner, "noliner", cfg.NoLiner, "disable line editing of interactive input")
	fs.BoolVar(&cfg.Debug, "debug", cfg.Debug, "enable debug diagnostics")
	fs.BoolVar(&cfg.Dump, "dump", cfg.Dump, "dump stack and grid upon exit")
}

// loadConfig loads the YAML file fileName into cfg. Flags explicitly set in
// fs take precedence over values from the file.
func loadConfig(fs *flag.FlagSet, cfg *config, fileName string) error {
	set := make(map[string]string)
	fs.Visit(func(f *flag.Flag) {
		set[f.Name] = f.Value.String()
	})

	f, err := os.Open(fileName)
	if err != nil {
		return errors.Wrap(err, "config")
	}
	defer f.Close()
	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)
	if err = dec.Decode(cfg); err != nil && err != io.EOF {
		return errors.Wrapf(err, "config %v", fileName)
	}

	for name, v := range set {
		// list flags are not part of the config file
		if name == "with" {
			continue
		}
		if err = fs.Set(name, v); err != nil {
			return err
		}
	}
	return cfg.validate()
}

func (cfg *config) validate() error {
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return errors.Errorf("invalid grid size %dx%d", cfg.Width, cfg.Height)
	}
	if cfg.Delay < 0 {
		return errors.Errorf("negative delay %v", cfg.Delay)
	}
	if cfg.MaxTicks < 0 {
		return errors.Errorf("negative tick limit %d", cfg.MaxTicks)
	}
	return nil
}
