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
	"testing"

	"github.com/db47h/funge/vm"
	"github.com/pkg/errors"
)

func TestStack_lifo(t *testing.T) {
	var s vm.Stack
	values := C{123, 456, 789, -1, 0}
	for _, v := range values {
		s.Push(v)
	}
	if s.Len() != len(values) {
		t.Fatalf("expected depth %d, got %d", len(values), s.Len())
	}
	for n := len(values) - 1; n >= 0; n-- {
		v, err := s.Pop()
		if err != nil {
			t.Fatal(err)
		}
		if v != values[n] {
			t.Errorf("expected %d, got %d", values[n], v)
		}
	}
}

func TestStack_underflow(t *testing.T) {
	var s vm.Stack
	v, err := s.Pop()
	if !errors.Is(err, vm.StackUnderflow) {
		t.Fatalf("expected StackUnderflow, got %v (value %d)", err, v)
	}
	if err.Error() != "stack underflow" {
		t.Errorf("unexpected message %q", err.Error())
	}
	s.Push(1)
	s.Pop()
	if _, err = s.Pop(); err == nil {
		t.Fatal("pop on emptied stack succeeded")
	}
}

func TestStack_Show(t *testing.T) {
	var b bytes.Buffer
	s := vm.Stack{65, -3}
	if err := s.Show(vm.NewVT100Terminal(&b, nil, nil), 2, 19); err != nil {
		t.Fatal(err)
	}
	expected := "\033[1;19H\033[1K\033[2;19H\033[1K" +
		"\033[1;1H        65: 'A'" +
		"\033[2;1H        -3: ' '"
	if b.String() != expected {
		t.Fatalf("expected %q, got %q", expected, b.String())
	}
}
