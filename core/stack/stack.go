// Copyright 2014 The go-ethereum Authors
// This file is part of the go-ethereum library.
//
// The go-ethereum library is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// The go-ethereum library is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU Lesser General Public License for more details.
//
// You should have received a copy of the GNU Lesser General Public License
// along with the go-ethereum library. If not, see <http://www.gnu.org/licenses/>.

// Package stack implements the bounded Word256 operand stack that backs a
// single execution frame.
package stack

import (
	"sync"

	"github.com/lattice-chain/evmcore/core/word256"
)

var stackPool = sync.Pool{
	New: func() interface{} {
		return &Stack{data: make([]word256.Word256, 0, 16)}
	},
}

// Stack is the bounded, single-owner operand stack of one execution frame.
// It belongs to exactly one frame for its entire lifetime and is never
// shared or aliased across frames.
// Stack 是单个执行帧持有的有界操作数栈，生命周期内只属于一个帧，不会被共享。
type Stack struct {
	data  []word256.Word256
	limit int
}

// New returns a Stack drawn from a shared pool, configured with the given
// maximum depth. Callers must call Release when the owning frame ends.
func New(limit int) *Stack {
	s := stackPool.Get().(*Stack)
	s.data = s.data[:0]
	s.limit = limit
	return s
}

// Release returns s to the pool. s must not be used again afterwards.
func (s *Stack) Release() {
	s.data = s.data[:0]
	stackPool.Put(s)
}

// Push appends v to the top of the stack. It fails with ErrStackOverflow if
// the stack is already at its configured limit.
func (s *Stack) Push(v word256.Word256) error {
	if len(s.data) >= s.limit {
		return ErrStackOverflow{StackLen: len(s.data), Limit: s.limit}
	}
	s.data = append(s.data, v)
	return nil
}

// Pop removes and returns the top of the stack. It fails with
// ErrStackUnderflow if the stack is empty.
func (s *Stack) Pop() (word256.Word256, error) {
	n := len(s.data)
	if n == 0 {
		return word256.Word256{}, ErrStackUnderflow{StackLen: 0, Required: 1}
	}
	v := s.data[n-1]
	s.data = s.data[:n-1]
	return v, nil
}

// Peek returns the top of the stack without removing it. It never fails:
// the second return value is false when the stack is empty.
func (s *Stack) Peek() (word256.Word256, bool) {
	n := len(s.data)
	if n == 0 {
		return word256.Word256{}, false
	}
	return s.data[n-1], true
}

// Get returns the element at the given depth from the top, where offset 0
// is the topmost element. It fails with ErrStackUnderflow if offset reaches
// past the bottom of the stack.
func (s *Stack) Get(offset int) (word256.Word256, error) {
	idx := len(s.data) - 1 - offset
	if offset < 0 || idx < 0 {
		return word256.Word256{}, ErrStackUnderflow{StackLen: len(s.data), Required: offset + 1}
	}
	return s.data[idx], nil
}

// Set overwrites the element at the given depth from the top. It fails with
// ErrStackUnderflow under the same condition as Get.
func (s *Stack) Set(offset int, v word256.Word256) error {
	idx := len(s.data) - 1 - offset
	if offset < 0 || idx < 0 {
		return ErrStackUnderflow{StackLen: len(s.data), Required: offset + 1}
	}
	s.data[idx] = v
	return nil
}

// BulkPop removes n elements from the top of the stack in one step. It fails
// with ErrStackUnderflow if n exceeds the current size; n must be
// non-negative.
func (s *Stack) BulkPop(n int) error {
	if n < 0 || n > len(s.data) {
		return ErrStackUnderflow{StackLen: len(s.data), Required: n}
	}
	s.data = s.data[:len(s.data)-n]
	return nil
}

// Size returns the current number of elements on the stack.
func (s *Stack) Size() int {
	return len(s.data)
}

// IsFull reports whether the stack is at its configured limit.
func (s *Stack) IsFull() bool {
	return len(s.data) >= s.limit
}

// IsEmpty reports whether the stack holds no elements.
func (s *Stack) IsEmpty() bool {
	return len(s.data) == 0
}
