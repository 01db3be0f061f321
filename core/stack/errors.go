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

package stack

import (
	"errors"
	"fmt"
)

// ErrStackOverflow wraps a stack error raised when a push would grow the
// stack past its configured limit.
// ErrStackOverflow 封装了当入栈操作会超出栈容量限制时触发的错误。
type ErrStackOverflow struct {
	StackLen int
	Limit    int
}

func (e ErrStackOverflow) Error() string {
	return fmt.Sprintf("stack limit reached %d (%d)", e.StackLen, e.Limit)
}

func (e ErrStackOverflow) Unwrap() error {
	return errors.New("stack overflow")
}

// ErrStackUnderflow wraps a stack error raised when an operation reaches
// past the bottom of the stack: a pop, get, set, or bulk-pop that needs more
// items than are present.
// ErrStackUnderflow 封装了当操作需要的栈元素数量超过当前栈深度时触发的错误。
type ErrStackUnderflow struct {
	StackLen int
	Required int
}

func (e ErrStackUnderflow) Error() string {
	return fmt.Sprintf("stack underflow (%d <=> %d)", e.StackLen, e.Required)
}

func (e ErrStackUnderflow) Unwrap() error {
	return errors.New("stack underflow")
}
