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

package vm

// executionFunc pops an operation's declared inputs off f.Stack, computes a
// result, and pushes it back. It never inspects or charges gas; that is the
// jump table's job. A non-nil error is a stack error, or ErrInvalidOpCode
// for an opcode that is not valid in the frame's code context.
type executionFunc func(f *Frame) error

// gasFunc computes an operation's dynamic gas component by inspecting the
// frame without mutating it. Returned alongside the operation's constant
// gas, before Execute runs.
type gasFunc func(f *Frame) (uint64, error)

// Operation is one entry of the opcode jump table: everything needed to
// meter and run a single opcode.
type Operation struct {
	Execute     executionFunc
	ConstantGas uint64
	DynamicGas  gasFunc // nil if the opcode has no dynamic component

	// MinStack and MaxStack bound the stack depth an execution is allowed
	// to run with, computed once at table-construction time via minStack
	// and maxStack.
	MinStack int
	MaxStack int
}

// OperationResult is what executing a single opcode reports back: the gas
// it actually charged, and, if it ended the frame, why.
type OperationResult struct {
	GasCost    uint64
	HaltReason HaltReason
}

// Halted reports whether executing the opcode ended the frame.
func (r OperationResult) Halted() bool {
	return r.HaltReason != HaltReasonNone
}
