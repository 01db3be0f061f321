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

import (
	"errors"

	"github.com/lattice-chain/evmcore/core/stack"
)

// Step executes one opcode against f: it looks the opcode up in the jump
// table, verifies the stack has room on both ends, meters gas, and runs the
// operation. It never panics; any failure is reported as a halt on f and
// reflected in the returned OperationResult.
//
// Step also applies the halt directly to f (advancing f.State), so callers
// driving a loop can simply check f.State after each call.
func Step(f *Frame, op OpCode) OperationResult {
	entry := jumpTable[op]
	if entry == nil {
		f.halt(HaltReasonInvalidOperation)
		f.logger().Trace("invalid opcode", "op", hexByte(byte(op)))
		return OperationResult{HaltReason: HaltReasonInvalidOperation}
	}

	size := f.Stack.Size()
	if size < entry.MinStack {
		f.halt(HaltReasonStackUnderflow)
		f.logger().Trace("stack underflow", "op", op, "size", size, "want", entry.MinStack)
		return OperationResult{HaltReason: HaltReasonStackUnderflow}
	}
	if size > entry.MaxStack {
		f.halt(HaltReasonStackOverflow)
		f.logger().Trace("stack overflow", "op", op, "size", size, "limit", entry.MaxStack)
		return OperationResult{HaltReason: HaltReasonStackOverflow}
	}

	gasCost := entry.ConstantGas
	if entry.DynamicGas != nil {
		extra, err := entry.DynamicGas(f)
		if err != nil {
			f.halt(HaltReasonInsufficientGas)
			f.logger().Trace("gas calculation failed", "op", op, "err", err)
			return OperationResult{HaltReason: HaltReasonInsufficientGas}
		}
		gasCost += extra
	}
	if f.Gas < gasCost {
		f.halt(HaltReasonInsufficientGas)
		f.logger().Trace("out of gas", "op", op, "have", f.Gas, "want", gasCost)
		return OperationResult{GasCost: gasCost, HaltReason: HaltReasonInsufficientGas}
	}
	f.Gas -= gasCost

	if err := entry.Execute(f); err != nil {
		reason := haltReasonFor(err)
		f.halt(reason)
		f.logger().Trace("opcode halted", "op", op, "reason", reason, "err", err)
		return OperationResult{GasCost: gasCost, HaltReason: reason}
	}
	f.logger().Trace("op", "op", op, "cost", gasCost, "gas", f.Gas)
	return OperationResult{GasCost: gasCost, HaltReason: HaltReasonNone}
}

// haltReasonFor classifies an executionFunc's error into a halt reason. The
// only errors an executionFunc can return are the operand stack's two
// tagged conditions, or ErrInvalidOpCode for context-gated opcodes like
// RETURNDATALOAD outside an EOF container.
func haltReasonFor(err error) HaltReason {
	var overflow stack.ErrStackOverflow
	if errors.As(err, &overflow) {
		return HaltReasonStackOverflow
	}
	var underflow stack.ErrStackUnderflow
	if errors.As(err, &underflow) {
		return HaltReasonStackUnderflow
	}
	if errors.Is(err, ErrInvalidOpCode) {
		return HaltReasonInvalidOperation
	}
	return HaltReasonInvalidOperation
}
