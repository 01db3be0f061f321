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
	"github.com/google/uuid"

	"github.com/lattice-chain/evmcore/core/stack"
	"github.com/lattice-chain/evmcore/internal/gascache"
	"github.com/lattice-chain/evmcore/log"
)

// Code is the minimal view of an executing contract's bytecode this package
// needs: its container version and a way to read a byte at a program
// counter or fetch one of its EOF sub-containers. Everything else about a
// contract (its address, its storage, its creator) is a concern of layers
// built on top of this one.
type Code interface {
	// EOFVersion returns 0 for legacy (non-EOF) code, and the container
	// format version otherwise.
	EOFVersion() int
	// ReadU8 returns the byte at pc, or ok=false if pc is past the end of
	// the code.
	ReadU8(pc int) (b byte, ok bool)
	// GetSubContainer returns the EOF sub-container at index, or
	// ok=false if none exists there.
	GetSubContainer(index int) (container []byte, ok bool)
}

// FrameState is the lifecycle state of a single execution frame.
type FrameState int

const (
	FrameRunning FrameState = iota
	FrameCompletedSuccess
	FrameCompletedRevert
	FrameHalted
)

// Frame holds everything one opcode execution needs: the operand stack it
// pops from and pushes to, the remaining gas counter, the code object being
// executed, and the call's input and return data. A Frame belongs to
// exactly one execution context for its entire lifetime.
type Frame struct {
	Stack      *stack.Stack
	Gas        uint64
	Code       Code
	InputData  []byte
	ReturnData []byte

	State      FrameState
	HaltReason HaltReason

	// RunID correlates every trace record this frame emits back to one
	// logical execution. It has no bearing on opcode semantics; it exists
	// only for external tooling (a CLI runner, a trace recorder) to group
	// Step calls belonging to the same frame.
	RunID uuid.UUID

	// Logger receives a trace-level record for every opcode this frame
	// executes. Defaults to the package root logger, which discards
	// records until a caller installs a real handler via log.SetDefault.
	Logger log.Logger

	// ExpGasCache, if set, is consulted by EXP's dynamic gas function
	// instead of recomputing the exponent's byte length on every call.
	// nil by default: a frame that never sets it gets exactly the gas
	// cost gasExp computes directly, unchanged. Opt-in, wired up by
	// cmd/evmrun's --cache-exp-gas flag.
	ExpGasCache *gascache.ExpGasCache
}

// NewFrame constructs a running frame with a freshly allocated stack sized
// to the EVM's standard limit.
func NewFrame(gas uint64, code Code, inputData []byte) *Frame {
	runID := uuid.New()
	return &Frame{
		Stack:     stack.New(int(stackLimit())),
		Gas:       gas,
		Code:      code,
		InputData: inputData,
		State:     FrameRunning,
		RunID:     runID,
		Logger:    log.Root().With("run_id", runID),
	}
}

func (f *Frame) logger() log.Logger {
	if f.Logger == nil {
		return log.Root()
	}
	return f.Logger
}

// Release returns the frame's stack to its pool. Call once the frame is
// done executing.
func (f *Frame) Release() {
	f.Stack.Release()
}

// halt transitions the frame to HALTED with the given reason. It is
// idempotent: once halted, a frame never resumes.
func (f *Frame) halt(reason HaltReason) {
	f.State = FrameHalted
	f.HaltReason = reason
}
