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
	"fmt"
	"math"

	"github.com/lattice-chain/evmcore/core/stack"
)

// HaltReason identifies why a frame transitioned to HALTED. It carries a
// stable integer code, mirroring go-ethereum's VMError code scheme, so
// callers outside this module can serialize a halt without depending on
// Go error identity.
type HaltReason int

const (
	// HaltReasonNone means the frame has not halted; it is the zero value so
	// a freshly constructed OperationResult reads as "no halt" by default.
	HaltReasonNone HaltReason = iota
	HaltReasonInvalidOperation
	HaltReasonInsufficientGas
	HaltReasonStackOverflow
	HaltReasonStackUnderflow
)

func (h HaltReason) String() string {
	switch h {
	case HaltReasonNone:
		return "None"
	case HaltReasonInvalidOperation:
		return "InvalidOperation"
	case HaltReasonInsufficientGas:
		return "InsufficientGas"
	case HaltReasonStackOverflow:
		return "StackOverflow"
	case HaltReasonStackUnderflow:
		return "StackUnderflow"
	default:
		return "Unknown"
	}
}

var (
	ErrInvalidOpCode   = errors.New("invalid opcode")
	ErrInsufficientGas = errors.New("insufficient gas")
	ErrGasUintOverflow = errors.New("gas uint64 overflow")
)

// ErrInvalidOpCodeFor wraps ErrInvalidOpCode with the offending opcode.
type ErrInvalidOpCodeFor struct {
	OpCode OpCode
}

func (e ErrInvalidOpCodeFor) Error() string {
	return fmt.Sprintf("invalid opcode: %s", e.OpCode)
}

func (e ErrInvalidOpCodeFor) Unwrap() error {
	return ErrInvalidOpCode
}

// rpcError mirrors the interface defined in go-ethereum's rpc/errors.go; it
// is redefined here so this package does not need to depend on rpc.
type rpcError interface {
	Error() string
	ErrorCode() int
}

var _ rpcError = (*VMError)(nil)

// VMError wraps a halt-producing error with a stable error code, so a halt
// can be reported across a process boundary without relying on Go error
// identity.
type VMError struct {
	error
	code int
}

func VMErrorFromErr(err error) error {
	if err == nil {
		return nil
	}
	return &VMError{error: err, code: vmErrorCodeFromErr(err)}
}

func (e *VMError) Error() string  { return e.error.Error() }
func (e *VMError) Unwrap() error  { return e.error }
func (e *VMError) ErrorCode() int { return e.code }

const (
	VMErrorCodeInvalidOperation = 1 + iota
	VMErrorCodeInsufficientGas
	VMErrorCodeStackOverflow
	VMErrorCodeStackUnderflow

	// VMErrorCodeUnknown marks an error with no known mapping.
	VMErrorCodeUnknown = math.MaxInt - 1
)

func vmErrorCodeFromErr(err error) int {
	switch {
	case errors.Is(err, ErrInvalidOpCode):
		return VMErrorCodeInvalidOperation
	case errors.Is(err, ErrInsufficientGas):
		return VMErrorCodeInsufficientGas
	default:
		var overflow stack.ErrStackOverflow
		if errors.As(err, &overflow) {
			return VMErrorCodeStackOverflow
		}
		var underflow stack.ErrStackUnderflow
		if errors.As(err, &underflow) {
			return VMErrorCodeStackUnderflow
		}
		return VMErrorCodeUnknown
	}
}
