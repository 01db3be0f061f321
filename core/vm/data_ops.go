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

import "github.com/lattice-chain/evmcore/core/word256"

// opCalldataLoad pops offset and pushes 32 bytes of input data starting
// there, zero-padded on the right past the end of the input. An offset that
// does not fit a native signed 32-bit word (more than 31 significant bits)
// can never address real data, so it pushes zero without touching the
// input slice.
func opCalldataLoad(f *Frame) error {
	offset, err := f.Stack.Pop()
	if err != nil {
		return err
	}
	return f.Stack.Push(loadWindow(offset, f.InputData))
}

// opReturndataLoad is CALLDATALOAD's EOF-only counterpart: it reads from
// the previous call's return data instead of the input data, and is only a
// valid opcode inside an EOF container.
func opReturndataLoad(f *Frame) error {
	if f.Code.EOFVersion() == 0 {
		return ErrInvalidOpCode
	}
	offset, err := f.Stack.Pop()
	if err != nil {
		return err
	}
	return f.Stack.Push(loadWindow(offset, f.ReturnData))
}

// loadWindow implements the shared CALLDATALOAD/RETURNDATALOAD read: 32
// bytes starting at offset, right-padded with zero past the end of data.
func loadWindow(offset word256.Word256, data []byte) word256.Word256 {
	if offset.BitLength() > 31 {
		return word256.ZERO
	}
	window := getData(data, offset.ToUint64(), 32)
	return word256.MustFromBytes(window)
}
