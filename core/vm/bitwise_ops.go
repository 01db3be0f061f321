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

func opAnd(f *Frame) error {
	a, err := f.Stack.Pop()
	if err != nil {
		return err
	}
	b, err := f.Stack.Pop()
	if err != nil {
		return err
	}
	return f.Stack.Push(word256.And(a, b))
}

func opOr(f *Frame) error {
	a, err := f.Stack.Pop()
	if err != nil {
		return err
	}
	b, err := f.Stack.Pop()
	if err != nil {
		return err
	}
	return f.Stack.Push(word256.Or(a, b))
}

func opXor(f *Frame) error {
	a, err := f.Stack.Pop()
	if err != nil {
		return err
	}
	b, err := f.Stack.Pop()
	if err != nil {
		return err
	}
	return f.Stack.Push(word256.Xor(a, b))
}

func opNot(f *Frame) error {
	a, err := f.Stack.Pop()
	if err != nil {
		return err
	}
	return f.Stack.Push(word256.Not(a))
}

// opByte pops index (top), then value, and pushes the byte of value at the
// given big-endian index in the least-significant byte of the result.
// index >= 32 yields zero.
func opByte(f *Frame) error {
	index, err := f.Stack.Pop()
	if err != nil {
		return err
	}
	value, err := f.Stack.Pop()
	if err != nil {
		return err
	}
	if !index.FitsUint64() || index.ToUint64() >= 32 {
		return f.Stack.Push(word256.ZERO)
	}
	b, getErr := value.Get(int(index.ToUint64()))
	if getErr != nil {
		return f.Stack.Push(word256.ZERO)
	}
	return f.Stack.Push(word256.FromByte(b))
}

// opShl pops shift (top), then value, and pushes value << shift.
func opShl(f *Frame) error {
	shift, err := f.Stack.Pop()
	if err != nil {
		return err
	}
	value, err := f.Stack.Pop()
	if err != nil {
		return err
	}
	return f.Stack.Push(word256.Shl(value, shiftAmount(shift)))
}

func opShr(f *Frame) error {
	shift, err := f.Stack.Pop()
	if err != nil {
		return err
	}
	value, err := f.Stack.Pop()
	if err != nil {
		return err
	}
	return f.Stack.Push(word256.Shr(value, shiftAmount(shift)))
}

func opSar(f *Frame) error {
	shift, err := f.Stack.Pop()
	if err != nil {
		return err
	}
	value, err := f.Stack.Pop()
	if err != nil {
		return err
	}
	return f.Stack.Push(word256.Sar(value, shiftAmount(shift)))
}

// shiftAmount clamps a shift count to 256 when it would otherwise overflow
// uint: any shift of 256 bits or more already collapses to the same result
// in Shl/Shr/Sar.
func shiftAmount(w word256.Word256) uint {
	if !w.FitsUint64() || w.ToUint64() > 256 {
		return 256
	}
	return uint(w.ToUint64())
}
