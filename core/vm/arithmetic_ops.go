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

// opAdd pops a, b (a popped first, i.e. a was pushed most recently) and
// pushes a+b. Stack order does not matter for a commutative operation.
func opAdd(f *Frame) error {
	a, err := f.Stack.Pop()
	if err != nil {
		return err
	}
	b, err := f.Stack.Pop()
	if err != nil {
		return err
	}
	return f.Stack.Push(word256.Add(a, b))
}

func opMul(f *Frame) error {
	a, err := f.Stack.Pop()
	if err != nil {
		return err
	}
	b, err := f.Stack.Pop()
	if err != nil {
		return err
	}
	return f.Stack.Push(word256.Mul(a, b))
}

// opSub pops a (top), then b, and pushes a-b.
func opSub(f *Frame) error {
	a, err := f.Stack.Pop()
	if err != nil {
		return err
	}
	b, err := f.Stack.Pop()
	if err != nil {
		return err
	}
	return f.Stack.Push(word256.Sub(a, b))
}

func opDiv(f *Frame) error {
	a, err := f.Stack.Pop()
	if err != nil {
		return err
	}
	b, err := f.Stack.Pop()
	if err != nil {
		return err
	}
	return f.Stack.Push(word256.Div(a, b))
}

func opSDiv(f *Frame) error {
	a, err := f.Stack.Pop()
	if err != nil {
		return err
	}
	b, err := f.Stack.Pop()
	if err != nil {
		return err
	}
	return f.Stack.Push(word256.SDiv(a, b))
}

func opMod(f *Frame) error {
	a, err := f.Stack.Pop()
	if err != nil {
		return err
	}
	b, err := f.Stack.Pop()
	if err != nil {
		return err
	}
	return f.Stack.Push(word256.Mod(a, b))
}

func opSMod(f *Frame) error {
	a, err := f.Stack.Pop()
	if err != nil {
		return err
	}
	b, err := f.Stack.Pop()
	if err != nil {
		return err
	}
	return f.Stack.Push(word256.SMod(a, b))
}

func opAddMod(f *Frame) error {
	a, err := f.Stack.Pop()
	if err != nil {
		return err
	}
	b, err := f.Stack.Pop()
	if err != nil {
		return err
	}
	m, err := f.Stack.Pop()
	if err != nil {
		return err
	}
	return f.Stack.Push(word256.AddMod(a, b, m))
}

func opMulMod(f *Frame) error {
	a, err := f.Stack.Pop()
	if err != nil {
		return err
	}
	b, err := f.Stack.Pop()
	if err != nil {
		return err
	}
	m, err := f.Stack.Pop()
	if err != nil {
		return err
	}
	return f.Stack.Push(word256.MulMod(a, b, m))
}

// opExp pops base, then exponent, and pushes base**exponent mod 2^256. Its
// gas convention (see gasExp) requires the exponent to still be readable at
// offset 1 before this runs, which holds since gas is metered before
// Execute.
func opExp(f *Frame) error {
	base, err := f.Stack.Pop()
	if err != nil {
		return err
	}
	exponent, err := f.Stack.Pop()
	if err != nil {
		return err
	}
	return f.Stack.Push(word256.Exp(base, exponent))
}

func opSignExtend(f *Frame) error {
	k, err := f.Stack.Pop()
	if err != nil {
		return err
	}
	v, err := f.Stack.Pop()
	if err != nil {
		return err
	}
	return f.Stack.Push(word256.SignExtend(v, k))
}
