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

func boolWord(b bool) word256.Word256 {
	if b {
		return word256.ONE
	}
	return word256.ZERO
}

func opLt(f *Frame) error {
	a, err := f.Stack.Pop()
	if err != nil {
		return err
	}
	b, err := f.Stack.Pop()
	if err != nil {
		return err
	}
	return f.Stack.Push(boolWord(word256.CmpUnsigned(a, b) == word256.Less))
}

func opGt(f *Frame) error {
	a, err := f.Stack.Pop()
	if err != nil {
		return err
	}
	b, err := f.Stack.Pop()
	if err != nil {
		return err
	}
	return f.Stack.Push(boolWord(word256.CmpUnsigned(a, b) == word256.Greater))
}

func opSlt(f *Frame) error {
	a, err := f.Stack.Pop()
	if err != nil {
		return err
	}
	b, err := f.Stack.Pop()
	if err != nil {
		return err
	}
	return f.Stack.Push(boolWord(word256.CmpSigned(a, b) == word256.Less))
}

func opSgt(f *Frame) error {
	a, err := f.Stack.Pop()
	if err != nil {
		return err
	}
	b, err := f.Stack.Pop()
	if err != nil {
		return err
	}
	return f.Stack.Push(boolWord(word256.CmpSigned(a, b) == word256.Greater))
}

func opEq(f *Frame) error {
	a, err := f.Stack.Pop()
	if err != nil {
		return err
	}
	b, err := f.Stack.Pop()
	if err != nil {
		return err
	}
	return f.Stack.Push(boolWord(a.Equal(b)))
}

func opIsZero(f *Frame) error {
	a, err := f.Stack.Pop()
	if err != nil {
		return err
	}
	return f.Stack.Push(boolWord(word256.IsZero(a)))
}
