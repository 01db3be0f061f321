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

// eofCreateStackInputs and extCallStackInputs count only what this package
// needs to know about EOFCREATE and EXTCALL: how many items they consume.
// Everything else about them (sub-container selection, call semantics, the
// actual created address or call status) belongs to the full interpreter
// this core plugs into, not to this stack-level stub.
const (
	eofCreateStackInputs = 4 // value, salt, input_offset, input_size
	extCallStackInputs   = 4 // target_address, input_offset, input_size, value
)

// opEOFCreate and opExtCall pop their declared inputs and push a single
// zero result, standing in for "operation failed" until the full
// interpreter this core feeds into supplies real call/create semantics.
func opEOFCreate(f *Frame) error {
	return popPushZero(f, eofCreateStackInputs)
}

func opExtCall(f *Frame) error {
	return popPushZero(f, extCallStackInputs)
}

func popPushZero(f *Frame, inputs int) error {
	if err := f.Stack.BulkPop(inputs); err != nil {
		return err
	}
	return f.Stack.Push(word256.ZERO)
}
