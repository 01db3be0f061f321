// Copyright 2016 The go-ethereum Authors
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

import "github.com/lattice-chain/evmcore/params"

// gasExp is EXP's dynamic gas component: one unit per significant byte of
// the exponent, at the EIP-158 (Spurious Dragon) rate. The EXP opcode's
// stack convention is top = base, offset 1 = exponent, so the exponent can
// be inspected here without popping anything.
//
// If f.ExpGasCache is set, the cost is looked up there instead of being
// recomputed; this never changes the returned value, only whether
// ByteLength() runs again for an exponent seen earlier on the same cache.
func gasExp(f *Frame) (uint64, error) {
	exponent, err := f.Stack.Get(1)
	if err != nil {
		return 0, err
	}
	if f.ExpGasCache != nil {
		return f.ExpGasCache.Cost(exponent), nil
	}
	expByteLen := uint64(exponent.ByteLength())
	return expByteLen * params.ExpByteEIP158, nil
}
