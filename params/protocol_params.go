// Copyright 2015 The go-ethereum Authors
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

package params

const (
	// StackLimit is the maximum depth of the operand stack.
	StackLimit uint64 = 1024

	// ExpByteFrontier is the per-significant-byte gas cost of the EXP
	// instruction's exponent, as set in Frontier.
	ExpByteFrontier uint64 = 10

	// ExpByteEIP158 is the per-significant-byte gas cost of the EXP
	// instruction's exponent, as raised during EIP-158 (Spurious Dragon).
	ExpByteEIP158 uint64 = 50

	// ExpGas is the flat per-instruction gas cost of EXP, charged once in
	// addition to the per-byte cost above.
	ExpGas uint64 = 10
)
