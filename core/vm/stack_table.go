// Copyright 2017 The go-ethereum Authors
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
	"github.com/lattice-chain/evmcore/params"
)

// maxStack returns the largest pre-operation stack depth at which an
// operation popping pop items and pushing push items still fits under the
// configured stack limit.
func maxStack(pop, push int) int {
	return int(params.StackLimit) + pop - push
}

// minStack returns the smallest pre-operation stack depth an operation
// needs in order to pop its declared inputs.
func minStack(pops, push int) int {
	return pops
}

// stackLimit returns the configured maximum operand stack depth.
func stackLimit() uint64 {
	return params.StackLimit
}
