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

// jumpTable maps every opcode this package gives semantics to onto its
// Operation. Entries are built once at init time from (execute, gas,
// stack-depth) triples, mirroring go-ethereum's newJumpTable construction.
var jumpTable = newJumpTable()

func newJumpTable() [256]*Operation {
	var tbl [256]*Operation

	set := func(op OpCode, execute executionFunc, constantGas uint64, dynamicGas gasFunc, pops, pushes int) {
		tbl[op] = &Operation{
			Execute:     execute,
			ConstantGas: constantGas,
			DynamicGas:  dynamicGas,
			MinStack:    minStack(pops, pushes),
			MaxStack:    maxStack(pops, pushes),
		}
	}

	// 0x0 range - arithmetic.
	set(ADD, opAdd, GasFastestStep, nil, 2, 1)
	set(MUL, opMul, GasFastStep, nil, 2, 1)
	set(SUB, opSub, GasFastestStep, nil, 2, 1)
	set(DIV, opDiv, GasFastStep, nil, 2, 1)
	set(SDIV, opSDiv, GasFastStep, nil, 2, 1)
	set(MOD, opMod, GasFastStep, nil, 2, 1)
	set(SMOD, opSMod, GasFastStep, nil, 2, 1)
	set(ADDMOD, opAddMod, GasMidStep, nil, 3, 1)
	set(MULMOD, opMulMod, GasMidStep, nil, 3, 1)
	set(EXP, opExp, GasSlowStep, gasExp, 2, 1)
	set(SIGNEXTEND, opSignExtend, GasFastStep, nil, 2, 1)

	// 0x10 range - comparison and bitwise.
	set(LT, opLt, GasFastestStep, nil, 2, 1)
	set(GT, opGt, GasFastestStep, nil, 2, 1)
	set(SLT, opSlt, GasFastestStep, nil, 2, 1)
	set(SGT, opSgt, GasFastestStep, nil, 2, 1)
	set(EQ, opEq, GasFastestStep, nil, 2, 1)
	set(ISZERO, opIsZero, GasFastestStep, nil, 1, 1)
	set(AND, opAnd, GasFastestStep, nil, 2, 1)
	set(OR, opOr, GasFastestStep, nil, 2, 1)
	set(XOR, opXor, GasFastestStep, nil, 2, 1)
	set(NOT, opNot, GasFastestStep, nil, 1, 1)
	set(BYTE, opByte, GasFastestStep, nil, 2, 1)
	set(SHL, opShl, GasFastestStep, nil, 2, 1)
	set(SHR, opShr, GasFastestStep, nil, 2, 1)
	set(SAR, opSar, GasFastestStep, nil, 2, 1)

	// Call data / return data access.
	set(CALLDATALOAD, opCalldataLoad, GasFastestStep, nil, 1, 1)
	set(RETURNDATALOAD, opReturndataLoad, GasFastestStep, nil, 1, 1)

	// EOF container ops: stack-only stubs.
	set(EOFCREATE, opEOFCreate, GasSlowStep, nil, eofCreateStackInputs, 1)
	set(EXTCALL, opExtCall, GasFastStep, nil, extCallStackInputs, 1)

	return tbl
}
