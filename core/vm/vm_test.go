package vm

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lattice-chain/evmcore/core/stack"
	"github.com/lattice-chain/evmcore/core/word256"
)

// fakeCode is a minimal Code implementation for tests: a legacy
// (non-EOF) or EOF-tagged byte slice with no real sub-containers.
type fakeCode struct {
	bytes      []byte
	eofVersion int
}

func (c fakeCode) EOFVersion() int { return c.eofVersion }

func (c fakeCode) ReadU8(pc int) (byte, bool) {
	if pc < 0 || pc >= len(c.bytes) {
		return 0, false
	}
	return c.bytes[pc], true
}

func (c fakeCode) GetSubContainer(index int) ([]byte, bool) { return nil, false }

func newFrame(gas uint64, limit int) *Frame {
	return &Frame{
		Stack: stack.New(limit),
		Gas:   gas,
		Code:  fakeCode{},
		State: FrameRunning,
	}
}

func TestOpAddSub(t *testing.T) {
	f := newFrame(100, 16)
	defer f.Release()
	require.NoError(t, f.Stack.Push(word256.FromUint64(3)))
	require.NoError(t, f.Stack.Push(word256.FromUint64(5)))

	res := Step(f, ADD)
	assert.False(t, res.Halted())
	assert.True(t, f.peekTop(t).Equal(word256.FromUint64(8)))

	f2 := newFrame(100, 16)
	defer f2.Release()
	require.NoError(t, f2.Stack.Push(word256.FromUint64(2)))
	require.NoError(t, f2.Stack.Push(word256.FromUint64(8)))
	res = Step(f2, SUB)
	assert.False(t, res.Halted())
	assert.True(t, f2.peekTop(t).Equal(word256.FromUint64(6)))
}

func (f *Frame) peekTop(t *testing.T) word256.Word256 {
	t.Helper()
	v, err := f.Stack.Get(0)
	require.NoError(t, err)
	return v
}

func TestOpDivBasicScenario(t *testing.T) {
	// Scenario 1: stack top = 0x10, next = 0x03; after DIV, top = 0x05.
	f := newFrame(100, 16)
	defer f.Release()
	require.NoError(t, f.Stack.Push(word256.FromUint64(0x03)))
	require.NoError(t, f.Stack.Push(word256.FromUint64(0x10)))

	res := Step(f, DIV)
	require.False(t, res.Halted())
	assert.True(t, f.peekTop(t).Equal(word256.FromUint64(0x05)))
}

func TestOpDivByZeroScenario(t *testing.T) {
	f := newFrame(100, 16)
	defer f.Release()
	require.NoError(t, f.Stack.Push(word256.FromUint64(0)))
	require.NoError(t, f.Stack.Push(word256.FromUint64(0x10)))

	res := Step(f, DIV)
	require.False(t, res.Halted())
	assert.True(t, f.peekTop(t).Equal(word256.ZERO))
}

func TestOpMulModMaxScenario(t *testing.T) {
	f := newFrame(100, 16)
	defer f.Release()
	require.NoError(t, f.Stack.Push(word256.MAX)) // modulus
	require.NoError(t, f.Stack.Push(word256.MAX)) // b
	require.NoError(t, f.Stack.Push(word256.MAX)) // a

	res := Step(f, MULMOD)
	require.False(t, res.Halted())
	assert.True(t, f.peekTop(t).Equal(word256.ZERO))
}

func TestOpByteScenario(t *testing.T) {
	f := newFrame(100, 16)
	defer f.Release()
	// 0x8000...00: the 0x80 sits in the most significant byte, at index 0.
	msbValue, err := word256.FromBytes(append([]byte{0x80}, make([]byte, 31)...))
	require.NoError(t, err)

	require.NoError(t, f.Stack.Push(msbValue))
	require.NoError(t, f.Stack.Push(word256.FromUint64(0x00)))
	res := Step(f, BYTE)
	require.False(t, res.Halted())
	assert.True(t, f.peekTop(t).Equal(word256.FromUint64(0x80)))

	f2 := newFrame(100, 16)
	defer f2.Release()
	require.NoError(t, f2.Stack.Push(msbValue))
	require.NoError(t, f2.Stack.Push(word256.FromUint64(0x20)))
	res = Step(f2, BYTE)
	require.False(t, res.Halted())
	assert.True(t, f2.peekTop(t).Equal(word256.ZERO))
}

func TestOpSignExtendScenario(t *testing.T) {
	f := newFrame(100, 16)
	defer f.Release()
	require.NoError(t, f.Stack.Push(word256.FromUint64(0x7f)))
	require.NoError(t, f.Stack.Push(word256.FromUint64(0)))
	res := Step(f, SIGNEXTEND)
	require.False(t, res.Halted())
	assert.True(t, f.peekTop(t).Equal(word256.FromUint64(0x7f)))

	f2 := newFrame(100, 16)
	defer f2.Release()
	require.NoError(t, f2.Stack.Push(word256.FromUint64(0x80)))
	require.NoError(t, f2.Stack.Push(word256.FromUint64(0)))
	res = Step(f2, SIGNEXTEND)
	require.False(t, res.Halted())
	assert.True(t, f2.peekTop(t).Equal(word256.Sub(word256.ZERO, word256.FromUint64(0x80))))
}

func TestInvalidOpcodeHalts(t *testing.T) {
	f := newFrame(100, 16)
	defer f.Release()
	res := Step(f, OpCode(0xfe))
	assert.True(t, res.Halted())
	assert.Equal(t, HaltReasonInvalidOperation, res.HaltReason)
	assert.Equal(t, FrameHalted, f.State)
}

func TestStackUnderflowHalts(t *testing.T) {
	f := newFrame(100, 16)
	defer f.Release()
	res := Step(f, ADD)
	assert.True(t, res.Halted())
	assert.Equal(t, HaltReasonStackUnderflow, res.HaltReason)
}

func TestExpGasGatingScenario(t *testing.T) {
	// Scenario 8: base = 2, exponent = 2^255; 32 significant exponent
	// bytes, so the dynamic cost is 32*ExpByteEIP158 plus the flat
	// GasSlowStep. Gas below that halts with InsufficientGas and does not
	// push.
	exponent := word256.Shl(word256.ONE, 255)
	wantCost := GasSlowStep + 32*50 // params.ExpByteEIP158

	f := newFrame(wantCost-1, 16)
	defer f.Release()
	require.NoError(t, f.Stack.Push(exponent))
	require.NoError(t, f.Stack.Push(word256.FromUint64(2)))
	sizeBefore := f.Stack.Size()

	res := Step(f, EXP)
	assert.True(t, res.Halted())
	assert.Equal(t, HaltReasonInsufficientGas, res.HaltReason)
	assert.Equal(t, sizeBefore, f.Stack.Size())

	f2 := newFrame(wantCost, 16)
	defer f2.Release()
	require.NoError(t, f2.Stack.Push(exponent))
	require.NoError(t, f2.Stack.Push(word256.FromUint64(2)))
	res2 := Step(f2, EXP)
	assert.False(t, res2.Halted())
}

func TestReturndataLoadRequiresEOF(t *testing.T) {
	f := newFrame(100, 16)
	f.Code = fakeCode{eofVersion: 0}
	defer f.Release()
	require.NoError(t, f.Stack.Push(word256.ZERO))

	res := Step(f, RETURNDATALOAD)
	assert.True(t, res.Halted())
	assert.Equal(t, HaltReasonInvalidOperation, res.HaltReason)
}

func TestReturndataLoadInEOF(t *testing.T) {
	f := newFrame(100, 16)
	f.Code = fakeCode{eofVersion: 1}
	f.ReturnData = []byte{0xaa, 0xbb}
	defer f.Release()
	require.NoError(t, f.Stack.Push(word256.ZERO))

	res := Step(f, RETURNDATALOAD)
	require.False(t, res.Halted())
	want := word256.MustFromBytes(getData([]byte{0xaa, 0xbb}, 0, 32))
	assert.True(t, f.peekTop(t).Equal(want))
}

func TestCalldataLoadPadsShortInput(t *testing.T) {
	f := newFrame(100, 16)
	f.InputData = []byte{0x01, 0x02}
	defer f.Release()
	require.NoError(t, f.Stack.Push(word256.ZERO))

	res := Step(f, CALLDATALOAD)
	require.False(t, res.Halted())
	// Right-padded to 32 bytes: 0x01 0x02 occupy the most significant end.
	want := word256.MustFromBytes(append([]byte{0x01, 0x02}, make([]byte, 30)...))
	assert.True(t, f.peekTop(t).Equal(want))
}

func TestCalldataLoadOversizedOffsetYieldsZero(t *testing.T) {
	f := newFrame(100, 16)
	f.InputData = []byte{0x01, 0x02}
	defer f.Release()
	huge := word256.Shl(word256.ONE, 200)
	require.NoError(t, f.Stack.Push(huge))

	res := Step(f, CALLDATALOAD)
	require.False(t, res.Halted())
	assert.True(t, f.peekTop(t).Equal(word256.ZERO))
}

func TestEOFCreateAndExtCallStackOnlyStubs(t *testing.T) {
	f := newFrame(100, 16)
	defer f.Release()
	for i := 0; i < eofCreateStackInputs; i++ {
		require.NoError(t, f.Stack.Push(word256.FromUint64(uint64(i))))
	}
	res := Step(f, EOFCREATE)
	require.False(t, res.Halted())
	assert.Equal(t, 1, f.Stack.Size())
	assert.True(t, f.peekTop(t).Equal(word256.ZERO))

	f2 := newFrame(100, 16)
	defer f2.Release()
	for i := 0; i < extCallStackInputs; i++ {
		require.NoError(t, f2.Stack.Push(word256.FromUint64(uint64(i))))
	}
	res = Step(f2, EXTCALL)
	require.False(t, res.Halted())
	assert.Equal(t, 1, f2.Stack.Size())
	assert.True(t, f2.peekTop(t).Equal(word256.ZERO))
}
