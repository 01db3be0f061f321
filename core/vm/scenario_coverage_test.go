// This file lives in the external vm_test package, not vm, because
// internal/trace imports core/vm: a CoverageRecorder used from a white-box
// vm_test.go (package vm) would close an import cycle. Driving the same
// scenarios from outside the package avoids that while still exercising
// CoverageRecorder against real Step calls instead of only its own unit
// test.
package vm_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lattice-chain/evmcore/core/vm"
	"github.com/lattice-chain/evmcore/core/word256"
	"github.com/lattice-chain/evmcore/internal/trace"
)

type scenarioCode struct{}

func (scenarioCode) EOFVersion() int                          { return 0 }
func (scenarioCode) ReadU8(pc int) (byte, bool)               { return 0, false }
func (scenarioCode) GetSubContainer(index int) ([]byte, bool) { return nil, false }

// runScenario dispatches op against a fresh frame, records it with rec, and
// returns the step's result.
func runScenario(t *testing.T, rec *trace.CoverageRecorder, gas uint64, push []word256.Word256, op vm.OpCode) vm.OperationResult {
	t.Helper()
	f := vm.NewFrame(gas, scenarioCode{}, nil)
	defer f.Release()
	for _, v := range push {
		require.NoError(t, f.Stack.Push(v))
	}
	res := vm.Step(f, op)
	rec.Record(op)
	return res
}

func TestScenarioCoverageRecordsDispatchedOpcodes(t *testing.T) {
	rec := trace.NewCoverageRecorder()

	// Scenario 1 from vm_test.go: DIV, 0x10 / 0x03 = 0x05.
	res := runScenario(t, rec, 100, []word256.Word256{word256.FromUint64(0x03), word256.FromUint64(0x10)}, vm.DIV)
	require.False(t, res.Halted())
	assert.True(t, rec.Contains(vm.DIV))

	// Scenario 8 from vm_test.go: EXP gas gating on a 32-byte exponent.
	exponent := word256.Shl(word256.ONE, 255)
	wantCost := vm.GasSlowStep + 32*50
	res = runScenario(t, rec, wantCost, []word256.Word256{exponent, word256.FromUint64(2)}, vm.EXP)
	assert.False(t, res.Halted())
	assert.True(t, rec.Contains(vm.EXP))

	assert.False(t, rec.Contains(vm.MULMOD), "MULMOD was never dispatched in this test")
	assert.Equal(t, 2, rec.Count())
	assert.ElementsMatch(t, []vm.OpCode{vm.DIV, vm.EXP}, rec.Seen())
}
