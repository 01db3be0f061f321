package trace

import (
	mapset "github.com/deckarep/golang-set/v2"

	"github.com/lattice-chain/evmcore/core/vm"
)

// CoverageRecorder tracks which opcodes a frame actually dispatched, for use
// by test harnesses asserting a scenario exercised the opcode it claims to.
type CoverageRecorder struct {
	seen mapset.Set[vm.OpCode]
}

// NewCoverageRecorder returns an empty recorder.
func NewCoverageRecorder() *CoverageRecorder {
	return &CoverageRecorder{seen: mapset.NewSet[vm.OpCode]()}
}

// Record marks op as dispatched. Call it after vm.Step returns, regardless
// of whether the step halted.
func (c *CoverageRecorder) Record(op vm.OpCode) {
	c.seen.Add(op)
}

// Contains reports whether op has been recorded.
func (c *CoverageRecorder) Contains(op vm.OpCode) bool {
	return c.seen.Contains(op)
}

// Seen returns the recorded opcodes in no particular order.
func (c *CoverageRecorder) Seen() []vm.OpCode {
	return c.seen.ToSlice()
}

// Count returns the number of distinct opcodes recorded.
func (c *CoverageRecorder) Count() int {
	return c.seen.Cardinality()
}
