// Package trace provides debug tooling around core/vm's opcode dispatcher:
// a record of what a frame executed, and a compact on-disk encoding for it.
// None of this is consulted by the dispatcher itself; it exists purely so a
// human (or the CLI runner in cmd/evmrun) can inspect a run after the fact.
package trace

import (
	"bytes"
	"encoding/gob"

	"github.com/golang/snappy"

	"github.com/lattice-chain/evmcore/core/vm"
)

// Record is one Step call's outcome, tagged with the frame it belongs to.
type Record struct {
	RunID        string
	Op           vm.OpCode
	GasCost      uint64
	GasRemaining uint64
	HaltReason   vm.HaltReason
}

// NewRecord builds a Record from a frame's state after a Step call.
func NewRecord(f *vm.Frame, op vm.OpCode, result vm.OperationResult) Record {
	return Record{
		RunID:        f.RunID.String(),
		Op:           op,
		GasCost:      result.GasCost,
		GasRemaining: f.Gas,
		HaltReason:   result.HaltReason,
	}
}

// EncodeLog gob-encodes records and snappy-compresses the result, the same
// pairing core/rawdb uses for its freezer records: a generic binary codec
// under a fast block compressor.
func EncodeLog(records []Record) ([]byte, error) {
	var buf bytes.Buffer
	if err := gob.NewEncoder(&buf).Encode(records); err != nil {
		return nil, err
	}
	return snappy.Encode(nil, buf.Bytes()), nil
}

// DecodeLog reverses EncodeLog.
func DecodeLog(data []byte) ([]Record, error) {
	raw, err := snappy.Decode(nil, data)
	if err != nil {
		return nil, err
	}
	var records []Record
	if err := gob.NewDecoder(bytes.NewReader(raw)).Decode(&records); err != nil {
		return nil, err
	}
	return records, nil
}
