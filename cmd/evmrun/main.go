// Copyright 2014 The go-ethereum Authors
// This file is part of go-ethereum.
//
// go-ethereum is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// go-ethereum is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with go-ethereum. If not, see <http://www.gnu.org/licenses/>.

// evmrun is a debug CLI that steps a hex-encoded opcode sequence through
// core/vm's dispatcher and prints the resulting trace and stack. It is a
// convenience around the core, not part of its interface.
package main

import (
	"encoding/hex"
	"fmt"
	"os"
	"strings"

	"github.com/urfave/cli/v2"

	"github.com/lattice-chain/evmcore/core/vm"
	"github.com/lattice-chain/evmcore/core/word256"
	"github.com/lattice-chain/evmcore/internal/gascache"
	"github.com/lattice-chain/evmcore/internal/trace"
	"github.com/lattice-chain/evmcore/log"
)

var (
	codeFlag = &cli.StringFlag{
		Name:     "code",
		Usage:    "hex-encoded bytecode to execute",
		Required: true,
	}
	inputFlag = &cli.StringFlag{
		Name:  "input",
		Usage: "hex-encoded call data",
	}
	gasFlag = &cli.Uint64Flag{
		Name:  "gas",
		Usage: "gas available to the run",
		Value: 1_000_000,
	}
	eofFlag = &cli.IntFlag{
		Name:  "eof-version",
		Usage: "EOF container version (0 = legacy code)",
	}
	verboseFlag = &cli.BoolFlag{
		Name:  "verbose",
		Usage: "log every opcode at trace level",
	}
	traceOutFlag = &cli.StringFlag{
		Name:  "trace-out",
		Usage: "write a gob+snappy encoded trace.Record log of the run to this path",
	}
	cacheExpGasFlag = &cli.BoolFlag{
		Name:  "cache-exp-gas",
		Usage: "memoize EXP's dynamic gas cost across repeated exponents for this run",
	}
)

func main() {
	app := &cli.App{
		Name:  "evmrun",
		Usage: "step a byte sequence through the opcode dispatcher and print the resulting stack",
		Flags: []cli.Flag{
			codeFlag, inputFlag, gasFlag, eofFlag, verboseFlag, traceOutFlag, cacheExpGasFlag,
		},
		Action: run,
	}
	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(ctx *cli.Context) error {
	if ctx.Bool(verboseFlag.Name) {
		log.SetDefault(log.NewLogger(log.NewTerminalHandler(os.Stderr, false)))
	}

	code, err := decodeHex(ctx.String(codeFlag.Name))
	if err != nil {
		return fmt.Errorf("decoding code: %w", err)
	}
	input, err := decodeHex(ctx.String(inputFlag.Name))
	if err != nil {
		return fmt.Errorf("decoding input: %w", err)
	}

	bc := &byteCode{bytes: code, eofVersion: ctx.Int(eofFlag.Name)}
	frame := vm.NewFrame(ctx.Uint64(gasFlag.Name), bc, input)
	defer frame.Release()

	if ctx.Bool(cacheExpGasFlag.Name) {
		frame.ExpGasCache = gascache.New(32 * 1024)
	}

	var records []trace.Record
	recordTrace := ctx.String(traceOutFlag.Name) != ""

	for pc := 0; frame.State == vm.FrameRunning; pc++ {
		b, ok := bc.ReadU8(pc)
		if !ok {
			break
		}
		op := vm.OpCode(b)
		result := vm.Step(frame, op)
		fmt.Printf("pc=%-4d op=%-16s gas_cost=%-6d gas_left=%-10d halt=%s\n",
			pc, op, result.GasCost, frame.Gas, result.HaltReason)
		if recordTrace {
			records = append(records, trace.NewRecord(frame, op, result))
		}
		if result.Halted() {
			break
		}
	}

	if recordTrace {
		if err := writeTraceLog(ctx.String(traceOutFlag.Name), records); err != nil {
			return fmt.Errorf("writing trace log: %w", err)
		}
	}

	fmt.Println("final stack (top first):")
	for i := 0; i < frame.Stack.Size(); i++ {
		v, err := frame.Stack.Get(i)
		if err != nil {
			return err
		}
		fmt.Println(formatWord(v))
	}
	return nil
}

func writeTraceLog(path string, records []trace.Record) error {
	encoded, err := trace.EncodeLog(records)
	if err != nil {
		return err
	}
	return os.WriteFile(path, encoded, 0o644)
}

func formatWord(v word256.Word256) string {
	b := v.Bytes()
	return "0x" + hex.EncodeToString(b[:])
}

func decodeHex(s string) ([]byte, error) {
	s = strings.TrimPrefix(s, "0x")
	if s == "" {
		return nil, nil
	}
	return hex.DecodeString(s)
}

// byteCode is the minimal vm.Code the CLI needs: a flat byte slice with no
// real EOF sub-containers.
type byteCode struct {
	bytes      []byte
	eofVersion int
}

func (c *byteCode) EOFVersion() int { return c.eofVersion }

func (c *byteCode) ReadU8(pc int) (byte, bool) {
	if pc < 0 || pc >= len(c.bytes) {
		return 0, false
	}
	return c.bytes[pc], true
}

func (c *byteCode) GetSubContainer(index int) ([]byte, bool) { return nil, false }
