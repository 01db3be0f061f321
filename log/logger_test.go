package log

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lattice-chain/evmcore/core/word256"
)

func TestTerminalHandlerFormatsWord256Attribute(t *testing.T) {
	var buf bytes.Buffer
	l := NewLogger(NewTerminalHandler(&buf, false))

	big := word256.Shl(word256.ONE, 200)
	l.Trace("op", "op", "ADD", "value", big)

	out := buf.String()
	assert.Contains(t, out, "TRACE")
	assert.Contains(t, out, "op=ADD")
	// a value this large can't take the fast uint64 path, so the decimal
	// fallback through big.Int must have run.
	assert.True(t, strings.Contains(out, ","), "expected thousand-separated decimal, got %q", out)
}

func TestTerminalHandlerSmallWord256UsesFastPath(t *testing.T) {
	var buf bytes.Buffer
	l := NewLogger(NewTerminalHandler(&buf, false))

	l.Trace("gas", "cost", word256.FromUint64(3))

	assert.Contains(t, buf.String(), "cost=3")
}

func TestNewTerminalHandlerWithLevelFiltersBelowThreshold(t *testing.T) {
	var buf bytes.Buffer
	l := NewLogger(NewTerminalHandlerWithLevel(&buf, LevelDebug, false))

	l.Trace("should be filtered")
	assert.Empty(t, buf.String())

	l.Debug("should appear")
	assert.Contains(t, buf.String(), "should appear")
}

func TestRootDiscardsUntilSetDefault(t *testing.T) {
	// init() installs a discard handler; Root() must not panic or block
	// before any caller installs a real one via SetDefault.
	require.NotPanics(t, func() {
		Root().Trace("nobody hears this")
	})

	var buf bytes.Buffer
	SetDefault(NewLogger(NewTerminalHandler(&buf, false)))
	t.Cleanup(func() { SetDefault(NewLogger(DiscardHandler())) })

	Root().Trace("run started", "run_id", "abc-123")
	assert.Contains(t, buf.String(), "run_id=abc-123")
}

func TestLoggerWithCarriesAttributesToChildren(t *testing.T) {
	var buf bytes.Buffer
	root := NewLogger(NewTerminalHandler(&buf, false))
	child := root.With("run_id", "xyz")

	child.Trace("op dispatched", "op", "SUB")

	out := buf.String()
	assert.Contains(t, out, "run_id=xyz")
	assert.Contains(t, out, "op=SUB")
}
