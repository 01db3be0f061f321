package log

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"runtime"
	"sync"
)

type discardHandler struct{}

// DiscardHandler returns a no-op handler. It is what Root() answers with
// before any caller installs a real handler via SetDefault, so a Frame built
// early never has to nil-check its Logger field.
// DiscardHandler 返回一个无操作的处理器。
func DiscardHandler() slog.Handler {
	return &discardHandler{}
}

func (h *discardHandler) Handle(_ context.Context, r slog.Record) error {
	return nil // 无操作，直接返回 nil。
}

func (h *discardHandler) Enabled(_ context.Context, level slog.Level) bool {
	return false // 始终返回 false，表示该处理器不会处理任何日志记录。
}

func (h *discardHandler) WithGroup(name string) slog.Handler {
	panic("not implemented") // 尚未实现。
}

func (h *discardHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &discardHandler{} // 返回一个新的无操作处理器。
}

type TerminalHandler struct {
	mu       sync.Mutex
	wr       io.Writer
	lvl      slog.Level
	useColor bool
	attrs    []slog.Attr
	// fieldPadding is a map with maximum field value lengths seen until now
	// to allow padding log contexts in a bit smarter way.
	// fieldPadding 是一个映射，记录到目前为止看到的最大字段值长度，
	// 以便以更智能的方式填充日志上下文。
	fieldPadding map[string]int

	buf []byte
}

// NewTerminalHandler returns a handler which formats log records at all levels optimized for human readability on
// a terminal with color-coded level output and terser human friendly timestamp.
// This format should only be used for interactive programs or while developing, which is exactly what
// cmd/evmrun's --verbose flag wires it up for.
//
// LEVEL[TIME] FILE:LINE MESSAGE key=value key=value ...
//
// The message is padded to 40 columns when attributes follow, and the
// handler's own attributes (such as a frame's run_id) come before the
// record's. Example:
//
// TRACE[05-16|20:58:45.123] .../core/vm/step.go:75 op                                       run_id=... op=ADD cost=3 gas=99997
//
// NewTerminalHandler 返回一个处理器，用于格式化所有级别的日志记录，优化为在终端上的人类可读性，
// 支持颜色编码的级别输出和更简洁的时间戳。此格式仅适用于交互式程序或开发期间使用。
func NewTerminalHandler(wr io.Writer, useColor bool) *TerminalHandler {
	return NewTerminalHandlerWithLevel(wr, levelMaxVerbosity, useColor)
}

// NewTerminalHandlerWithLevel returns the same handler as NewTerminalHandler but only outputs
// records whose level is at or above the specified level.
// NewTerminalHandlerWithLevel 返回与 NewTerminalHandler 相同的处理器，
// 但仅输出级别大于或等于指定级别的记录。
func NewTerminalHandlerWithLevel(wr io.Writer, lvl slog.Level, useColor bool) *TerminalHandler {
	return &TerminalHandler{
		wr:           wr,
		lvl:          lvl,
		useColor:     useColor,
		fieldPadding: make(map[string]int),
	}
}

func (h *TerminalHandler) Handle(_ context.Context, r slog.Record) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	buf := h.format(h.buf, r, h.useColor) // 格式化日志记录。
	h.wr.Write(buf)                       // 写入日志输出。
	h.buf = buf[:0]                       // 清空缓冲区。
	return nil
}

// Source returns a Source for the log event.
// If the Record was created without the necessary information,
// or if the location is unavailable, it returns a non-nil *Source
// with zero fields.
// Source 返回日志事件的源信息。如果记录创建时缺少必要信息，
// 或者位置不可用，则返回一个非 nil 的 *Source，但字段为空。
func (h *TerminalHandler) Source(r slog.Record) slog.Value {
	fs := runtime.CallersFrames([]uintptr{r.PC})
	f, _ := fs.Next()
	src := &slog.Source{
		Function: f.Function,
		File:     f.File,
		Line:     f.Line,
	}
	return slog.StringValue(fmt.Sprintf("%s:%d", src.File, src.Line))
}

func (h *TerminalHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.lvl // 仅处理大于或等于当前级别的日志记录。
}

func (h *TerminalHandler) WithGroup(name string) slog.Handler {
	panic("not implemented") // 尚未实现。
}

func (h *TerminalHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &TerminalHandler{
		wr:           h.wr,
		lvl:          h.lvl,
		useColor:     h.useColor,
		attrs:        append(h.attrs, attrs...), // 添加新的属性。
		fieldPadding: make(map[string]int),
	}
}

// ResetFieldPadding zeroes the field-padding for all attribute pairs.
// ResetFieldPadding 将所有属性对的字段填充重置为零。
func (h *TerminalHandler) ResetFieldPadding() {
	h.mu.Lock()
	h.fieldPadding = make(map[string]int)
	h.mu.Unlock()
}
