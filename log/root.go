package log

import (
	"log/slog"
	"sync/atomic"
)

var root atomic.Value

// 初始化时设置默认的全局日志记录器
// Initialization sets the default global logger.
func init() {
	root.Store(&logger{slog.New(DiscardHandler())})
}

// SetDefault sets the default global logger. core/vm.NewFrame derives each
// run's logger from this, so installing a real handler here (cmd/evmrun does
// this behind --verbose) turns on tracing for every frame created afterwards.
// SetDefault 设置默认的全局日志记录器
func SetDefault(l Logger) {
	root.Store(l)
	if lg, ok := l.(*logger); ok {
		slog.SetDefault(lg.inner)
	}
}

// Root returns the root logger. Until SetDefault is called it discards
// everything, so a Frame built before any handler is installed traces for
// free.
// Root 返回根日志记录器
func Root() Logger {
	return root.Load().(Logger)
}
