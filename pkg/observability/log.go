package observability

import (
	"context"
	"time"

	"github.com/charmbracelet/log"
)

// LogHooks reports every event as a debug-level log line.
// It implements SolverHooks, CacheHooks and APIHooks.
type LogHooks struct {
	logger *log.Logger
}

// NewLogHooks returns hooks that write to logger.
// A nil logger falls back to log.Default().
func NewLogHooks(logger *log.Logger) *LogHooks {
	if logger == nil {
		logger = log.Default()
	}
	return &LogHooks{logger: logger}
}

func (h *LogHooks) OnSolveStart(_ context.Context, degree int) {
	h.logger.Debug("solve started", "degree", degree)
}

func (h *LogHooks) OnSolveComplete(_ context.Context, degree, rootCount int, duration time.Duration, err error) {
	if err != nil {
		h.logger.Debug("solve failed", "degree", degree, "duration", duration, "err", err)
		return
	}
	h.logger.Debug("solve finished", "degree", degree, "roots", rootCount, "duration", duration)
}

func (h *LogHooks) OnCacheHit(_ context.Context, keyType string) {
	h.logger.Debug("cache hit", "type", keyType)
}

func (h *LogHooks) OnCacheMiss(_ context.Context, keyType string) {
	h.logger.Debug("cache miss", "type", keyType)
}

func (h *LogHooks) OnCacheSet(_ context.Context, keyType string, size int) {
	h.logger.Debug("cache set", "type", keyType, "bytes", size)
}

func (h *LogHooks) OnRequest(_ context.Context, method, path string) {
	h.logger.Debug("request", "method", method, "path", path)
}

func (h *LogHooks) OnResponse(_ context.Context, method, path string, statusCode int, duration time.Duration) {
	h.logger.Debug("response", "method", method, "path", path, "status", statusCode, "duration", duration)
}

var (
	_ SolverHooks = (*LogHooks)(nil)
	_ CacheHooks  = (*LogHooks)(nil)
	_ APIHooks    = (*LogHooks)(nil)
)
