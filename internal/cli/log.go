package cli

import (
	"context"
	"io"
	"time"

	"github.com/charmbracelet/log"
)

// newLogger creates a new logger with timestamp formatting.
// The logger writes to w and filters messages at the specified level.
func newLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
	})
}

// progress times the generation of one sample. Each goroutine owns its own value.
type progress struct {
	logger *log.Logger
	model  string
	index  int
	seed   *int64
	start  time.Time
}

// newProgress starts timing sample index of model, drawn from seed (nil: clock-derived).
func newProgress(l *log.Logger, model string, index int, seed *int64) *progress {
	return &progress{logger: l, model: model, index: index, seed: seed, start: time.Now()}
}

// done logs the finished sample with its size and elapsed time, e.g.
//
//	INFO generated model=gnm sample=2 seed=-7310 vertices=100 edges=196 elapsed=2ms
func (p *progress) done(vertices, edges int) {
	var seed any = "clock"
	if p.seed != nil {
		seed = *p.seed
	}
	p.logger.Info("generated",
		"model", p.model,
		"sample", p.index,
		"seed", seed,
		"vertices", vertices,
		"edges", edges,
		"elapsed", time.Since(p.start).Round(time.Millisecond),
	)
}

type ctxKey int

const loggerKey ctxKey = 0

// withLogger returns a new context with the given logger attached.
func withLogger(ctx context.Context, l *log.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, l)
}

// loggerFromContext retrieves the logger from ctx, falling back to log.Default().
func loggerFromContext(ctx context.Context) *log.Logger {
	if l, ok := ctx.Value(loggerKey).(*log.Logger); ok {
		return l
	}
	return log.Default()
}
