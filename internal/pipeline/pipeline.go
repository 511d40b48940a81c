package pipeline

import (
	"context"

	"github.com/google/uuid"

	"dixis/shipzone/pkg/logger"
)

// 流水线名称，用于日志
const (
	NameRates = "rates"
	NameZones = "zones"
)

// Result 已写出的表
type Result struct {
	RunID string
	File  string
	Rows  int
}

// startRun 在 ctx 中写入流水线名称和 run id（调用方已设置则沿用）
func startRun(ctx context.Context, name string) context.Context {
	ctx = logger.WithPipeline(ctx, name)
	if logger.RunID(ctx) == "" {
		ctx = logger.WithRunID(ctx, uuid.NewString())
	}
	return ctx
}

// progress 按固定间隔打印处理进度
type progress struct {
	every  int
	logger logger.Logger
}

func newProgress(every int, log logger.Logger) *progress {
	return &progress{
		every:  every,
		logger: log,
	}
}

// report 作为 ClassifyAll 的回调
func (p *progress) report(ctx context.Context) func(done, total int) {
	return func(done, total int) {
		if p.every > 0 && done%p.every == 0 {
			p.logger.Infof(ctx, "Processed %d/%d postal codes...", done, total)
		}
	}
}
