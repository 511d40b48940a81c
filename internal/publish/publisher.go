package publish

import (
	"context"
	"time"

	"dixis/shipzone/internal/model"
	"dixis/shipzone/internal/postal"
	"dixis/shipzone/internal/rates"
	"dixis/shipzone/pkg/errorutil"
	"dixis/shipzone/pkg/logger"
)

// TableStore 将生成的表写入后端数据库
type TableStore interface {
	SaveRates(ctx context.Context, runID string, entries []rates.Entry) error
	SavePostalZones(ctx context.Context, runID string, assignments []postal.Assignment) error
}

// Notifier 广播表生成结果
type Notifier interface {
	PublishTablesGenerated(ctx context.Context, n *model.TablesGenerated) error
}

// JobQueue 投递重载任务
type JobQueue interface {
	PublishReload(job *model.ReloadTablesJob) (string, error)
}

// Publisher 依次执行 store、notifier、queue，任一可为 nil
type Publisher struct {
	store    TableStore
	notifier Notifier
	queue    JobQueue
	logger   logger.Logger
	now      func() time.Time
}

// NewPublisher 创建 Publisher 实例
func NewPublisher(store TableStore, notifier Notifier, queue JobQueue, log logger.Logger) *Publisher {
	return &Publisher{
		store:    store,
		notifier: notifier,
		queue:    queue,
		logger:   log,
		now:      time.Now,
	}
}

// Enabled 是否配置了任一下游
func (p *Publisher) Enabled() bool {
	return p != nil && (p.store != nil || p.notifier != nil || p.queue != nil)
}

// PublishRates 发布已写入 file 的运费表
func (p *Publisher) PublishRates(ctx context.Context, file string, entries []rates.Entry) error {
	if !p.Enabled() {
		return nil
	}
	return p.publish(ctx, model.TableShippingRates, file, len(entries), func(runID string) error {
		return p.store.SaveRates(ctx, runID, entries)
	})
}

// PublishPostalZones 发布已写入 file 的邮编分区表
func (p *Publisher) PublishPostalZones(ctx context.Context, file string, assignments []postal.Assignment) error {
	if !p.Enabled() {
		return nil
	}
	return p.publish(ctx, model.TablePostalZones, file, len(assignments), func(runID string) error {
		return p.store.SavePostalZones(ctx, runID, assignments)
	})
}

// PublishFailure 生成失败时只通过 notifier 广播 FAILED，不写库也不投递重载任务
func (p *Publisher) PublishFailure(ctx context.Context, table, file string, cause error) error {
	if p == nil || p.notifier == nil || cause == nil {
		return nil
	}

	n := &model.TablesGenerated{
		RunID:       logger.RunID(ctx),
		Table:       table,
		File:        file,
		Status:      model.RunStatusFailed,
		Error:       cause.Error(),
		GeneratedAt: p.now().Unix(),
	}
	if err := p.notifier.PublishTablesGenerated(ctx, n); err != nil {
		return errorutil.Publish("notify "+table+" failure failed", err)
	}
	p.logger.Infof(ctx, "[Publisher] Announced %s failure", table)
	return nil
}

func (p *Publisher) publish(ctx context.Context, table, file string, rows int, save func(runID string) error) error {
	runID := logger.RunID(ctx)

	// 1. 写入数据库
	if p.store != nil {
		if err := save(runID); err != nil {
			return errorutil.Publish("save "+table+" failed", err)
		}
		p.logger.Infof(ctx, "[Publisher] Loaded %d rows into %s", rows, table)
	}

	// 2. Redis 广播
	if p.notifier != nil {
		n := &model.TablesGenerated{
			RunID:       runID,
			Table:       table,
			File:        file,
			Rows:        rows,
			Status:      model.RunStatusSuccess,
			GeneratedAt: p.now().Unix(),
		}
		if err := p.notifier.PublishTablesGenerated(ctx, n); err != nil {
			return errorutil.Publish("notify "+table+" failed", err)
		}
		p.logger.Infof(ctx, "[Publisher] Announced %s regeneration", table)
	}

	// 3. 投递重载任务
	if p.queue != nil {
		job := &model.ReloadTablesJob{
			RunID:       runID,
			Table:       table,
			File:        file,
			Rows:        rows,
			RequestedAt: p.now().Unix(),
		}
		jobID, err := p.queue.PublishReload(job)
		if err != nil {
			return errorutil.Publish("enqueue "+table+" reload failed", err)
		}
		p.logger.Infof(ctx, "[Publisher] Reload job %s enqueued for %s", jobID, table)
	}

	return nil
}
