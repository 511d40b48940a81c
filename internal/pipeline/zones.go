package pipeline

import (
	"context"

	"dixis/shipzone/internal/csvout"
	"dixis/shipzone/internal/model"
	"dixis/shipzone/internal/postal"
	"dixis/shipzone/internal/publish"
	"dixis/shipzone/pkg/logger"
)

// Fetcher 返回上游数据集的原始邮编列
type Fetcher interface {
	Fetch(ctx context.Context) ([]string, error)
}

// PostalZones 生成 postal_codes_to_zones.csv
type PostalZones struct {
	fetcher          Fetcher
	rules            *postal.Rules
	path             string
	progressInterval int
	publisher        *publish.Publisher
	logger           logger.Logger
}

// NewPostalZones 创建邮编分区流水线，publisher 可为 nil
func NewPostalZones(
	fetcher Fetcher,
	rules *postal.Rules,
	path string,
	progressInterval int,
	publisher *publish.Publisher,
	log logger.Logger,
) *PostalZones {
	return &PostalZones{
		fetcher:          fetcher,
		rules:            rules,
		path:             path,
		progressInterval: progressInterval,
		publisher:        publisher,
		logger:           log,
	}
}

// Run 下载、分区、写文件、发布。下载失败时不动已有文件
func (p *PostalZones) Run(ctx context.Context) (*Result, error) {
	ctx = startRun(ctx, NameZones)

	// 1. 下载
	raw, err := p.fetcher.Fetch(ctx)
	if err != nil {
		p.logger.Errorf(ctx, "[PostalZones] Could not retrieve postal code data, aborting: %v", err)
		p.announceFailure(ctx, err)
		return nil, err
	}

	// 2. 清洗并分区
	prog := newProgress(p.progressInterval, p.logger)
	assignments, malformed := p.rules.ClassifyAll(raw, prog.report(ctx))
	p.logger.Infof(ctx, "[PostalZones] Skipped %d malformed values", malformed)
	p.logger.Infof(ctx, "[PostalZones] Finished processing %d postal codes", len(assignments))

	// 3. 写 CSV
	if err := csvout.WriteFile(p.path, postal.Records(assignments)); err != nil {
		p.logger.Errorf(ctx, "[PostalZones] Error writing CSV file: %v", err)
		p.announceFailure(ctx, err)
		return nil, err
	}
	p.logger.Infof(ctx, "[PostalZones] Successfully created %s", p.path)

	result := &Result{RunID: logger.RunID(ctx), File: p.path, Rows: len(assignments)}

	// 4. 可选下游
	if err := p.publisher.PublishPostalZones(ctx, p.path, assignments); err != nil {
		p.logger.Errorf(ctx, "[PostalZones] Publish failed: %v", err)
		return result, err
	}

	return result, nil
}

func (p *PostalZones) announceFailure(ctx context.Context, cause error) {
	if err := p.publisher.PublishFailure(ctx, model.TablePostalZones, p.path, cause); err != nil {
		p.logger.Warnf(ctx, "[PostalZones] Failure announcement failed: %v", err)
	}
}
