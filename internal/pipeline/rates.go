package pipeline

import (
	"context"

	"dixis/shipzone/internal/csvout"
	"dixis/shipzone/internal/model"
	"dixis/shipzone/internal/publish"
	"dixis/shipzone/internal/rates"
	"dixis/shipzone/pkg/logger"
)

// RateTable 生成 default_shipping_rates.csv
type RateTable struct {
	table     rates.Table
	path      string
	publisher *publish.Publisher
	logger    logger.Logger
}

// NewRateTable 创建费率表流水线，publisher 可为 nil
func NewRateTable(table rates.Table, path string, publisher *publish.Publisher, log logger.Logger) *RateTable {
	return &RateTable{
		table:     table,
		path:      path,
		publisher: publisher,
		logger:    log,
	}
}

// Run 生成、写文件、发布。静态表不完整时不写任何文件
func (r *RateTable) Run(ctx context.Context) (*Result, error) {
	ctx = startRun(ctx, NameRates)
	r.logger.Infof(ctx, "[RateTable] Generating shipping rates")

	// 1. 展开静态费率表
	entries, err := rates.Generate(r.table)
	if err != nil {
		r.logger.Errorf(ctx, "[RateTable] Generation aborted: %v", err)
		r.announceFailure(ctx, err)
		return nil, err
	}

	// 2. 写 CSV
	if err := csvout.WriteFile(r.path, rates.Records(entries)); err != nil {
		r.logger.Errorf(ctx, "[RateTable] Error writing CSV file: %v", err)
		r.announceFailure(ctx, err)
		return nil, err
	}
	r.logger.Infof(ctx, "[RateTable] Successfully created %s with %d rates", r.path, len(entries))

	result := &Result{RunID: logger.RunID(ctx), File: r.path, Rows: len(entries)}

	// 3. 可选下游
	if err := r.publisher.PublishRates(ctx, r.path, entries); err != nil {
		r.logger.Errorf(ctx, "[RateTable] Publish failed: %v", err)
		return result, err
	}

	return result, nil
}

func (r *RateTable) announceFailure(ctx context.Context, cause error) {
	if err := r.publisher.PublishFailure(ctx, model.TableShippingRates, r.path, cause); err != nil {
		r.logger.Warnf(ctx, "[RateTable] Failure announcement failed: %v", err)
	}
}
