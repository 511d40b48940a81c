package mysql

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"gorm.io/datatypes"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"

	"dixis/shipzone/internal/entity"
	"dixis/shipzone/internal/model"
	"dixis/shipzone/internal/postal"
	"dixis/shipzone/internal/rates"
)

// TablesDAO 生成表的数据访问对象
type TablesDAO struct {
	db        *gorm.DB
	batchSize int
}

// NewTablesDAO 创建 TablesDAO 实例
func NewTablesDAO(dsn string, batchSize int) (*TablesDAO, error) {
	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	return newTablesDAO(db, batchSize), nil
}

func newTablesDAO(db *gorm.DB, batchSize int) *TablesDAO {
	return &TablesDAO{
		db:        db,
		batchSize: batchSize,
	}
}

// Migrate 建表或更新表结构
func (dao *TablesDAO) Migrate(ctx context.Context) error {
	err := dao.db.WithContext(ctx).AutoMigrate(
		&entity.ShippingRateDefault{},
		&entity.PostalCodeZone{},
		&entity.GenerationRun{},
	)
	if err != nil {
		return fmt.Errorf("failed to migrate tables: %w", err)
	}
	return nil
}

// SaveRates 用 entries 整表替换运费表
func (dao *TablesDAO) SaveRates(ctx context.Context, runID string, entries []rates.Entry) error {
	now := time.Now().UTC()
	rows := rateRows(runID, entries, now)

	summary, err := rateSummary(entries)
	if err != nil {
		return err
	}

	return dao.replace(ctx, &entity.ShippingRateDefault{}, rows, &entity.GenerationRun{
		ID:        runID,
		TableKey:  model.TableShippingRates,
		Rows:      len(rows),
		Summary:   summary,
		CreatedAt: now,
	})
}

// SavePostalZones 用 assignments 整表替换邮编分区表
func (dao *TablesDAO) SavePostalZones(ctx context.Context, runID string, assignments []postal.Assignment) error {
	now := time.Now().UTC()
	rows := zoneRows(runID, assignments, now)

	summary, err := zoneSummary(assignments)
	if err != nil {
		return err
	}

	return dao.replace(ctx, &entity.PostalCodeZone{}, rows, &entity.GenerationRun{
		ID:        runID,
		TableKey:  model.TablePostalZones,
		Rows:      len(rows),
		Summary:   summary,
		CreatedAt: now,
	})
}

// replace 同一事务内：清空表、分批插入、记录生成记录
func (dao *TablesDAO) replace(ctx context.Context, table interface{}, rows interface{}, run *entity.GenerationRun) error {
	return dao.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(table).Error; err != nil {
			return fmt.Errorf("failed to clear table: %w", err)
		}
		// 已在事务内，分批插入不再开 savepoint
		if err := tx.Session(&gorm.Session{SkipDefaultTransaction: true}).CreateInBatches(rows, dao.batchSize).Error; err != nil {
			return fmt.Errorf("failed to insert rows: %w", err)
		}
		if err := tx.Create(run).Error; err != nil {
			return fmt.Errorf("failed to record generation run: %w", err)
		}
		return nil
	})
}

// Close 关闭数据库连接
func (dao *TablesDAO) Close() error {
	sqlDB, err := dao.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

func rateRows(runID string, entries []rates.Entry, now time.Time) []entity.ShippingRateDefault {
	rows := make([]entity.ShippingRateDefault, 0, len(entries))
	for _, e := range entries {
		rows = append(rows, entity.ShippingRateDefault{
			Zone:           int(e.Zone),
			WeightFromKg:   e.Bracket.FromKg,
			WeightToKg:     e.Bracket.ToKg,
			DeliveryMethod: string(e.Method),
			BaseRate:       e.BaseRate,
			ExtraKgRate:    e.ExtraKgRate,
			RunID:          runID,
			CreatedAt:      now,
		})
	}
	return rows
}

func zoneRows(runID string, assignments []postal.Assignment, now time.Time) []entity.PostalCodeZone {
	rows := make([]entity.PostalCodeZone, 0, len(assignments))
	for _, a := range assignments {
		rows = append(rows, entity.PostalCodeZone{
			PostalCode: a.PostalCode,
			Zone:       int(a.Zone),
			RunID:      runID,
			CreatedAt:  now,
		})
	}
	return rows
}

// rateSummary 按配送方式计数
func rateSummary(entries []rates.Entry) (datatypes.JSON, error) {
	counts := make(map[string]int)
	for _, e := range entries {
		counts[string(e.Method)]++
	}
	return marshalSummary(len(entries), counts)
}

// zoneSummary 按分区名称计数
func zoneSummary(assignments []postal.Assignment) (datatypes.JSON, error) {
	counts := make(map[string]int)
	for _, a := range assignments {
		counts[a.Zone.Name()]++
	}
	return marshalSummary(len(assignments), counts)
}

func marshalSummary(rows int, counts map[string]int) (datatypes.JSON, error) {
	data, err := json.Marshal(struct {
		Rows   int            `json:"rows"`
		Counts map[string]int `json:"counts"`
	}{Rows: rows, Counts: counts})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal run summary: %w", err)
	}
	return datatypes.JSON(data), nil
}
