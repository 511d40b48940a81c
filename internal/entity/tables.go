package entity

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
)

// ShippingRateDefault 默认运费表的一行
type ShippingRateDefault struct {
	ID             uint64          `gorm:"column:id;primaryKey;autoIncrement"`
	Zone           int             `gorm:"column:zone;not null;uniqueIndex:uk_zone_method_weight"`
	WeightFromKg   decimal.Decimal `gorm:"column:weight_from_kg;type:decimal(8,2);not null;uniqueIndex:uk_zone_method_weight"`
	WeightToKg     decimal.Decimal `gorm:"column:weight_to_kg;type:decimal(8,2);not null"`
	DeliveryMethod string          `gorm:"column:delivery_method;type:varchar(16);not null;uniqueIndex:uk_zone_method_weight"`
	BaseRate       decimal.Decimal `gorm:"column:base_rate;type:decimal(10,2);not null"`
	ExtraKgRate    decimal.Decimal `gorm:"column:extra_kg_rate;type:decimal(10,2);not null"`
	RunID          string          `gorm:"column:run_id;type:varchar(36);not null;index:idx_run_id"`
	CreatedAt      time.Time       `gorm:"column:created_at;not null"`
}

// TableName 指定表名
func (ShippingRateDefault) TableName() string {
	return "shipping_rate_defaults"
}

// PostalCodeZone 邮编与分区的映射
type PostalCodeZone struct {
	PostalCode string    `gorm:"column:postal_code;primaryKey;type:char(5)"`
	Zone       int       `gorm:"column:zone;not null;index:idx_zone"`
	RunID      string    `gorm:"column:run_id;type:varchar(36);not null;index:idx_run_id"`
	CreatedAt  time.Time `gorm:"column:created_at;not null"`
}

// TableName 指定表名
func (PostalCodeZone) TableName() string {
	return "postal_code_zones"
}

// GenerationRun 一次成功入库的生成记录
type GenerationRun struct {
	ID        string         `gorm:"column:id;primaryKey;type:varchar(36)"`
	TableKey  string         `gorm:"column:table_key;type:varchar(32);not null;index:idx_table_created"`
	Rows      int            `gorm:"column:rows;not null"`
	Summary   datatypes.JSON `gorm:"column:summary;type:json"`
	CreatedAt time.Time      `gorm:"column:created_at;not null;index:idx_table_created"`
}

// TableName 指定表名
func (GenerationRun) TableName() string {
	return "generation_runs"
}
