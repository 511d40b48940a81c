package rates

import (
	"github.com/shopspring/decimal"

	"dixis/shipzone/internal/zone"
)

// Method 配送方式
type Method string

const (
	Home   Method = "HOME"
	Pickup Method = "PICKUP"
	Locker Method = "LOCKER"
)

// Methods 按输出顺序排列的配送方式
var Methods = []Method{Home, Pickup, Locker}

// Bracket 重量段（公斤）
type Bracket struct {
	FromKg decimal.Decimal
	ToKg   decimal.Decimal
}

// Key 基础价索引：分区、配送方式、Table.Brackets 下标
type Key struct {
	Zone    zone.Zone
	Method  Method
	Bracket int
}

// ZoneMethod 超重加价索引
type ZoneMethod struct {
	Zone   zone.Zone
	Method Method
}

// Table 静态费率配置
type Table struct {
	Brackets []Bracket
	// Limits 各配送方式的重量上限，未配置即不限
	Limits map[Method]decimal.Decimal
	Base   map[Key]decimal.Decimal
	Extra  map[ZoneMethod]decimal.Decimal
}

// Entry 费率表的一行
type Entry struct {
	Zone        zone.Zone
	Bracket     Bracket
	Method      Method
	BaseRate    decimal.Decimal
	ExtraKgRate decimal.Decimal
}

// Header 费率表的 CSV 表头
var Header = []string{"zone", "weight_from_kg", "weight_to_kg", "delivery_method", "base_rate", "extra_kg_rate"}

// Record 转为与 Header 对应的 CSV 行
func (e Entry) Record() []string {
	return []string{
		e.Zone.String(),
		e.Bracket.FromKg.StringFixed(2),
		e.Bracket.ToKg.StringFixed(2),
		string(e.Method),
		e.BaseRate.StringFixed(2),
		e.ExtraKgRate.StringFixed(2),
	}
}

// Records 转为 CSV 行，首行为表头
func Records(entries []Entry) [][]string {
	out := make([][]string, 0, len(entries)+1)
	out = append(out, Header)
	for _, e := range entries {
		out = append(out, e.Record())
	}
	return out
}
