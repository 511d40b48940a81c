package rates

import (
	"github.com/shopspring/decimal"

	"dixis/shipzone/internal/zone"
)

// 各分区、配送方式的基础价，与 defaultBrackets 一一对应
var defaultBase = map[zone.Zone]map[Method][]string{
	zone.UrbanCentres: {
		Home:   {"3.50", "4.50", "6.00"},
		Pickup: {"2.50", "3.50", "5.00"},
		Locker: {"2.00", "3.00", "4.50"},
	},
	zone.MainlandCapitals: {
		Home:   {"4.00", "5.00", "7.00"},
		Pickup: {"3.00", "4.00", "6.00"},
		Locker: {"2.50", "3.50", "5.50"},
	},
	zone.RestOfMainland: {
		Home:   {"4.50", "5.50", "8.00"},
		Pickup: {"3.50", "4.50", "7.00"},
		Locker: {"3.00", "4.00", "6.50"},
	},
	zone.Islands: {
		Home:   {"5.50", "7.00", "10.00"},
		Pickup: {"4.50", "6.00", "9.00"},
		Locker: {"4.00", "5.50", "8.50"},
	},
	zone.Remote: {
		Home:   {"7.00", "9.00", "13.00"},
		Pickup: {"6.00", "8.00", "12.00"},
		Locker: {"5.50", "7.50", "11.50"},
	},
	zone.Athens: {
		Home:   {"3.00", "4.00", "5.50"},
		Pickup: {"2.00", "3.00", "4.50"},
		Locker: {"1.50", "2.50", "4.00"},
	},
	zone.Thessaloniki: {
		Home:   {"3.00", "4.00", "5.50"},
		Pickup: {"2.00", "3.00", "4.50"},
		Locker: {"1.50", "2.50", "4.00"},
	},
}

// 超出 10kg 后每公斤加价，自提柜有重量上限，不加价
var defaultExtra = map[zone.Zone]map[Method]string{
	zone.UrbanCentres:     {Home: "0.90", Pickup: "0.70", Locker: "0.00"},
	zone.MainlandCapitals: {Home: "1.00", Pickup: "0.80", Locker: "0.00"},
	zone.RestOfMainland:   {Home: "1.10", Pickup: "0.90", Locker: "0.00"},
	zone.Islands:          {Home: "1.50", Pickup: "1.20", Locker: "0.00"},
	zone.Remote:           {Home: "2.00", Pickup: "1.60", Locker: "0.00"},
	zone.Athens:           {Home: "0.80", Pickup: "0.60", Locker: "0.00"},
	zone.Thessaloniki:     {Home: "0.80", Pickup: "0.60", Locker: "0.00"},
}

func defaultBrackets() []Bracket {
	return []Bracket{
		{FromKg: decimal.RequireFromString("0"), ToKg: decimal.RequireFromString("2")},
		{FromKg: decimal.RequireFromString("2.01"), ToKg: decimal.RequireFromString("5")},
		{FromKg: decimal.RequireFromString("5.01"), ToKg: decimal.RequireFromString("10")},
	}
}

// DefaultTable 内置费率配置，每次返回新副本
func DefaultTable() Table {
	t := Table{
		Brackets: defaultBrackets(),
		Limits: map[Method]decimal.Decimal{
			Pickup: decimal.NewFromInt(20),
			Locker: decimal.NewFromInt(10),
		},
		Base:  make(map[Key]decimal.Decimal),
		Extra: make(map[ZoneMethod]decimal.Decimal),
	}

	for z, byMethod := range defaultBase {
		for m, prices := range byMethod {
			for i, p := range prices {
				t.Base[Key{Zone: z, Method: m, Bracket: i}] = decimal.RequireFromString(p)
			}
		}
	}
	for z, byMethod := range defaultExtra {
		for m, p := range byMethod {
			t.Extra[ZoneMethod{Zone: z, Method: m}] = decimal.RequireFromString(p)
		}
	}

	return t
}
