package rates

import (
	"dixis/shipzone/internal/zone"
	"dixis/shipzone/pkg/errorutil"
)

// Generate 按 分区 > 配送方式 > 重量段 展开费率
// 起始重量超过该方式上限的重量段跳过；缺价或自提柜加价非 0 时直接失败
func Generate(t Table) ([]Entry, error) {
	if len(t.Brackets) == 0 {
		return nil, errorutil.New(errorutil.KindConfig, "rate table has no weight brackets")
	}

	entries := make([]Entry, 0, len(zone.All)*len(Methods)*len(t.Brackets))
	for _, z := range zone.All {
		for _, m := range Methods {
			extra, ok := t.Extra[ZoneMethod{Zone: z, Method: m}]
			if !ok {
				return nil, errorutil.Newf(errorutil.KindConfig, "missing extra kg rate for zone %d method %s", z, m)
			}
			if m == Locker && !extra.IsZero() {
				return nil, errorutil.Newf(errorutil.KindConfig, "locker extra kg rate must be zero, zone %d has %s", z, extra.StringFixed(2))
			}

			limit, capped := t.Limits[m]
			for i, b := range t.Brackets {
				if capped && b.FromKg.GreaterThan(limit) {
					continue
				}
				base, ok := t.Base[Key{Zone: z, Method: m, Bracket: i}]
				if !ok {
					return nil, errorutil.Newf(errorutil.KindConfig, "missing base rate for zone %d method %s bracket %s-%s",
						z, m, b.FromKg.StringFixed(2), b.ToKg.StringFixed(2))
				}
				entries = append(entries, Entry{
					Zone:        z,
					Bracket:     b,
					Method:      m,
					BaseRate:    base,
					ExtraKgRate: extra,
				})
			}
		}
	}

	return entries, nil
}
