package postal

import (
	"sort"
	"strings"

	"dixis/shipzone/internal/zone"
)

// Header 邮编分区表的 CSV 表头
var Header = []string{"postal_code", "zone"}

// Assignment 邮编及其所属分区
type Assignment struct {
	PostalCode string
	Zone       zone.Zone
}

// Record 转为与 Header 对应的 CSV 行
func (a Assignment) Record() []string {
	return []string{a.PostalCode, a.Zone.String()}
}

// Records 转为 CSV 行，首行为表头
func Records(assignments []Assignment) [][]string {
	out := make([][]string, 0, len(assignments)+1)
	out = append(out, Header)
	for _, a := range assignments {
		out = append(out, a.Record())
	}
	return out
}

// Rules 不可变的分区规则，按以下顺序匹配，命中即返回：
//   - 偏远地区邮编：5 区
//   - 雅典前缀：6 区
//   - 塞萨洛尼基前缀：7 区
//   - 大陆首府邮编：2 区
//   - 海岛前缀：4 区
//   - 其余：3 区
type Rules struct {
	remote       map[string]struct{}
	athens       []string
	thessaloniki []string
	capitals     map[string]struct{}
	islands      []string
}

// NewRules 创建规则集，capitals 的城市名仅作说明，会被展平
func NewRules(remote, athens, thessaloniki []string, capitals map[string][]string, islands []string) *Rules {
	r := &Rules{
		remote:       make(map[string]struct{}, len(remote)),
		athens:       append([]string(nil), athens...),
		thessaloniki: append([]string(nil), thessaloniki...),
		capitals:     make(map[string]struct{}),
		islands:      append([]string(nil), islands...),
	}
	for _, code := range remote {
		r.remote[code] = struct{}{}
	}
	for _, codes := range capitals {
		for _, code := range codes {
			r.capitals[code] = struct{}{}
		}
	}
	return r
}

// DefaultRules 内置的希腊分区规则
func DefaultRules() *Rules {
	return NewRules(remoteAreas, athensPrefixes, thessalonikiPrefixes, mainlandCapitals, islandPrefixes)
}

// Classify 返回合法邮编的分区，调用方需先用 IsValid 过滤
func (r *Rules) Classify(code string) zone.Zone {
	if _, ok := r.remote[code]; ok {
		return zone.Remote
	}
	if hasAnyPrefix(code, r.athens) {
		return zone.Athens
	}
	if hasAnyPrefix(code, r.thessaloniki) {
		return zone.Thessaloniki
	}
	if _, ok := r.capitals[code]; ok {
		return zone.MainlandCapitals
	}
	if hasAnyPrefix(code, r.islands) {
		return zone.Islands
	}
	return zone.RestOfMainland
}

// ClassifyAll 清洗、去重后逐个分区，结果按邮编升序
// onEach 非 nil 时每分区一个邮编回调一次（已处理数，去重后总数）
func (r *Rules) ClassifyAll(codes []string, onEach func(done, total int)) (assignments []Assignment, malformed int) {
	unique, malformed := Normalize(codes)
	assignments = make([]Assignment, 0, len(unique))
	for i, code := range unique {
		assignments = append(assignments, Assignment{PostalCode: code, Zone: r.Classify(code)})
		if onEach != nil {
			onEach(i+1, len(unique))
		}
	}
	return assignments, malformed
}

// IsValid 是否为 5 位 ASCII 数字
func IsValid(code string) bool {
	if len(code) != 5 {
		return false
	}
	for i := 0; i < len(code); i++ {
		if code[i] < '0' || code[i] > '9' {
			return false
		}
	}
	return true
}

// Normalize 去空白、丢弃非法值和重复值，升序返回，并返回非法值个数
func Normalize(codes []string) (unique []string, malformed int) {
	seen := make(map[string]struct{}, len(codes))
	for _, raw := range codes {
		code := strings.TrimSpace(raw)
		if !IsValid(code) {
			malformed++
			continue
		}
		if _, ok := seen[code]; ok {
			continue
		}
		seen[code] = struct{}{}
		unique = append(unique, code)
	}
	sort.Strings(unique)
	return unique, malformed
}

func hasAnyPrefix(code string, prefixes []string) bool {
	for _, p := range prefixes {
		if strings.HasPrefix(code, p) {
			return true
		}
	}
	return false
}
