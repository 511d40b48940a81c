package zone

import "strconv"

// Zone 运费分区，1 到 7
type Zone int

const (
	UrbanCentres     Zone = 1
	MainlandCapitals Zone = 2
	RestOfMainland   Zone = 3
	Islands          Zone = 4
	Remote           Zone = 5
	Athens           Zone = 6
	Thessaloniki     Zone = 7
)

// All 升序排列的全部分区
var All = []Zone{UrbanCentres, MainlandCapitals, RestOfMainland, Islands, Remote, Athens, Thessaloniki}

var names = map[Zone]string{
	UrbanCentres:     "Αστικά Κέντρα",
	MainlandCapitals: "Πρωτεύουσες Νομών Ηπειρωτικής Ελλάδας",
	RestOfMainland:   "Λοιπή Ηπειρωτική Ελλάδα & Εύβοια",
	Islands:          "Νησιά (Εξαιρουμένων Δυσπρόσιτων)",
	Remote:           "Δυσπρόσιτες Περιοχές",
	Athens:           "Αθήνα",
	Thessaloniki:     "Θεσσαλονίκη",
}

// Valid 是否为合法分区
func (z Zone) Valid() bool {
	return z >= UrbanCentres && z <= Thessaloniki
}

// Name 后端展示用名称，非法分区返回 ""
func (z Zone) Name() string {
	return names[z]
}

// String 分区编号文本，即写入 CSV 的形式
func (z Zone) String() string {
	return strconv.Itoa(int(z))
}
