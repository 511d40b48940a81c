package postal

// remoteAreas 快递标记为偏远的邮编，优先于任何前缀规则
var remoteAreas = []string{
	"19014", "63088", "85107", "72057", "49081", "85003", "81401", "82102", "73003", "85100",
}

var athensPrefixes = []string{"10", "11", "12", "13", "14", "15", "16", "17", "18", "19"}

var thessalonikiPrefixes = []string{"54", "55", "56", "57"}

// mainlandCapitals 大陆各州首府及其邮编
var mainlandCapitals = map[string][]string{
	"Αγρίνιο":        {"30100", "30131", "30132"},
	"Αλεξανδρούπολη": {"68100", "68131", "68132"},
	"Άρτα":           {"47100", "47131", "47132"},
	"Βέροια":         {"59100", "59131", "59132"},
	"Βόλος":          {"38001", "38221", "38222", "38333", "38334", "38445", "38446", "38500"},
	"Γρεβενά":        {"51100"},
	"Δράμα":          {"66100", "66131", "66132"},
	"Έδεσσα":         {"58200"},
	"Ηγουμενίτσα":    {"46100"},
	"Ιωάννινα":       {"45000", "45110", "45221", "45332", "45333", "45444", "45445", "45500"},
	"Καβάλα":         {"65110", "65201", "65302", "65403", "65404", "65500"},
	"Καλαμάτα":       {"24100", "24131", "24132", "24133"},
	"Καρδίτσα":       {"43100", "43131", "43132"},
	"Καρπενήσι":      {"36100"},
	"Καστοριά":       {"52100", "52057"},
	"Κατερίνη":       {"60100", "60131", "60132", "60133", "60134"},
	"Κιλκίς":         {"61100"},
	"Κοζάνη":         {"50100", "50131", "50132"},
	"Κομοτηνή":       {"69100", "69131", "69132", "69133"},
	"Κόρινθος":       {"20100", "20131", "20132"},
	"Λαμία":          {"35100", "35131", "35132", "35133"},
	"Λάρισα":         {"40000", "41000", "41110", "41221", "41222", "41223", "41334", "41335", "41336", "41447", "41500"},
	"Λιβαδειά":       {"32100", "32131", "32132"},
	"Μεσολόγγι":      {"30200"},
	"Ναύπακτος":      {"30300"},
	"Ναύπλιο":        {"21100"},
	"Ξάνθη":          {"67100", "67131", "67132", "67133"},
	"Πάτρα": {
		"26000", "26110", "26221", "26222", "26223", "26224", "26225", "26331", "26332",
		"26333", "26334", "26335", "26441", "26442", "26443", "26444", "26500", "26504",
	},
	"Πολύγυρος": {"63100"},
	"Πρέβεζα":   {"48100"},
	"Πύργος":    {"27100", "27131"},
	"Σέρρες":    {"62100", "62121", "62122", "62123", "62124", "62125"},
	"Σπάρτη":    {"23100"},
	"Τρίκαλα":   {"42100", "42131", "42132"},
	"Τρίπολη":   {"22100", "22131", "22132"},
	"Φλώρινα":   {"53100"},
	"Χαλκίδα":   {"34100", "34131", "34132", "34133"},
}

var islandPrefixes = []string{
	"28",                         // Kefalonia, Zakynthos
	"29",                         // Zakynthos
	"49",                         // Corfu, Paxoi
	"70", "71", "72", "73", "74", // Crete
	"80", // Kythira
	"81", // Lesvos, Limnos, Agios Efstratios
	"82", // Chios, Psara, Oinousses
	"83", // Samos, Ikaria, Fournoi
	"84", // Cyclades
	"85", // Dodecanese
}
