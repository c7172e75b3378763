// Package lexicon holds the fixed English/Grenadian-Creole phrase table and
// the heuristic dialect detector and phrase translator built on it.
package lexicon

// Entry categories.
const (
	CategoryGreeting     = "greeting"
	CategoryCommonPhrase = "common_phrase"
	CategoryCommonWord   = "common_word"
	CategoryLegalTerm    = "legal_term"
)

// Entry pairs a standard-English phrase with its Creole counterpart. The table
// is used in both translation directions; matching is case-insensitive and
// whole-phrase. English and Creole may coincide (e.g. "good afternoon").
type Entry struct {
	English  string
	Creole   string
	Category string
}

// Entries is the fixed bidirectional lexicon. It never changes at runtime.
var Entries = []Entry{
	{"good morning", "good mornin", CategoryGreeting},
	{"good afternoon", "good afternoon", CategoryGreeting},
	{"good evening", "good evening", CategoryGreeting},
	{"how are you", "how yuh doin", CategoryGreeting},
	{"what's happening", "wha happen", CategoryGreeting},
	{"you", "yuh", CategoryCommonWord},
	{"no", "nah", CategoryCommonWord},
	{"what", "wah", CategoryCommonWord},
	{"there", "deh", CategoryCommonWord},
	{"girl", "gyal", CategoryCommonWord},
	{"boy", "bwoy", CategoryCommonWord},
	{"things", "tings", CategoryCommonWord},
	{"enough", "nuff", CategoryCommonWord},
	{"hanging out", "liming", CategoryCommonPhrase},
	{"good", "irie", CategoryCommonWord},
	{"birth certificate", "birth paper", CategoryLegalTerm},
	{"death certificate", "death paper", CategoryLegalTerm},
	{"marriage certificate", "marriage paper", CategoryLegalTerm},
	{"divorce decree", "divorce paper", CategoryLegalTerm},
	{"property deed", "property paper", CategoryLegalTerm},
	{"business registration", "business paper", CategoryLegalTerm},
	{"tax documents", "tax paper", CategoryLegalTerm},
	{"government documents", "government paper", CategoryLegalTerm},
}
