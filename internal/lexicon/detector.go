package lexicon

import (
	"regexp"
	"strings"

	"github.com/nutmegai/nutmeg/internal/models"
)

// Creole marker patterns, grouped the way callers think about them: greetings,
// marker words, legal-term variants, and grammar patterns. Each matching
// pattern counts once toward the creole score regardless of occurrences.
var creolePatterns = []*regexp.Regexp{
	// greetings
	regexp.MustCompile(`\b(good\s+mornin|good\s+afternoon|good\s+evening)\b`),
	regexp.MustCompile(`\b(how\s+you\s+doin|how\s+yuh\s+doin)\b`),
	regexp.MustCompile(`\b(wha\s+happen|what\s+happen)\b`),
	regexp.MustCompile(`\b(mornin|evening)\b`),
	// common words
	regexp.MustCompile(`\b(yuh|you)\b`),
	regexp.MustCompile(`\b(nah|no)\b`),
	regexp.MustCompile(`\b(wah|what)\b`),
	regexp.MustCompile(`\b(deh|there)\b`),
	regexp.MustCompile(`\b(gyal|girl)\b`),
	regexp.MustCompile(`\b(bwoy|boy)\b`),
	regexp.MustCompile(`\b(tings|things)\b`),
	regexp.MustCompile(`\b(nuff|enough|plenty)\b`),
	regexp.MustCompile(`\b(liming|hanging\s+out)\b`),
	regexp.MustCompile(`\b(irie|good|fine)\b`),
	// legal-term variants
	regexp.MustCompile(`\b(birth\s+paper|death\s+paper|marriage\s+paper)\b`),
	regexp.MustCompile(`\b(divorce\s+paper|property\s+paper|business\s+paper)\b`),
	regexp.MustCompile(`\b(passport|id\s+card|voter\s+card)\b`),
	regexp.MustCompile(`\b(tax\s+paper|government\s+paper)\b`),
	// grammar patterns
	regexp.MustCompile(`\b(i\s+want\s+to|i\s+need\s+to)\b`),
	regexp.MustCompile(`\b(how\s+to|where\s+to|what\s+to)\b`),
	regexp.MustCompile(`\b(how\s+much\s+it\s+cost|how\s+long\s+it\s+take)\b`),
	regexp.MustCompile(`\b(what\s+i\s+need|where\s+i\s+go)\b`),
}

var englishPatterns = []*regexp.Regexp{
	regexp.MustCompile(`\b(how\s+are\s+you|good\s+morning|good\s+afternoon|good\s+evening)\b`),
	regexp.MustCompile(`\b(what's\s+happening|what\s+is\s+happening)\b`),
	regexp.MustCompile(`\b(certificate|document|registration|application)\b`),
	regexp.MustCompile(`\b(please|thank\s+you|excuse\s+me)\b`),
}

// Detect scores text against the creole and standard-English marker patterns
// and returns the creole tag only when the creole score strictly exceeds the
// standard score. Ties (including empty input, where both scores are zero) go
// to standard English. This is a heuristic scorer, not a calibrated
// classifier; callers must not treat the result as probabilistic.
func Detect(text string) models.Language {
	lower := strings.ToLower(text)

	creoleScore := 0
	for _, p := range creolePatterns {
		if p.MatchString(lower) {
			creoleScore++
		}
	}

	englishScore := 0
	for _, p := range englishPatterns {
		if p.MatchString(lower) {
			englishScore++
		}
	}

	if creoleScore > englishScore {
		return models.LanguageCreole
	}
	return models.LanguageEnglish
}
