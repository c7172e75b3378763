package lexicon

import (
	"regexp"
	"sort"
	"strings"

	"github.com/nutmegai/nutmeg/internal/models"
)

// substituter rewrites whole-phrase occurrences of lexicon source phrases with
// their counterparts in a single pass. All source phrases are compiled into
// one alternation ordered by descending phrase length, so a longer phrase can
// never be corrupted by a shorter one matching inside it ("good afternoon" is
// consumed before "good" gets a chance). A single pass also means replacement
// output is never re-matched.
type substituter struct {
	pattern *regexp.Regexp
	mapping map[string]string
}

func newSubstituter(pairs [][2]string) *substituter {
	sorted := make([][2]string, len(pairs))
	copy(sorted, pairs)
	sort.SliceStable(sorted, func(i, j int) bool {
		return len(sorted[i][0]) > len(sorted[j][0])
	})

	mapping := make(map[string]string, len(sorted))
	alternatives := make([]string, 0, len(sorted))
	for _, p := range sorted {
		source := strings.ToLower(p[0])
		if _, ok := mapping[source]; ok {
			continue
		}
		mapping[source] = p[1]
		alternatives = append(alternatives, regexp.QuoteMeta(source))
	}

	pattern := regexp.MustCompile(`(?i)\b(?:` + strings.Join(alternatives, "|") + `)\b`)
	return &substituter{pattern: pattern, mapping: mapping}
}

func (s *substituter) apply(text string) string {
	return s.pattern.ReplaceAllStringFunc(text, func(match string) string {
		if out, ok := s.mapping[strings.ToLower(match)]; ok {
			return out
		}
		return match
	})
}

var (
	toCreole  = newSubstituter(directionPairs(false))
	toEnglish = newSubstituter(directionPairs(true))
)

func directionPairs(creoleToEnglish bool) [][2]string {
	pairs := make([][2]string, 0, len(Entries))
	for _, e := range Entries {
		if creoleToEnglish {
			pairs = append(pairs, [2]string{e.Creole, e.English})
		} else {
			pairs = append(pairs, [2]string{e.English, e.Creole})
		}
	}
	return pairs
}

// Translate rewrites every lexicon phrase in text with its counterpart for the
// target language tag, preserving the rest of the text verbatim. Matching is
// case-insensitive and whole-phrase; every independent occurrence is replaced.
// A target that is neither English nor Creole returns the input unchanged.
//
// Round-tripping is only guaranteed for phrases present verbatim in the
// lexicon; arbitrary free text may not survive a there-and-back translation
// because the two directions are not globally inverse.
func Translate(text string, target models.Language) string {
	switch target {
	case models.LanguageEnglish:
		return toEnglish.apply(text)
	case models.LanguageCreole:
		return toCreole.apply(text)
	default:
		return text
	}
}
