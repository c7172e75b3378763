package lexicon

import (
	"testing"

	"github.com/nutmegai/nutmeg/internal/models"
)

func TestTranslate(t *testing.T) {
	tests := []struct {
		name   string
		text   string
		target models.Language
		want   string
	}{
		{"to creole greeting", "good morning", models.LanguageCreole, "good mornin"},
		{"to english greeting", "good mornin", models.LanguageEnglish, "good morning"},
		{"legal term to creole", "I need a birth certificate", models.LanguageCreole, "I need a birth paper"},
		{"legal term to english", "I need a birth paper", models.LanguageEnglish, "I need a birth certificate"},
		{"multiple substitutions", "good morning, what things are there", models.LanguageCreole, "good mornin, wah tings are deh"},
		{"unknown target returns verbatim", "good morning", "fr", "good morning"},
		{"no lexicon phrases", "the registry closes at four", models.LanguageCreole, "the registry closes at four"},
		{"case insensitive match", "Good Morning", models.LanguageCreole, "good mornin"},
		{"phrase inside word untouched", "nothing renovated", models.LanguageCreole, "nothing renovated"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Translate(tt.text, tt.target); got != tt.want {
				t.Errorf("Translate(%q, %q) = %q, want %q", tt.text, tt.target, got, tt.want)
			}
		})
	}
}

// "good morning" must be consumed as one phrase before the bare "good" entry
// can touch it.
func TestTranslate_LongestPhraseWins(t *testing.T) {
	got := Translate("good morning to you, that is good", models.LanguageCreole)
	want := "good mornin to yuh, that is irie"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

// Every lexicon entry survives a there-and-back translation on its own.
func TestTranslate_EntryRoundTrip(t *testing.T) {
	for _, e := range Entries {
		creole := Translate(e.English, models.LanguageCreole)
		if creole != e.Creole {
			t.Errorf("to creole: %q -> %q, want %q", e.English, creole, e.Creole)
		}
		english := Translate(e.Creole, models.LanguageEnglish)
		if english != e.English {
			t.Errorf("to english: %q -> %q, want %q", e.Creole, english, e.English)
		}
	}
}
