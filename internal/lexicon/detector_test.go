package lexicon

import (
	"testing"

	"github.com/nutmegai/nutmeg/internal/models"
)

func TestDetect(t *testing.T) {
	tests := []struct {
		name string
		text string
		want models.Language
	}{
		{"empty", "", models.LanguageEnglish},
		{"whitespace only", "   \t\n  ", models.LanguageEnglish},
		{"standard english greeting", "Good morning, how are you? I would like to apply for a certificate please.", models.LanguageEnglish},
		{"creole greeting with legal term", "Good mornin, I need help with meh birth paper", models.LanguageCreole},
		{"creole marker words", "Wha happen bwoy, how yuh doin deh?", models.LanguageCreole},
		{"creole grammar pattern", "how much it cost to get tax paper and how long it take", models.LanguageCreole},
		{"unrelated text", "the quick brown fox jumps over the lazy dog", models.LanguageEnglish},
		{"mixed case creole", "GOOD MORNIN, I WANT TO get meh VOTER CARD", models.LanguageCreole},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Detect(tt.text); got != tt.want {
				t.Errorf("Detect(%q) = %q, want %q", tt.text, got, tt.want)
			}
		})
	}
}

// A tie between the two pattern sets must resolve to standard English.
func TestDetect_TieGoesToEnglish(t *testing.T) {
	// "passport" counts for creole, "application" for english.
	text := "passport application"
	if got := Detect(text); got != models.LanguageEnglish {
		t.Errorf("Detect(%q) = %q, want %q", text, got, models.LanguageEnglish)
	}
}
