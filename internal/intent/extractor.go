// Package intent derives a coarse (document type, action, urgency) triple from
// free text by substring keyword matching over fixed, priority-ordered tables.
package intent

import (
	"strings"

	"github.com/nutmegai/nutmeg/internal/lexicon"
	"github.com/nutmegai/nutmeg/internal/models"
)

// The keyword tables are intentionally ordered slices, not maps: resolution is
// first-match-wins in declaration order, and only the first matching entry is
// ever returned even when several could match.

var documentKeywords = []struct {
	Type     models.DocumentType
	Keywords []string
}{
	{models.DocBirthCertificate, []string{"birth", "birth paper", "birth certificate", "born"}},
	{models.DocDeathCertificate, []string{"death", "death paper", "death certificate", "passing", "died"}},
	{models.DocMarriageCertificate, []string{"marriage", "marriage paper", "marriage certificate", "married", "wedding"}},
	{models.DocDivorceDecree, []string{"divorce", "divorce paper", "divorce decree", "divorced"}},
	{models.DocPropertyDeed, []string{"property", "property paper", "property deed", "house", "land", "real estate"}},
	{models.DocBusinessRegistration, []string{"business", "business paper", "business registration", "company", "register business"}},
	{models.DocPassportApplication, []string{"passport", "travel", "travel document"}},
	{models.DocNationalID, []string{"id card", "national id", "identification", "id"}},
	{models.DocVoterRegistration, []string{"voter", "voter card", "voting", "election"}},
	{models.DocTaxDocuments, []string{"tax", "tax paper", "tax documents", "taxes", "revenue"}},
}

var actionKeywords = []struct {
	Action   models.Action
	Keywords []string
}{
	{models.ActionGetInfo, []string{"information", "info", "what", "how", "tell me"}},
	{models.ActionGetRequirements, []string{"requirements", "need", "required", "what do i need"}},
	{models.ActionGetProcess, []string{"process", "steps", "procedure", "how to", "how do i"}},
	{models.ActionGetContact, []string{"contact", "where", "phone", "address", "location"}},
	{models.ActionGetFees, []string{"cost", "fee", "money", "price", "how much"}},
}

// The "normal" entry can never change the result since normal is already the
// default; it is kept so the table states the full urgency vocabulary.
var urgencyKeywords = []struct {
	Urgency  models.Urgency
	Keywords []string
}{
	{models.UrgencyUrgent, []string{"urgent", "emergency", "asap", "quick", "fast"}},
	{models.UrgencyNormal, []string{"normal", "regular", "standard"}},
}

// Extract classifies text into an Intent. Matching is substring-based over the
// lowercased text. Extract has no side effects.
func Extract(text string) models.Intent {
	lower := strings.ToLower(text)

	result := models.Intent{
		Urgency:  models.UrgencyNormal,
		Language: lexicon.Detect(text),
	}

	for _, entry := range documentKeywords {
		if anyContains(lower, entry.Keywords) {
			result.DocumentType = entry.Type
			break
		}
	}

	for _, entry := range actionKeywords {
		if anyContains(lower, entry.Keywords) {
			result.Action = entry.Action
			break
		}
	}

	for _, entry := range urgencyKeywords {
		if anyContains(lower, entry.Keywords) {
			result.Urgency = entry.Urgency
			break
		}
	}

	return result
}

func anyContains(text string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(text, kw) {
			return true
		}
	}
	return false
}
