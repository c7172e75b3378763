// Package knowledge provides the fixed legal-registry knowledge base:
// per-document-type records, keyword-routed field projection, and a small
// weighted keyword search across all records.
package knowledge

import (
	"fmt"
	"sort"
	"strings"

	"github.com/nutmegai/nutmeg/internal/models"
	"github.com/nutmegai/nutmeg/pkg/utils"
)

const (
	maxSearchResults = 5
	previewLength    = 200
)

// Store holds the knowledge records. Records are immutable once the store is
// built; all methods are safe for concurrent use.
type Store struct {
	records map[models.DocumentType]*models.DocumentRecord
	order   []models.DocumentType
}

// NewStore builds a store from the built-in hand-authored records.
func NewStore() *Store {
	return NewStoreWithOverrides(nil)
}

// NewStoreWithOverrides builds a store from the built-in records, replacing
// any record for which an override is supplied (e.g. rows read from the
// legal_documents table). Overrides for unknown types are ignored so the
// record set always matches the closed document-type set exactly.
func NewStoreWithOverrides(overrides map[models.DocumentType]*models.DocumentRecord) *Store {
	s := &Store{
		records: make(map[models.DocumentType]*models.DocumentRecord, len(builtinRecords)),
		order:   models.DocumentTypes(),
	}
	for _, t := range s.order {
		if rec, ok := overrides[t]; ok && rec != nil {
			s.records[t] = rec
			continue
		}
		s.records[t] = builtinRecords[t]
	}
	return s
}

// Types returns the document types in natural key order.
func (s *Store) Types() []models.DocumentType {
	return append([]models.DocumentType(nil), s.order...)
}

// Descriptions returns the static human-readable description per type.
func (s *Store) Descriptions() map[models.DocumentType]string {
	out := make(map[models.DocumentType]string, len(descriptions))
	for t, d := range descriptions {
		out[t] = d
	}
	return out
}

// notFoundRecord is the sentinel returned for types outside the closed set.
func notFoundRecord() *models.DocumentRecord {
	return &models.DocumentRecord{
		Information:   "Document type not found. Please check the available document types.",
		Requirements:  []string{},
		ProcessSteps:  []string{},
		EstimatedTime: "Unknown",
		Fees:          "Unknown",
	}
}

// Lookup returns the record for t, or the not-found sentinel (empty lists,
// "Unknown" scalars) when t is outside the closed set. Lookup never fails.
func (s *Store) Lookup(t models.DocumentType) *models.DocumentRecord {
	rec, ok := s.records[t]
	if !ok {
		return notFoundRecord()
	}
	return rec
}

// Keyword groups for Respond, checked in priority order: the first group with
// any substring hit in the query decides which fields are projected.
var respondGroups = []struct {
	keywords []string
	project  func(t models.DocumentType, rec *models.DocumentRecord) *models.DocumentRecord
}{
	{
		keywords: []string{"requirement", "need"},
		project: func(t models.DocumentType, rec *models.DocumentRecord) *models.DocumentRecord {
			out := scalarsOf(rec)
			out.Requirements = append([]string(nil), rec.Requirements...)
			return out
		},
	},
	{
		keywords: []string{"process", "step", "procedure", "how to", "how do i"},
		project: func(t models.DocumentType, rec *models.DocumentRecord) *models.DocumentRecord {
			out := scalarsOf(rec)
			out.ProcessSteps = append([]string(nil), rec.ProcessSteps...)
			return out
		},
	},
	{
		keywords: []string{"contact", "where", "phone"},
		project: func(t models.DocumentType, rec *models.DocumentRecord) *models.DocumentRecord {
			return scalarsOf(rec)
		},
	},
	{
		keywords: []string{"cost", "fee", "money"},
		project: func(t models.DocumentType, rec *models.DocumentRecord) *models.DocumentRecord {
			out := scalarsOf(rec)
			out.Information = fmt.Sprintf("The fee for %s is %s.",
				strings.ReplaceAll(string(t), "_", " "), rec.Fees)
			return out
		},
	},
}

// scalarsOf copies the always-included fields of rec (description, contact,
// fee, duration) with empty list fields.
func scalarsOf(rec *models.DocumentRecord) *models.DocumentRecord {
	return &models.DocumentRecord{
		Information:   rec.Information,
		Requirements:  []string{},
		ProcessSteps:  []string{},
		ContactInfo:   rec.ContactInfo,
		EstimatedTime: rec.EstimatedTime,
		Fees:          rec.Fees,
	}
}

// Respond returns the record for t with only the fields relevant to the query
// populated. The query is checked against the requirement, process, contact,
// and fee keyword groups in that priority order; the first matching group
// wins. A query matching no group returns the full record. Out-of-set types
// yield the not-found sentinel. This is keyword-routed field projection, not
// ranked retrieval.
func (s *Store) Respond(t models.DocumentType, query string) *models.DocumentRecord {
	rec, ok := s.records[t]
	if !ok {
		return notFoundRecord()
	}

	lower := strings.ToLower(query)
	for _, group := range respondGroups {
		for _, kw := range group.keywords {
			if strings.Contains(lower, kw) {
				return group.project(t, rec)
			}
		}
	}

	full := scalarsOf(rec)
	full.Requirements = append([]string(nil), rec.Requirements...)
	full.ProcessSteps = append([]string(nil), rec.ProcessSteps...)
	return full
}

// Search scans every record and scores it against the query terms: any term
// hit in the description counts 2, and each requirement or process-step line
// with any term hit counts 1. Zero-score records are discarded; the rest are
// sorted by descending score, ties keeping natural key order, capped at five
// results with a 200-character description preview.
func (s *Store) Search(query string) []*models.SearchResult {
	terms := strings.Fields(strings.ToLower(query))
	if len(terms) == 0 {
		return nil
	}

	var results []*models.SearchResult
	for _, t := range s.order {
		rec := s.records[t]
		score := 0

		if anyTermIn(terms, rec.Information) {
			score += 2
		}
		for _, req := range rec.Requirements {
			if anyTermIn(terms, req) {
				score++
			}
		}
		for _, step := range rec.ProcessSteps {
			if anyTermIn(terms, step) {
				score++
			}
		}

		if score > 0 {
			results = append(results, &models.SearchResult{
				DocumentType:   t,
				RelevanceScore: score,
				Information:    utils.Truncate(rec.Information, previewLength),
				ContactInfo:    rec.ContactInfo,
			})
		}
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].RelevanceScore > results[j].RelevanceScore
	})
	if len(results) > maxSearchResults {
		results = results[:maxSearchResults]
	}
	return results
}

func anyTermIn(terms []string, text string) bool {
	lower := strings.ToLower(text)
	for _, term := range terms {
		if strings.Contains(lower, term) {
			return true
		}
	}
	return false
}
