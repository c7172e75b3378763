// Package models defines core data structures for chat, intents, and knowledge records.
package models

// DocumentType identifies one of the legal registry categories the service
// knows about. The set is closed; anything else is rejected at the API boundary.
type DocumentType string

const (
	DocBirthCertificate     DocumentType = "birth_certificate"
	DocDeathCertificate     DocumentType = "death_certificate"
	DocMarriageCertificate  DocumentType = "marriage_certificate"
	DocDivorceDecree        DocumentType = "divorce_decree"
	DocPropertyDeed         DocumentType = "property_deed"
	DocBusinessRegistration DocumentType = "business_registration"
	DocPassportApplication  DocumentType = "passport_application"
	DocNationalID           DocumentType = "national_id"
	DocVoterRegistration    DocumentType = "voter_registration"
	DocTaxDocuments         DocumentType = "tax_documents"
)

// DocumentTypes returns the closed set of document types in declaration order.
// This order is the natural key order used for search tie-breaking.
func DocumentTypes() []DocumentType {
	return []DocumentType{
		DocBirthCertificate,
		DocDeathCertificate,
		DocMarriageCertificate,
		DocDivorceDecree,
		DocPropertyDeed,
		DocBusinessRegistration,
		DocPassportApplication,
		DocNationalID,
		DocVoterRegistration,
		DocTaxDocuments,
	}
}

// ParseDocumentType returns the document type for s, or false if s is not in
// the closed set.
func ParseDocumentType(s string) (DocumentType, bool) {
	t := DocumentType(s)
	for _, known := range DocumentTypes() {
		if t == known {
			return t, true
		}
	}
	return "", false
}

// ContactInfo is the office contact block of a knowledge record.
type ContactInfo struct {
	Office  string `json:"office"`
	Address string `json:"address"`
	Phone   string `json:"phone"`
	Email   string `json:"email"`
	Hours   string `json:"hours"`
}

// DocumentRecord is the static structured answer set for one document type.
// Fees and EstimatedTime are free-form strings (mixed currencies and ranges),
// not machine-parseable values.
type DocumentRecord struct {
	Information   string      `json:"information"`
	Requirements  []string    `json:"requirements"`
	ProcessSteps  []string    `json:"process_steps"`
	ContactInfo   ContactInfo `json:"contact_info"`
	EstimatedTime string      `json:"estimated_time"`
	Fees          string      `json:"fees"`
}

// DocumentRequest is the body of a document help request.
type DocumentRequest struct {
	Query    string   `json:"query"`
	Language Language `json:"language,omitempty"`
}

// SearchResult is one scored hit from a knowledge base search.
type SearchResult struct {
	DocumentType   DocumentType `json:"document_type"`
	RelevanceScore int          `json:"relevance_score"`
	Information    string       `json:"information"`
	ContactInfo    ContactInfo  `json:"contact_info"`
}

// SearchRequest is the body of a knowledge base search request.
type SearchRequest struct {
	Query string `json:"query"`
}
