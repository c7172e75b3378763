package models

// Action is a coarse user goal derived from keyword presence.
type Action string

const (
	ActionGetInfo         Action = "get_info"
	ActionGetRequirements Action = "get_requirements"
	ActionGetProcess      Action = "get_process"
	ActionGetContact      Action = "get_contact"
	ActionGetFees         Action = "get_fees"
)

// Urgency is either normal or urgent.
type Urgency string

const (
	UrgencyNormal Urgency = "normal"
	UrgencyUrgent Urgency = "urgent"
)

// Intent is the coarse classification of a free-text message. It is derived
// and ephemeral; DocumentType and Action are empty when nothing matched.
type Intent struct {
	DocumentType DocumentType `json:"document_type,omitempty"`
	Action       Action       `json:"action,omitempty"`
	Urgency      Urgency      `json:"urgency"`
	Language     Language     `json:"language"`
}
