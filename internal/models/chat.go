package models

import "fmt"

// Language is a supported language tag.
type Language string

const (
	// LanguageEnglish is standard English.
	LanguageEnglish Language = "en"
	// LanguageCreole is the Grenadian Creole register of English.
	LanguageCreole Language = "en-GD"
	// LanguageAuto asks the server to detect the language from the message.
	LanguageAuto Language = "auto"
)

// SupportedLanguages returns the fixed list of language tags accepted by the API.
func SupportedLanguages() []Language {
	return []Language{LanguageEnglish, LanguageCreole, "en-US"}
}

// Roles for conversation turns.
const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// Turn is one message in a conversation, from either the user or the assistant.
type Turn struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// ChatRequest is the body of a chat request.
type ChatRequest struct {
	Message   string   `json:"message"`
	SessionID string   `json:"session_id,omitempty"`
	Language  Language `json:"language,omitempty"`
}

// Validate ensures the chat request has a message and normalizes the language hint.
// An empty language hint is treated as "auto".
func (r *ChatRequest) Validate() error {
	if r.Message == "" {
		return fmt.Errorf("message cannot be empty")
	}
	if r.Language == "" {
		r.Language = LanguageAuto
	}
	return nil
}

// ChatResponse is the reply to a chat request.
type ChatResponse struct {
	Response         string   `json:"response"`
	SessionID        string   `json:"session_id"`
	Language         Language `json:"language"`
	Confidence       float64  `json:"confidence"`
	SuggestedActions []string `json:"suggested_actions"`
}

// TranslateRequest is the body of a translation request.
type TranslateRequest struct {
	Message        string   `json:"message"`
	TargetLanguage Language `json:"target_language"`
}

// TranslateResponse echoes the original text alongside its translation.
type TranslateResponse struct {
	Original       string   `json:"original"`
	Translated     string   `json:"translated"`
	TargetLanguage Language `json:"target_language"`
}

// FeedbackRequest is the body of a feedback submission. Rating is 1-5.
type FeedbackRequest struct {
	SessionID string `json:"session_id"`
	Rating    int    `json:"rating"`
	Feedback  string `json:"feedback,omitempty"`
}

// Validate checks that the feedback carries a session id and an in-range rating.
func (r *FeedbackRequest) Validate() error {
	if r.SessionID == "" {
		return fmt.Errorf("session_id cannot be empty")
	}
	if r.Rating < 1 || r.Rating > 5 {
		return fmt.Errorf("rating must be between 1 and 5")
	}
	return nil
}
