package cli

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/nutmegai/nutmeg/internal/models"
)

func TestWriteChatResult_Text(t *testing.T) {
	var buf bytes.Buffer
	response := &models.ChatResponse{
		Response:         "Visit the Civil Registry Office.",
		SessionID:        "sess-1",
		Language:         models.LanguageEnglish,
		Confidence:       0.85,
		SuggestedActions: []string{"Get fee information"},
	}
	if err := WriteChatResult(&buf, response, OutputText); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	if !strings.Contains(out, "Visit the Civil Registry Office.") {
		t.Errorf("missing response text: %q", out)
	}
	if !strings.Contains(out, "sess-1") || !strings.Contains(out, "Get fee information") {
		t.Errorf("missing metadata: %q", out)
	}
}

func TestWriteChatResult_JSON(t *testing.T) {
	var buf bytes.Buffer
	response := &models.ChatResponse{Response: "hi", SessionID: "sess-1", Language: models.LanguageEnglish}
	if err := WriteChatResult(&buf, response, OutputJSON); err != nil {
		t.Fatal(err)
	}
	var decoded models.ChatResponse
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if decoded.SessionID != "sess-1" {
		t.Errorf("session id: got %q", decoded.SessionID)
	}
}

func TestWriteTranslation(t *testing.T) {
	var buf bytes.Buffer
	response := &models.TranslateResponse{
		Original:       "good morning",
		Translated:     "good mornin",
		TargetLanguage: models.LanguageCreole,
	}
	if err := WriteTranslation(&buf, response, OutputText); err != nil {
		t.Fatal(err)
	}
	if got := strings.TrimSpace(buf.String()); got != "good mornin" {
		t.Errorf("text output: got %q", got)
	}
}

func TestWriteDocumentRecord_Text(t *testing.T) {
	var buf bytes.Buffer
	record := &models.DocumentRecord{
		Information:   "Birth certificates are official documents.",
		Requirements:  []string{"Parent ID"},
		ProcessSteps:  []string{"Visit the registry", "Pay the fee"},
		ContactInfo:   models.ContactInfo{Office: "Civil Registry Office", Phone: "+1-473-440-2030", Hours: "8am-4pm"},
		EstimatedTime: "3-5 business days",
		Fees:          "EC$25.00",
	}
	if err := WriteDocumentRecord(&buf, record, OutputText); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	for _, want := range []string{"Parent ID", "1. Visit the registry", "2. Pay the fee", "EC$25.00", "Civil Registry Office"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q: %q", want, out)
		}
	}
}
