// Package cli provides CLI utilities for NutmegAI.
package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/nutmegai/nutmeg/internal/models"
)

// OutputFormat is the format for command output.
type OutputFormat string

const (
	// OutputText is human-readable text (default).
	OutputText OutputFormat = "text"
	// OutputJSON is structured JSON for machine consumption.
	OutputJSON OutputFormat = "json"
)

// WriteChatResult writes a chat response to w in the given format.
// Use OutputJSON for parseable output consumable by other apps.
func WriteChatResult(w io.Writer, response *models.ChatResponse, format OutputFormat) error {
	switch format {
	case OutputJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(response)
	default:
		writeChatResultText(w, response)
		return nil
	}
}

func writeChatResultText(w io.Writer, response *models.ChatResponse) {
	fmt.Fprintf(w, "\n%s\n\n", response.Response)
	fmt.Fprintf(w, "session:    %s\n", response.SessionID)
	fmt.Fprintf(w, "language:   %s\n", response.Language)
	fmt.Fprintf(w, "confidence: %.2f\n", response.Confidence)
	if len(response.SuggestedActions) > 0 {
		fmt.Fprintln(w, "suggested:")
		for _, action := range response.SuggestedActions {
			fmt.Fprintf(w, "  - %s\n", action)
		}
	}
}

// WriteTranslation writes a translation to w in the given format.
func WriteTranslation(w io.Writer, response *models.TranslateResponse, format OutputFormat) error {
	switch format {
	case OutputJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(response)
	default:
		fmt.Fprintf(w, "%s\n", response.Translated)
		return nil
	}
}

// WriteDocumentRecord writes a registry record to w in the given format.
func WriteDocumentRecord(w io.Writer, record *models.DocumentRecord, format OutputFormat) error {
	switch format {
	case OutputJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(record)
	default:
		writeDocumentRecordText(w, record)
		return nil
	}
}

func writeDocumentRecordText(w io.Writer, record *models.DocumentRecord) {
	fmt.Fprintf(w, "\n%s\n", record.Information)
	if len(record.Requirements) > 0 {
		fmt.Fprintln(w, "\nRequirements:")
		for _, req := range record.Requirements {
			fmt.Fprintf(w, "  - %s\n", req)
		}
	}
	if len(record.ProcessSteps) > 0 {
		fmt.Fprintln(w, "\nProcess:")
		for i, step := range record.ProcessSteps {
			fmt.Fprintf(w, "  %d. %s\n", i+1, step)
		}
	}
	fmt.Fprintf(w, "\nFees:           %s\n", record.Fees)
	fmt.Fprintf(w, "Estimated time: %s\n", record.EstimatedTime)
	fmt.Fprintf(w, "Office:         %s\n", record.ContactInfo.Office)
	fmt.Fprintf(w, "Phone:          %s\n", record.ContactInfo.Phone)
	fmt.Fprintf(w, "Hours:          %s\n", record.ContactInfo.Hours)
}
