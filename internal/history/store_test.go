package history

import (
	"context"
	"testing"

	"github.com/nutmegai/nutmeg/internal/models"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := New(t.TempDir() + "/history.db")
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestSessionsAndMessages(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	if err := s.EnsureSession(ctx, "sess-1", "en"); err != nil {
		t.Fatal(err)
	}
	// Idempotent for an existing session.
	if err := s.EnsureSession(ctx, "sess-1", "en"); err != nil {
		t.Fatal(err)
	}
	if err := s.AppendMessage(ctx, "sess-1", models.RoleUser, "hello", 0); err != nil {
		t.Fatal(err)
	}
	if err := s.AppendMessage(ctx, "sess-1", models.RoleAssistant, "hi there", 0.85); err != nil {
		t.Fatal(err)
	}

	sessions, err := s.CountSessions(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if sessions != 1 {
		t.Errorf("sessions: got %d, want 1", sessions)
	}
	messages, err := s.CountMessages(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if messages != 2 {
		t.Errorf("messages: got %d, want 2", messages)
	}
}

func TestRecordDocumentQuery(t *testing.T) {
	s := newTestStore(t)
	if err := s.RecordDocumentQuery(context.Background(), "birth_certificate", "fees", "en"); err != nil {
		t.Fatal(err)
	}
}

func TestSaveFeedback(t *testing.T) {
	s := newTestStore(t)
	if err := s.SaveFeedback(context.Background(), "sess-1", 5, "very helpful"); err != nil {
		t.Fatal(err)
	}
}

func TestLegalDocuments(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	records, err := s.ListLegalDocuments(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if len(records) != 0 {
		t.Errorf("expected empty table, got %d records", len(records))
	}

	rec := &models.DocumentRecord{
		Information:   "Updated guidance.",
		Requirements:  []string{"Valid ID"},
		ProcessSteps:  []string{"Apply online"},
		EstimatedTime: "1 day",
		Fees:          "EC$10.00",
	}
	if err := s.UpsertLegalDocument(ctx, models.DocBirthCertificate, rec); err != nil {
		t.Fatal(err)
	}
	// Replacing an existing row must not error.
	rec.Fees = "EC$12.00"
	if err := s.UpsertLegalDocument(ctx, models.DocBirthCertificate, rec); err != nil {
		t.Fatal(err)
	}

	records, err = s.ListLegalDocuments(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if len(records) != 1 {
		t.Fatalf("records: got %d, want 1", len(records))
	}
	got := records[models.DocBirthCertificate]
	if got == nil || got.Fees != "EC$12.00" {
		t.Errorf("record: got %+v", got)
	}
	if len(got.Requirements) != 1 || got.Requirements[0] != "Valid ID" {
		t.Errorf("requirements: got %v", got.Requirements)
	}
}

func TestBumpTranslationUsage(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		if err := s.BumpTranslationUsage(ctx, "good morning", "good mornin"); err != nil {
			t.Fatal(err)
		}
	}

	var count int
	err := s.db.QueryRowContext(ctx,
		`SELECT usage_count FROM creole_translations WHERE english_text = ? AND creole_text = ?`,
		"good morning", "good mornin",
	).Scan(&count)
	if err != nil {
		t.Fatal(err)
	}
	if count != 3 {
		t.Errorf("usage count: got %d, want 3", count)
	}
}
