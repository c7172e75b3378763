package models

import "testing"

func TestParseDocumentType(t *testing.T) {
	tests := []struct {
		in     string
		want   DocumentType
		wantOK bool
	}{
		{"birth_certificate", DocBirthCertificate, true},
		{"tax_documents", DocTaxDocuments, true},
		{"fishing_license", "", false},
		{"", "", false},
		{"Birth_Certificate", "", false},
	}
	for _, tt := range tests {
		got, ok := ParseDocumentType(tt.in)
		if got != tt.want || ok != tt.wantOK {
			t.Errorf("ParseDocumentType(%q) = (%q, %v), want (%q, %v)", tt.in, got, ok, tt.want, tt.wantOK)
		}
	}
}

func TestDocumentTypes(t *testing.T) {
	types := DocumentTypes()
	if len(types) != 10 {
		t.Fatalf("types: got %d, want 10", len(types))
	}
	if types[0] != DocBirthCertificate {
		t.Errorf("first type: got %q", types[0])
	}
	for _, typ := range types {
		if _, ok := ParseDocumentType(string(typ)); !ok {
			t.Errorf("ParseDocumentType rejects %q", typ)
		}
	}
}

func TestChatRequestValidate(t *testing.T) {
	req := ChatRequest{Message: "hello"}
	if err := req.Validate(); err != nil {
		t.Fatal(err)
	}
	if req.Language != LanguageAuto {
		t.Errorf("empty language: got %q, want auto", req.Language)
	}

	req = ChatRequest{Message: "hello", Language: LanguageCreole}
	if err := req.Validate(); err != nil {
		t.Fatal(err)
	}
	if req.Language != LanguageCreole {
		t.Errorf("explicit language overwritten: got %q", req.Language)
	}

	req = ChatRequest{}
	if err := req.Validate(); err == nil {
		t.Error("expected error for empty message")
	}
}

func TestFeedbackRequestValidate(t *testing.T) {
	tests := []struct {
		name    string
		req     FeedbackRequest
		wantErr bool
	}{
		{"valid", FeedbackRequest{SessionID: "s1", Rating: 3}, false},
		{"rating low", FeedbackRequest{SessionID: "s1", Rating: 0}, true},
		{"rating high", FeedbackRequest{SessionID: "s1", Rating: 6}, true},
		{"missing session", FeedbackRequest{Rating: 3}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.req.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
