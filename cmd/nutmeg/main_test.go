package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/nutmegai/nutmeg/internal/cli"
)

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in     string
		want   cli.OutputFormat
		wantOK bool
	}{
		{"text", cli.OutputText, true},
		{"json", cli.OutputJSON, true},
		{"yaml", cli.OutputText, false},
		{"", cli.OutputText, false},
	}
	for _, tt := range tests {
		got, ok := parseFormat(tt.in)
		if got != tt.want || ok != tt.wantOK {
			t.Errorf("parseFormat(%q) = (%q, %v), want (%q, %v)", tt.in, got, ok, tt.want, tt.wantOK)
		}
	}
}

func TestLoadConfig_ExplicitPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "custom.yaml")
	content := `
server:
  port: 9001
`
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatal(err)
	}
	cfg, resolved, err := loadConfig(path)
	if err != nil {
		t.Fatal(err)
	}
	if resolved != path {
		t.Errorf("resolved path: got %q, want %q", resolved, path)
	}
	if cfg.Server.Port != 9001 {
		t.Errorf("port: got %d", cfg.Server.Port)
	}
}

func TestLoadConfig_MissingExplicitPath(t *testing.T) {
	if _, _, err := loadConfig(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected error for missing explicit config path")
	}
}
