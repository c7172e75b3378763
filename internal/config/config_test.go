package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	content := `
server:
  host: "127.0.0.1"
  port: 9000
openai:
  model: "gpt-4o-mini"
  timeout_seconds: 15
history:
  database_path: "./data/history.db"
`
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatal(err)
	}
	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Server.Host != "127.0.0.1" || cfg.Server.Port != 9000 {
		t.Errorf("unexpected server config: %+v", cfg.Server)
	}
	if cfg.OpenAI.Model != "gpt-4o-mini" {
		t.Errorf("model: got %q", cfg.OpenAI.Model)
	}
	if cfg.OpenAI.Timeout() != 15*time.Second {
		t.Errorf("timeout: got %v", cfg.OpenAI.Timeout())
	}
	if cfg.Debug {
		t.Error("debug should default to false when unset")
	}
	// "./" paths are resolved relative to the config directory.
	want := filepath.Join(dir, "data/history.db")
	if cfg.History.DatabasePath != want {
		t.Errorf("database_path: got %q, want %q", cfg.History.DatabasePath, want)
	}
}

func TestLoad_MissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected error for missing config file")
	}
}

func TestApplyDefaults(t *testing.T) {
	var cfg Config
	ApplyDefaults(&cfg)

	if cfg.Server.Host != "localhost" || cfg.Server.Port != 8080 {
		t.Errorf("server defaults: %+v", cfg.Server)
	}
	if cfg.OpenAI.Model != "gpt-4" {
		t.Errorf("model default: got %q", cfg.OpenAI.Model)
	}
	if cfg.OpenAI.MaxTokens != 500 {
		t.Errorf("max_tokens default: got %d", cfg.OpenAI.MaxTokens)
	}
	if cfg.OpenAI.Temperature != 0.7 {
		t.Errorf("temperature default: got %v", cfg.OpenAI.Temperature)
	}
	if cfg.Session.MaxSessions != 1000 || cfg.Session.MaxTurns != 50 {
		t.Errorf("session defaults: %+v", cfg.Session)
	}
	if cfg.Session.TTL() != time.Hour {
		t.Errorf("ttl default: got %v", cfg.Session.TTL())
	}
	if !cfg.History.EnabledOrDefault() {
		t.Error("history should default to enabled")
	}
	if cfg.History.DatabasePath == "" {
		t.Error("database path default missing")
	}
}

func TestApplyDefaults_APIKeyFromEnv(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "sk-test")
	var cfg Config
	ApplyDefaults(&cfg)
	if cfg.OpenAI.APIKey != "sk-test" {
		t.Errorf("api key: got %q", cfg.OpenAI.APIKey)
	}
}

func TestApplyDefaults_ExplicitKeyWins(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "sk-env")
	cfg := Config{OpenAI: OpenAIConfig{APIKey: "sk-config"}}
	ApplyDefaults(&cfg)
	if cfg.OpenAI.APIKey != "sk-config" {
		t.Errorf("api key: got %q", cfg.OpenAI.APIKey)
	}
}

func TestHistoryConfig_Disabled(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	content := `
history:
  enabled: false
`
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatal(err)
	}
	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.History.EnabledOrDefault() {
		t.Error("history should be disabled when set to false")
	}
}
