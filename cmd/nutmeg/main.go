// Package main is the NutmegAI CLI entry point.
package main

import (
	"bytes"
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/nutmegai/nutmeg/internal/chat"
	"github.com/nutmegai/nutmeg/internal/cli"
	"github.com/nutmegai/nutmeg/internal/config"
	"github.com/nutmegai/nutmeg/internal/history"
	"github.com/nutmegai/nutmeg/internal/knowledge"
	"github.com/nutmegai/nutmeg/internal/llm"
	"github.com/nutmegai/nutmeg/internal/models"
	"github.com/nutmegai/nutmeg/internal/server"
	"github.com/nutmegai/nutmeg/internal/session"
	"github.com/nutmegai/nutmeg/pkg/utils"
)

var version = "dev"

const defaultConfigPath = "/usr/local/etc/nutmeg/config.yaml"

// loadConfig loads config from path. When path is the default, it first looks for
// config.yaml in the current directory (for development); if that exists it is used,
// so that "nutmeg server" from the project dir uses the project's config (including debug).
// Returns the config and the path that was actually loaded.
func loadConfig(path string) (*config.Config, string, error) {
	if path == defaultConfigPath {
		if cwd, cwdErr := os.Getwd(); cwdErr == nil {
			fallback := filepath.Join(cwd, "config.yaml")
			if _, statErr := os.Stat(fallback); statErr == nil {
				cfg, loadErr := config.Load(fallback)
				if loadErr != nil {
					return nil, "", loadErr
				}
				return cfg, fallback, nil
			}
		}
	}
	cfg, err := config.Load(path)
	if err != nil {
		return nil, "", err
	}
	return cfg, path, nil
}

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}
	command := os.Args[1]
	switch command {
	case "server":
		runServer()
	case "chat":
		runChat()
	case "translate":
		runTranslate()
	case "documents":
		runDocuments()
	case "version", "--version", "-v":
		fmt.Printf("nutmeg version %s\n", version)
	case "help", "--help", "-h":
		printUsage()
	default:
		fmt.Printf("Unknown command: %s\n", command)
		printUsage()
		os.Exit(1)
	}
}

func runServer() {
	fs := flag.NewFlagSet("server", flag.ExitOnError)
	configPath := fs.String("config", defaultConfigPath, "config file path")
	debug := fs.Bool("debug", false, "enable debug logging")
	_ = fs.Parse(os.Args[2:])

	cfg, resolvedConfigPath, err := loadConfig(*configPath)
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}
	debugMode := cfg.Debug || *debug
	logger, err := utils.NewLogger(debugMode)
	if err != nil {
		fmt.Printf("Failed to create logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("config loaded",
		zap.String("config_path", resolvedConfigPath),
		zap.Bool("debug", debugMode),
	)

	var hist *history.Store
	if cfg.History.EnabledOrDefault() {
		hist, err = history.New(cfg.History.DatabasePath)
		if err != nil {
			logger.Warn("history disabled, database unavailable",
				zap.String("path", cfg.History.DatabasePath),
				zap.Error(err))
			hist = nil
		} else {
			defer hist.Close()
		}
	}

	kb := knowledge.NewStore()
	if hist != nil {
		overrides, err := hist.ListLegalDocuments(context.Background())
		if err != nil {
			logger.Warn("loading stored registry records failed", zap.Error(err))
		} else if len(overrides) > 0 {
			kb = knowledge.NewStoreWithOverrides(overrides)
			logger.Info("registry records loaded from database", zap.Int("count", len(overrides)))
		}
	}

	client := llm.NewOpenAIClient(cfg.OpenAI.APIKey, cfg.OpenAI.BaseURL, cfg.OpenAI.Model, cfg.OpenAI.Timeout())
	sessions := session.NewMemoryStore(cfg.Session.MaxSessions, cfg.Session.MaxTurns, cfg.Session.TTL())
	defer sessions.Close()

	orchestrator := chat.New(client, sessions, hist, logger, cfg.OpenAI.MaxTokens, cfg.OpenAI.Temperature)

	srv := server.NewServer(orchestrator, kb, hist, &cfg.Server, logger)
	go func() {
		if err := srv.Start(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Server failed", zap.Error(err))
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	<-sigChan

	logger.Info("Shutting down...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	_ = srv.Stop(ctx)
}

func runChat() {
	fs := flag.NewFlagSet("chat", flag.ExitOnError)
	serverURL := fs.String("server", "http://localhost:8080", "server URL")
	sessionID := fs.String("session", "", "session id to continue a conversation")
	language := fs.String("language", "auto", "language hint: en, en-GD, or auto")
	outputFormat := fs.String("output", "text", "output format: text or json")
	_ = fs.Parse(os.Args[2:])

	if fs.NArg() < 1 {
		fmt.Println("Usage: nutmeg chat [flags] <message>")
		os.Exit(1)
	}
	message := strings.TrimSpace(strings.Join(fs.Args(), " "))
	if message == "" {
		fmt.Println("Usage: nutmeg chat [flags] <message>")
		os.Exit(1)
	}

	format, ok := parseFormat(*outputFormat)
	if !ok {
		fmt.Printf("Unknown output format %q; use text or json\n", *outputFormat)
		os.Exit(1)
	}

	req := models.ChatRequest{
		Message:   message,
		SessionID: *sessionID,
		Language:  models.Language(*language),
	}
	var response models.ChatResponse
	if err := postJSON(*serverURL+"/api/v1/chat", req, &response); err != nil {
		fmt.Fprintf(os.Stderr, "Chat failed: %v\n", err)
		os.Exit(1)
	}
	if err := cli.WriteChatResult(os.Stdout, &response, format); err != nil {
		fmt.Fprintf(os.Stderr, "Output failed: %v\n", err)
		os.Exit(1)
	}
}

func runTranslate() {
	fs := flag.NewFlagSet("translate", flag.ExitOnError)
	serverURL := fs.String("server", "http://localhost:8080", "server URL")
	target := fs.String("target", "en", "target language: en or en-GD")
	outputFormat := fs.String("output", "text", "output format: text or json")
	_ = fs.Parse(os.Args[2:])

	if fs.NArg() < 1 {
		fmt.Println("Usage: nutmeg translate [flags] <message>")
		os.Exit(1)
	}
	message := strings.TrimSpace(strings.Join(fs.Args(), " "))
	if message == "" {
		fmt.Println("Usage: nutmeg translate [flags] <message>")
		os.Exit(1)
	}

	format, ok := parseFormat(*outputFormat)
	if !ok {
		fmt.Printf("Unknown output format %q; use text or json\n", *outputFormat)
		os.Exit(1)
	}

	req := models.TranslateRequest{
		Message:        message,
		TargetLanguage: models.Language(*target),
	}
	var response models.TranslateResponse
	if err := postJSON(*serverURL+"/api/v1/translate", req, &response); err != nil {
		fmt.Fprintf(os.Stderr, "Translate failed: %v\n", err)
		os.Exit(1)
	}
	if err := cli.WriteTranslation(os.Stdout, &response, format); err != nil {
		fmt.Fprintf(os.Stderr, "Output failed: %v\n", err)
		os.Exit(1)
	}
}

// runDocuments lists document types, or shows one record when a type is given.
// It works directly against the built-in knowledge base, no server required.
func runDocuments() {
	fs := flag.NewFlagSet("documents", flag.ExitOnError)
	query := fs.String("query", "", "narrow the record to one aspect (requirements, process, contact, fees)")
	outputFormat := fs.String("output", "text", "output format: text or json")
	_ = fs.Parse(os.Args[2:])

	format, ok := parseFormat(*outputFormat)
	if !ok {
		fmt.Printf("Unknown output format %q; use text or json\n", *outputFormat)
		os.Exit(1)
	}

	kb := knowledge.NewStore()
	if fs.NArg() < 1 {
		descriptions := kb.Descriptions()
		for _, t := range kb.Types() {
			fmt.Printf("%-22s %s\n", t, descriptions[t])
		}
		return
	}

	docType, ok := models.ParseDocumentType(fs.Arg(0))
	if !ok {
		fmt.Fprintf(os.Stderr, "Unknown document type: %s\n", fs.Arg(0))
		os.Exit(1)
	}
	record := kb.Respond(docType, *query)
	if err := cli.WriteDocumentRecord(os.Stdout, record, format); err != nil {
		fmt.Fprintf(os.Stderr, "Output failed: %v\n", err)
		os.Exit(1)
	}
}

func parseFormat(s string) (cli.OutputFormat, bool) {
	switch s {
	case "json":
		return cli.OutputJSON, true
	case "text":
		return cli.OutputText, true
	default:
		return cli.OutputText, false
	}
}

func postJSON(url string, request interface{}, response interface{}) error {
	body, err := json.Marshal(request)
	if err != nil {
		return err
	}
	resp, err := http.Post(url, "application/json", bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		b, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("server returned %d: %s", resp.StatusCode, string(b))
	}
	if err := json.NewDecoder(resp.Body).Decode(response); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

func printUsage() {
	fmt.Println(`nutmeg - Grenadian legal registry assistant

Usage:
  nutmeg server [flags]              Start the HTTP server
  nutmeg chat [flags] <message>      Send a chat message to a running server
  nutmeg translate [flags] <text>    Translate between English and Grenadian Creole
  nutmeg documents [flags] [type]    List document types or show one record
  nutmeg version                     Show version
  nutmeg help                        Show this help

Server Flags:
  --config string    Config file path (default: /usr/local/etc/nutmeg/config.yaml)
  --debug            Enable debug logging

Chat Flags:
  --server string    Server URL (default: http://localhost:8080)
  --session string   Session id to continue a conversation
  --language string  Language hint: en, en-GD, or auto (default: auto)
  --output string    Output format: text or json (default: text)

Translate Flags:
  --server string    Server URL (default: http://localhost:8080)
  --target string    Target language: en or en-GD (default: en)
  --output string    Output format: text or json (default: text)

Documents Flags:
  --query string     Narrow the record to one aspect (requirements, process, contact, fees)
  --output string    Output format: text or json (default: text)

Examples:
  nutmeg server
  nutmeg chat "How do I get a birth certificate?"
  nutmeg chat --session 3f6b... "And how much does it cost?"
  nutmeg translate --target en-GD "good morning"
  nutmeg documents
  nutmeg documents birth_certificate --query fees`)
}
