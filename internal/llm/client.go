package llm

import (
	"context"

	"github.com/nutmegai/nutmeg/internal/models"
)

// Request carries one completion call: a system prompt, prior conversation
// turns, and the new user message.
type Request struct {
	System      string
	History     []models.Turn
	Message     string
	MaxTokens   int
	Temperature float32
}

// Client generates a completion for a request. Implementations must respect
// context cancellation.
type Client interface {
	Generate(ctx context.Context, req *Request) (string, error)
}
