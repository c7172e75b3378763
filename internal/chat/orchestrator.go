package chat

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/nutmegai/nutmeg/internal/history"
	"github.com/nutmegai/nutmeg/internal/intent"
	"github.com/nutmegai/nutmeg/internal/lexicon"
	"github.com/nutmegai/nutmeg/internal/llm"
	"github.com/nutmegai/nutmeg/internal/models"
	"github.com/nutmegai/nutmeg/internal/session"
)

// historyWindow is how many prior turns are sent to the model for context.
const historyWindow = 5

const systemPrompt = `You are NutmegAI, a helpful AI assistant for Grenadians seeking help with legal registry documents and government services.

You understand and can respond in both English and Grenadian Creole. You are knowledgeable about:
- Birth, death, and marriage certificates
- Property deeds and business registration
- Passport and national ID applications
- Voter registration and tax documents
- Government office locations and procedures

Always be polite, patient, and culturally sensitive. If someone speaks in Grenadian Creole, respond in a way that's respectful and helpful.

Current conversation language: `

const creolePromptNote = `
IMPORTANT: The user is speaking in Grenadian Creole. Respond in a warm, helpful manner that acknowledges their language choice. You can mix English and Creole as appropriate, but always ensure clarity.`

const (
	fallbackEnglish = "I'm experiencing some technical difficulties at the moment. Please try again in a few minutes, or contact the Civil Registry Office directly for immediate assistance."
	fallbackCreole  = "Sorry, I having some technical difficulties right now. Could you try asking your question again in a few minutes? Or you could call the Civil Registry Office directly for immediate help."
)

// Result is the outcome of one conversational exchange.
type Result struct {
	Response         string
	SessionID        string
	Language         models.Language
	Confidence       float64
	SuggestedActions []string
}

// Orchestrator runs the chat flow: language detection, prompt assembly,
// model call, session bookkeeping, and the degraded path when the model
// is unreachable.
type Orchestrator struct {
	client      llm.Client
	sessions    session.Store
	history     *history.Store
	logger      *zap.Logger
	maxTokens   int
	temperature float32
}

// New builds an orchestrator. history may be nil, in which case exchanges
// are not persisted.
func New(client llm.Client, sessions session.Store, hist *history.Store, logger *zap.Logger, maxTokens int, temperature float32) *Orchestrator {
	return &Orchestrator{
		client:      client,
		sessions:    sessions,
		history:     hist,
		logger:      logger,
		maxTokens:   maxTokens,
		temperature: temperature,
	}
}

// Converse handles one user message. An empty sessionID starts a new
// session. hint narrows language detection; empty or auto means detect
// from the message itself.
func (o *Orchestrator) Converse(ctx context.Context, message string, hint models.Language, sessionID string) *Result {
	if sessionID == "" {
		sessionID = uuid.New().String()
	}

	detected := hint
	if detected == "" || detected == models.LanguageAuto {
		detected = lexicon.Detect(message)
	}
	creole := detected == models.LanguageCreole

	in := intent.Extract(message)
	o.logger.Debug("intent",
		zap.String("session_id", sessionID),
		zap.String("document_type", string(in.DocumentType)),
		zap.String("action", string(in.Action)),
		zap.String("urgency", string(in.Urgency)))

	unlock := o.sessions.Lock(sessionID)
	defer unlock()

	turns := o.sessions.Get(sessionID)
	if len(turns) > historyWindow {
		turns = turns[len(turns)-historyWindow:]
	}

	prompt := systemPrompt + string(detected)
	if creole {
		prompt += creolePromptNote
	}

	reply, err := o.client.Generate(ctx, &llm.Request{
		System:      prompt,
		History:     turns,
		Message:     message,
		MaxTokens:   o.maxTokens,
		Temperature: o.temperature,
	})
	if err != nil {
		o.logger.Warn("model call failed, serving fallback",
			zap.String("session_id", sessionID),
			zap.Error(err))
		text := fallbackEnglish
		if creole {
			text = fallbackCreole
		}
		return &Result{
			Response:         text,
			SessionID:        sessionID,
			Language:         detected,
			Confidence:       0.6,
			SuggestedActions: []string{"Contact support", "Try rephrasing your question"},
		}
	}

	o.sessions.Append(sessionID,
		models.Turn{Role: models.RoleUser, Content: message},
		models.Turn{Role: models.RoleAssistant, Content: reply},
	)

	result := &Result{
		Response:         reply,
		SessionID:        sessionID,
		Language:         detected,
		Confidence:       confidence(reply, creole),
		SuggestedActions: suggestActions(message),
	}

	o.persist(sessionID, message, in, result)
	return result
}

// persist records the exchange off the request path. History failures are
// logged, never surfaced to the caller.
func (o *Orchestrator) persist(sessionID, message string, in models.Intent, res *Result) {
	if o.history == nil {
		return
	}
	go func() {
		ctx := context.Background()
		if err := o.history.EnsureSession(ctx, sessionID, string(res.Language)); err != nil {
			o.logger.Warn("history: ensure session", zap.Error(err))
			return
		}
		if err := o.history.AppendMessage(ctx, sessionID, string(models.RoleUser), message, 0); err != nil {
			o.logger.Warn("history: append user message", zap.Error(err))
		}
		if err := o.history.AppendMessage(ctx, sessionID, string(models.RoleAssistant), res.Response, res.Confidence); err != nil {
			o.logger.Warn("history: append assistant message", zap.Error(err))
		}
		if in.DocumentType != "" {
			if err := o.history.RecordDocumentQuery(ctx, string(in.DocumentType), message, string(res.Language)); err != nil {
				o.logger.Warn("history: record document query", zap.Error(err))
			}
		}
	}()
}

func confidence(reply string, creole bool) float64 {
	c := 0.8
	if creole {
		c += 0.1
	}
	if len(reply) > 100 {
		c += 0.05
	}
	if len(reply) < 20 {
		c -= 0.2
	}
	if c > 1.0 {
		c = 1.0
	}
	return c
}

// actionRule maps message keywords to a suggested follow-up. Document rules
// are mutually exclusive and checked in order; general rules stack.
type actionRule struct {
	keywords []string
	action   string
}

var documentActionRules = []actionRule{
	{[]string{"birth", "certificate", "paper"}, "Get birth certificate information"},
	{[]string{"death", "passing"}, "Get death certificate information"},
	{[]string{"marry", "wedding", "marriage"}, "Get marriage certificate information"},
	{[]string{"property", "house", "land"}, "Get property deed information"},
	{[]string{"business", "company"}, "Get business registration information"},
}

var generalActionRules = []actionRule{
	{[]string{"how", "what"}, "Get detailed process information"},
	{[]string{"where"}, "Get office location and contact information"},
	{[]string{"cost", "fee", "money"}, "Get fee information"},
}

const maxSuggestedActions = 3

func suggestActions(message string) []string {
	lower := strings.ToLower(message)
	var actions []string

	for _, rule := range documentActionRules {
		if containsAny(lower, rule.keywords) {
			actions = append(actions, rule.action)
			break
		}
	}
	for _, rule := range generalActionRules {
		if containsAny(lower, rule.keywords) {
			actions = append(actions, rule.action)
		}
	}

	if len(actions) > maxSuggestedActions {
		actions = actions[:maxSuggestedActions]
	}
	return actions
}

func containsAny(s string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(s, kw) {
			return true
		}
	}
	return false
}
