package ai

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/openai"
	"github.com/tmc/langchaingo/schema"
)

const (
	ProviderGroq       = "groq"
	DefaultGroqModel   = "llama-3.3-70b-versatile"
	defaultGroqBaseURL = "https://api.groq.com/openai/v1"
	defaultGroqTimeout = 30 * time.Second
)

// Groq talks to Groq's OpenAI-compatible chat completions endpoint through
// langchaingo's OpenAI client.
type Groq struct {
	baseURL string
	model   string
	timeout time.Duration
	llm     llms.Model
}

// GroqOption configures the Groq completer.
type GroqOption func(*Groq)

// WithGroqBaseURL points the client at a different OpenAI-compatible host.
func WithGroqBaseURL(url string) GroqOption {
	return func(g *Groq) { g.baseURL = strings.TrimRight(url, "/") }
}

// WithGroqModel overrides the default model.
func WithGroqModel(model string) GroqOption {
	return func(g *Groq) { g.model = model }
}

// WithGroqTimeout bounds every completion call.
func WithGroqTimeout(d time.Duration) GroqOption {
	return func(g *Groq) {
		if d > 0 {
			g.timeout = d
		}
	}
}

// NewGroq creates a Groq completer.
func NewGroq(apiKey string, opts ...GroqOption) (*Groq, error) {
	g := &Groq{
		baseURL: defaultGroqBaseURL,
		model:   DefaultGroqModel,
		timeout: defaultGroqTimeout,
	}
	for _, opt := range opts {
		opt(g)
	}

	llm, err := openai.New(
		openai.WithToken(apiKey),
		openai.WithBaseURL(g.baseURL),
		openai.WithModel(g.model),
		openai.WithHTTPClient(&http.Client{Timeout: g.timeout}),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create groq client: %w", err)
	}
	g.llm = llm
	return g, nil
}

func (g *Groq) Name() string  { return ProviderGroq }
func (g *Groq) Model() string { return g.model }

// Complete sends one chat completion request. There are no retries.
func (g *Groq) Complete(ctx context.Context, messages []Message, opts Options) (string, error) {
	var callOpts []llms.CallOption
	if opts.Temperature > 0 {
		callOpts = append(callOpts, llms.WithTemperature(opts.Temperature))
	}
	if opts.MaxTokens > 0 {
		callOpts = append(callOpts, llms.WithMaxTokens(opts.MaxTokens))
	}

	resp, err := g.llm.GenerateContent(ctx, toMessageContent(messages), callOpts...)
	if errors.Is(err, openai.ErrEmptyResponse) {
		return "", ErrEmptyCompletion
	}
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrProviderDown, err)
	}
	if len(resp.Choices) == 0 || strings.TrimSpace(resp.Choices[0].Content) == "" {
		return "", ErrEmptyCompletion
	}
	return resp.Choices[0].Content, nil
}

func toMessageContent(messages []Message) []llms.MessageContent {
	out := make([]llms.MessageContent, 0, len(messages))
	for _, m := range messages {
		role := schema.ChatMessageTypeHuman
		switch m.Role {
		case RoleSystem:
			role = schema.ChatMessageTypeSystem
		case RoleAssistant:
			role = schema.ChatMessageTypeAI
		}
		out = append(out, llms.TextParts(role, m.Content))
	}
	return out
}
