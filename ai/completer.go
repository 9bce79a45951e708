// Package ai wraps the chat-completion backends used for price advice.
package ai

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"
)

// Message roles.
const (
	RoleSystem    = "system"
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

var (
	ErrNotConfigured   = errors.New("ai: API key not configured")
	ErrProviderDown    = errors.New("ai: provider unavailable")
	ErrEmptyCompletion = errors.New("ai: empty completion")
	ErrUnknownProvider = errors.New("ai: unknown provider")
)

// Message is one turn in a chat completion request.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// Options tune a single completion.
type Options struct {
	Temperature float64
	MaxTokens   int
}

// Completer produces free-text completions for a conversation.
type Completer interface {
	Name() string
	Complete(ctx context.Context, messages []Message, opts Options) (string, error)
}

// Settings selects and configures a backend.
type Settings struct {
	Provider string
	APIKey   string
	Model    string
	BaseURL  string
	Timeout  time.Duration
}

// New builds the completer for the configured provider. It returns
// ErrNotConfigured when no API key is set; callers treat that as the
// "AI unavailable" state rather than a failure.
func New(s Settings) (Completer, error) {
	if strings.TrimSpace(s.APIKey) == "" {
		return nil, ErrNotConfigured
	}
	switch strings.ToLower(s.Provider) {
	case "", ProviderGroq:
		opts := []GroqOption{WithGroqTimeout(s.Timeout)}
		if s.Model != "" {
			opts = append(opts, WithGroqModel(s.Model))
		}
		if s.BaseURL != "" {
			opts = append(opts, WithGroqBaseURL(s.BaseURL))
		}
		g, err := NewGroq(s.APIKey, opts...)
		if err != nil {
			return nil, err
		}
		return g, nil
	case ProviderGemini:
		return NewGemini(s.APIKey, s.Model), nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownProvider, s.Provider)
	}
}
