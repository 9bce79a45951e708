package ai

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

const (
	ProviderGemini     = "gemini"
	DefaultGeminiModel = "gemini-1.5-pro"
)

// Gemini generates completions with Google's Gemini models.
type Gemini struct {
	apiKey string
	model  string
}

// NewGemini creates a Gemini completer. An empty model selects the default.
func NewGemini(apiKey, model string) *Gemini {
	if model == "" {
		model = DefaultGeminiModel
	}
	return &Gemini{apiKey: apiKey, model: model}
}

func (g *Gemini) Name() string  { return ProviderGemini }
func (g *Gemini) Model() string { return g.model }

// Complete maps the conversation onto a Gemini chat session: system turns
// become the system instruction, earlier turns the history, and the last
// user turn is sent.
func (g *Gemini) Complete(ctx context.Context, messages []Message, opts Options) (string, error) {
	client, err := genai.NewClient(ctx, option.WithAPIKey(g.apiKey))
	if err != nil {
		return "", fmt.Errorf("failed to create AI client: %w", err)
	}
	defer client.Close()

	model := client.GenerativeModel(g.model)
	if opts.Temperature > 0 {
		model.SetTemperature(float32(opts.Temperature))
	}
	if opts.MaxTokens > 0 {
		model.SetMaxOutputTokens(int32(opts.MaxTokens))
	}

	system, history, last := splitConversation(messages)
	if system != "" {
		model.SystemInstruction = &genai.Content{Parts: []genai.Part{genai.Text(system)}}
	}

	cs := model.StartChat()
	cs.History = history

	resp, err := cs.SendMessage(ctx, genai.Text(last))
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrProviderDown, err)
	}

	text := responseText(resp)
	if strings.TrimSpace(text) == "" {
		return "", ErrEmptyCompletion
	}
	return text, nil
}

func splitConversation(messages []Message) (string, []*genai.Content, string) {
	var system []string
	var history []*genai.Content
	var last string

	for i, m := range messages {
		if m.Role == RoleSystem {
			system = append(system, m.Content)
			continue
		}
		if i == len(messages)-1 {
			last = m.Content
			continue
		}
		role := "user"
		if m.Role == RoleAssistant {
			role = "model"
		}
		history = append(history, &genai.Content{Role: role, Parts: []genai.Part{genai.Text(m.Content)}})
	}
	return strings.Join(system, "\n\n"), history, last
}

func responseText(resp *genai.GenerateContentResponse) string {
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return ""
	}
	var sb strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if t, ok := part.(genai.Text); ok {
			sb.WriteString(string(t))
		}
	}
	return sb.String()
}
