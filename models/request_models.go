package models

import (
	"fmt"
	"strconv"
	"strings"
)

// Quantity accepts both JSON numbers and numeric strings.
type Quantity float64

func (q *Quantity) UnmarshalJSON(b []byte) error {
	s := strings.Trim(strings.TrimSpace(string(b)), `"`)
	if s == "" || s == "null" {
		*q = 0
		return nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return fmt.Errorf("invalid quantity %q", s)
	}
	*q = Quantity(f)
	return nil
}

// RecommendationRequest is the body of POST /prices/recommendation.
type RecommendationRequest struct {
	Crop           string   `json:"crop"`
	Quantity       Quantity `json:"quantity"`
	Unit           string   `json:"unit"`
	State          string   `json:"state"`
	District       string   `json:"district"`
	PreferredMandi string   `json:"preferredMandi"`
}

// ExplainRequest is the body of POST /prices/explain.
type ExplainRequest struct {
	Crop           string                 `json:"crop"`
	State          string                 `json:"state"`
	District       string                 `json:"district"`
	Recommendation *SellingRecommendation `json:"recommendation"`
}

// ChatMessage is one prior turn of a price conversation.
type ChatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// AskRequest is the body of POST /prices/ask.
type AskRequest struct {
	Query               string        `json:"query"`
	Crop                string        `json:"crop"`
	State               string        `json:"state"`
	District            string        `json:"district"`
	ConversationHistory []ChatMessage `json:"conversationHistory"`
}
