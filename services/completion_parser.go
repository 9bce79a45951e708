package services

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"kisan/models"
)

const (
	maxReasons         = 4
	maxSentenceReasons = 3
	minReasonLength    = 10
	minSentenceLength  = 20
	maxSentenceLength  = 150
)

var (
	markerLine     = regexp.MustCompile(`^[•\-*\d✓✔]`)
	markerPrefix   = regexp.MustCompile(`^[•\-*\d.)\s✓✔]+`)
	sentenceBreak  = regexp.MustCompile(`[.!?]\s+`)
	waitSignalTerm = []string{"wait", "hold"}
)

// ParsedCompletion is what can be recovered from free-text AI advice.
type ParsedCompletion struct {
	Action  string
	Reasons []string
}

// ParseCompletion extracts an action and up to four reasons from AI text.
// Any mention of waiting or holding turns the action into "wait". Reasons
// come from bullet or numbered lines; if there are none, from medium-length
// sentences.
func ParseCompletion(text string) ParsedCompletion {
	parsed := ParsedCompletion{Action: models.ActionSellNow}

	lower := strings.ToLower(text)
	for _, term := range waitSignalTerm {
		if strings.Contains(lower, term) {
			parsed.Action = models.ActionWait
			break
		}
	}

	parsed.Reasons = markerReasons(text)
	if len(parsed.Reasons) == 0 {
		parsed.Reasons = sentenceReasons(text)
	}
	return parsed
}

func markerReasons(text string) []string {
	var reasons []string
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimLeft(line, " \t")
		if !markerLine.MatchString(line) && !strings.ContainsAny(line, "✓✔") {
			continue
		}
		cleaned := strings.TrimSpace(markerPrefix.ReplaceAllString(line, ""))
		if utf8.RuneCountInString(cleaned) > minReasonLength {
			reasons = append(reasons, cleaned)
			if len(reasons) == maxReasons {
				break
			}
		}
	}
	return reasons
}

func sentenceReasons(text string) []string {
	var reasons []string
	for _, sentence := range sentenceBreak.Split(text, -1) {
		sentence = strings.TrimSpace(sentence)
		n := utf8.RuneCountInString(sentence)
		if n > minSentenceLength && n < maxSentenceLength {
			reasons = append(reasons, sentence)
			if len(reasons) == maxSentenceReasons {
				break
			}
		}
	}
	return reasons
}
