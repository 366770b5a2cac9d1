package service

import (
	"encoding/json"
	"regexp"
	"strings"

	"github.com/octobees/linecard/api/internal/entity"
)

var (
	fenceOpen  = regexp.MustCompile("^\\s*```(?:json)?\\s*")
	fenceClose = regexp.MustCompile("\\s*```\\s*$")
)

// stripFences drops leading/trailing triple-backtick markers around the
// model output.
func stripFences(text string) string {
	text = fenceOpen.ReplaceAllString(text, "")
	return fenceClose.ReplaceAllString(text, "")
}

// extractResult runs the staged best-effort parse over raw model text:
// the whole trimmed text first, then the span between the first `{` and the
// last `}`, then the span between the first `[` and the last `]`. The first
// stage that decodes wins.
func extractResult(text string) (*entity.EnrichmentResult, bool) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, false
	}

	if result, ok := parseCandidate(text); ok {
		return result, true
	}
	if span := spanBetween(text, '{', '}'); span != "" {
		if result, ok := parseCandidate(span); ok {
			return result, true
		}
	}
	if span := spanBetween(text, '[', ']'); span != "" {
		if result, ok := parseCandidate(span); ok {
			return result, true
		}
	}
	return nil, false
}

func parseCandidate(text string) (*entity.EnrichmentResult, bool) {
	if strings.TrimSpace(text) == "null" {
		return nil, false
	}
	var result entity.EnrichmentResult
	if err := json.Unmarshal([]byte(text), &result); err != nil {
		return nil, false
	}
	return &result, true
}

func spanBetween(text string, open, close byte) string {
	first := strings.IndexByte(text, open)
	last := strings.LastIndexByte(text, close)
	if first == -1 || last <= first {
		return ""
	}
	return text[first : last+1]
}

// truncateText caps diagnostic previews of raw model output.
func truncateText(text string, limit int) string {
	if len(text) <= limit {
		return text
	}
	return text[:limit] + "...(truncated)"
}
