package llm

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/janasetu/janasetu/internal/common"
	"github.com/janasetu/janasetu/internal/model"
)

// cleanMarkdownWrapper strips code fences a generative model may wrap
// around its JSON payload.
func cleanMarkdownWrapper(content string) string {
	content = strings.TrimSpace(content)
	content = strings.TrimPrefix(content, "```json")
	content = strings.TrimPrefix(content, "```")
	content = strings.TrimSuffix(content, "```")
	return strings.TrimSpace(content)
}

// extractJSONObject finds the first balanced JSON object embedded in free
// text. The upstream is a generative text model, not a strict API, so the
// payload may be surrounded by prose.
func extractJSONObject(content string) (string, bool) {
	start := strings.IndexByte(content, '{')
	if start < 0 {
		return "", false
	}

	depth := 0
	inString := false
	escaped := false
	for i := start; i < len(content); i++ {
		c := content[i]
		switch {
		case escaped:
			escaped = false
		case c == '\\' && inString:
			escaped = true
		case c == '"':
			inString = !inString
		case inString:
		case c == '{':
			depth++
		case c == '}':
			depth--
			if depth == 0 {
				return content[start : i+1], true
			}
		}
	}

	return "", false
}

// parseClassification extracts the structured payload from raw model
// output and validates it against the closed category/priority sets.
// Any failure returns ErrMalformedResponse so the caller degrades to
// heuristics without tripping the breaker.
func parseClassification(content string) (ClassificationResponse, error) {
	var payload struct {
		Response   string  `json:"response"`
		Category   string  `json:"category"`
		Priority   string  `json:"priority"`
		Confidence float64 `json:"confidence"`
	}

	raw, ok := extractJSONObject(cleanMarkdownWrapper(content))
	if !ok {
		return ClassificationResponse{}, fmt.Errorf("%w: no JSON object in output", common.ErrMalformedResponse)
	}

	if err := json.Unmarshal([]byte(raw), &payload); err != nil {
		return ClassificationResponse{}, fmt.Errorf("%w: %v", common.ErrMalformedResponse, err)
	}

	category, ok := model.ParseCategory(strings.ToLower(strings.TrimSpace(payload.Category)))
	if !ok {
		return ClassificationResponse{}, fmt.Errorf("%w: unknown category %q", common.ErrMalformedResponse, payload.Category)
	}

	priority, ok := model.ParsePriority(strings.ToLower(strings.TrimSpace(payload.Priority)))
	if !ok {
		return ClassificationResponse{}, fmt.Errorf("%w: unknown priority %q", common.ErrMalformedResponse, payload.Priority)
	}

	if payload.Response == "" {
		return ClassificationResponse{}, fmt.Errorf("%w: empty response text", common.ErrMalformedResponse)
	}

	return ClassificationResponse{
		Reply:      payload.Response,
		Category:   category,
		Priority:   priority,
		Confidence: payload.Confidence,
	}, nil
}
