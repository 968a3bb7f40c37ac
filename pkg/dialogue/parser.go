package dialogue

import (
	"encoding/json"
	"strings"

	"ai-procurement-be/internal/dto"
)

// ParseTurnResult decodes a raw oracle reply into the TurnResult union.
// The oracle is instructed to answer with a single JSON object, but it is
// probabilistic: any structural violation degrades to a question carrying the
// raw text instead of failing the interaction. The second return reports
// whether the reply was well-formed.
func ParseTurnResult(raw string) (*dto.TurnResult, bool) {
	payload := ExtractJSON(raw)
	if payload == "" {
		return fallback(raw), false
	}

	var result dto.TurnResult
	if err := json.Unmarshal([]byte(payload), &result); err != nil {
		return fallback(raw), false
	}

	switch result.Type {
	case dto.TurnResultQuestion:
		if result.Message == "" {
			return fallback(raw), false
		}
		result.IsDone = false
		result.PurchaseRequest = nil
		return &result, true
	case dto.TurnResultRequest:
		if result.PurchaseRequest == nil {
			return fallback(raw), false
		}
		result.IsDone = true
		result.Message = ""
		return &result, true
	default:
		return fallback(raw), false
	}
}

func fallback(raw string) *dto.TurnResult {
	return &dto.TurnResult{
		Type:    dto.TurnResultQuestion,
		Message: raw,
		IsDone:  false,
	}
}

// ExtractJSON pulls the JSON object out of a model reply. Models wrap JSON in
// markdown fences or lead with prose even when asked not to, so we cut from
// the first '{' to the last '}'. Returns "" when no object is present.
func ExtractJSON(raw string) string {
	s := strings.TrimSpace(raw)

	if strings.HasPrefix(s, "```") {
		s = strings.TrimPrefix(s, "```json")
		s = strings.TrimPrefix(s, "```")
		if idx := strings.LastIndex(s, "```"); idx >= 0 {
			s = s[:idx]
		}
		s = strings.TrimSpace(s)
	}

	start := strings.Index(s, "{")
	end := strings.LastIndex(s, "}")
	if start < 0 || end <= start {
		return ""
	}
	return s[start : end+1]
}
