package service

import (
	"encoding/json"
	"errors"
	"regexp"
	"strings"
)

var (
	fenceStart = regexp.MustCompile("(?is)^\\s*```(?:json)?\\s*")
	fenceEnd   = regexp.MustCompile("(?is)\\s*```\\s*$")
)

// cleanLLMJSONResponse quita fences ```json ... ``` y BOM, dejando el contenido usable.
func cleanLLMJSONResponse(raw string) string {
	s := strings.TrimSpace(raw)
	if s == "" {
		return ""
	}
	s = strings.TrimPrefix(s, "\uFEFF")
	s = fenceStart.ReplaceAllString(s, "")
	s = fenceEnd.ReplaceAllString(s, "")
	return strings.TrimSpace(s)
}

func extractFirstJSONObject(input string) string {
	start := strings.IndexByte(input, '{')
	if start == -1 {
		return ""
	}

	inString := false
	escape := false
	depth := 0

	for i := start; i < len(input); i++ {
		ch := input[i]

		if inString {
			if escape {
				escape = false
				continue
			}
			if ch == '\\' {
				escape = true
				continue
			}
			if ch == '"' {
				inString = false
			}
			continue
		}

		switch ch {
		case '"':
			inString = true
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return input[start : i+1]
			}
		}
	}

	return ""
}

var errEmptyNarrative = errors.New("llm narrative is empty")

type narrativePayload struct {
	Headline        string   `json:"headline"`
	Summary         string   `json:"summary"`
	Recommendations []string `json:"recommendations"`
}

// parseNarrative acepta JSON (con o sin fences) y cae a texto plano como resumen.
func parseNarrative(raw string) (narrativePayload, error) {
	cleaned := cleanLLMJSONResponse(raw)
	if cleaned == "" {
		return narrativePayload{}, errEmptyNarrative
	}

	if obj := extractFirstJSONObject(cleaned); obj != "" {
		var p narrativePayload
		if err := json.Unmarshal([]byte(obj), &p); err == nil && strings.TrimSpace(p.Summary) != "" {
			p.Headline = strings.TrimSpace(p.Headline)
			p.Summary = strings.TrimSpace(p.Summary)
			recs := p.Recommendations[:0]
			for _, r := range p.Recommendations {
				if r = strings.TrimSpace(r); r != "" {
					recs = append(recs, r)
				}
			}
			p.Recommendations = recs
			return p, nil
		}
	}

	if strings.HasPrefix(cleaned, "{") {
		return narrativePayload{}, errEmptyNarrative
	}
	return narrativePayload{Summary: cleaned}, nil
}
