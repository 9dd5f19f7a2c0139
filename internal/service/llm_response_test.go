package service

import (
	"errors"
	"testing"
)

func TestCleanLLMJSONResponseStripsFences(t *testing.T) {
	raw := "\uFEFF```json\n{\"summary\":\"ok\"}\n```"
	if got := cleanLLMJSONResponse(raw); got != `{"summary":"ok"}` {
		t.Fatalf("unexpected cleaned output: %q", got)
	}
}

func TestExtractFirstJSONObjectIgnoresBracesInStrings(t *testing.T) {
	raw := `noise {"summary":"uses {braces} inside","x":{"y":1}} trailing {"other":true}`
	want := `{"summary":"uses {braces} inside","x":{"y":1}}`
	if got := extractFirstJSONObject(raw); got != want {
		t.Fatalf("expected %q, got %q", want, got)
	}
	if got := extractFirstJSONObject("no json here"); got != "" {
		t.Fatalf("expected empty, got %q", got)
	}
}

func TestParseNarrative(t *testing.T) {
	t.Run("json with fences", func(t *testing.T) {
		raw := "```json\n{\"headline\":\" Strong fit \",\"summary\":\"Aligned on pace.\",\"recommendations\":[\"Pair early\",\"  \"]}\n```"
		p, err := parseNarrative(raw)
		if err != nil {
			t.Fatalf("parse: %v", err)
		}
		if p.Headline != "Strong fit" || p.Summary != "Aligned on pace." {
			t.Fatalf("unexpected payload: %+v", p)
		}
		if len(p.Recommendations) != 1 || p.Recommendations[0] != "Pair early" {
			t.Fatalf("expected blank recommendations dropped, got %v", p.Recommendations)
		}
	})

	t.Run("plain text fallback", func(t *testing.T) {
		p, err := parseNarrative("Just a sentence.")
		if err != nil || p.Summary != "Just a sentence." {
			t.Fatalf("unexpected fallback: %+v %v", p, err)
		}
	})

	t.Run("json without summary", func(t *testing.T) {
		if _, err := parseNarrative(`{"headline":"only"}`); !errors.Is(err, errEmptyNarrative) {
			t.Fatalf("expected errEmptyNarrative, got %v", err)
		}
	})

	t.Run("empty", func(t *testing.T) {
		if _, err := parseNarrative("   "); !errors.Is(err, errEmptyNarrative) {
			t.Fatalf("expected errEmptyNarrative, got %v", err)
		}
	})
}
