package llm

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestHTTPClientGenerate(t *testing.T) {
	var got chatRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/chat/completions" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		if r.Header.Get("Authorization") != "Bearer key" {
			t.Errorf("missing bearer token")
		}
		_ = json.NewDecoder(r.Body).Decode(&got)
		_, _ = w.Write([]byte(`{"choices":[{"message":{"role":"assistant","content":"hola"}}]}`))
	}))
	defer srv.Close()

	c := NewHTTPClient(srv.URL+"/", "key", "test-model", "be brief", nil)
	out, err := c.Generate(context.Background(), "prompt")
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if out != "hola" {
		t.Fatalf("expected hola, got %q", out)
	}
	if got.Model != "test-model" || len(got.Messages) != 2 || got.Messages[0].Role != "system" {
		t.Fatalf("unexpected request: %+v", got)
	}
}

func TestHTTPClientErrors(t *testing.T) {
	t.Run("http status", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusTooManyRequests)
		}))
		defer srv.Close()
		if _, err := NewHTTPClient(srv.URL, "k", "m", "", nil).Generate(context.Background(), "p"); err == nil {
			t.Fatalf("expected error on 429")
		}
	})

	t.Run("empty choices", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{"choices":[]}`))
		}))
		defer srv.Close()
		if _, err := NewHTTPClient(srv.URL, "k", "m", "", nil).Generate(context.Background(), "p"); err == nil {
			t.Fatalf("expected error on empty response")
		}
	})

	t.Run("disabled", func(t *testing.T) {
		if _, err := (DisabledClient{}).Generate(context.Background(), "p"); !errors.Is(err, ErrDisabled) {
			t.Fatalf("expected ErrDisabled, got %v", err)
		}
	})
}
