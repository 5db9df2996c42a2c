package perplexity

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/blessedrishabh/tabeval/api"
)

func TestComplete(t *testing.T) {
	var gotBody map[string]any
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/chat/completions" {
			t.Errorf("path = %q", r.URL.Path)
		}
		if err := json.NewDecoder(r.Body).Decode(&gotBody); err != nil {
			t.Fatalf("decode request: %v", err)
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{
			"id":      "resp-1",
			"object":  "chat.completion",
			"model":   "sonar",
			"choices": []map[string]any{{"index": 0, "message": map[string]any{"role": "assistant", "content": "Answer: FAITHFUL"}, "finish_reason": "stop"}},
		})
	}))
	defer server.Close()

	client := NewClient(Config{BaseURL: server.URL, APIKey: "test-key"})
	got, err := client.Complete(context.Background(), api.ChatRequest{
		Model:       "sonar",
		Prompt:      "Is this faithful?",
		Temperature: 0,
		MaxTokens:   500,
	})
	if err != nil {
		t.Fatalf("Complete: %v", err)
	}
	if got != "Answer: FAITHFUL" {
		t.Errorf("content = %q", got)
	}

	if gotBody["model"] != "sonar" {
		t.Errorf("request model = %v", gotBody["model"])
	}
	if gotBody["temperature"] != float64(0) {
		t.Errorf("request temperature = %v", gotBody["temperature"])
	}
	if gotBody["max_tokens"] != float64(500) {
		t.Errorf("request max_tokens = %v", gotBody["max_tokens"])
	}
	messages, ok := gotBody["messages"].([]any)
	if !ok || len(messages) != 1 {
		t.Fatalf("messages = %v", gotBody["messages"])
	}
	msg := messages[0].(map[string]any)
	if msg["role"] != "user" {
		t.Errorf("message role = %v", msg["role"])
	}
}

func TestCompleteEmptyChoices(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{"choices": []any{}})
	}))
	defer server.Close()

	client := NewClient(Config{BaseURL: server.URL, APIKey: "test-key"})
	if _, err := client.Complete(context.Background(), api.ChatRequest{Model: "sonar", Prompt: "x"}); err == nil {
		t.Fatal("expected error for empty choices")
	}
}

func TestCompleteServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error": "invalid model"}`, http.StatusBadRequest)
	}))
	defer server.Close()

	client := NewClient(Config{BaseURL: server.URL, APIKey: "test-key"})
	if _, err := client.Complete(context.Background(), api.ChatRequest{Model: "sonar", Prompt: "x"}); err == nil {
		t.Fatal("expected error for 400 response")
	}
}
