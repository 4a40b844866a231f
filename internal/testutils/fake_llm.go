package testutils

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
)

// FakeLLMAPI is an httptest server standing in for a model provider. It
// answers every request with the same status and body and records what it
// received.
type FakeLLMAPI struct {
	*httptest.Server

	mu      sync.Mutex
	calls   int
	body    string
	header  http.Header
	path    string
	status  int
	payload string
}

// NewFakeLLMAPI starts a fake provider API that is closed when the test ends.
func NewFakeLLMAPI(t *testing.T, status int, body string) *FakeLLMAPI {
	t.Helper()

	f := &FakeLLMAPI{status: status, payload: body}
	f.Server = httptest.NewServer(http.HandlerFunc(f.serve))
	t.Cleanup(f.Close)
	return f
}

func (f *FakeLLMAPI) serve(w http.ResponseWriter, r *http.Request) {
	data, _ := io.ReadAll(r.Body)

	f.mu.Lock()
	f.calls++
	f.body = string(data)
	f.header = r.Header.Clone()
	f.path = r.URL.Path
	status, payload := f.status, f.payload
	f.mu.Unlock()

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = io.WriteString(w, payload)
}

// CallCount returns how many requests the server received.
func (f *FakeLLMAPI) CallCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls
}

// LastBody returns the body of the most recent request.
func (f *FakeLLMAPI) LastBody() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.body
}

// LastHeader returns a header of the most recent request.
func (f *FakeLLMAPI) LastHeader(name string) string {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.header == nil {
		return ""
	}
	return f.header.Get(name)
}

// LastPath returns the URL path of the most recent request.
func (f *FakeLLMAPI) LastPath() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.path
}

// GeminiResponse builds a generateContent response whose single candidate
// carries text.
func GeminiResponse(text string) string {
	return mustJSON(map[string]any{
		"candidates": []any{map[string]any{
			"content": map[string]any{
				"role":  "model",
				"parts": []any{map[string]any{"text": text}},
			},
			"finishReason": "STOP",
		}},
	})
}

// OpenAIResponse builds a chat completion whose single choice carries content.
func OpenAIResponse(content string) string {
	return mustJSON(map[string]any{
		"id":      "chatcmpl-test",
		"object":  "chat.completion",
		"created": 1,
		"model":   "gpt-test",
		"choices": []any{map[string]any{
			"index":         0,
			"message":       map[string]any{"role": "assistant", "content": content, "refusal": nil},
			"finish_reason": "stop",
			"logprobs":      nil,
		}},
	})
}

// AnthropicResponse builds a Messages API reply with one text block.
func AnthropicResponse(text string) string {
	return mustJSON(map[string]any{
		"id":            "msg_test",
		"type":          "message",
		"role":          "assistant",
		"model":         "claude-test",
		"content":       []any{map[string]any{"type": "text", "text": text}},
		"stop_reason":   "end_turn",
		"stop_sequence": nil,
		"usage":         map[string]any{"input_tokens": 1, "output_tokens": 1},
	})
}

func mustJSON(v any) string {
	data, err := json.Marshal(v)
	if err != nil {
		panic(err)
	}
	return string(data)
}
