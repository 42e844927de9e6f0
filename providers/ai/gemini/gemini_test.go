package gemini

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/synapticlabs/synaptic/providers/ai"
)

func newTestAdapter(server *httptest.Server) *Adapter {
	a := New()
	a.WithAPIKey("test-key")
	a.WithBaseURL(server.URL)
	a.WithHTTPClient(server.Client())
	return a
}

func TestInvoke(t *testing.T) {
	var capturedPath string
	var captured generateContentRequest
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		capturedPath = r.URL.Path
		if got := r.Header.Get("x-goog-api-key"); got != "test-key" {
			t.Errorf("api key header = %q", got)
		}
		if err := json.NewDecoder(r.Body).Decode(&captured); err != nil {
			t.Fatal(err)
		}
		w.Write([]byte(`{
			"candidates": [{"content": {"role": "model", "parts": [{"text": "ciao"}]}, "finishReason": "STOP"}],
			"usageMetadata": {"promptTokenCount": 5, "candidatesTokenCount": 2, "totalTokenCount": 7}
		}`))
	}))
	defer server.Close()

	response, err := newTestAdapter(server).Invoke(context.Background(), ai.Request{
		Model:        "gemini-test",
		Prompt:       "hello",
		Instructions: "Answer in Italian.",
	})
	if err != nil {
		t.Fatal(err)
	}

	if !strings.Contains(capturedPath, "gemini-test:generateContent") {
		t.Errorf("path = %q", capturedPath)
	}
	if captured.SystemInstruction == nil || captured.SystemInstruction.Parts[0].Text != "Answer in Italian." {
		t.Errorf("system instruction = %+v", captured.SystemInstruction)
	}
	if response.Message != "ciao" {
		t.Errorf("message = %q", response.Message)
	}
	if response.Usage == nil || response.Usage.TotalTokens != 7 {
		t.Errorf("usage = %+v", response.Usage)
	}
	if len(response.ToolResults) != 0 {
		t.Error("adapter must not populate tool results")
	}
}

func TestInvokeParsesFunctionCalls(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{
			"candidates": [{"content": {"role": "model", "parts": [
				{"functionCall": {"name": "get_weather", "args": {"city": "Rome"}}},
				{"functionCall": {"name": "add", "args": {"a": 2, "b": 3}}}
			]}, "finishReason": "STOP"}]
		}`))
	}))
	defer server.Close()

	response, err := newTestAdapter(server).Invoke(context.Background(), ai.Request{Prompt: "weather?"})
	if err != nil {
		t.Fatal(err)
	}

	if len(response.ToolCalls) != 2 {
		t.Fatalf("tool calls = %d, want 2", len(response.ToolCalls))
	}
	if response.ToolCalls[0].Name != "get_weather" || response.ToolCalls[1].Name != "add" {
		t.Errorf("order: %v, %v", response.ToolCalls[0].Name, response.ToolCalls[1].Name)
	}
	if city, _ := response.ToolCalls[0].Arg("city"); city != "Rome" {
		t.Errorf("city = %v", city)
	}
}

func TestInvokeRequiresAPIKey(t *testing.T) {
	a := New()
	a.WithAPIKey("")
	if _, err := a.Invoke(context.Background(), ai.Request{Prompt: "hi"}); err == nil {
		t.Fatal("expected error without API key")
	}
}

func TestInvokePropagatesHTTPErrors(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error": {"status": "PERMISSION_DENIED"}}`, http.StatusForbidden)
	}))
	defer server.Close()

	if _, err := newTestAdapter(server).Invoke(context.Background(), ai.Request{Prompt: "hi"}); err == nil {
		t.Fatal("expected error for 403 response")
	}
}
