package gemini

import (
	"strings"
	"testing"

	"github.com/synapticlabs/synaptic/core/memory"
	"github.com/synapticlabs/synaptic/core/tool"
	"github.com/synapticlabs/synaptic/internal/jsonschema"
	"github.com/synapticlabs/synaptic/providers/ai"
)

func TestRequestToGeminiRoleMapping(t *testing.T) {
	history, err := memory.NewHistory(4)
	if err != nil {
		t.Fatal(err)
	}
	history.Add(memory.NewUserMem("question"))
	history.Add(memory.NewResponseMem("answer", nil))
	history.Add(memory.NewSystemMem("note"))

	req := requestToGemini(ai.Request{Prompt: "followup", History: history})

	if len(req.Contents) != 4 {
		t.Fatalf("contents = %d, want 4", len(req.Contents))
	}
	wantRoles := []string{"user", "model", "user", "user"}
	for i, want := range wantRoles {
		if req.Contents[i].Role != want {
			t.Errorf("contents[%d].Role = %q, want %q", i, req.Contents[i].Role, want)
		}
	}
}

func TestRequestToGeminiDeclarations(t *testing.T) {
	req := requestToGemini(ai.Request{
		Prompt: "hi",
		Tools: []*tool.Tool{{
			Name:        "greet",
			Declaration: &jsonschema.Schema{Type: "object", Description: "Greets a person."},
		}},
	})

	if len(req.Tools) != 1 || len(req.Tools[0].FunctionDeclarations) != 1 {
		t.Fatalf("tools = %+v", req.Tools)
	}
	declaration := req.Tools[0].FunctionDeclarations[0]
	if declaration.Name != "greet" || declaration.Description != "Greets a person." {
		t.Errorf("declaration = %+v", declaration)
	}
}

func TestRequestToGeminiJSONMode(t *testing.T) {
	req := requestToGemini(ai.Request{
		Prompt: "hi",
		Tools: []*tool.Tool{{
			Name:        "greet",
			Declaration: &jsonschema.Schema{Type: "object"},
		}},
		ResponseFormat: &ai.ResponseFormat{Schema: &jsonschema.Schema{Type: "object"}},
	})

	if req.Tools != nil {
		t.Error("tools must not be sent in JSON mode")
	}
	if req.GenerationConfig == nil || req.GenerationConfig.ResponseMimeType != "application/json" {
		t.Fatalf("generation config = %+v", req.GenerationConfig)
	}
	if req.GenerationConfig.ResponseSchema == nil {
		t.Error("response schema missing")
	}
}

func TestEntryToContentToolTurn(t *testing.T) {
	response := memory.NewResponseMem("looked it up",
		[]tool.Call{{Name: "get_weather", Args: map[string]any{"city": "Rome"}}})
	response.ToolResults = []tool.Result{tool.Success("get_weather", "sunny")}

	c := entryToContent(response)
	if c.Role != "model" {
		t.Errorf("role = %q", c.Role)
	}
	if c.Parts[0].FunctionCall == nil || c.Parts[0].FunctionCall.Name != "get_weather" {
		t.Errorf("function call part = %+v", c.Parts[0])
	}

	var text string
	for _, p := range c.Parts {
		text += p.Text
	}
	if !strings.Contains(text, "sunny") {
		t.Errorf("tool results missing from rendered turn: %q", text)
	}
}
