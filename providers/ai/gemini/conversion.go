package gemini

import (
	"encoding/json"
	"strings"

	"github.com/synapticlabs/synaptic/core/memory"
	"github.com/synapticlabs/synaptic/core/parse"
	"github.com/synapticlabs/synaptic/core/tool"
	"github.com/synapticlabs/synaptic/providers/ai"
)

// requestToGemini converts a generic ai.Request into Gemini's
// generateContent wire format. Role mapping: user -> user, assistant ->
// model, system -> systemInstruction.
func requestToGemini(request ai.Request) generateContentRequest {
	req := generateContentRequest{}

	if request.Instructions != "" {
		req.SystemInstruction = &systemInstruction{
			Parts: []part{{Text: request.Instructions}},
		}
	}

	if request.History != nil {
		for _, entry := range request.History.Entries() {
			req.Contents = append(req.Contents, entryToContent(entry))
		}
	}

	req.Contents = append(req.Contents, content{
		Role:  mapRole(request.Role),
		Parts: []part{{Text: request.Prompt}},
	})

	if request.Generation != nil {
		req.GenerationConfig = &generationConfig{
			Temperature:     request.Generation.Temperature,
			MaxOutputTokens: request.Generation.MaxTokens,
		}
	}

	// JSON mode replaces function calling, mirroring the OpenAI adapter.
	if request.ResponseFormat != nil {
		if req.GenerationConfig == nil {
			req.GenerationConfig = &generationConfig{}
		}
		req.GenerationConfig.ResponseMimeType = "application/json"
		req.GenerationConfig.ResponseSchema = request.ResponseFormat.Schema
		return req
	}

	if len(request.Tools) > 0 {
		declarations := make([]functionDeclaration, 0, len(request.Tools))
		for _, t := range request.Tools {
			declarations = append(declarations, functionDeclaration{
				Name:        t.Name,
				Description: t.Declaration.Description,
				Parameters:  t.Declaration,
			})
		}
		req.Tools = []geminiTool{{FunctionDeclarations: declarations}}
	}

	return req
}

// entryToContent flattens one history entry into a Gemini content block.
// Recorded tool calls become functionCall parts on the model turn; recorded
// results become a trailing text annotation, since this core stores results
// on the response turn rather than as separate protocol messages.
func entryToContent(entry memory.Entry) content {
	base := entry.Base()

	response, ok := entry.(*memory.ResponseMem)
	if !ok {
		return content{
			Role:  mapRole(base.Role),
			Parts: []part{{Text: base.Message}},
		}
	}

	c := content{Role: "model"}
	for _, call := range response.ToolCalls {
		args, err := json.Marshal(call.Args)
		if err != nil {
			args = []byte("{}")
		}
		c.Parts = append(c.Parts, part{
			FunctionCall: &functionCall{Name: call.Name, Args: args},
		})
	}

	text := base.Message
	if len(response.ToolResults) > 0 {
		if results, err := json.Marshal(response.ToolResults); err == nil {
			text += "\nTool results: " + string(results)
		}
	}
	if text != "" {
		c.Parts = append(c.Parts, part{Text: text})
	}
	if len(c.Parts) == 0 {
		c.Parts = []part{{Text: ""}}
	}
	return c
}

// mapRole translates core roles into Gemini's two-role scheme. System turns
// inside the history are downgraded to user turns; real system instructions
// belong in systemInstruction.
func mapRole(role memory.Role) string {
	switch role {
	case memory.RoleAssistant:
		return "model"
	default:
		return "user"
	}
}

// responseToMem parses a Gemini reply into a normalized ResponseMem. Text
// parts are concatenated, functionCall parts become tool calls in the order
// the vendor returned them, and Created is stamped at parse time.
func responseToMem(resp generateContentResponse) (*memory.ResponseMem, error) {
	var texts []string
	var calls []tool.Call

	if len(resp.Candidates) > 0 {
		for _, p := range resp.Candidates[0].Content.Parts {
			if p.Text != "" {
				texts = append(texts, p.Text)
			}
			if p.FunctionCall != nil {
				args, err := parse.Args(string(p.FunctionCall.Args))
				if err != nil {
					return nil, err
				}
				calls = append(calls, tool.Call{Name: p.FunctionCall.Name, Args: args})
			}
		}
	}

	response := memory.NewResponseMem(strings.Join(texts, "\n"), calls)
	if resp.UsageMetadata != nil {
		response.Usage = &memory.Usage{
			PromptTokens:     resp.UsageMetadata.PromptTokenCount,
			CompletionTokens: resp.UsageMetadata.CandidatesTokenCount,
			TotalTokens:      resp.UsageMetadata.TotalTokenCount,
		}
	}
	return response, nil
}
