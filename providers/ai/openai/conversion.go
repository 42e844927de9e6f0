package openai

import (
	"encoding/json"
	"fmt"

	"github.com/synapticlabs/synaptic/core/memory"
	"github.com/synapticlabs/synaptic/core/parse"
	"github.com/synapticlabs/synaptic/core/tool"
	"github.com/synapticlabs/synaptic/providers/ai"
)

// requestToChat converts a generic ai.Request into the chat-completions wire
// format. Instructions become a leading system message; history entries are
// rendered in order; the prompt is appended last under its requested role.
func requestToChat(request ai.Request, model string) chatRequest {
	req := chatRequest{Model: model}

	if request.Instructions != "" {
		req.Messages = append(req.Messages, chatMessage{
			Role:    string(memory.RoleSystem),
			Content: request.Instructions,
		})
	}

	if request.History != nil {
		for _, entry := range request.History.Entries() {
			req.Messages = append(req.Messages, renderEntry(entry))
		}
	}

	role := request.Role
	if role == "" {
		role = memory.RoleUser
	}
	req.Messages = append(req.Messages, chatMessage{
		Role:    string(role),
		Content: request.Prompt,
	})

	if request.Generation != nil {
		req.Temperature = request.Generation.Temperature
		req.MaxTokens = request.Generation.MaxTokens
	}

	// Structured output and function calling are mutually exclusive: when a
	// response format is requested, tools are not sent.
	if request.ResponseFormat != nil {
		name := request.ResponseFormat.Name
		if name == "" {
			name = "response"
		}
		req.ResponseFormat = &chatResponseFormat{
			Type: "json_schema",
			JSONSchema: &chatJSONSchema{
				Name:   name,
				Schema: request.ResponseFormat.Schema,
				Strict: true,
			},
		}
		return req
	}

	for _, t := range request.Tools {
		req.Tools = append(req.Tools, chatTool{
			Type: "function",
			Function: chatFunction{
				Name:        t.Name,
				Description: t.Declaration.Description,
				Parameters:  t.Declaration,
			},
		})
	}

	return req
}

// renderEntry flattens one history entry into a chat message. Tool calls and
// results recorded on a response turn are appended to the content as a JSON
// annotation, so the model sees what it previously requested and what came
// back without this adapter having to replay vendor tool-call IDs.
func renderEntry(entry memory.Entry) chatMessage {
	base := entry.Base()
	content := base.Message

	if response, ok := entry.(*memory.ResponseMem); ok {
		if len(response.ToolCalls) > 0 {
			if calls, err := json.Marshal(response.ToolCalls); err == nil {
				content += "\nTool calls: " + string(calls)
			}
		}
		if len(response.ToolResults) > 0 {
			if results, err := json.Marshal(response.ToolResults); err == nil {
				content += "\nTool results: " + string(results)
			}
		}
	}

	role := base.Role
	if !role.Valid() {
		role = memory.RoleUser
	}
	return chatMessage{Role: string(role), Content: content}
}

// responseToMem parses the vendor reply into a normalized ResponseMem,
// stamping Created and decoding each tool call's argument payload. ToolResults
// is left empty: execution belongs to the model, not the adapter.
func responseToMem(resp chatResponse) (*memory.ResponseMem, error) {
	if len(resp.Choices) == 0 {
		return nil, fmt.Errorf("no choices in response")
	}
	choice := resp.Choices[0]

	var calls []tool.Call
	for _, tc := range choice.Message.ToolCalls {
		args, err := parse.Args(tc.Function.Arguments)
		if err != nil {
			return nil, fmt.Errorf("tool call %q: %w", tc.Function.Name, err)
		}
		calls = append(calls, tool.Call{Name: tc.Function.Name, Args: args})
	}

	response := memory.NewResponseMem(choice.Message.Content, calls)
	if resp.Usage != nil {
		response.Usage = &memory.Usage{
			PromptTokens:     resp.Usage.PromptTokens,
			CompletionTokens: resp.Usage.CompletionTokens,
			TotalTokens:      resp.Usage.TotalTokens,
		}
	}
	return response, nil
}
