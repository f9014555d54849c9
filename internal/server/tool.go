package server

import (
	"encoding/json"

	"github.com/mark3labs/mcp-go/mcp"
)

const (
	QueryToolName        = "gpt5_query"
	queryToolDescription = "Query GPT-5 with optional Web Search Preview. Supports verbosity and reasoning effort."
)

// queryInputSchema describes types.QueryInput.
var queryInputSchema = map[string]any{
	"type":     "object",
	"required": []string{"query"},
	"properties": map[string]any{
		"query": map[string]any{
			"type":        "string",
			"minLength":   1,
			"description": "User question or instruction",
		},
		"model": map[string]any{
			"type":        "string",
			"description": "Model name, e.g. gpt-5",
		},
		"system": map[string]any{
			"type":        "string",
			"description": "Optional system prompt/instructions for the model",
		},
		"reasoning_effort": map[string]any{
			"type": "string",
			"enum": []string{"low", "minimal", "medium", "high"},
		},
		"verbosity": map[string]any{
			"type": "string",
			"enum": []string{"low", "medium", "high"},
		},
		"tool_choice": map[string]any{
			"type": "string",
			"enum": []string{"auto", "none"},
		},
		"parallel_tool_calls": map[string]any{
			"type": "boolean",
		},
		"max_output_tokens": map[string]any{
			"type":             "integer",
			"exclusiveMinimum": 0,
		},
		"web_search": map[string]any{
			"type": "object",
			"properties": map[string]any{
				"enabled": map[string]any{"type": "boolean"},
				"search_context_size": map[string]any{
					"type": "string",
					"enum": []string{"low", "medium", "high"},
				},
			},
		},
	},
}

// newQueryTool returns the gpt5_query tool definition. Arguments are wrapped
// in an "input" object.
func newQueryTool() mcp.Tool {
	schema := map[string]any{
		"type":       "object",
		"required":   []string{"input"},
		"properties": map[string]any{"input": queryInputSchema},
	}
	raw, err := json.Marshal(schema)
	if err != nil {
		panic("server: marshal tool schema: " + err.Error())
	}
	return mcp.NewToolWithRawSchema(QueryToolName, queryToolDescription, raw)
}
