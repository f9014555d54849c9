package types

import "encoding/json"

// ProviderRequest is the normalized payload for POST /v1/responses.
// Optional fields use their zero value for "absent" and are omitted on the wire.
type ProviderRequest struct {
	Model             string      `json:"model"`
	Input             string      `json:"input"`
	Instructions      string      `json:"instructions,omitempty"`
	Tools             []Tool      `json:"tools,omitempty"`
	ToolChoice        ToolChoice  `json:"tool_choice"`
	ParallelToolCalls bool        `json:"parallel_tool_calls"`
	Reasoning         *Reasoning  `json:"reasoning,omitempty"`
	Text              *TextConfig `json:"text,omitempty"`
	MaxOutputTokens   int64       `json:"max_output_tokens,omitempty"`
}

// Reasoning is the reasoning object of a Responses request.
type Reasoning struct {
	Effort ReasoningEffort `json:"effort"`
}

// TextConfig is the text object of a Responses request.
type TextConfig struct {
	Verbosity Verbosity `json:"verbosity"`
}

// Tool is a closed set of hosted tool descriptors. New kinds are added as
// new implementations inside this package.
type Tool interface {
	ToolType() string
	isTool()
}

// WebSearchPreviewTool enables the provider-side web_search_preview tool.
type WebSearchPreviewTool struct {
	SearchContextSize SearchContextSize
}

func (WebSearchPreviewTool) ToolType() string { return "web_search_preview" }
func (WebSearchPreviewTool) isTool()          {}

// MarshalJSON adds the type discriminator.
func (t WebSearchPreviewTool) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Type              string            `json:"type"`
		SearchContextSize SearchContextSize `json:"search_context_size,omitempty"`
	}{t.ToolType(), t.SearchContextSize})
}

// HasWebSearch reports whether the request carries a web search tool.
func (r ProviderRequest) HasWebSearch() bool {
	for _, t := range r.Tools {
		if _, ok := t.(WebSearchPreviewTool); ok {
			return true
		}
	}
	return false
}

// ReasoningEffort returns the resolved effort, or "" when reasoning is omitted.
func (r ProviderRequest) ReasoningEffort() ReasoningEffort {
	if r.Reasoning == nil {
		return ""
	}
	return r.Reasoning.Effort
}
