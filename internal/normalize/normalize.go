package normalize

import (
	"strings"

	"github.com/n0madic/gpt5-mcp/internal/config"
	"github.com/n0madic/gpt5-mcp/internal/reasoning"
	"github.com/n0madic/gpt5-mcp/internal/types"
)

// BuildRequest maps a tool call onto a Responses API request. Caller values win
// over cfg defaults; anything resolved by neither is left out of the request.
// It performs no I/O and returns the same request for the same arguments.
func BuildRequest(in types.QueryInput, cfg *config.Config) types.ProviderRequest {
	if cfg == nil {
		cfg = &config.Config{}
	}

	model := strings.TrimSpace(in.Model)
	if model == "" {
		model = cfg.Model
	}

	// The low alias is applied before the web search rule looks at the effort.
	effort := reasoning.ResolveEffort(in.ReasoningEffort, cfg.ReasoningEffort)

	webEnabled := cfg.WebSearchDefaultEnabled
	var searchContextSize types.SearchContextSize
	if in.WebSearch != nil {
		webEnabled = types.BoolOr(in.WebSearch.Enabled, webEnabled)
		searchContextSize = in.WebSearch.SearchContextSize
	}
	if searchContextSize == "" {
		searchContextSize = cfg.WebSearchContextSize
	}

	effort = reasoning.EnforceWebSearchCompat(effort, webEnabled)

	verbosity := in.Verbosity
	if verbosity == "" {
		verbosity = cfg.Verbosity
	}

	toolChoice := in.ToolChoice
	if toolChoice == "" {
		toolChoice = types.ToolChoiceAuto
	}

	req := types.ProviderRequest{
		Model:             model,
		Input:             in.Query,
		ToolChoice:        toolChoice,
		ParallelToolCalls: types.BoolOr(in.ParallelToolCalls, true),
	}
	if in.System != "" {
		req.Instructions = in.System
	}
	if tools := buildTools(webEnabled, searchContextSize); len(tools) > 0 {
		req.Tools = tools
	}
	if effort != "" {
		req.Reasoning = &types.Reasoning{Effort: effort}
	}
	if verbosity != "" {
		req.Text = &types.TextConfig{Verbosity: verbosity}
	}
	if in.MaxOutputTokens > 0 {
		req.MaxOutputTokens = in.MaxOutputTokens
	}
	return req
}
