package normalize

import "github.com/n0madic/gpt5-mcp/internal/types"

// buildTools returns the hosted tools for a request, or nil when none apply.
func buildTools(webEnabled bool, searchContextSize types.SearchContextSize) []types.Tool {
	var tools []types.Tool
	if webEnabled {
		tools = append(tools, types.WebSearchPreviewTool{SearchContextSize: searchContextSize})
	}
	return tools
}
