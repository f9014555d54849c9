package reasoning

import (
	"strings"

	"github.com/n0madic/gpt5-mcp/internal/types"
)

// ResolveEffort picks the caller's effort over the configured default and
// maps the caller-facing "low" tier onto the API's "minimal".
// It returns "" when neither value is set.
func ResolveEffort(override, fallback types.ReasoningEffort) types.ReasoningEffort {
	effort := normalizeEffort(override)
	if effort == "" {
		effort = normalizeEffort(fallback)
	}
	if effort == types.EffortLow {
		return types.EffortMinimal
	}
	return effort
}

// EnforceWebSearchCompat upgrades "minimal" to "medium" when web search is on.
// The Responses API rejects web_search tools together with minimal effort.
// It must see the effort after ResolveEffort has applied the low alias.
func EnforceWebSearchCompat(effort types.ReasoningEffort, webEnabled bool) types.ReasoningEffort {
	if effort == types.EffortMinimal && webEnabled {
		return types.EffortMedium
	}
	return effort
}

func normalizeEffort(e types.ReasoningEffort) types.ReasoningEffort {
	return types.ReasoningEffort(strings.ToLower(strings.TrimSpace(string(e))))
}
