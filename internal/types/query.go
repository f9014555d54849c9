package types

// ReasoningEffort is the reasoning.effort knob of the Responses API.
// EffortLow is accepted from callers only; the normalizer rewrites it to EffortMinimal.
type ReasoningEffort string

const (
	EffortLow     ReasoningEffort = "low"
	EffortMinimal ReasoningEffort = "minimal"
	EffortMedium  ReasoningEffort = "medium"
	EffortHigh    ReasoningEffort = "high"
)

// Verbosity is the text.verbosity knob of the Responses API.
type Verbosity string

const (
	VerbosityLow    Verbosity = "low"
	VerbosityMedium Verbosity = "medium"
	VerbosityHigh   Verbosity = "high"
)

// ToolChoice selects whether the model may call tools.
type ToolChoice string

const (
	ToolChoiceAuto ToolChoice = "auto"
	ToolChoiceNone ToolChoice = "none"
)

// SearchContextSize hints how much web search context the model should gather.
type SearchContextSize string

const (
	SearchContextLow    SearchContextSize = "low"
	SearchContextMedium SearchContextSize = "medium"
	SearchContextHigh   SearchContextSize = "high"
)

// QueryInput is the argument object of the gpt5_query tool.
// Empty strings and nil pointers mean the caller did not supply the field.
type QueryInput struct {
	Query             string          `json:"query" validate:"required"`
	Model             string          `json:"model,omitempty"`
	System            string          `json:"system,omitempty"`
	ReasoningEffort   ReasoningEffort `json:"reasoning_effort,omitempty" validate:"omitempty,oneof=low minimal medium high"`
	Verbosity         Verbosity       `json:"verbosity,omitempty" validate:"omitempty,oneof=low medium high"`
	ToolChoice        ToolChoice      `json:"tool_choice,omitempty" validate:"omitempty,oneof=auto none"`
	ParallelToolCalls *bool           `json:"parallel_tool_calls,omitempty"`
	MaxOutputTokens   int64           `json:"max_output_tokens,omitempty" validate:"omitempty,gt=0"`
	WebSearch         *WebSearchInput `json:"web_search,omitempty"`
}

// WebSearchInput carries per-call web search overrides.
type WebSearchInput struct {
	Enabled           *bool             `json:"enabled,omitempty"`
	SearchContextSize SearchContextSize `json:"search_context_size,omitempty" validate:"omitempty,oneof=low medium high"`
}

// Valid reports whether e is one of the caller-facing effort values.
func (e ReasoningEffort) Valid() bool {
	switch e {
	case EffortLow, EffortMinimal, EffortMedium, EffortHigh:
		return true
	}
	return false
}

// Valid reports whether v is a known verbosity.
func (v Verbosity) Valid() bool {
	switch v {
	case VerbosityLow, VerbosityMedium, VerbosityHigh:
		return true
	}
	return false
}

// Valid reports whether s is a known search context size.
func (s SearchContextSize) Valid() bool {
	switch s {
	case SearchContextLow, SearchContextMedium, SearchContextHigh:
		return true
	}
	return false
}
