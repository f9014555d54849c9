package upstream

import (
	openai "github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/responses"
	"github.com/openai/openai-go/v3/shared"

	"github.com/n0madic/gpt5-mcp/internal/types"
)

// ToSDKParams converts a normalized request into the SDK's request params.
// Fields absent from req stay unset so the SDK omits them from the body.
func ToSDKParams(req types.ProviderRequest) responses.ResponseNewParams {
	params := responses.ResponseNewParams{
		Model: shared.ResponsesModel(req.Model),
		Input: responses.ResponseNewParamsInputUnion{
			OfString: openai.String(req.Input),
		},
		ToolChoice:        toolChoiceToSDK(req.ToolChoice),
		ParallelToolCalls: openai.Bool(req.ParallelToolCalls),
	}
	if req.Instructions != "" {
		params.Instructions = openai.String(req.Instructions)
	}
	if tools := toolsToSDK(req.Tools); len(tools) > 0 {
		params.Tools = tools
	}
	if req.Reasoning != nil {
		params.Reasoning = shared.ReasoningParam{
			Effort: shared.ReasoningEffort(req.Reasoning.Effort),
		}
	}
	if req.Text != nil {
		params.Text = responses.ResponseTextConfigParam{
			Verbosity: responses.ResponseTextConfigVerbosity(req.Text.Verbosity),
		}
	}
	if req.MaxOutputTokens > 0 {
		params.MaxOutputTokens = openai.Int(req.MaxOutputTokens)
	}
	return params
}

// toolsToSDK converts tool descriptors to SDK union types.
func toolsToSDK(tools []types.Tool) []responses.ToolUnionParam {
	if len(tools) == 0 {
		return nil
	}
	out := make([]responses.ToolUnionParam, 0, len(tools))
	for _, t := range tools {
		if sdkTool, ok := toolToSDK(t); ok {
			out = append(out, sdkTool)
		}
	}
	return out
}

func toolToSDK(tool types.Tool) (responses.ToolUnionParam, bool) {
	switch t := tool.(type) {
	case types.WebSearchPreviewTool:
		p := responses.ToolParamOfWebSearchPreview(responses.WebSearchPreviewToolTypeWebSearchPreview)
		if t.SearchContextSize != "" {
			p.OfWebSearchPreview.SearchContextSize = responses.WebSearchPreviewToolSearchContextSize(t.SearchContextSize)
		}
		return p, true
	default:
		return responses.ToolUnionParam{}, false
	}
}

func toolChoiceToSDK(choice types.ToolChoice) responses.ResponseNewParamsToolChoiceUnion {
	switch choice {
	case types.ToolChoiceNone:
		return responses.ResponseNewParamsToolChoiceUnion{
			OfToolChoiceMode: openai.Opt(responses.ToolChoiceOptionsNone),
		}
	default:
		return responses.ResponseNewParamsToolChoiceUnion{
			OfToolChoiceMode: openai.Opt(responses.ToolChoiceOptionsAuto),
		}
	}
}
