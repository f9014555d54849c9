package query

import (
	"context"
	"log/slog"

	"github.com/openai/openai-go/v3/responses"

	"github.com/n0madic/gpt5-mcp/internal/config"
	"github.com/n0madic/gpt5-mcp/internal/normalize"
	"github.com/n0madic/gpt5-mcp/internal/types"
	"github.com/n0madic/gpt5-mcp/internal/upstream"
)

// FallbackText is returned when the model produced no output text.
const FallbackText = "No response text available."

// Responder performs a single Responses API call. *upstream.Client implements it.
type Responder interface {
	Create(ctx context.Context, req types.ProviderRequest) (*responses.Response, error)
}

var _ Responder = (*upstream.Client)(nil)

// Result is the outcome of one tool invocation. Failures are carried as
// data: Text holds "Error: <message>" and IsError is set.
type Result struct {
	Text    string
	IsError bool
}

// Executor runs gpt5_query invocations against a Responder.
// It holds no per-call state and is safe for concurrent use.
type Executor struct {
	Config    *config.Config
	Responder Responder
}

// NewExecutor creates an Executor sharing cfg and r across invocations.
func NewExecutor(cfg *config.Config, r Responder) *Executor {
	return &Executor{Config: cfg, Responder: r}
}

// Run normalizes in and executes the resulting request.
func (e *Executor) Run(ctx context.Context, in types.QueryInput) Result {
	return e.Execute(ctx, normalize.BuildRequest(in, e.Config))
}

// Execute performs exactly one upstream call with req and extracts its text.
func (e *Executor) Execute(ctx context.Context, req types.ProviderRequest) Result {
	resp, err := e.Responder.Create(ctx, req)
	if err != nil {
		msg := errorMessage(err)
		slog.Error("error calling OpenAI API",
			"request_id", upstream.RequestID(ctx),
			"model", req.Model,
			"error", msg,
		)
		return Result{Text: "Error: " + msg, IsError: true}
	}
	return Result{Text: outputText(resp)}
}

func outputText(resp *responses.Response) string {
	if resp == nil {
		return FallbackText
	}
	if text := resp.OutputText(); text != "" {
		return text
	}
	return FallbackText
}
