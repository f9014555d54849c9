package upstream

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
	openai "github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"
	"github.com/openai/openai-go/v3/responses"

	"github.com/n0madic/gpt5-mcp/internal/config"
	"github.com/n0madic/gpt5-mcp/internal/types"
)

// RequestIDHeader carries our per-call ID so it can be matched in OpenAI logs.
const RequestIDHeader = "X-Client-Request-Id"

// Responder is the part of the SDK's ResponseService used by Client.
type Responder interface {
	New(ctx context.Context, body responses.ResponseNewParams, opts ...option.RequestOption) (*responses.Response, error)
}

// Client makes requests to the OpenAI Responses API.
type Client struct {
	Responses Responder
	Verbose   bool
}

// NewClient builds an SDK client from cfg. Retries and timeouts are handled
// entirely by the SDK using cfg.MaxRetries and cfg.Timeout.
func NewClient(cfg *config.Config) *Client {
	opts := []option.RequestOption{
		option.WithMaxRetries(cfg.MaxRetries),
		option.WithRequestTimeout(cfg.Timeout),
	}
	if cfg.APIKey != "" {
		opts = append(opts, option.WithAPIKey(cfg.APIKey))
	}
	if cfg.BaseURL != "" {
		opts = append(opts, option.WithBaseURL(cfg.BaseURL))
	}
	oc := openai.NewClient(opts...)
	return &Client{Responses: &oc.Responses, Verbose: cfg.Verbose}
}

type requestIDKey struct{}

// WithRequestID attaches an invocation ID to ctx for Create to send upstream.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey{}, id)
}

// RequestID returns the invocation ID stored in ctx, if any.
func RequestID(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey{}).(string)
	return id
}

// Create sends req to POST /responses. Errors are returned unwrapped so that
// callers see the SDK's own error values.
func (c *Client) Create(ctx context.Context, req types.ProviderRequest) (*responses.Response, error) {
	requestID := RequestID(ctx)
	if requestID == "" {
		requestID = uuid.NewString()
	}
	params := ToSDKParams(req)

	if c.Verbose {
		slog.Info("upstream.request",
			"request_id", requestID,
			"model", req.Model,
			"input_chars", len(req.Input),
			"instructions_chars", len(req.Instructions),
			"tools", len(req.Tools),
			"tool_choice", string(req.ToolChoice),
			"parallel_tool_calls", req.ParallelToolCalls,
			"reasoning_effort", string(req.ReasoningEffort()),
			"verbosity", verbosityOf(req),
			"max_output_tokens", req.MaxOutputTokens,
		)
	}

	start := time.Now()
	resp, err := c.Responses.New(ctx, params, option.WithHeader(RequestIDHeader, requestID))
	if err != nil {
		return nil, err
	}

	if c.Verbose {
		slog.Info("upstream.response",
			"request_id", requestID,
			"response_id", resp.ID,
			"status", string(resp.Status),
			"output_tokens", resp.Usage.OutputTokens,
			"elapsed", time.Since(start).Round(time.Millisecond),
		)
	}
	return resp, nil
}

func verbosityOf(req types.ProviderRequest) string {
	if req.Text == nil {
		return ""
	}
	return string(req.Text.Verbosity)
}
