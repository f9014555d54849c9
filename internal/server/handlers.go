package server

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/mark3labs/mcp-go/mcp"

	"github.com/n0madic/gpt5-mcp/internal/types"
	"github.com/n0madic/gpt5-mcp/internal/upstream"
)

// handleQuery serves gpt5_query. Every outcome, including invalid arguments
// and upstream failures, is returned as a tool result rather than an error.
func (s *Server) handleQuery(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	invocationID := uuid.NewString()
	ctx = upstream.WithRequestID(ctx, invocationID)

	in, err := decodeQueryInput(req.GetArguments())
	if err != nil {
		slog.Warn("tool.invalid_input", "tool", QueryToolName, "invocation_id", invocationID, "error", err)
		return mcp.NewToolResultError(err.Error()), nil
	}

	start := time.Now()
	res := s.Executor.Run(ctx, in)
	slog.Debug("tool.call",
		"tool", QueryToolName,
		"invocation_id", invocationID,
		"is_error", res.IsError,
		"text_chars", len(res.Text),
		"elapsed", time.Since(start).Round(time.Millisecond),
	)

	if res.IsError {
		return mcp.NewToolResultError(res.Text), nil
	}
	return mcp.NewToolResultText(res.Text), nil
}

// decodeQueryInput accepts either {"input": {...}} or the QueryInput fields
// at the top level, then validates the result.
func decodeQueryInput(args map[string]any) (types.QueryInput, error) {
	var in types.QueryInput
	if args == nil {
		return in, fmt.Errorf("%w: missing arguments", types.ErrInvalidInput)
	}

	var payload any = args
	if wrapped, ok := args["input"]; ok {
		payload = wrapped
	}
	if _, ok := payload.(map[string]any); !ok {
		return in, fmt.Errorf("%w: input must be an object", types.ErrInvalidInput)
	}

	raw, err := json.Marshal(payload)
	if err != nil {
		return in, fmt.Errorf("%w: %v", types.ErrInvalidInput, err)
	}
	if err := json.Unmarshal(raw, &in); err != nil {
		return in, fmt.Errorf("%w: %v", types.ErrInvalidInput, err)
	}
	if err := in.Validate(); err != nil {
		return in, err
	}
	return in, nil
}
