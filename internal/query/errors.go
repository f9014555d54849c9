package query

import (
	"errors"
	"strings"

	openai "github.com/openai/openai-go/v3"
)

// UnknownErrorMessage is used when a failure carries no readable message.
const UnknownErrorMessage = "Unknown error"

// errorMessage extracts a human-readable message from err. API errors use
// the message field from the response body; anything else uses its own text.
func errorMessage(err error) string {
	if err == nil {
		return UnknownErrorMessage
	}
	var apiErr *openai.Error
	if errors.As(err, &apiErr) {
		if msg := strings.TrimSpace(apiErr.Message); msg != "" {
			return msg
		}
	}
	if msg := strings.TrimSpace(err.Error()); msg != "" {
		return msg
	}
	return UnknownErrorMessage
}
