package llm

import (
	"errors"
	"fmt"
)

// ErrMissingCredentials is returned by ResolveConfig when neither credential
// variable is set. The message names both so the user knows what to export.
var ErrMissingCredentials = errors.New("no API key found: set OPENROUTER_API_KEY or OPENAI_API_KEY")

// ErrEmptyCompletion is returned when the provider answers with a success
// status but no choices.
var ErrEmptyCompletion = errors.New("provider returned no choices")

// ProviderError is a non-success answer from the chat endpoint. Body carries
// the raw response text so auth failures and rate limits stay diagnosable.
type ProviderError struct {
	StatusCode int
	Body       string
}

func (e *ProviderError) Error() string {
	return fmt.Sprintf("provider returned status %d: %s", e.StatusCode, e.Body)
}
