package ai

import "context"

// Disabled stands in for the provider when no API key is configured.
type Disabled struct{}

func (Disabled) Verify(context.Context, VerifyRequest) (Verification, error) {
	return Verification{}, ErrNotConfigured
}

func (Disabled) Suggest(context.Context, SuggestRequest) ([]Suggestion, error) {
	return nil, ErrNotConfigured
}
