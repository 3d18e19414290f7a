package gateways

import "context"

// GenerateOptions tunes a single completion.
type GenerateOptions struct {
	Temperature float64
	MaxTokens   int
}

// LanguageModel is the text-generation backend the inquiry extractor depends on.
type LanguageModel interface {
	// ListModels enumerates the models installed on the backend.
	ListModels(ctx context.Context) ([]string, error)

	// Generate sends a single user prompt to model and returns the full reply text.
	Generate(ctx context.Context, model, prompt string, opts GenerateOptions) (string, error)
}
