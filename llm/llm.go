package llm

import "survey-translation-service/schema"

// TokenUsage reports token accounting for a single chat call when the
// provider supplies it.
type TokenUsage struct {
	PromptTokens     int
	CompletionTokens int
	TotalTokens      int
}

// ChatResult is the provider's structured reply.
type ChatResult struct {
	Text         string
	FinishReason string
	Usage        TokenUsage
}

// Client abstracts the chat-completion provider used by the translator.
// Implementations must be concurrency-safe; the service calls Chat from
// many goroutines. Providers that cannot enforce the schema constraint may
// ignore format — the parser defends against free-form replies either way.
type Client interface {
	// Chat sends a single user-role prompt, optionally constrained to the
	// given response format, and returns the model's reply.
	Chat(prompt string, format *schema.ResponseFormat) (*ChatResult, error)
	// ModelName returns the identifier recorded in translation metadata
	// (e.g. "gpt-4o", "stub").
	ModelName() string
}
