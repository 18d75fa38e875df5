package llm

import "context"

// LLM is the completion interface the orchestration layer depends on. A
// Completion error means the request itself failed; callers decide whether
// to retry or propagate.
type LLM interface {
	Complete(ctx context.Context, req Request) (*Completion, error)
}

// ProviderAdapter is an LLM bound to a named provider. Adapters are
// registered on a Client, which routes requests to them by name.
type ProviderAdapter interface {
	LLM
	Name() string
}

// Closer is implemented by adapters that hold releasable resources.
type Closer interface {
	Close() error
}
