// Package llm provides a provider-agnostic completion client built on the
// gollm library (github.com/teilomillet/gollm). It is the model-facing half
// of connectonion: the agent package drives conversations through the LLM
// interface defined here without knowing which provider answers them.
//
// # Architecture
//
//   - Types: Message, Request, Completion, and FunctionSchema, the shared
//     vocabulary between agents and providers
//   - Adapters: GollmAdapter implements ProviderAdapter on top of gollm
//   - Client: provider routing, default filling, and middleware
//   - Utilities: retry with backoff, error classification, model catalog,
//     token estimation
//
// # Quick Start
//
// Using an adapter directly:
//
//	adapter, _ := llm.NewGollmAdapter("openai", os.Getenv("OPENAI_API_KEY"))
//	resp, _ := adapter.Complete(ctx, llm.Request{
//	    Model:    "gpt-5.2",
//	    Messages: []llm.Message{llm.UserMessage("Hello")},
//	})
//	fmt.Println(resp.Content)
//
// Using a Client with middleware:
//
//	client := llm.NewClient(
//	    llm.WithProvider("openai", adapter),
//	    llm.WithMiddleware(llm.LoggingMiddleware(logger), llm.RetryMiddleware(llm.DefaultRetryPolicy())),
//	)
//	resp, err := client.Complete(ctx, req)
//
// # Errors
//
// All failures surface as typed errors rooted in LLMError. Provider
// failures carry status codes and a Retryable flag; IsRetryable and the
// Retry helper use them to decide whether another attempt can help.
//
// # Model Catalog
//
// A built-in catalog of known models maps identifiers and aliases to
// providers:
//
//	info := llm.GetModelInfo("claude-opus-4-6")
//	models := llm.ListModels("anthropic")
//	fallback := llm.DefaultModel("openai")
package llm
