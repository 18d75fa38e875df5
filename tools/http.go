package tools

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/openonion/connectonion-go/agent"
	"github.com/openonion/connectonion-go/llm"
)

// HTTPGetConfig configures an HTTPGetTool.
type HTTPGetConfig struct {
	Timeout  time.Duration // request timeout, 30s when zero
	MaxBytes int           // response size cap, 50000 when zero
}

// HTTPGetTool fetches a URL over HTTP(S) and returns the response body,
// truncated to the configured size cap.
type HTTPGetTool struct {
	client   *http.Client
	maxBytes int
}

func NewHTTPGetTool(cfg HTTPGetConfig) *HTTPGetTool {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	maxBytes := cfg.MaxBytes
	if maxBytes <= 0 {
		maxBytes = 50000
	}
	return &HTTPGetTool{
		client:   &http.Client{Timeout: timeout},
		maxBytes: maxBytes,
	}
}

func (t *HTTPGetTool) Name() string { return "http_get" }

func (t *HTTPGetTool) Description() string {
	return "Fetch a URL with an HTTP GET request and return the response body."
}

func (t *HTTPGetTool) Schema() llm.FunctionSchema {
	return llm.FunctionSchema{
		Name:        t.Name(),
		Description: t.Description(),
		Parameters: map[string]interface{}{
			"type": "object",
			"properties": map[string]interface{}{
				"url": map[string]interface{}{
					"type":        "string",
					"description": "HTTP or HTTPS URL to fetch.",
				},
			},
			"required": []string{"url"},
		},
	}
}

func (t *HTTPGetTool) Run(ctx context.Context, params map[string]interface{}) (agent.ToolResult, error) {
	rawURL, ok := agent.GetStringArg(params, "url")
	if !ok || rawURL == "" {
		return agent.ErrorResult("url is required"), nil
	}

	parsed, err := url.Parse(rawURL)
	if err != nil {
		return agent.ErrorResult("invalid URL: %v", err), nil
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return agent.ErrorResult("only http and https URLs are supported"), nil
	}
	if parsed.Host == "" {
		return agent.ErrorResult("missing hostname in URL"), nil
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return agent.ToolResult{}, fmt.Errorf("build request: %w", err)
	}

	resp, err := t.client.Do(req)
	if err != nil {
		return agent.ToolResult{}, fmt.Errorf("fetch %s: %w", rawURL, err)
	}
	defer resp.Body.Close()

	// Read one byte past the cap to know whether we truncated.
	body, err := io.ReadAll(io.LimitReader(resp.Body, int64(t.maxBytes)+1))
	if err != nil {
		return agent.ToolResult{}, fmt.Errorf("read response from %s: %w", rawURL, err)
	}

	text := string(body)
	if len(body) > t.maxBytes {
		text = text[:t.maxBytes] + fmt.Sprintf("\n\n[WARNING: Response was truncated at %d bytes.]", t.maxBytes)
	}

	if resp.StatusCode >= 400 {
		return agent.ErrorResult("GET %s returned %s:\n%s", rawURL, resp.Status, text), nil
	}
	return agent.NewResult(text), nil
}
