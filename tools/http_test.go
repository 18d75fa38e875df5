package tools

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestHTTPGetTool(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("hello from server"))
	}))
	defer server.Close()

	tool := NewHTTPGetTool(HTTPGetConfig{})
	result, err := tool.Run(context.Background(), map[string]interface{}{"url": server.URL})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !result.Success {
		t.Fatalf("expected success, got %+v", result)
	}
	if result.Output != "hello from server" {
		t.Errorf("expected body, got %q", result.Output)
	}
}

func TestHTTPGetToolStatusError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nothing here", http.StatusNotFound)
	}))
	defer server.Close()

	tool := NewHTTPGetTool(HTTPGetConfig{})
	result, err := tool.Run(context.Background(), map[string]interface{}{"url": server.URL + "/missing"})
	if err != nil {
		t.Fatalf("expected clean failure result, got error: %v", err)
	}
	if result.Success {
		t.Fatalf("expected failure for 404, got %+v", result)
	}
	if !strings.Contains(result.Error, "404") {
		t.Errorf("expected status in error, got %q", result.Error)
	}
	if !strings.Contains(result.Error, "nothing here") {
		t.Errorf("expected body in error, got %q", result.Error)
	}
}

func TestHTTPGetToolTruncates(t *testing.T) {
	body := strings.Repeat("x", 64)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(body))
	}))
	defer server.Close()

	tool := NewHTTPGetTool(HTTPGetConfig{MaxBytes: 10})
	result, err := tool.Run(context.Background(), map[string]interface{}{"url": server.URL})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.HasPrefix(result.Output, strings.Repeat("x", 10)) {
		t.Errorf("expected capped body, got %q", result.Output)
	}
	if !strings.Contains(result.Output, "[WARNING: Response was truncated at 10 bytes.]") {
		t.Errorf("expected truncation warning, got %q", result.Output)
	}
}

func TestHTTPGetToolRejectsBadURLs(t *testing.T) {
	tool := NewHTTPGetTool(HTTPGetConfig{})

	tests := []struct {
		name string
		url  string
		want string
	}{
		{"unsupported scheme", "ftp://example.com/file", "only http and https"},
		{"missing host", "http://", "missing hostname"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := tool.Run(context.Background(), map[string]interface{}{"url": tt.url})
			if err != nil {
				t.Fatalf("expected clean failure result, got error: %v", err)
			}
			if result.Success {
				t.Fatalf("expected failure, got %+v", result)
			}
			if !strings.Contains(result.Error, tt.want) {
				t.Errorf("expected %q in error, got %q", tt.want, result.Error)
			}
		})
	}
}

func TestHTTPGetToolMissingURL(t *testing.T) {
	tool := NewHTTPGetTool(HTTPGetConfig{})
	result, err := tool.Run(context.Background(), map[string]interface{}{})
	if err != nil {
		t.Fatalf("expected clean failure result, got error: %v", err)
	}
	if result.Success || !strings.Contains(result.Error, "url is required") {
		t.Errorf("expected missing-url failure, got %+v", result)
	}
}

func TestHTTPGetToolConnectionError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := server.URL
	server.Close()

	tool := NewHTTPGetTool(HTTPGetConfig{})
	_, err := tool.Run(context.Background(), map[string]interface{}{"url": url})
	if err == nil {
		t.Fatal("expected error for unreachable server")
	}
}
