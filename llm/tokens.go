package llm

import (
	"sync"

	"github.com/pkoukk/tiktoken-go"
)

var (
	encodingOnce sync.Once
	encoding     *tiktoken.Tiktoken
)

func tokenEncoding() *tiktoken.Tiktoken {
	encodingOnce.Do(func() {
		// cl100k_base is close enough across the providers we route to.
		enc, err := tiktoken.GetEncoding("cl100k_base")
		if err != nil {
			return
		}
		encoding = enc
	})
	return encoding
}

// CountTokens estimates the token count of text. It uses a tiktoken
// encoding when available and falls back to a bytes/4 approximation when
// the encoding cannot be loaded (for example, offline).
func CountTokens(text string) int {
	if text == "" {
		return 0
	}
	if enc := tokenEncoding(); enc != nil {
		return len(enc.Encode(text, nil, nil))
	}
	return len(text) / 4
}

// estimateRequestTokens approximates the prompt size of a request.
func estimateRequestTokens(req Request) int {
	total := 0
	for _, msg := range req.Messages {
		total += CountTokens(msg.Content)
	}
	if total == 0 {
		total = 10
	}
	return total
}
