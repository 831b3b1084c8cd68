package llm

import (
	"net/http"
	"time"

	"github.com/sashabaranov/go-openai"
)

// NewClient builds a client for any OpenAI-compatible endpoint. The timeout
// string is parsed as a duration; an unparsable value falls back to 150s.
func NewClient(apiKey, url, timeout string) *openai.Client {
	if apiKey == "" {
		apiKey = "sk-xxx"
	}
	config := openai.DefaultConfig(apiKey)
	config.BaseURL = url

	dur, err := time.ParseDuration(timeout)
	if err != nil {
		dur = 150 * time.Second
	}

	config.HTTPClient = &http.Client{
		Timeout: dur,
	}
	return openai.NewClientWithConfig(config)
}
