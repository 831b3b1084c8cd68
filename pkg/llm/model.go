package llm

import (
	"context"
	"fmt"

	"github.com/omnigraph/kgent/core/types"
	"github.com/omnigraph/kgent/pkg/xlog"
	"github.com/sashabaranov/go-openai"
)

// ChatClient is the slice of the OpenAI client the model adapter needs.
type ChatClient interface {
	CreateChatCompletion(ctx context.Context, req openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error)
}

// OpenAI adapts a chat-completion backend to the agent's Model boundary:
// the whole rendered prompt goes out as a single user message and the
// first choice's content comes back verbatim for the decision parser.
type OpenAI struct {
	client ChatClient
	model  string
}

func NewOpenAI(client ChatClient, model string) *OpenAI {
	return &OpenAI{
		client: client,
		model:  model,
	}
}

func (o *OpenAI) Complete(ctx context.Context, prompt string, meta types.ModelMeta) (string, error) {
	resp, err := o.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: o.model,
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleUser,
				Content: prompt,
			},
		},
	})
	if err != nil {
		return "", err
	}

	if len(resp.Choices) != 1 {
		return "", fmt.Errorf("no choices: %d", len(resp.Choices))
	}

	xlog.Debug("Model response", "step", meta.Step, "content", resp.Choices[0].Message.Content)
	return resp.Choices[0].Message.Content, nil
}
