package types

import "context"

// ModelMeta is the per-call metadata handed to the language model
// collaborator alongside the prompt.
type ModelMeta struct {
	Step int
}

// Model is the language-model boundary of the agent loop. It is
// function-shaped on purpose: concrete backends (OpenAI-compatible APIs,
// test stubs) are swapped without touching the loop.
type Model interface {
	Complete(ctx context.Context, prompt string, meta ModelMeta) (string, error)
}

// ModelFunc adapts a plain function to the Model interface.
type ModelFunc func(ctx context.Context, prompt string, meta ModelMeta) (string, error)

func (f ModelFunc) Complete(ctx context.Context, prompt string, meta ModelMeta) (string, error) {
	return f(ctx, prompt, meta)
}
