package tools

import (
	"context"
	"strings"

	"github.com/omnigraph/kgent/core/toolbox"
	"github.com/tmc/langchaingo/tools/wikipedia"
)

// Wikipedia looks up pages through the Wikipedia API. The raw argument
// string is used as the query verbatim.
func Wikipedia(userAgent string) toolbox.Tool {
	return func(ctx context.Context, args string) (string, error) {
		wiki := wikipedia.New(userAgent)
		return wiki.Call(ctx, strings.TrimSpace(args))
	}
}
