package tools

import (
	"context"
	"fmt"
	"strings"

	"github.com/omnigraph/kgent/core/toolbox"
	"github.com/tmc/langchaingo/tools/duckduckgo"
	"mvdan.cc/xurls/v2"
)

// Search queries DuckDuckGo and appends the distinct URLs found in the
// results so the model can cite its sources.
func Search(results int, userAgent string) toolbox.Tool {
	return func(ctx context.Context, args string) (string, error) {
		ddg, err := duckduckgo.New(results, userAgent)
		if err != nil {
			return "", err
		}

		res, err := ddg.Call(ctx, strings.TrimSpace(args))
		if err != nil {
			return "", err
		}

		urls := xurls.Strict().FindAllString(res, -1)
		if len(urls) == 0 {
			return res, nil
		}

		seen := map[string]bool{}
		sources := []string{}
		for _, u := range urls {
			if !seen[u] {
				seen[u] = true
				sources = append(sources, u)
			}
		}

		return fmt.Sprintf("%s\n\nSources:\n%s", res, strings.Join(sources, "\n")), nil
	}
}
