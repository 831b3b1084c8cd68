package tools

import (
	"context"
	"encoding/json"

	"github.com/omnigraph/kgent/core/memory"
	"github.com/omnigraph/kgent/core/toolbox"
)

// Recall exposes the agent's own memory log to the model. The raw argument
// string is a top-level field name; an empty argument returns the whole
// log.
func Recall(mem *memory.Memory) toolbox.Tool {
	return func(ctx context.Context, args string) (string, error) {
		var records []memory.Record
		if args == "" {
			records = mem.All()
		} else {
			records = mem.Query(args)
		}

		out, err := json.Marshal(records)
		if err != nil {
			return "", err
		}
		return string(out), nil
	}
}
