package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/omnigraph/kgent/core/agent"
	"github.com/omnigraph/kgent/core/sse"
	"github.com/omnigraph/kgent/core/types"
	"github.com/omnigraph/kgent/pkg/llm"
	"github.com/omnigraph/kgent/pkg/xlog"
	"github.com/omnigraph/kgent/services/tools"
	"github.com/omnigraph/kgent/webui"
)

var model = os.Getenv("KGENT_MODEL")
var embeddingsModel = os.Getenv("KGENT_EMBEDDINGS_MODEL")
var apiURL = os.Getenv("KGENT_LLM_API_URL")
var apiKey = os.Getenv("KGENT_LLM_API_KEY")
var timeout = os.Getenv("KGENT_TIMEOUT")
var listenAddr = os.Getenv("KGENT_LISTEN")
var maxSteps = os.Getenv("KGENT_MAX_STEPS")

func init() {
	if model == "" {
		panic("KGENT_MODEL not set")
	}
	if apiURL == "" {
		panic("KGENT_LLM_API_URL not set")
	}
	if timeout == "" {
		timeout = "5m"
	}
	if listenAddr == "" {
		listenAddr = ":3000"
	}
	if embeddingsModel == "" {
		embeddingsModel = "text-embedding-3-small"
	}
}

func main() {
	client := llm.NewClient(apiKey, apiURL, timeout)

	kb, err := tools.NewKnowledgeBase("facts", tools.OpenAIEmbedding(client, embeddingsModel))
	if err != nil {
		panic(err)
	}

	manager := sse.NewManager(5)

	opts := []agent.Option{
		agent.WithModel(llm.NewOpenAI(client, model)),
		agent.WithStepCallback(func(event types.StepEvent) {
			data, err := json.Marshal(event)
			if err != nil {
				xlog.Error("Error marshaling step event", "error", err)
				return
			}
			manager.Send(sse.NewMessage(string(data)).WithEvent("step"))
		}),
	}

	if maxSteps != "" {
		var n int
		if _, err := fmt.Sscanf(maxSteps, "%d", &n); err == nil {
			opts = append(opts, agent.WithMaxSteps(n))
		}
	}

	ag, err := agent.New(opts...)
	if err != nil {
		panic(err)
	}

	ag.Toolbox().Register("wikipedia", tools.Wikipedia("KGent"))
	ag.Toolbox().Register("search_internet", tools.Search(3, "KGent"))
	ag.Toolbox().Register("retrieve_facts", kb.Retrieve(5))
	ag.Toolbox().Register("recall", tools.Recall(ag.Memory()))
	ag.Toolbox().Register("store_fact", func(ctx context.Context, args string) (string, error) {
		if err := kb.Store(ctx, args); err != nil {
			return "", err
		}
		return "stored", nil
	})

	app := webui.New(ag, manager)
	defer app.Scheduler().Stop()

	xlog.Info("KGent listening", "addr", listenAddr, "model", model)
	if err := app.Listen(listenAddr); err != nil {
		panic(err)
	}
}
