package tools

import (
	"context"
	"fmt"
	"runtime"
	"strings"
	"sync"

	"github.com/omnigraph/kgent/core/toolbox"
	chromem "github.com/philippgille/chromem-go"
	"github.com/sashabaranov/go-openai"
)

// KnowledgeBase is an in-memory vector store of facts the agent can
// retrieve from. The embedding function is pluggable so tests run without
// a network.
type KnowledgeBase struct {
	mu         sync.Mutex
	db         *chromem.DB
	collection *chromem.Collection
	index      int
}

func NewKnowledgeBase(collection string, embedding chromem.EmbeddingFunc) (*KnowledgeBase, error) {
	db := chromem.NewDB()

	c, err := db.GetOrCreateCollection(collection, nil, embedding)
	if err != nil {
		return nil, err
	}

	return &KnowledgeBase{
		db:         db,
		collection: c,
		index:      1,
	}, nil
}

// Store adds one fact to the collection.
func (k *KnowledgeBase) Store(ctx context.Context, fact string) error {
	if fact == "" {
		return fmt.Errorf("empty fact")
	}

	k.mu.Lock()
	id := fmt.Sprint(k.index)
	k.index++
	k.mu.Unlock()

	return k.collection.AddDocuments(ctx, []chromem.Document{
		{
			ID:      id,
			Content: fact,
		},
	}, runtime.NumCPU())
}

// Retrieve is the tool face of the knowledge base: the raw argument string
// is the query, the result is the closest stored facts, one per line.
func (k *KnowledgeBase) Retrieve(results int) toolbox.Tool {
	return func(ctx context.Context, args string) (string, error) {
		n := results
		if count := k.collection.Count(); count < n {
			n = count
		}
		if n == 0 {
			return "no facts stored", nil
		}

		res, err := k.collection.Query(ctx, strings.TrimSpace(args), n, nil, nil)
		if err != nil {
			return "", err
		}

		facts := []string{}
		for _, r := range res {
			facts = append(facts, r.Content)
		}
		return strings.Join(facts, "\n"), nil
	}
}

// OpenAIEmbedding embeds documents through an OpenAI-compatible endpoint.
func OpenAIEmbedding(client *openai.Client, model string) chromem.EmbeddingFunc {
	return func(ctx context.Context, text string) ([]float32, error) {
		resp, err := client.CreateEmbeddings(ctx, openai.EmbeddingRequestStrings{
			Input: []string{text},
			Model: openai.EmbeddingModel(model),
		})
		if err != nil {
			return nil, fmt.Errorf("create embeddings: %w", err)
		}

		if len(resp.Data) == 0 {
			return nil, fmt.Errorf("no embeddings in response")
		}

		return resp.Data[0].Embedding, nil
	}
}
