package tools_test

import (
	"context"
	"math"

	"github.com/omnigraph/kgent/core/memory"
	. "github.com/omnigraph/kgent/services/tools"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	chromem "github.com/philippgille/chromem-go"
)

// stubEmbedding is a deterministic, network-free embedding: a normalized
// character histogram projected onto a few dimensions.
func stubEmbedding() chromem.EmbeddingFunc {
	return func(ctx context.Context, text string) ([]float32, error) {
		v := make([]float32, 8)
		for i, r := range text {
			v[i%8] += float32(r%13) + 1
		}

		var norm float64
		for _, x := range v {
			norm += float64(x) * float64(x)
		}
		norm = math.Sqrt(norm)
		for i := range v {
			v[i] = float32(float64(v[i]) / norm)
		}
		return v, nil
	}
}

var _ = Describe("KnowledgeBase", func() {
	var kb *KnowledgeBase

	BeforeEach(func() {
		var err error
		kb, err = NewKnowledgeBase("facts", stubEmbedding())
		Expect(err).ToNot(HaveOccurred())
	})

	It("reports when nothing is stored yet", func() {
		out, err := kb.Retrieve(5)(context.Background(), "Tom Hanks")
		Expect(err).ToNot(HaveOccurred())
		Expect(out).To(Equal("no facts stored"))
	})

	It("rejects empty facts", func() {
		Expect(kb.Store(context.Background(), "")).To(HaveOccurred())
	})

	It("retrieves stored facts for a query", func() {
		ctx := context.Background()
		Expect(kb.Store(ctx, "Tom Hanks played Forrest Gump")).ToNot(HaveOccurred())
		Expect(kb.Store(ctx, "Paris is the capital of France")).ToNot(HaveOccurred())

		out, err := kb.Retrieve(5)(ctx, "who played Forrest Gump?")
		Expect(err).ToNot(HaveOccurred())
		Expect(out).To(ContainSubstring("Tom Hanks played Forrest Gump"))
		Expect(out).To(ContainSubstring("Paris is the capital of France"))
	})

	It("clamps the result count to what is stored", func() {
		ctx := context.Background()
		Expect(kb.Store(ctx, "a single fact")).ToNot(HaveOccurred())

		out, err := kb.Retrieve(10)(ctx, "fact")
		Expect(err).ToNot(HaveOccurred())
		Expect(out).To(Equal("a single fact"))
	})
})

var _ = Describe("Recall", func() {
	It("serializes matching memory records", func() {
		mem := memory.New()
		mem.Add(memory.Record{"type": memory.TypeFinalAnswer, "answer": "demo", "step": 0})
		mem.Add(memory.Record{"type": memory.TypeTool, "tool": "search", "out": "x", "step": 1})

		out, err := Recall(mem)(context.Background(), "answer")
		Expect(err).ToNot(HaveOccurred())
		Expect(out).To(ContainSubstring(`"answer":"demo"`))
		Expect(out).ToNot(ContainSubstring(`"tool"`))

		all, err := Recall(mem)(context.Background(), "")
		Expect(err).ToNot(HaveOccurred())
		Expect(all).To(ContainSubstring(`"tool":"search"`))
	})
})
