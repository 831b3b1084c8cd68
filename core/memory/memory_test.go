package memory_test

import (
	. "github.com/omnigraph/kgent/core/memory"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Memory", func() {
	var mem *Memory

	BeforeEach(func() {
		mem = New()
	})

	It("appends records in insertion order", func() {
		mem.Add(Record{"type": TypeTool, "tool": "a", "step": 0})
		mem.Add(Record{"type": TypeProgram, "program": "p", "step": 1})

		all := mem.All()
		Expect(all).To(HaveLen(2))
		Expect(all[0]["tool"]).To(Equal("a"))
		Expect(all[1]["program"]).To(Equal("p"))
	})

	It("grows by exactly one per Add and the last element is the added record", func() {
		for i := 0; i < 5; i++ {
			before := mem.Len()
			mem.Add(Record{"type": TypeTool, "step": i})
			Expect(mem.Len()).To(Equal(before + 1))

			all := mem.All()
			Expect(all[len(all)-1]["step"]).To(Equal(i))
		}
	})

	It("filters by top-level field presence, not value", func() {
		mem.Add(Record{"type": TypeTool, "tool": "a", "out": "x", "step": 0})
		mem.Add(Record{"type": TypeProgram, "program": "p", "out": "y", "step": 1})
		mem.Add(Record{"type": TypeFinalAnswer, "answer": "z", "step": 2})

		Expect(mem.Query("tool")).To(HaveLen(1))
		Expect(mem.Query("out")).To(HaveLen(2))
		Expect(mem.Query("answer")).To(HaveLen(1))
		Expect(mem.Query("nope")).To(BeEmpty())
	})

	It("preserves insertion order in filtered results", func() {
		mem.Add(Record{"out": "first", "step": 0})
		mem.Add(Record{"answer": "skip", "step": 1})
		mem.Add(Record{"out": "second", "step": 2})

		outs := mem.Query("out")
		Expect(outs).To(HaveLen(2))
		Expect(outs[0]["out"]).To(Equal("first"))
		Expect(outs[1]["out"]).To(Equal("second"))
	})

	It("returns snapshots detached from the stored log", func() {
		mem.Add(Record{"type": TypeTool, "out": "original", "step": 0})

		snap := mem.All()
		snap[0]["out"] = "mutated"

		Expect(mem.All()[0]["out"]).To(Equal("original"))
	})
})
