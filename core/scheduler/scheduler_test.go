package scheduler_test

import (
	"context"
	"fmt"
	"sync/atomic"

	"github.com/omnigraph/kgent/core/agent"
	. "github.com/omnigraph/kgent/core/scheduler"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Scheduler", func() {
	It("rejects an invalid cron expression", func() {
		s := New(func(ctx context.Context, question string) (*agent.RunResult, error) {
			return &agent.RunResult{}, nil
		})
		Expect(s.Add("not a cron expression", "q")).To(HaveOccurred())
	})

	It("re-asks a standing question and records the outcome", func() {
		var asked atomic.Int32
		s := New(func(ctx context.Context, question string) (*agent.RunResult, error) {
			asked.Add(1)
			return &agent.RunResult{Answer: "42", Outcome: agent.OutcomeAnswered}, nil
		})

		Expect(s.Add("@every 1s", "meaning of life?")).ToNot(HaveOccurred())
		s.Start()
		defer s.Stop()

		Eventually(func() int32 { return asked.Load() }, "10s", "200ms").Should(BeNumerically(">=", 1))
		Eventually(func() int { return len(s.Results()) }, "10s", "200ms").Should(BeNumerically(">=", 1))

		res := s.Results()[0]
		Expect(res.Question).To(Equal("meaning of life?"))
		Expect(res.Answer).To(Equal("42"))
		Expect(res.Outcome).To(Equal(agent.OutcomeAnswered))
		Expect(res.Error).To(BeEmpty())
	})

	It("records a failed run as an error outcome", func() {
		s := New(func(ctx context.Context, question string) (*agent.RunResult, error) {
			return nil, fmt.Errorf("model unavailable")
		})

		Expect(s.Add("@every 1s", "q")).ToNot(HaveOccurred())
		s.Start()
		defer s.Stop()

		Eventually(func() int { return len(s.Results()) }, "10s", "200ms").Should(BeNumerically(">=", 1))
		Expect(s.Results()[0].Error).To(ContainSubstring("model unavailable"))
	})
})
