package toolbox_test

import (
	"context"
	"errors"

	. "github.com/omnigraph/kgent/core/toolbox"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Toolbox", func() {
	var tb *Toolbox

	BeforeEach(func() {
		tb = New()
	})

	It("dispatches to the registered tool exactly once with the raw arguments", func() {
		calls := 0
		gotArgs := ""
		tb.Register("echo", func(ctx context.Context, args string) (string, error) {
			calls++
			gotArgs = args
			return "echo: " + args, nil
		})

		out, err := tb.Call(context.Background(), "echo", "some args here")
		Expect(err).ToNot(HaveOccurred())
		Expect(out).To(Equal("echo: some args here"))
		Expect(calls).To(Equal(1))
		Expect(gotArgs).To(Equal("some args here"))
	})

	It("fails a lookup miss with ToolNotFoundError and leaves the registry unchanged", func() {
		tb.Register("known", func(ctx context.Context, args string) (string, error) {
			return "", nil
		})

		_, err := tb.Call(context.Background(), "unknown", "x")
		Expect(err).To(HaveOccurred())
		Expect(errors.Is(err, ErrToolNotFound)).To(BeTrue())

		var notFound *ToolNotFoundError
		Expect(errors.As(err, &notFound)).To(BeTrue())
		Expect(notFound.Name).To(Equal("unknown"))

		Expect(tb.Tools()).To(Equal([]string{"known"}))
	})

	It("propagates faults from the tool itself", func() {
		boom := errors.New("boom")
		tb.Register("faulty", func(ctx context.Context, args string) (string, error) {
			return "", boom
		})

		_, err := tb.Call(context.Background(), "faulty", "")
		Expect(errors.Is(err, boom)).To(BeTrue())
		Expect(errors.Is(err, ErrToolNotFound)).To(BeFalse())
	})

	It("overwrites silently on duplicate names", func() {
		tb.Register("t", func(ctx context.Context, args string) (string, error) {
			return "first", nil
		})
		tb.Register("t", func(ctx context.Context, args string) (string, error) {
			return "second", nil
		})

		out, err := tb.Call(context.Background(), "t", "")
		Expect(err).ToNot(HaveOccurred())
		Expect(out).To(Equal("second"))
		Expect(tb.Tools()).To(HaveLen(1))
	})

	It("lists names sorted", func() {
		noop := func(ctx context.Context, args string) (string, error) { return "", nil }
		tb.Register("zeta", noop)
		tb.Register("alpha", noop)
		tb.Register("mid", noop)

		Expect(tb.Tools()).To(Equal([]string{"alpha", "mid", "zeta"}))
	})
})
