package agent

import (
	"fmt"

	"github.com/omnigraph/kgent/core/executor"
	"github.com/omnigraph/kgent/core/memory"
	"github.com/omnigraph/kgent/core/toolbox"
	"github.com/omnigraph/kgent/core/types"
)

type Option func(*options) error

type options struct {
	model        types.Model
	executor     executor.Executor
	toolbox      *toolbox.Toolbox
	memory       *memory.Memory
	maxSteps     int
	stepCallback func(types.StepEvent)
}

func defaultOptions() *options {
	return &options{
		executor: executor.Unimplemented{},
		toolbox:  toolbox.New(),
		memory:   memory.New(),
		maxSteps: 10,
	}
}

func newOptions(opts ...Option) (*options, error) {
	options := defaultOptions()
	for _, o := range opts {
		if err := o(options); err != nil {
			return nil, err
		}
	}
	return options, nil
}

func WithModel(m types.Model) Option {
	return func(o *options) error {
		o.model = m
		return nil
	}
}

// WithModelFunc is a convenience wrapper for plain functions and test stubs.
func WithModelFunc(f types.ModelFunc) Option {
	return func(o *options) error {
		o.model = f
		return nil
	}
}

func WithExecutor(e executor.Executor) Option {
	return func(o *options) error {
		o.executor = e
		return nil
	}
}

func WithToolbox(t *toolbox.Toolbox) Option {
	return func(o *options) error {
		o.toolbox = t
		return nil
	}
}

func WithMemory(m *memory.Memory) Option {
	return func(o *options) error {
		o.memory = m
		return nil
	}
}

func WithMaxSteps(n int) Option {
	return func(o *options) error {
		if n <= 0 {
			return fmt.Errorf("max steps must be positive, got %d", n)
		}
		o.maxSteps = n
		return nil
	}
}

// WithStepCallback registers a callback invoked after every loop iteration
// with the step's decision and outcome.
func WithStepCallback(f func(types.StepEvent)) Option {
	return func(o *options) error {
		o.stepCallback = f
		return nil
	}
}
