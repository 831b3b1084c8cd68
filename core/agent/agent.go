package agent

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/omnigraph/kgent/core/executor"
	"github.com/omnigraph/kgent/core/memory"
	"github.com/omnigraph/kgent/core/toolbox"
	"github.com/omnigraph/kgent/core/types"
	"github.com/omnigraph/kgent/pkg/xlog"
)

// StepLimitSummary is the fixed best-effort response returned when a run
// ends without an answer.
const StepLimitSummary = "Unable to reach final answer within step limit."

// RunOutcome distinguishes the terminal states of a run.
type RunOutcome string

const (
	// OutcomeAnswered means the model produced a final answer.
	OutcomeAnswered RunOutcome = "answered"
	// OutcomeStepLimit means the step budget ran out with no answer.
	OutcomeStepLimit RunOutcome = "step_limit"
	// OutcomeAborted means the loop stopped early on an unrecognized
	// decision, without an answer.
	OutcomeAborted RunOutcome = "aborted"
)

// RunResult is the terminal state of one run. Answer carries the model's
// final answer when Outcome is OutcomeAnswered, and the fixed best-effort
// summary otherwise.
type RunResult struct {
	ID      string     `json:"run"`
	Answer  string     `json:"answer"`
	Outcome RunOutcome `json:"outcome"`
	Steps   int        `json:"steps"`
}

// runState is the transient state of a single run: the ordered step
// records serialized into each prompt, plus an optional memory summary.
// It is discarded when Run returns.
type runState struct {
	steps         []stepRecord
	memorySummary string
}

type stepRecord struct {
	Action string
	Input  string
	Out    string
}

// Agent drives the orchestration loop: build prompt, invoke the model,
// parse the decision, dispatch to the toolbox or the executor, record the
// outcome in memory, repeat. One Agent owns one Memory, one Toolbox and one
// Executor; do not share an instance across concurrent runs.
type Agent struct {
	options  *options
	model    types.Model
	executor executor.Executor
	toolbox  *toolbox.Toolbox
	memory   *memory.Memory
}

func New(opts ...Option) (*Agent, error) {
	options, err := newOptions(opts...)
	if err != nil {
		return nil, err
	}
	if options.model == nil {
		return nil, fmt.Errorf("agent needs a model, use WithModel or WithModelFunc")
	}

	return &Agent{
		options:  options,
		model:    options.model,
		executor: options.executor,
		toolbox:  options.toolbox,
		memory:   options.memory,
	}, nil
}

func (a *Agent) Memory() *memory.Memory {
	return a.memory
}

func (a *Agent) Toolbox() *toolbox.Toolbox {
	return a.toolbox
}

func (a *Agent) Executor() executor.Executor {
	return a.executor
}

// Run answers one question. The loop is fully synchronous and
// single-threaded: the only blocking points are the collaborator calls
// into the model, the toolbox and the executor. Exactly one return path is
// taken per run. A model transport failure is a collaborator fault outside
// the loop's containment boundary and surfaces as the error return.
func (a *Agent) Run(ctx context.Context, question string) (*RunResult, error) {
	runID := uuid.NewString()
	state := &runState{}

	xlog.Debug("Run started", "run", runID, "question", question)

	aborted := false

loop:
	for step := 0; step < a.options.maxSteps; step++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		prompt, err := renderPrompt(question, state, a.toolbox.Tools())
		if err != nil {
			return nil, fmt.Errorf("render prompt: %w", err)
		}

		response, err := a.model.Complete(ctx, prompt, types.ModelMeta{Step: step})
		if err != nil {
			return nil, fmt.Errorf("model completion at step %d: %w", step, err)
		}

		decision := ParseDecision(response)

		switch decision.Kind {
		case types.DecisionAnswer:
			a.memory.Add(memory.Record{
				"type":   memory.TypeFinalAnswer,
				"answer": decision.Answer,
				"step":   step,
			})
			a.emit(types.StepEvent{Run: runID, Step: step, Decision: decision})
			xlog.Debug("Run answered", "run", runID, "steps", step+1)
			return &RunResult{
				ID:      runID,
				Answer:  decision.Answer,
				Outcome: OutcomeAnswered,
				Steps:   step + 1,
			}, nil

		case types.DecisionCallTool:
			out, err := a.toolbox.Call(ctx, decision.Tool, decision.Args)
			if err != nil {
				// Sole failure-containment point of the loop: lookup
				// misses and tool faults become recorded data, never a
				// crashed run.
				out = err.Error()
				xlog.Warn("Tool call failed", "run", runID, "step", step, "tool", decision.Tool, "error", err)
			}
			state.steps = append(state.steps, stepRecord{
				Action: "call_tool",
				Input:  decision.Tool + " " + decision.Args,
				Out:    out,
			})
			a.memory.Add(memory.Record{
				"type": memory.TypeTool,
				"tool": decision.Tool,
				"out":  out,
				"step": step,
			})
			a.emit(types.StepEvent{Run: runID, Step: step, Decision: decision, Out: out})

		case types.DecisionRunProgram:
			// The executor is total: malformed programs come back as a
			// result-carried error, so no extra containment is needed.
			result := a.executor.ExecuteProgram(ctx, decision.Program)
			out := result.Output
			if result.Err != "" {
				out = result.Err
			}
			state.steps = append(state.steps, stepRecord{
				Action: "run_program",
				Input:  decision.Program,
				Out:    out,
			})
			a.memory.Add(memory.Record{
				"type":    memory.TypeProgram,
				"program": decision.Program,
				"out":     result,
				"step":    step,
			})
			a.emit(types.StepEvent{Run: runID, Step: step, Decision: decision, Out: out})

		default:
			xlog.Warn("Unrecognized decision, stopping run", "run", runID, "step", step, "kind", decision.Kind)
			aborted = true
			break loop
		}
	}

	steps := len(state.steps)
	a.memory.Add(memory.Record{
		"type":    memory.TypeTimeout,
		"summary": StepLimitSummary,
		"step":    steps,
	})

	outcome := OutcomeStepLimit
	if aborted {
		outcome = OutcomeAborted
	}
	xlog.Debug("Run ended without answer", "run", runID, "outcome", outcome, "steps", steps)

	return &RunResult{
		ID:      runID,
		Answer:  StepLimitSummary,
		Outcome: outcome,
		Steps:   steps,
	}, nil
}

func (a *Agent) emit(event types.StepEvent) {
	if a.options.stepCallback == nil {
		return
	}
	a.options.stepCallback(event)
}
