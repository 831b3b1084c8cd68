package types

// DecisionKind tags the shape of a parsed model response.
type DecisionKind string

const (
	DecisionAnswer     DecisionKind = "answer"
	DecisionCallTool   DecisionKind = "call_tool"
	DecisionRunProgram DecisionKind = "run_program"
)

// Decision is the structured form of one raw model response. Exactly one
// payload is meaningful per kind: Answer for DecisionAnswer, Tool/Args for
// DecisionCallTool, Program for DecisionRunProgram. Decisions are built
// fresh every loop iteration and never mutated afterwards.
type Decision struct {
	Kind    DecisionKind `json:"kind"`
	Answer  string       `json:"answer,omitempty"`
	Tool    string       `json:"tool,omitempty"`
	Args    string       `json:"args,omitempty"`
	Program string       `json:"program,omitempty"`
}
