package types

// StepEvent describes the outcome of one loop iteration. It is emitted
// through the agent's step callback so embedding applications can observe
// a run in flight (e.g. stream it over SSE) without touching the loop.
type StepEvent struct {
	Run      string   `json:"run"`
	Step     int      `json:"step"`
	Decision Decision `json:"decision"`
	Out      string   `json:"out,omitempty"`
}
