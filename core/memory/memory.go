package memory

import (
	"maps"
	"sync"
)

// Record types appended by the agent loop.
const (
	TypeTool        = "tool"
	TypeProgram     = "program"
	TypeFinalAnswer = "final_answer"
	TypeTimeout     = "timeout"
)

// Record is one entry of the agent's memory log: arbitrary string-keyed
// fields, tagged with a "type" and the "step" that produced it. Records are
// immutable once appended.
type Record map[string]any

// Memory is the append-only log of everything the agent observed or did
// during a run. Insertion order is significant and preserved; nothing is
// ever reordered or evicted. Each agent instance owns its own Memory; the
// mutex only covers readers (e.g. an HTTP surface) inspecting the log while
// a run is in flight.
type Memory struct {
	mu      sync.Mutex
	records []Record
}

func New() *Memory {
	return &Memory{}
}

// Add appends a record to the end of the log. It never fails; capacity is
// bounded only by process memory.
func (m *Memory) Add(record Record) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.records = append(m.records, record)
}

// All returns a snapshot of the whole log in insertion order. Records are
// copied at the top level so callers cannot mutate stored state.
func (m *Memory) All() []Record {
	m.mu.Lock()
	defer m.mu.Unlock()

	return snapshot(m.records, func(Record) bool { return true })
}

// Query returns the records that carry key as one of their top-level
// fields, in insertion order. It matches field presence, not values.
func (m *Memory) Query(key string) []Record {
	m.mu.Lock()
	defer m.mu.Unlock()

	return snapshot(m.records, func(r Record) bool {
		_, ok := r[key]
		return ok
	})
}

// Len reports how many records have been appended.
func (m *Memory) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()

	return len(m.records)
}

func snapshot(records []Record, keep func(Record) bool) []Record {
	out := []Record{}
	for _, r := range records {
		if keep(r) {
			out = append(out, maps.Clone(r))
		}
	}
	return out
}
