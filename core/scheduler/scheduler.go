package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/omnigraph/kgent/core/agent"
	"github.com/omnigraph/kgent/pkg/xlog"
	"github.com/robfig/cron/v3"
)

// AskFunc runs one question through an agent and returns the terminal
// result. The scheduler stays decoupled from how the embedding application
// serializes access to its agent.
type AskFunc func(ctx context.Context, question string) (*agent.RunResult, error)

// StandingResult is the outcome of one scheduled run of a standing question.
type StandingResult struct {
	Question string           `json:"question"`
	Answer   string           `json:"answer"`
	Outcome  agent.RunOutcome `json:"outcome"`
	Error    string           `json:"error,omitempty"`
	When     time.Time        `json:"when"`
}

const resultHistory = 100

// Scheduler re-asks standing questions on cron expressions and keeps a
// bounded history of their outcomes.
type Scheduler struct {
	cron *cron.Cron
	ask  AskFunc

	mu      sync.Mutex
	entries map[string]cron.EntryID
	results []StandingResult
}

func New(ask AskFunc) *Scheduler {
	return &Scheduler{
		cron:    cron.New(),
		ask:     ask,
		entries: map[string]cron.EntryID{},
	}
}

// Add registers a standing question under the given cron expression.
// Re-adding the same question replaces its schedule.
func (s *Scheduler) Add(expression, question string) error {
	id, err := s.cron.AddFunc(expression, func() {
		s.runOnce(question)
	})
	if err != nil {
		return fmt.Errorf("schedule %q: %w", question, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if old, ok := s.entries[question]; ok {
		s.cron.Remove(old)
	}
	s.entries[question] = id

	xlog.Info("Standing question scheduled", "expression", expression, "question", question)
	return nil
}

// Remove drops a standing question.
func (s *Scheduler) Remove(question string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if id, ok := s.entries[question]; ok {
		s.cron.Remove(id)
		delete(s.entries, question)
	}
}

func (s *Scheduler) runOnce(question string) {
	res, err := s.ask(context.Background(), question)

	sr := StandingResult{
		Question: question,
		When:     time.Now(),
	}
	if err != nil {
		sr.Error = err.Error()
		xlog.Error("Standing question failed", "question", question, "error", err)
	} else {
		sr.Answer = res.Answer
		sr.Outcome = res.Outcome
		xlog.Info("Standing question answered", "question", question, "outcome", res.Outcome)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.results = append(s.results, sr)
	if len(s.results) > resultHistory {
		s.results = s.results[len(s.results)-resultHistory:]
	}
}

// Results returns a copy of the recorded outcomes, oldest first.
func (s *Scheduler) Results() []StandingResult {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]StandingResult, len(s.results))
	copy(out, s.results)
	return out
}

// Start begins firing schedules in the background.
func (s *Scheduler) Start() {
	s.cron.Start()
}

// Stop stops the scheduler and waits for in-flight runs to finish.
func (s *Scheduler) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
}
