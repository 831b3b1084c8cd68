package webui

import (
	"context"
	"sync"

	fiber "github.com/gofiber/fiber/v2"
	"github.com/omnigraph/kgent/core/agent"
	"github.com/omnigraph/kgent/core/scheduler"
	"github.com/omnigraph/kgent/core/sse"
)

// App is the JSON entry point an embedding application exposes around one
// agent. Asks are serialized: the core loop does not support concurrent
// runs on a shared agent instance.
type App struct {
	*fiber.App

	mu      sync.Mutex
	agent   *agent.Agent
	manager sse.Manager
	sched   *scheduler.Scheduler
}

func New(ag *agent.Agent, manager sse.Manager) *App {
	webapp := fiber.New(fiber.Config{
		DisableStartupMessage: true,
	})

	a := &App{
		App:     webapp,
		agent:   ag,
		manager: manager,
	}
	a.sched = scheduler.New(a.Ask)
	a.sched.Start()

	a.registerRoutes(webapp)

	return a
}

// Ask runs one question through the agent, serialized with any other
// caller of this App (HTTP handlers, scheduler).
func (a *App) Ask(ctx context.Context, question string) (*agent.RunResult, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	return a.agent.Run(ctx, question)
}

// Scheduler exposes the standing-question scheduler.
func (a *App) Scheduler() *scheduler.Scheduler {
	return a.sched
}
