package toolbox

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"
)

// Tool is a callable capability the model can invoke by name. By convention
// it receives the raw argument string exactly as the model produced it;
// parsing those arguments is the tool's own business.
type Tool func(ctx context.Context, args string) (string, error)

// ErrToolNotFound is the sentinel wrapped by every ToolNotFoundError.
var ErrToolNotFound = errors.New("tool not registered")

// ToolNotFoundError signals a registry lookup miss, as opposed to a runtime
// fault inside a registered tool.
type ToolNotFoundError struct {
	Name string
}

func (e *ToolNotFoundError) Error() string {
	return fmt.Sprintf("tool %q not registered", e.Name)
}

func (e *ToolNotFoundError) Unwrap() error {
	return ErrToolNotFound
}

// Toolbox is the indirection layer between the agent's abstract tool-call
// intent and concrete tool implementations. It is plain process-local state
// scoped to one agent instance.
type Toolbox struct {
	mu    sync.RWMutex
	tools map[string]Tool
}

func New() *Toolbox {
	return &Toolbox{
		tools: map[string]Tool{},
	}
}

// Register binds name to tool. Re-registering a name silently overwrites
// the previous binding; no signature checking is performed.
func (t *Toolbox) Register(name string, tool Tool) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.tools[name] = tool
}

// Call looks up the tool by exact name and invokes it with the raw argument
// string. An unknown name fails with *ToolNotFoundError. Errors returned by
// the tool itself propagate to the caller: containment is the agent loop's
// responsibility, not the registry's.
func (t *Toolbox) Call(ctx context.Context, name, args string) (string, error) {
	t.mu.RLock()
	tool, ok := t.tools[name]
	t.mu.RUnlock()

	if !ok {
		return "", &ToolNotFoundError{Name: name}
	}

	return tool(ctx, args)
}

// Tools returns the registered tool names, sorted, for prompt construction.
func (t *Toolbox) Tools() []string {
	t.mu.RLock()
	defer t.mu.RUnlock()

	names := make([]string, 0, len(t.tools))
	for name := range t.tools {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
