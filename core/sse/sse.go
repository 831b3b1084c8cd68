package sse

import (
	"bufio"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/valyala/fasthttp"
)

type (
	// Listener is the receiving end of a stream.
	Listener interface {
		ID() string
		Chan() chan Envelope
	}

	// Envelope is content that can be broadcast to clients.
	Envelope interface {
		String() string
	}

	// Manager registers clients and broadcasts messages to them.
	Manager interface {
		Send(message Envelope)
		Handle(ctx *fiber.Ctx, cl Listener)
		Clients() []string
	}
)

type client struct {
	id string
	ch chan Envelope
}

func NewClient(id string) Listener {
	return &client{
		id: id,
		ch: make(chan Envelope, 50),
	}
}

func (c *client) ID() string          { return c.id }
func (c *client) Chan() chan Envelope { return c.ch }

// Message is a plain SSE event.
type Message struct {
	Event string
	Time  time.Time
	Data  string
}

func NewMessage(data string) *Message {
	return &Message{
		Data: data,
		Time: time.Now(),
	}
}

// WithEvent sets the event name for the message.
func (m *Message) WithEvent(event string) Envelope {
	m.Event = event
	return m
}

// String renders the message in wire format.
func (m *Message) String() string {
	sb := strings.Builder{}
	if m.Event != "" {
		sb.WriteString(fmt.Sprintf("event: %s\n", m.Event))
	}
	sb.WriteString(fmt.Sprintf("data: %v\n\n", m.Data))
	return sb.String()
}

type broadcastManager struct {
	clients   sync.Map
	broadcast chan Envelope
}

// NewManager starts a manager with the given number of broadcast workers.
func NewManager(workers int) Manager {
	m := &broadcastManager{
		broadcast: make(chan Envelope),
	}
	for i := 0; i < workers; i++ {
		go m.dispatch()
	}
	return m
}

func (m *broadcastManager) dispatch() {
	for message := range m.broadcast {
		m.clients.Range(func(key, value any) bool {
			cl, ok := value.(Listener)
			if !ok {
				return true
			}
			select {
			case cl.Chan() <- message:
			default:
				// Slow client: drop the message rather than block the
				// whole broadcast.
			}
			return true
		})
	}
}

// Send broadcasts a message to all connected clients.
func (m *broadcastManager) Send(message Envelope) {
	m.broadcast <- message
}

// Clients lists the connected client IDs.
func (m *broadcastManager) Clients() []string {
	var ids []string
	m.clients.Range(func(key, value any) bool {
		if id, ok := key.(string); ok {
			ids = append(ids, id)
		}
		return true
	})
	return ids
}

// Handle registers the client and streams envelopes to it until the
// connection goes away. The client channel is never closed: a dispatch
// worker may still hold a reference to a deregistered client, so the
// channel is simply abandoned once the client is removed from the map.
func (m *broadcastManager) Handle(c *fiber.Ctx, cl Listener) {
	m.clients.Store(cl.ID(), cl)
	ctx := c.Context()

	ctx.SetContentType("text/event-stream")
	ctx.Response.Header.Set("Cache-Control", "no-cache")
	ctx.Response.Header.Set("Connection", "keep-alive")
	ctx.Response.Header.Set("Access-Control-Allow-Origin", "*")
	ctx.Response.Header.Set("X-Accel-Buffering", "no")

	ctx.SetBodyStreamWriter(fasthttp.StreamWriter(func(w *bufio.Writer) {
		defer m.clients.Delete(cl.ID())

		fmt.Fprintf(w, "event: connected\ndata: {\"status\":\"connected\"}\n\n")
		w.Flush()

		for {
			select {
			case msg := <-cl.Chan():
				if _, err := fmt.Fprint(w, msg.String()); err != nil {
					return
				}
				w.Flush()
			case <-ctx.Done():
				return
			}
		}
	}))
}
