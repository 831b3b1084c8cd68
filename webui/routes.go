package webui

import (
	fiber "github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/omnigraph/kgent/core/sse"
	"github.com/omnigraph/kgent/pkg/xlog"
)

func (a *App) registerRoutes(webapp *fiber.App) {
	webapp.Post("/api/ask", a.askHandler())
	webapp.Get("/api/memory", a.memoryHandler())
	webapp.Get("/api/tools", a.toolsHandler())
	webapp.Post("/api/standing", a.standingHandler())
	webapp.Get("/api/standing/results", a.standingResultsHandler())

	webapp.Get("/sse", func(c *fiber.Ctx) error {
		a.manager.Handle(c, sse.NewClient(uuid.NewString()))
		return nil
	})
}

func (a *App) askHandler() func(c *fiber.Ctx) error {
	return func(c *fiber.Ctx) error {
		payload := struct {
			Question string `json:"question"`
		}{}

		if err := c.BodyParser(&payload); err != nil {
			return errorJSONMessage(c, err.Error())
		}
		if payload.Question == "" {
			return errorJSONMessage(c, "question is required")
		}

		result, err := a.Ask(c.UserContext(), payload.Question)
		if err != nil {
			xlog.Error("Run failed", "error", err)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
		}

		return c.JSON(result)
	}
}

func (a *App) memoryHandler() func(c *fiber.Ctx) error {
	return func(c *fiber.Ctx) error {
		if key := c.Query("key"); key != "" {
			return c.JSON(a.agent.Memory().Query(key))
		}
		return c.JSON(a.agent.Memory().All())
	}
}

func (a *App) toolsHandler() func(c *fiber.Ctx) error {
	return func(c *fiber.Ctx) error {
		return c.JSON(a.agent.Toolbox().Tools())
	}
}

func (a *App) standingHandler() func(c *fiber.Ctx) error {
	return func(c *fiber.Ctx) error {
		payload := struct {
			Expression string `json:"expression"`
			Question   string `json:"question"`
		}{}

		if err := c.BodyParser(&payload); err != nil {
			return errorJSONMessage(c, err.Error())
		}
		if payload.Expression == "" || payload.Question == "" {
			return errorJSONMessage(c, "expression and question are required")
		}

		if err := a.sched.Add(payload.Expression, payload.Question); err != nil {
			return errorJSONMessage(c, err.Error())
		}

		return c.JSON(fiber.Map{"status": "scheduled"})
	}
}

func (a *App) standingResultsHandler() func(c *fiber.Ctx) error {
	return func(c *fiber.Ctx) error {
		return c.JSON(a.sched.Results())
	}
}

func errorJSONMessage(c *fiber.Ctx, message string) error {
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": message})
}
