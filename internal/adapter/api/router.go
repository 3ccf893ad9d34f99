package api

import (
	"timefilter-core/internal/logger"

	"github.com/gofiber/fiber/v2"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/google/uuid"
)

const requestIDHeader = "X-Request-ID"

type Info struct {
	Version string
	Env     string
}

func SetupRouter(app *fiber.App, handler *FilterHandler, info Info) {
	app.Use(requestID)
	app.Use(fiberlogger.New())

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusOK).JSON(fiber.Map{
			"status":  "healthy",
			"version": info.Version,
			"env":     info.Env,
		})
	})

	v1 := app.Group("/v1")
	v1.Post("/filters/resolve", handler.HandleResolve)

	if handler.searcher != nil {
		v1.Post("/search", handler.HandleSearch)
		v1.Post("/documents", handler.HandleIndex)
	}
}

// requestID reuses the caller's X-Request-ID or mints one, and puts it on the user context.
func requestID(c *fiber.Ctx) error {
	id := c.Get(requestIDHeader)
	if id == "" {
		id = uuid.NewString()
	}
	c.Set(requestIDHeader, id)
	c.SetUserContext(logger.WithRequest(c.UserContext(), id))
	return c.Next()
}
