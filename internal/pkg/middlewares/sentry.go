package middlewares

import (
	"github.com/gofiber/contrib/fibersentry"
	"github.com/gofiber/fiber/v2"

	"github.com/salesboard/backend/internal/pkg/flog"
)

// EnrichSentry tags the request's Sentry scope with its request id and route.
func EnrichSentry() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if hub := fibersentry.GetHubFromContext(c); hub != nil {
			if id, ok := flog.IDFromFiberCtx(c); ok {
				hub.Scope().SetTag("request_id", id.String())
			}
			hub.Scope().SetTag("path", c.Path())
		}
		return c.Next()
	}
}
