package middlewares

import (
	"github.com/gofiber/fiber/v2"
)

// Chained mounts handlers on r in order.
func Chained(r fiber.Router, handlers ...fiber.Handler) {
	for _, h := range handlers {
		r.Use(h)
	}
}
