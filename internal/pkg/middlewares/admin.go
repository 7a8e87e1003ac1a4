package middlewares

import (
	"crypto/subtle"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/keyauth"

	"github.com/salesboard/backend/internal/pkg/apierr"
)

// AdminAuth only lets through requests carrying "Authorization: Bearer <key>".
// With an empty key every admin route answers 404.
func AdminAuth(key string) fiber.Handler {
	if key == "" {
		return func(c *fiber.Ctx) error {
			return apierr.ErrNotFound
		}
	}

	return keyauth.New(keyauth.Config{
		KeyLookup:  "header:" + fiber.HeaderAuthorization,
		AuthScheme: "Bearer",
		Validator: func(c *fiber.Ctx, k string) (bool, error) {
			return subtle.ConstantTimeCompare([]byte(k), []byte(key)) == 1, nil
		},
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			return apierr.ErrUnauthorized
		},
	})
}
