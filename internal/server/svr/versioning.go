package svr

import (
	"github.com/gofiber/fiber/v2"

	"github.com/salesboard/backend/internal/app/appconfig"
	"github.com/salesboard/backend/internal/pkg/middlewares"
)

// Dashboard is the router of the dashboard data API.
type Dashboard struct {
	fiber.Router
}

// Meta is the router of service introspection endpoints.
type Meta struct {
	fiber.Router
}

// Admin is the router of operator endpoints, guarded by the admin key.
type Admin struct {
	fiber.Router
}

func CreateEndpointGroups(app *fiber.App, conf *appconfig.Config) (*Dashboard, *Meta, *Admin) {
	dashboard := app.Group("/api/dashboard")
	meta := app.Group("/api/_")
	admin := app.Group("/api/_/admin", middlewares.AdminAuth(conf.AdminKey))

	return &Dashboard{Router: dashboard}, &Meta{Router: meta}, &Admin{Router: admin}
}
