package controller

import (
	"go.uber.org/fx"

	controllerdashboard "github.com/salesboard/backend/internal/controller/dashboard"
	controllermeta "github.com/salesboard/backend/internal/controller/meta"
)

func Module() fx.Option {
	return fx.Module("controller",
		// Controllers (dashboard)
		controllerdashboard.Module(),

		// Controllers (meta)
		controllermeta.Module(),
	)
}
