package dashboard

import (
	"go.uber.org/fx"
)

func Module() fx.Option {
	return fx.Module("controller.dashboard", fx.Invoke(
		// insights go first: their static paths would otherwise be taken
		// for a category slug
		RegisterInsight,
		RegisterDashboard,
	))
}
