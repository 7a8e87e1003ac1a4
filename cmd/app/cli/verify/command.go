package verify

import (
	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v2"
	"go.uber.org/fx"

	cliapp "github.com/salesboard/backend/cmd/app/cli"
	"github.com/salesboard/backend/internal/service"
)

type CommandDeps struct {
	fx.In

	DashboardService *service.Dashboard
}

func Command() *cli.Command {
	return &cli.Command{
		Name:        "verify",
		Usage:       "check that every category resource loads",
		Description: "loads every category collection from the configured data source and reports record counts per category and quarter",
		Action: func(ctx *cli.Context) error {
			deps, err := cliapp.Deps[CommandDeps]()
			if err != nil {
				return err
			}

			report, err := run(ctx, deps)
			if err != nil {
				return err
			}

			for _, line := range report {
				log.Info().
					Str("category", line.Category).
					Int("records", line.Records).
					Interface("quarters", line.Quarters).
					Msg("category verified")
			}
			return nil
		},
	}
}
