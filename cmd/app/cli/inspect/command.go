package inspect

import (
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
		Name:        "inspect",
		Usage:       "print chart data as JSON",
		Description: "builds the chart series of one or every category, optionally for a single fiscal quarter, and prints them to stdout",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "quarter",
				Aliases: []string{"q"},
				Usage:   "only include records of this fiscal quarter, e.g. 2024-Q1",
			},
			&cli.StringFlag{
				Name:    "category",
				Aliases: []string{"c"},
				Usage:   "category slug, e.g. customer-types. Leave empty for every category",
			},
		},
		Action: func(ctx *cli.Context) error {
			deps, err := cliapp.Deps[CommandDeps]()
			if err != nil {
				return err
			}
			return run(ctx, deps)
		},
	}
}
