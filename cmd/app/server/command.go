package server

import (
	"github.com/urfave/cli/v2"
	"go.uber.org/fx"

	"github.com/salesboard/backend/internal/app"
	"github.com/salesboard/backend/internal/app/appcontext"
)

func Command() *cli.Command {
	return &cli.Command{
		Name:  "start",
		Usage: "start server",
		Action: func(c *cli.Context) error {
			app.New(appcontext.Declare(appcontext.EnvServer), fx.Invoke(run)).Run()
			return nil
		},
	}
}
