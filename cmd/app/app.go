package app

import (
	"os"

	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v2"

	"github.com/salesboard/backend/cmd/app/cli/inspect"
	"github.com/salesboard/backend/cmd/app/cli/verify"
	"github.com/salesboard/backend/cmd/app/server"
	"github.com/salesboard/backend/internal/pkg/bininfo"
)

func Run() {
	app := &cli.App{
		Name:        "salesboard",
		Description: "Salesboard Backend. Serves quarterly sales metrics as chart-ready JSON. Built with Go, fiber and go.uber.org/fx.",
		Version:     bininfo.Version,
		Commands: []*cli.Command{
			server.Command(),
			inspect.Command(),
			verify.Command(),
		},
	}
	if err := app.Run(os.Args); err != nil {
		log.Fatal().Err(err).Msg("failed to run app")
	}
}
