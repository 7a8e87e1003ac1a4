package cli

import (
	"context"

	"go.uber.org/fx"

	"github.com/salesboard/backend/internal/app"
	"github.com/salesboard/backend/internal/app/appcontext"
)

func Start(module fx.Option) error {
	return app.New(appcontext.Declare(appcontext.EnvCLI), module).Start(context.Background())
}

// Deps builds the application graph and populates T from it.
func Deps[T any]() (T, error) {
	var deps T
	err := Start(fx.Populate(&deps))
	return deps, err
}
