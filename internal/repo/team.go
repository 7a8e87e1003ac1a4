package repo

import (
	"context"

	"github.com/salesboard/backend/internal/app/appconfig"
	"github.com/salesboard/backend/internal/model"
	"github.com/salesboard/backend/internal/repo/selector"
	"github.com/salesboard/backend/internal/source"
)

type Team struct {
	sel selector.S[model.Team]
}

func NewTeam(src source.Source, conf *appconfig.Config) *Team {
	return &Team{sel: selector.New[model.Team](src, model.CategoryTeam, conf.SourceCacheTTL)}
}

func (r *Team) GetTeams(ctx context.Context) ([]*model.Team, error) {
	return r.sel.SelectAll(ctx)
}

func (r *Team) Flush() error {
	return r.sel.Flush()
}
