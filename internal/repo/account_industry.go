package repo

import (
	"context"

	"github.com/salesboard/backend/internal/app/appconfig"
	"github.com/salesboard/backend/internal/model"
	"github.com/salesboard/backend/internal/repo/selector"
	"github.com/salesboard/backend/internal/source"
)

type AccountIndustry struct {
	sel selector.S[model.AccountIndustry]
}

func NewAccountIndustry(src source.Source, conf *appconfig.Config) *AccountIndustry {
	return &AccountIndustry{sel: selector.New[model.AccountIndustry](src, model.CategoryAccountIndustry, conf.SourceCacheTTL)}
}

func (r *AccountIndustry) GetAccountIndustries(ctx context.Context) ([]*model.AccountIndustry, error) {
	return r.sel.SelectAll(ctx)
}

func (r *AccountIndustry) Flush() error {
	return r.sel.Flush()
}
