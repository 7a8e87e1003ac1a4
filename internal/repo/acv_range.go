package repo

import (
	"context"

	"github.com/salesboard/backend/internal/app/appconfig"
	"github.com/salesboard/backend/internal/model"
	"github.com/salesboard/backend/internal/repo/selector"
	"github.com/salesboard/backend/internal/source"
)

type ACVRange struct {
	sel selector.S[model.ACVRange]
}

func NewACVRange(src source.Source, conf *appconfig.Config) *ACVRange {
	return &ACVRange{sel: selector.New[model.ACVRange](src, model.CategoryACVRange, conf.SourceCacheTTL)}
}

func (r *ACVRange) GetACVRanges(ctx context.Context) ([]*model.ACVRange, error) {
	return r.sel.SelectAll(ctx)
}

func (r *ACVRange) Flush() error {
	return r.sel.Flush()
}
