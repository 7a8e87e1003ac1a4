package repo

import (
	"context"

	"github.com/salesboard/backend/internal/app/appconfig"
	"github.com/salesboard/backend/internal/model"
	"github.com/salesboard/backend/internal/repo/selector"
	"github.com/salesboard/backend/internal/source"
)

type CustomerType struct {
	sel selector.S[model.CustomerType]
}

func NewCustomerType(src source.Source, conf *appconfig.Config) *CustomerType {
	return &CustomerType{sel: selector.New[model.CustomerType](src, model.CategoryCustomerType, conf.SourceCacheTTL)}
}

func (r *CustomerType) GetCustomerTypes(ctx context.Context) ([]*model.CustomerType, error) {
	return r.sel.SelectAll(ctx)
}

func (r *CustomerType) Flush() error {
	return r.sel.Flush()
}
