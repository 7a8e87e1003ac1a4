package service

import (
	"context"

	"github.com/pkg/errors"

	"github.com/salesboard/backend/internal/model"
	"github.com/salesboard/backend/internal/source"
)

var ErrSourceNotReachable = errors.New("data source not reachable")

type Health struct {
	Source source.Source
}

func NewHealth(src source.Source) *Health {
	return &Health{
		Source: src,
	}
}

// Ping reads every category resource straight from the source, bypassing the
// record cache.
func (s *Health) Ping(ctx context.Context) error {
	for _, c := range model.Categories {
		if _, err := s.Source.Read(ctx, c.Resource()); err != nil {
			return errors.Wrap(ErrSourceNotReachable, err.Error())
		}
	}
	return nil
}
