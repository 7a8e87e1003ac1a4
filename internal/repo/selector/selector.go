package selector

import (
	"context"
	"time"

	"github.com/goccy/go-json"
	"github.com/pkg/errors"

	"github.com/salesboard/backend/internal/model"
	"github.com/salesboard/backend/internal/pkg/cache"
	"github.com/salesboard/backend/internal/pkg/observability"
	"github.com/salesboard/backend/internal/source"
)

// S loads the whole collection of one category from a source, optionally
// keeping the decoded slice in memory for ttl. Cached slices are shared
// between callers and must not be modified.
type S[T any] struct {
	src      source.Source
	category model.Category
	ttl      time.Duration
	cache    *cache.Singular[[]*T]
}

func New[T any](src source.Source, category model.Category, ttl time.Duration) S[T] {
	return S[T]{
		src:      src,
		category: category,
		ttl:      ttl,
		cache:    cache.NewSingular[[]*T](category.Resource()),
	}
}

func (r S[T]) SelectAll(ctx context.Context) ([]*T, error) {
	return r.cache.MutexGetSet(func() ([]*T, error) {
		return r.load(ctx)
	}, r.ttl)
}

func (r S[T]) Flush() error {
	return r.cache.Delete()
}

func (r S[T]) load(ctx context.Context) ([]*T, error) {
	resource := r.category.Resource()

	b, err := r.src.Read(ctx, resource)
	if err != nil {
		return nil, err
	}

	var records []*T
	if err := json.Unmarshal(b, &records); err != nil {
		return nil, errors.Wrapf(source.ErrSourceUnavailable, "failed to parse %s: %v", resource, err)
	}
	if records == nil {
		records = []*T{}
	}

	observability.RecordsLoaded.WithLabelValues(r.category.String()).Set(float64(len(records)))
	return records, nil
}
