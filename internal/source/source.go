// Package source reads the raw category resources the record store decodes.
package source

import (
	"context"
	"io/fs"
	"strings"
	"time"

	"github.com/pkg/errors"

	"github.com/salesboard/backend/internal/pkg/observability"
)

// ErrSourceUnavailable is wrapped by every error caused by a resource that
// cannot be read.
var ErrSourceUnavailable = errors.New("source unavailable")

// Source returns the raw bytes of a named resource such as "team.json".
// Implementations must be safe for concurrent use.
type Source interface {
	Name() string
	Read(ctx context.Context, resource string) ([]byte, error)
}

// Closer is implemented by sources holding a connection.
type Closer interface {
	Close() error
}

// Instrumented records read latency and failures of s.
func Instrumented(s Source) Source {
	return &instrumented{Source: s}
}

type instrumented struct {
	Source
}

func (s *instrumented) Read(ctx context.Context, resource string) ([]byte, error) {
	start := time.Now()
	b, err := s.Source.Read(ctx, resource)
	observability.SourceReadDuration.WithLabelValues(s.Name(), resource).Observe(time.Since(start).Seconds())
	if err != nil {
		observability.SourceReadErrors.WithLabelValues(s.Name(), resource).Inc()
	}
	return b, err
}

func (s *instrumented) Close() error {
	if c, ok := s.Source.(Closer); ok {
		return c.Close()
	}
	return nil
}

// FS reads resources from a file system rooted at the data directory.
type FS struct {
	name string
	fsys fs.FS
}

func NewFS(name string, fsys fs.FS) *FS {
	return &FS{name: name, fsys: fsys}
}

func (s *FS) Name() string {
	return s.name
}

func (s *FS) Read(ctx context.Context, resource string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, unavailable(err, resource)
	}
	b, err := fs.ReadFile(s.fsys, resource)
	if err != nil {
		return nil, unavailable(err, resource)
	}
	return b, nil
}

func unavailable(err error, resource string) error {
	return errors.Wrapf(ErrSourceUnavailable, "failed to read %s: %v", resource, err)
}

// KeyPrefix turns the path of a source URL into an object key prefix.
func KeyPrefix(path string) string {
	p := strings.Trim(path, "/")
	if p == "" {
		return ""
	}
	return p + "/"
}
