package infra

import (
	"context"
	"net/url"
	"os"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"go.uber.org/fx"

	"github.com/salesboard/backend/internal/app/appconfig"
	"github.com/salesboard/backend/internal/source"
)

const defaultRedisPrefix = "salesboard:"

// DataSource opens the source named by DataSourceURL.
func DataSource(lc fx.Lifecycle, conf *appconfig.Config) (source.Source, error) {
	src, err := OpenSource(context.Background(), conf)
	if err != nil {
		return nil, err
	}

	log.Info().
		Str("evt.name", "infra.source.open").
		Str("source", src.Name()).
		Msg("data source opened")

	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			if c, ok := src.(source.Closer); ok {
				return c.Close()
			}
			return nil
		},
	})

	return src, nil
}

func OpenSource(ctx context.Context, conf *appconfig.Config) (source.Source, error) {
	u, err := url.Parse(conf.DataSourceURL)
	if err != nil {
		return nil, errors.Wrap(err, "infra: source: invalid data source url")
	}

	var src source.Source
	switch u.Scheme {
	case "embed":
		src = source.Embedded()
	case "file":
		if u.Path == "" {
			return nil, errors.New("infra: source: file:// data source requires an absolute directory path")
		}
		src = source.NewFS("file", os.DirFS(u.Path))
	case "s3":
		client, err := S3(ctx, conf)
		if err != nil {
			return nil, err
		}
		src = &source.S3{
			Client: client,
			Bucket: u.Host,
			Prefix: source.KeyPrefix(u.Path),
		}
	case "redis", "rediss":
		q := u.Query()
		prefix := defaultRedisPrefix
		if q.Has("prefix") {
			prefix = q.Get("prefix")
			q.Del("prefix")
		}
		u.RawQuery = q.Encode()

		client, err := Redis(u)
		if err != nil {
			return nil, err
		}
		src = &source.Redis{Client: client, Prefix: prefix}
	default:
		return nil, errors.Errorf("infra: source: unsupported data source scheme %q", u.Scheme)
	}

	return source.Instrumented(src), nil
}
