package infra

import (
	"context"
	"net/url"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

// Redis opens a client from a redis:// URL and checks the connection.
// Query parameters unknown to go-redis have to be removed by the caller.
func Redis(u *url.URL) (*redis.Client, error) {
	opts, err := redis.ParseURL(u.String())
	if err != nil {
		log.Error().Err(err).Msg("infra: redis: failed to parse redis url")
		return nil, err
	}

	client := redis.NewClient(opts)

	// check redis connection
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*5)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		log.Error().Err(err).Msg("infra: redis: failed to ping server")
		_ = client.Close()
		return nil, err
	}

	return client, nil
}
