package source

import (
	"context"

	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
)

// Redis reads every resource from a string key named Prefix+resource.
type Redis struct {
	Client *redis.Client
	Prefix string
}

func (s *Redis) Name() string {
	return "redis"
}

func (s *Redis) Read(ctx context.Context, resource string) ([]byte, error) {
	b, err := s.Client.Get(ctx, s.Prefix+resource).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, unavailable(errors.New("key "+s.Prefix+resource+" does not exist"), resource)
	} else if err != nil {
		return nil, unavailable(err, resource)
	}
	return b, nil
}

func (s *Redis) Close() error {
	return s.Client.Close()
}
