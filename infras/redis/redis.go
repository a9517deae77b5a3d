package redis

import (
	"context"
	"hotel/config"
	"net"

	goRedis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

// New connects to the primary Redis. It returns nil when no host is
// configured or the server cannot be reached; the cache is optional.
func New(config *config.Config) *goRedis.Client {
	primary := config.Cache.Redis.Primary

	if primary.Host == "" {
		log.Info().Msg("Redis host not configured, caching disabled")

		return nil
	}

	ctx := context.Background()
	client := goRedis.NewClient(&goRedis.Options{
		Addr:     net.JoinHostPort(primary.Host, primary.Port),
		Password: primary.Password,
		DB:       primary.DB,
	})

	_, err := client.Ping(ctx).Result()
	if err != nil {
		log.Warn().Err(err).Str("host", primary.Host).Msg("Failed to connect to Redis, caching disabled")

		_ = client.Close()

		return nil
	}

	log.Info().
		Int("db", primary.DB).
		Str("host", primary.Host).
		Str("port", primary.Port).
		Msg("Connected to Redis")

	return client
}
