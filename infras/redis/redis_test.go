package redis_test

import (
	"hotel/config"
	"hotel/infras/redis"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNew_WithoutHost(t *testing.T) {
	assert.Nil(t, redis.New(&config.Config{}))
}
