package redis

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vogiaan1904/barberqueue/config"
)

func TestNewClientAppliesConfig(t *testing.T) {
	cli := NewClient(config.RedisConfig{
		Addr:         "redis.internal:6380",
		Password:     "secret",
		DB:           3,
		MaxRetries:   5,
		PoolSize:     20,
		MinIdleConns: 4,
	})
	defer cli.Close()

	opts := cli.Options()
	assert.Equal(t, "redis.internal:6380", opts.Addr)
	assert.Equal(t, "secret", opts.Password)
	assert.Equal(t, 3, opts.DB)
	assert.Equal(t, 5, opts.MaxRetries)
	assert.Equal(t, 20, opts.PoolSize)
	assert.Equal(t, 4, opts.MinIdleConns)
}
