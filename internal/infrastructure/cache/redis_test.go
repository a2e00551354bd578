package cache

import (
	"testing"

	"healthtrack/config"

	"github.com/stretchr/testify/assert"
)

func TestNewRedisClient_DisabledWithoutHost(t *testing.T) {
	client, err := NewRedisClient(config.RedisConfig{Port: "6379"})
	assert.NoError(t, err)
	assert.Nil(t, client)
}

func TestNewRedisClient_UnreachableHost(t *testing.T) {
	// port 1 on loopback is never a Redis server
	client, err := NewRedisClient(config.RedisConfig{Host: "127.0.0.1", Port: "1"})
	assert.Error(t, err)
	assert.Nil(t, client)
}
