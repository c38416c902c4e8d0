package redis

import (
	"context"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
)

func TestLimiterFailsOpenWhenRedisIsDown(t *testing.T) {
	client := redis.NewClient(&redis.Options{
		Addr:        "127.0.0.1:1",
		DialTimeout: 50 * time.Millisecond,
		MaxRetries:  -1,
	})
	defer client.Close()

	l := NewLimiter(client, 10)
	d, err := l.Allow(context.Background(), "10.0.0.1")

	assert.Error(t, err)
	assert.True(t, d.Allowed)
	assert.Equal(t, 10, d.Limit)
}
