package mock

import (
	"context"
	"sync"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
)

var redisOnce sync.Once
var redisConn *redis.Client

// NewRedis starts the embedded miniredis instance backing the suggestion
// cache and returns a client bound to it. Later calls return the same client.
func NewRedis() *redis.Client {
	redisOnce.Do(func() {
		srv, err := miniredis.Run()
		if err != nil {
			panic("failed to start miniredis: " + err.Error())
		}
		redisConn = redis.NewClient(&redis.Options{
			Addr: srv.Addr(),
		})
	})
	return redisConn
}

// ClearRedis flushes every key between scenarios.
func ClearRedis(client *redis.Client) error {
	return client.FlushAll(context.Background()).Err()
}
