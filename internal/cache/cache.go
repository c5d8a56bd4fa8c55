package cache

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

// Client wraps redis.Client with the small surface the reset-code
// registry needs. Unlike a read-through cache, registry state must not
// silently vanish, so errors are returned rather than swallowed.
type Client struct {
	client *redis.Client
}

// New creates a new Redis client.
func New(addr, password string, db int) *Client {
	opts := &redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	}
	return &Client{client: redis.NewClient(opts)}
}

// compareAndDeleteScript deletes the key only when its value equals the
// expected one, making consume atomic across instances.
var compareAndDeleteScript = redis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0
`)

// Get returns the value for key, or nil if the key does not exist.
func (c *Client) Get(ctx context.Context, key string) ([]byte, error) {
	res, err := c.client.Get(ctx, key).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return res, nil
}

// Set stores value with TTL.
func (c *Client) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	return c.client.Set(ctx, key, value, ttl).Err()
}

// Delete removes a key.
func (c *Client) Delete(ctx context.Context, key string) error {
	return c.client.Del(ctx, key).Err()
}

// CompareAndDelete removes the key if its value equals expected,
// reporting whether it did.
func (c *Client) CompareAndDelete(ctx context.Context, key, expected string) (bool, error) {
	res, err := compareAndDeleteScript.Run(ctx, c.client, []string{key}, expected).Int()
	if err != nil {
		return false, err
	}
	return res == 1, nil
}
