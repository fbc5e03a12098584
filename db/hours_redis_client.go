package db

import (
	"context"
	"fmt"
	"log"

	"github.com/go-redis/redis/v8"
)

// HoursRedisClient struct holds the Redis client and context
type HoursRedisClient struct {
	client *redis.Client
	ctx    context.Context
}

// NewHoursRedisClient initializes a new Redis client with default options
func NewHoursRedisClient(ctx context.Context, client *redis.Client) *HoursRedisClient {
	// Test the connection
	if _, err := client.Ping(ctx).Result(); err != nil {
		log.Fatalf("Could not connect to Redis: %v", err)
	}
	fmt.Println("Connected to Redis")

	return &HoursRedisClient{
		client: client,
		ctx:    ctx,
	}
}

// Set sets a key-value pair in Redis
func (r *HoursRedisClient) Set(key, value string) error {
	return r.client.Set(r.ctx, key, value, 0).Err()
}

// Get retrieves the value for a given key from Redis
func (r *HoursRedisClient) Get(key string) (string, error) {
	return r.client.Get(r.ctx, key).Result()
}

func (r *HoursRedisClient) GetContext() context.Context {
	return r.ctx
}

func (r *HoursRedisClient) Ping() error {
	_, err := r.client.Ping(r.ctx).Result()
	return err
}

func (r *HoursRedisClient) Keys(pattern string) ([]string, error) {
	return r.client.Keys(r.ctx, pattern).Result()
}

func (r *HoursRedisClient) Del(key string) error {
	return r.client.Del(r.ctx, key).Err()
}
