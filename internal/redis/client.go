package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
)

type Client struct {
	rdb *redis.Client
}

func Initialize(redisURL string) (*Client, error) {
	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse Redis URL: %w", err)
	}

	rdb := redis.NewClient(opt)

	// Test connection
	ctx := context.Background()
	if err := rdb.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &Client{rdb: rdb}, nil
}

// Catalog cache

func (c *Client) SetProducts(value interface{}, ttl time.Duration) error {
	ctx := context.Background()
	jsonData, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to marshal product list: %w", err)
	}

	return c.rdb.Set(ctx, "catalog:products", jsonData, ttl).Err()
}

func (c *Client) GetProducts(dest interface{}) error {
	ctx := context.Background()
	val, err := c.rdb.Get(ctx, "catalog:products").Result()
	if err != nil {
		if err == redis.Nil {
			return fmt.Errorf("product list not cached")
		}
		return fmt.Errorf("failed to get product list: %w", err)
	}

	return json.Unmarshal([]byte(val), dest)
}

func (c *Client) InvalidateProducts() error {
	ctx := context.Background()
	return c.rdb.Del(ctx, "catalog:products").Err()
}

// Daily order counter, read by the staff POS summary endpoint

func (c *Client) IncrDailyOrders(date string) error {
	ctx := context.Background()
	key := fmt.Sprintf("orders:count:%s", date)
	if err := c.rdb.Incr(ctx, key).Err(); err != nil {
		return fmt.Errorf("failed to increment order counter: %w", err)
	}
	return c.rdb.Expire(ctx, key, 48*time.Hour).Err()
}

func (c *Client) GetDailyOrders(date string) (int, error) {
	ctx := context.Background()
	key := fmt.Sprintf("orders:count:%s", date)
	val, err := c.rdb.Get(ctx, key).Int()
	if err != nil {
		if err == redis.Nil {
			return 0, nil
		}
		return 0, fmt.Errorf("failed to get order counter: %w", err)
	}
	return val, nil
}

// Close Redis connection
func (c *Client) Close() error {
	return c.rdb.Close()
}
