// Package cache memoizes motor designs in Redis, keyed by their inputs.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strconv"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/go-redis/redis/v8"
	log "github.com/sirupsen/logrus"

	"outrunner/model"
)

const keyPrefix = "outrunner:design:"

// Cache is a Redis backed design cache. A nil *Cache is a disabled cache.
type Cache struct {
	client *redis.Client
	ttl    time.Duration
}

func New(client *redis.Client, ttl time.Duration) *Cache {
	return &Cache{client: client, ttl: ttl}
}

// Dial connects to addr and checks the connection with PING.
func Dial(ctx context.Context, addr string, db int, ttl time.Duration) (*Cache, error) {
	client := redis.NewClient(&redis.Options{
		Addr: addr,
		DB:   db,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("ping redis %s: %w", addr, err)
	}
	return New(client, ttl), nil
}

func (c *Cache) Close() error {
	if c == nil {
		return nil
	}
	return c.client.Close()
}

// Key derives the cache key from the exact bit patterns of params.
func Key(params model.Params) string {
	h := xxhash.New()
	for _, v := range []float64{
		params.WireThickness,
		params.MagnetWidth,
		params.MagnetHeight,
		params.MagnetThickness,
		params.MinDiameter,
		params.MaxDiameter,
		params.TargetKV,
	} {
		h.WriteString(strconv.FormatUint(math.Float64bits(v), 16))
		h.WriteString("|")
	}
	return keyPrefix + strconv.FormatUint(h.Sum64(), 16)
}

// Get returns the cached design for params. A miss is not an error.
func (c *Cache) Get(ctx context.Context, params model.Params) (model.MotorDesign, bool, error) {
	if c == nil {
		return model.MotorDesign{}, false, nil
	}

	key := Key(params)
	b, err := c.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		log.WithField("key", key).Debug("design cache miss")
		return model.MotorDesign{}, false, nil
	}
	if err != nil {
		return model.MotorDesign{}, false, fmt.Errorf("cache get: %w", err)
	}

	var d model.MotorDesign
	if err := json.Unmarshal(b, &d); err != nil {
		return model.MotorDesign{}, false, fmt.Errorf("cache decode: %w", err)
	}
	log.WithField("key", key).Debug("design cache hit")
	return d, true, nil
}

func (c *Cache) Set(ctx context.Context, params model.Params, design model.MotorDesign) error {
	if c == nil {
		return nil
	}

	b, err := json.Marshal(design)
	if err != nil {
		return fmt.Errorf("cache encode: %w", err)
	}
	if err := c.client.Set(ctx, Key(params), b, c.ttl).Err(); err != nil {
		return fmt.Errorf("cache set: %w", err)
	}
	return nil
}
