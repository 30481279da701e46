// Package cache provides Redis-backed read-through caching for hot public
// listings.
package cache

import (
	"context"
	"encoding/json"
	"time"

	riderModel "parcel-delivery/models/rider"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

const activeRidersKey = "riders:active"

// RiderCache serves the public active-rider listing, checking Redis first and
// falling back to the database. SetStatus invalidates the key, so a stale
// entry lives at most one TTL.
type RiderCache struct {
	db  *gorm.DB
	rdb *redis.Client
	ttl time.Duration
}

// NewRiderCache builds a rider cache. If ttl is 0, it defaults to 5 minutes.
func NewRiderCache(db *gorm.DB, rdb *redis.Client, ttl time.Duration) *RiderCache {
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	return &RiderCache{db: db, rdb: rdb, ttl: ttl}
}

// ActiveRiders returns all riders with status "active".
func (c *RiderCache) ActiveRiders(ctx context.Context) ([]riderModel.Rider, error) {
	if c.rdb == nil {
		return c.activeFromDB()
	}

	if b, err := c.rdb.Get(ctx, activeRidersKey).Bytes(); err == nil && len(b) > 0 {
		var out []riderModel.Rider
		if err := json.Unmarshal(b, &out); err == nil {
			return out, nil
		}
		// Corrupted entry; drop it and fall through to the database.
		_ = c.rdb.Del(ctx, activeRidersKey).Err()
	}

	out, err := c.activeFromDB()
	if err != nil {
		return nil, err
	}

	// Best effort: a failed cache write must not fail the request.
	if b, err := json.Marshal(out); err == nil {
		_ = c.rdb.Set(ctx, activeRidersKey, b, c.ttl).Err()
	}

	return out, nil
}

// Invalidate drops the cached listing after a rider status change.
func (c *RiderCache) Invalidate(ctx context.Context) {
	if c.rdb == nil {
		return
	}
	_ = c.rdb.Del(ctx, activeRidersKey).Err()
}

func (c *RiderCache) activeFromDB() ([]riderModel.Rider, error) {
	var riders []riderModel.Rider
	if err := c.db.Where("status = ?", riderModel.StatusActive).Find(&riders).Error; err != nil {
		return nil, err
	}
	return riders, nil
}
