// Package services holds the business services between handlers and the
// content store.
package services

import (
	"encoding/json"
	"time"

	"langart/internal/store"
	"langart/internal/types"

	"github.com/sirupsen/logrus"
)

// Cache keys for the public read paths. One key per cached entity list so
// writes can invalidate precisely.
const (
	CacheKeyInstructors  = "content:instructors"
	CacheKeyTestimonials = "content:testimonials"
	CacheKeyPricing      = "content:pricing"
	CacheKeySiteConfig   = "content:site_config"
)

// ContentCache caches public list reads with a TTL backstop. Every write
// path for a cached entity must call Invalidate, so admin edits become
// visible immediately instead of after the staleness window.
type ContentCache struct {
	store store.Store
	ttl   time.Duration
}

// NewContentCache creates a ContentCache on top of the configured store.
func NewContentCache(s store.Store, configManager types.ConfigManager) *ContentCache {
	ttl := time.Duration(configManager.GetCacheConfig().TTLHours) * time.Hour
	return &ContentCache{store: s, ttl: ttl}
}

// Get unmarshals the cached value for key into dest, reporting whether a
// fresh entry was found. Cache failures are logged and treated as misses so
// reads fall through to the database.
func (c *ContentCache) Get(key string, dest any) bool {
	data, err := c.store.Get(key)
	if err != nil {
		if err != store.ErrNotFound {
			logrus.WithError(err).WithField("key", key).Warn("Cache read failed")
		}
		return false
	}
	if err := json.Unmarshal(data, dest); err != nil {
		logrus.WithError(err).WithField("key", key).Warn("Cache entry corrupted, dropping")
		_ = c.store.Delete(key)
		return false
	}
	return true
}

// Put stores a value under key with the configured TTL. Failures are
// logged; the caller already has the value and serves it regardless.
func (c *ContentCache) Put(key string, value any) {
	data, err := json.Marshal(value)
	if err != nil {
		logrus.WithError(err).WithField("key", key).Warn("Cache marshal failed")
		return
	}
	if err := c.store.Set(key, data, c.ttl); err != nil {
		logrus.WithError(err).WithField("key", key).Warn("Cache write failed")
	}
}

// Invalidate drops the cached entries for the given keys.
func (c *ContentCache) Invalidate(keys ...string) {
	if err := c.store.Del(keys...); err != nil {
		logrus.WithError(err).WithField("keys", keys).Warn("Cache invalidation failed")
	}
}
