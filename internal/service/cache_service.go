package service

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// CacheService is a best-effort read-through cache over Redis for the
// public listing endpoints. Every failure degrades to a miss; the cache
// never turns into an error source for callers.
type CacheService struct {
	client  *redis.Client
	metrics *MetricsService
	ttl     time.Duration
	logger  *zap.Logger
}

// NewCacheService constructs a cache service around an established client.
func NewCacheService(client *redis.Client, metrics *MetricsService, ttl time.Duration, logger *zap.Logger) *CacheService {
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CacheService{client: client, metrics: metrics, ttl: ttl, logger: logger}
}

// Enabled indicates whether caching is active. A nil receiver means the
// cache was not configured, which is a valid deployment.
func (s *CacheService) Enabled() bool {
	return s != nil && s.client != nil
}

// Get attempts to retrieve a cached entry, reporting true on a hit.
func (s *CacheService) Get(ctx context.Context, key string, dest interface{}) bool {
	if !s.Enabled() {
		return false
	}
	start := time.Now()
	raw, err := s.client.Get(ctx, key).Bytes()
	if err != nil {
		s.metrics.RecordCacheOperation(false, time.Since(start))
		if err != redis.Nil {
			s.logger.Warn("cache get failed", zap.String("key", key), zap.Error(err))
		}
		return false
	}
	if err := json.Unmarshal(raw, dest); err != nil {
		s.metrics.RecordCacheOperation(false, time.Since(start))
		s.logger.Warn("cache entry corrupt", zap.String("key", key), zap.Error(err))
		return false
	}
	s.metrics.RecordCacheOperation(true, time.Since(start))
	return true
}

// Set stores the value under the service TTL.
func (s *CacheService) Set(ctx context.Context, key string, value interface{}) {
	if !s.Enabled() {
		return
	}
	payload, err := json.Marshal(value)
	if err != nil {
		s.logger.Warn("cache marshal failed", zap.String("key", key), zap.Error(err))
		return
	}
	start := time.Now()
	if err := s.client.Set(ctx, key, payload, s.ttl).Err(); err != nil {
		s.logger.Warn("cache set failed", zap.String("key", key), zap.Error(err))
		return
	}
	s.metrics.ObserveCacheWrite(time.Since(start))
}

// Invalidate removes every key matching the provided patterns.
func (s *CacheService) Invalidate(ctx context.Context, patterns ...string) {
	if !s.Enabled() {
		return
	}
	for _, pattern := range patterns {
		iter := s.client.Scan(ctx, 0, pattern, 0).Iterator()
		var keys []string
		for iter.Next(ctx) {
			keys = append(keys, iter.Val())
		}
		if err := iter.Err(); err != nil {
			s.logger.Warn("cache scan failed", zap.String("pattern", pattern), zap.Error(err))
			continue
		}
		if len(keys) == 0 {
			continue
		}
		if err := s.client.Del(ctx, keys...).Err(); err != nil {
			s.logger.Warn("cache invalidation failed", zap.String("pattern", pattern), zap.Error(err))
		}
	}
}
