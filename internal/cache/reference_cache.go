package cache

import (
	"context"
	"fmt"
	"slices"
	"time"

	"github.com/givepenny/campaign-signup-helper/pkg/api"
	"github.com/givepenny/campaign-signup-helper/pkg/logger"
	"github.com/givepenny/campaign-signup-helper/pkg/metrics"
	gocache "github.com/patrickmn/go-cache"
	"go.uber.org/zap"
)

// MeasurementSource defines the discovery lookups the cache wraps
type MeasurementSource interface {
	GetMeasurements(ctx context.Context) ([]api.Measurement, error)
	GetUnits(ctx context.Context) ([]api.Unit, error)
}

// ActivitySource defines the activity lookups the cache wraps
type ActivitySource interface {
	GetSystemDefinedActivities(ctx context.Context) ([]api.Activity, error)
	GetActivity(ctx context.Context, activityID string) (*api.Activity, error)
}

const (
	measurementsKey     = "reference:measurements"
	unitsKey            = "reference:units"
	systemActivitiesKey = "reference:activities:system"
	cacheCleanupPeriod  = 10 * time.Minute
)

// ReferenceCache keeps the reference data used to describe campaigns in
// memory. Measurements, units and system defined activities rarely change, so
// they are fetched once per TTL. Custom activities are always looked up.
type ReferenceCache struct {
	cache        *gocache.Cache
	measurements MeasurementSource
	activities   ActivitySource
	ttl          time.Duration
}

// NewReferenceCache creates a reference cache. A ttl of zero or less disables
// caching and every call goes to the sources.
func NewReferenceCache(measurements MeasurementSource, activities ActivitySource, ttl time.Duration) *ReferenceCache {
	return &ReferenceCache{
		cache:        gocache.New(ttl, cacheCleanupPeriod),
		measurements: measurements,
		activities:   activities,
		ttl:          ttl,
	}
}

// GetMeasurements returns every measurement
func (rc *ReferenceCache) GetMeasurements(ctx context.Context) ([]api.Measurement, error) {
	return cached(ctx, rc, measurementsKey, rc.measurements.GetMeasurements)
}

// GetUnits returns every unit
func (rc *ReferenceCache) GetUnits(ctx context.Context) ([]api.Unit, error) {
	return cached(ctx, rc, unitsKey, rc.measurements.GetUnits)
}

// GetSystemDefinedActivities returns the activities shared by every charity
func (rc *ReferenceCache) GetSystemDefinedActivities(ctx context.Context) ([]api.Activity, error) {
	return cached(ctx, rc, systemActivitiesKey, rc.activities.GetSystemDefinedActivities)
}

// GetActivity looks up a single activity without caching
func (rc *ReferenceCache) GetActivity(ctx context.Context, activityID string) (*api.Activity, error) {
	return rc.activities.GetActivity(ctx, activityID)
}

// Invalidate drops everything cached
func (rc *ReferenceCache) Invalidate() {
	rc.cache.Flush()
	logger.Info("Reference cache invalidated")
}

func cached[T any](ctx context.Context, rc *ReferenceCache, key string, fetch func(context.Context) ([]T, error)) ([]T, error) {
	if rc.ttl <= 0 {
		return fetch(ctx)
	}

	if data, found := rc.cache.Get(key); found {
		items, ok := data.([]T)
		if ok {
			metrics.CacheHits.WithLabelValues(key).Inc()
			return slices.Clone(items), nil
		}
		logger.Error("Invalid reference cache data type", zap.String("key", key))
		rc.cache.Delete(key)
	}

	metrics.CacheMisses.WithLabelValues(key).Inc()
	items, err := fetch(ctx)
	if err != nil {
		logger.Warn("Failed to refresh reference cache", zap.String("key", key), zap.Error(err))
		return nil, fmt.Errorf("failed to load %s: %w", key, err)
	}

	rc.cache.Set(key, slices.Clone(items), rc.ttl)
	logger.Debug("Reference cache refreshed", zap.String("key", key), zap.Int("count", len(items)))

	return items, nil
}
