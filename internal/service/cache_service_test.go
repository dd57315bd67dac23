package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestCacheServiceDisabled(t *testing.T) {
	mem := newMemoryCache()
	svc := NewCacheService(mem, nil, time.Minute, nil, false)

	svc.Set(context.Background(), "k", "v")
	var out string
	assert.False(t, svc.Get(context.Background(), "k", &out))
	assert.Empty(t, mem.items)

	var nilSvc *CacheService
	assert.False(t, nilSvc.Enabled())
	assert.False(t, nilSvc.Get(context.Background(), "k", &out))
	nilSvc.Invalidate(context.Background(), "k")
}

func TestCacheServiceRecordsLookups(t *testing.T) {
	metrics := NewMetricsService()
	svc := NewCacheService(newMemoryCache(), metrics, time.Minute, nil, true)

	var out string
	assert.False(t, svc.Get(context.Background(), "k", &out))
	svc.Set(context.Background(), "k", "v")
	assert.True(t, svc.Get(context.Background(), "k", &out))
	assert.Equal(t, "v", out)

	assert.Equal(t, float64(1), testutil.ToFloat64(metrics.cacheLookups.WithLabelValues("hit")))
	assert.Equal(t, float64(1), testutil.ToFloat64(metrics.cacheLookups.WithLabelValues("miss")))
}

func TestCacheServiceBackendFailureIsAMiss(t *testing.T) {
	core, logs := observer.New(zap.WarnLevel)
	mem := newMemoryCache()
	mem.getErr = errors.New("connection refused")
	svc := NewCacheService(mem, nil, time.Minute, zap.New(core), true)

	var out string
	assert.False(t, svc.Get(context.Background(), "k", &out))
	assert.Equal(t, 1, logs.FilterMessage("cache get failed").Len())
}

func TestCacheServiceSetIfCurrent(t *testing.T) {
	mem := newMemoryCache()
	svc := NewCacheService(mem, nil, time.Minute, nil, true)
	ctx := context.Background()

	stale := svc.Generation("k")
	svc.Invalidate(ctx, "k")
	svc.SetIfCurrent(ctx, "k", "old", stale)
	assert.NotContains(t, mem.items, "k")

	svc.SetIfCurrent(ctx, "k", "new", svc.Generation("k"))
	var out string
	assert.True(t, svc.Get(ctx, "k", &out))
	assert.Equal(t, "new", out)

	var nilSvc *CacheService
	assert.Zero(t, nilSvc.Generation("k"))
	nilSvc.SetIfCurrent(ctx, "k", "v", 0)
}
