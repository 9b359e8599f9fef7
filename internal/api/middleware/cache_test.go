package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/lifelinecare/hospitalfinder/backend/pkg/errors"
)

type memoryCache struct {
	store map[string][]byte
}

func newMemoryCache() *memoryCache {
	return &memoryCache{store: map[string][]byte{}}
}

func (c *memoryCache) Get(ctx context.Context, key string) ([]byte, error) {
	if val, ok := c.store[key]; ok {
		return val, nil
	}
	return nil, apperrors.NewNotFoundError("cache miss")
}

func (c *memoryCache) Set(ctx context.Context, key string, value []byte, expirationSeconds int) error {
	c.store[key] = value
	return nil
}

func (c *memoryCache) Delete(ctx context.Context, key string) error {
	delete(c.store, key)
	return nil
}

func (c *memoryCache) Exists(ctx context.Context, key string) (bool, error) {
	_, ok := c.store[key]
	return ok, nil
}

func newCountingHandler(calls *int) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		*calls++
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"region":"ranchi"}`))
	})
}

func TestCacheMiddleware_MissThenHit(t *testing.T) {
	cache := newMemoryCache()
	mw := NewCacheMiddleware(cache, nil)

	calls := 0
	handler := mw.Middleware(newCountingHandler(&calls))

	req := httptest.NewRequest(http.MethodGet, "/api/discover?lat=23.36&lng=85.33", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "MISS", rec.Header().Get("X-Cache"))
	assert.Equal(t, 1, calls)

	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/discover?lat=23.36&lng=85.33", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "HIT", rec.Header().Get("X-Cache"))
	assert.Equal(t, `{"region":"ranchi"}`, rec.Body.String())
	assert.Equal(t, 1, calls, "handler should not run on a cache hit")
}

func TestCacheMiddleware_QueryChangesKey(t *testing.T) {
	cache := newMemoryCache()
	mw := NewCacheMiddleware(cache, nil)

	calls := 0
	handler := mw.Middleware(newCountingHandler(&calls))

	handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/api/discover?sort=beds", nil))
	handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/api/discover?sort=distance", nil))

	assert.Equal(t, 2, calls)
}

func TestCacheMiddleware_SkipsUnconfiguredRoutes(t *testing.T) {
	cache := newMemoryCache()
	mw := NewCacheMiddleware(cache, nil)

	calls := 0
	handler := mw.Middleware(newCountingHandler(&calls))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Empty(t, rec.Header().Get("X-Cache"))
	assert.Empty(t, cache.store)
}

func TestCacheMiddleware_SkipsNonGET(t *testing.T) {
	cache := newMemoryCache()
	mw := NewCacheMiddleware(cache, nil)

	calls := 0
	handler := mw.Middleware(newCountingHandler(&calls))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/discover", nil))

	assert.Empty(t, rec.Header().Get("X-Cache"))
	assert.Empty(t, cache.store)
}

func TestCacheMiddleware_DoesNotCacheErrors(t *testing.T) {
	cache := newMemoryCache()
	mw := NewCacheMiddleware(cache, nil)

	handler := mw.Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"error":"bad request"}`))
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/discover?lat=abc", nil))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Empty(t, cache.store)
}

func TestGetRouteConfig_PrefixMatch(t *testing.T) {
	mw := NewCacheMiddleware(newMemoryCache(), nil)

	config := mw.getRouteConfig("/api/hospitals/42")
	assert.True(t, config.Enabled)
	assert.Equal(t, 300, config.TTLSeconds)

	config = mw.getRouteConfig("/api/unknown")
	assert.False(t, config.Enabled)
}
