package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenBucketBurst(t *testing.T) {
	bucket := NewTokenBucket(1, 3)

	assert.True(t, bucket.Allow())
	assert.True(t, bucket.Allow())
	assert.True(t, bucket.Allow())
	assert.False(t, bucket.Allow())
}

func TestTokenBucketRefills(t *testing.T) {
	bucket := NewTokenBucket(1000, 1)

	require.True(t, bucket.Allow())
	require.False(t, bucket.Allow())

	time.Sleep(10 * time.Millisecond)
	assert.True(t, bucket.Allow())
}

func newLimitedRouter(path string, cfg RateLimiterConfig) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET(path, RateLimiter(cfg), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
	return r
}

func performRequest(r *gin.Engine, path, remoteAddr string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	req.RemoteAddr = remoteAddr
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestRateLimiterPathModeSharesBucketAcrossClients(t *testing.T) {
	r := newLimitedRouter("/shared-path-bucket", RateLimiterConfig{
		Rate:      0.001,
		Burst:     1,
		LimitType: "path",
	})

	first := performRequest(r, "/shared-path-bucket", "10.0.0.1:1111")
	second := performRequest(r, "/shared-path-bucket", "10.0.0.2:2222")

	assert.Equal(t, http.StatusOK, first.Code)
	assert.Equal(t, http.StatusTooManyRequests, second.Code)
}

func TestRateLimiterIPModeSeparatesClients(t *testing.T) {
	r := newLimitedRouter("/per-ip-bucket", RateLimiterConfig{
		Rate:      0.001,
		Burst:     1,
		LimitType: "ip",
	})

	first := performRequest(r, "/per-ip-bucket", "10.1.0.1:1111")
	firstAgain := performRequest(r, "/per-ip-bucket", "10.1.0.1:1111")
	other := performRequest(r, "/per-ip-bucket", "10.1.0.2:2222")

	assert.Equal(t, http.StatusOK, first.Code)
	assert.Equal(t, http.StatusTooManyRequests, firstAgain.Code)
	assert.Equal(t, http.StatusOK, other.Code)
}
