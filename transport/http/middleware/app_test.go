package middleware_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"link/config"
	otelMocks "link/infras/otel/mocks"
	cacheMocks "link/shared/cache/mocks"
	"link/shared/constant"
	"link/transport/http/middleware"
)

func limiterConfig(enable bool) *config.Config {
	cfg := &config.Config{}
	cfg.App.RateLimiter.Enable = enable
	cfg.App.RateLimiter.MaxRequests = 2
	cfg.App.RateLimiter.WindowSeconds = 60

	return cfg
}

func ok(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusNoContent)
}

func TestRequestID(t *testing.T) {
	app := middleware.NewAppMiddleware(otelMocks.NewOtel(), limiterConfig(false), nil)

	var seen string

	handler := app.RequestID(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen, _ = r.Context().Value(constant.ContextKeyRequestID).(string)
	}))

	recorder := httptest.NewRecorder()
	request := httptest.NewRequest(http.MethodGet, "/v1/rooms", nil)
	request.Header.Set(constant.RequestHeaderRequestID, "req-1")
	handler.ServeHTTP(recorder, request)

	assert.Equal(t, "req-1", seen)
	assert.Equal(t, "req-1", recorder.Header().Get(constant.RequestHeaderRequestID))

	recorder = httptest.NewRecorder()
	handler.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/v1/rooms", nil))

	assert.Len(t, recorder.Header().Get(constant.RequestHeaderRequestID), 36)
}

func TestRateLimit(t *testing.T) {
	tests := []struct {
		name       string
		count      int64
		err        error
		ttl        time.Duration
		ttlErr     error
		wantStatus int
		remaining  string
		retryAfter string
	}{
		{name: "within window", count: 1, wantStatus: http.StatusNoContent, remaining: "1"},
		{name: "at the limit", count: 2, wantStatus: http.StatusNoContent, remaining: "0"},
		{name: "over the limit", count: 3, ttl: 41500 * time.Millisecond, wantStatus: http.StatusTooManyRequests, remaining: "0", retryAfter: "42"},
		{name: "over the limit without ttl", count: 3, ttlErr: errors.New("redis down"), wantStatus: http.StatusTooManyRequests, remaining: "0"},
		{name: "cache unavailable fails open", err: errors.New("redis down"), wantStatus: http.StatusNoContent},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			cache := cacheMocks.NewMockRedisCache(ctrl)

			cache.EXPECT().Increment(gomock.Any(), "limiter:10.0.0.1:curl", 60).Return(tt.count, tt.err)

			if tt.wantStatus == http.StatusTooManyRequests {
				cache.EXPECT().TTL(gomock.Any(), "limiter:10.0.0.1:curl").Return(tt.ttl, tt.ttlErr)
			}

			app := middleware.NewAppMiddleware(otelMocks.NewOtel(), limiterConfig(true), cache)
			handler := app.RateLimit()(http.HandlerFunc(ok))

			recorder := httptest.NewRecorder()
			request := httptest.NewRequest(http.MethodGet, "/v1/rooms", nil)
			request.Header.Set(constant.RequestHeaderForwardedFor, "10.0.0.1, 172.16.0.1")
			request.Header.Set(constant.RequestHeaderUserAgent, "curl")

			handler.ServeHTTP(recorder, request)

			assert.Equal(t, tt.wantStatus, recorder.Code)
			assert.Equal(t, tt.remaining, recorder.Header().Get(constant.RequestHeaderRateLimitRemaining))
			assert.Equal(t, tt.retryAfter, recorder.Header().Get(constant.RequestHeaderRetryAfter))
		})
	}
}

func TestRateLimit_Disabled(t *testing.T) {
	ctrl := gomock.NewController(t)
	cache := cacheMocks.NewMockRedisCache(ctrl)

	app := middleware.NewAppMiddleware(otelMocks.NewOtel(), limiterConfig(false), cache)

	recorder := httptest.NewRecorder()
	app.RateLimit()(http.HandlerFunc(ok)).ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusNoContent, recorder.Code)
}

func TestTracing_PassesThrough(t *testing.T) {
	app := middleware.NewAppMiddleware(otelMocks.NewOtel(), limiterConfig(false), nil)

	recorder := httptest.NewRecorder()
	app.Tracing(http.HandlerFunc(ok)).ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusNoContent, recorder.Code)
}
