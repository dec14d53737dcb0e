package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"afinare/config"

	"github.com/gin-gonic/gin"
)

func TestRateLimitHonorsConfiguredLimit(t *testing.T) {
	prev := config.AppConfig.MaxRequestsPerMin
	config.AppConfig.MaxRequestsPerMin = 2
	t.Cleanup(func() { config.AppConfig.MaxRequestsPerMin = prev })

	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(RateLimitMiddleware())
	r.GET("/ping", func(c *gin.Context) { c.Status(http.StatusOK) })

	do := func() int {
		req := httptest.NewRequest(http.MethodGet, "/ping", nil)
		req.Header.Set("X-Real-IP", "198.51.100.7")
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, req)
		return rec.Code
	}

	for i := 0; i < 2; i++ {
		if code := do(); code != http.StatusOK {
			t.Fatalf("request %d: status = %d, want 200", i+1, code)
		}
	}
	if code := do(); code != http.StatusTooManyRequests {
		t.Errorf("request 3: status = %d, want 429", code)
	}
}

func TestRequestsPerMinuteFallback(t *testing.T) {
	prev := config.AppConfig.MaxRequestsPerMin
	config.AppConfig.MaxRequestsPerMin = 0
	t.Cleanup(func() { config.AppConfig.MaxRequestsPerMin = prev })

	if got := requestsPerMinute(); got != 120 {
		t.Errorf("requestsPerMinute() = %d, want 120", got)
	}
}
