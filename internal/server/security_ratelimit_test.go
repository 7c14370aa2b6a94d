package server

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestSecurityLoggingMiddleware_RateLimiting(t *testing.T) {
	detector := NewSuspiciousActivityDetector()
	middleware := SecurityLoggingMiddleware(nil, detector)

	handler := middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	ip := "192.168.1.100"
	req := httptest.NewRequest("GET", "/api/v1/items", nil)
	req.RemoteAddr = ip + ":1234"

	// Simulate requests up to the limit
	for i := 0; i < RateLimitMaxRequests; i++ {
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		if rec.Code != http.StatusOK {
			t.Fatalf("request %d failed with status %d", i, rec.Code)
		}
	}

	// Next request should be blocked
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusTooManyRequests {
		t.Errorf("expected status 429 Too Many Requests, got %d", rec.Code)
	}

	// Verify detector state
	detector.mu.Lock()
	count := detector.requestCountByIP[ip]
	detector.mu.Unlock()

	if count != RateLimitMaxRequests+1 {
		t.Errorf("expected count %d, got %d", RateLimitMaxRequests+1, count)
	}
}

func TestSecurityLoggingMiddleware_SeparateIPs(t *testing.T) {
	detector := NewSuspiciousActivityDetector()
	middleware := SecurityLoggingMiddleware(nil, detector)

	handler := middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	blocked := httptest.NewRequest("GET", "/api/v1/items", nil)
	blocked.RemoteAddr = "192.168.1.100:1234"
	for i := 0; i <= RateLimitMaxRequests; i++ {
		handler.ServeHTTP(httptest.NewRecorder(), blocked)
	}

	// A different IP is unaffected
	other := httptest.NewRequest("GET", "/api/v1/items", nil)
	other.RemoteAddr = "192.168.1.101:1234"
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, other)

	if rec.Code != http.StatusOK {
		t.Errorf("expected other IP to pass, got %d", rec.Code)
	}
}
