package middleware

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
)

type mockLimiter struct {
	allowFn func(key string) (bool, error)
	keys    []string
}

func (m *mockLimiter) Allow(_ context.Context, key string) (bool, error) {
	m.keys = append(m.keys, key)
	if m.allowFn != nil {
		return m.allowFn(key)
	}
	return true, nil
}

func newGatedApp(cfg RateLimitConfig) *fiber.App {
	app := fiber.New()
	app.Use(RateLimit(cfg))
	app.Get("/ping", func(c *fiber.Ctx) error {
		return c.SendString("pong")
	})
	return app
}

func gatedRequest(t *testing.T, app *fiber.App) *http.Response {
	t.Helper()
	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/ping", nil))
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	return resp
}

func errorBody(t *testing.T, resp *http.Response) string {
	t.Helper()
	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("failed to read body: %v", err)
	}
	var body map[string]string
	if err := json.Unmarshal(raw, &body); err != nil {
		t.Fatalf("failed to decode body %q: %v", raw, err)
	}
	return body["error"]
}

func TestRateLimitAdmits(t *testing.T) {
	limiter := &mockLimiter{}
	app := newGatedApp(RateLimitConfig{Limiter: limiter})

	resp := gatedRequest(t, app)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200 got %d", resp.StatusCode)
	}
	if len(limiter.keys) != 1 || limiter.keys[0] != DefaultAdmissionKey {
		t.Errorf("expected one check under the shared admission key, got %v", limiter.keys)
	}
}

func TestRateLimitDenies(t *testing.T) {
	limiter := &mockLimiter{allowFn: func(string) (bool, error) { return false, nil }}
	app := newGatedApp(RateLimitConfig{Limiter: limiter})

	resp := gatedRequest(t, app)
	if resp.StatusCode != http.StatusTooManyRequests {
		t.Fatalf("expected 429 got %d", resp.StatusCode)
	}
	if msg := errorBody(t, resp); msg != "Too many requests. Please try again later." {
		t.Errorf("unexpected error message: %q", msg)
	}
}

func TestRateLimitFailsClosed(t *testing.T) {
	limiter := &mockLimiter{allowFn: func(string) (bool, error) {
		return false, fmt.Errorf("failed to update rate limit window: connection refused")
	}}
	app := newGatedApp(RateLimitConfig{Limiter: limiter})

	resp := gatedRequest(t, app)
	if resp.StatusCode != http.StatusInternalServerError {
		t.Fatalf("a counter store failure must abort the request, got %d", resp.StatusCode)
	}
	if msg := errorBody(t, resp); msg != "Internal server error" {
		t.Errorf("store details must not leak to the caller: %q", msg)
	}
}

func TestRateLimitCustomKeyFunc(t *testing.T) {
	limiter := &mockLimiter{}
	app := newGatedApp(RateLimitConfig{
		Limiter: limiter,
		KeyFunc: func(c *fiber.Ctx) string { return "caller:" + c.IP() },
	})

	resp := gatedRequest(t, app)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200 got %d", resp.StatusCode)
	}
	if len(limiter.keys) != 1 || limiter.keys[0] == DefaultAdmissionKey {
		t.Errorf("expected the custom key to be used, got %v", limiter.keys)
	}
}
