package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
)

type stubAllower struct {
	allowed bool
	err     error
	lastKey string
}

func (s *stubAllower) Allow(_ context.Context, key string) (bool, error) {
	s.lastKey = key
	return s.allowed, s.err
}

func limitedRequest(t *testing.T, limiter Allower) (*httptest.ResponseRecorder, error) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := RateLimit(limiter, zerolog.Nop())(func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})
	return rec, handler(c)
}

func TestRateLimit_Allows(t *testing.T) {
	stub := &stubAllower{allowed: true}
	rec, err := limitedRequest(t, stub)
	if err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if stub.lastKey == "" {
		t.Fatalf("expected limiter keyed by client IP")
	}
}

func TestRateLimit_Rejects(t *testing.T) {
	_, err := limitedRequest(t, &stubAllower{allowed: false})

	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusTooManyRequests {
		t.Fatalf("expected 429 HTTPError, got %v", err)
	}
}

func TestRateLimit_FailsOpen(t *testing.T) {
	rec, err := limitedRequest(t, &stubAllower{err: errors.New("connection refused")})
	if err != nil {
		t.Fatalf("expected fail-open pass-through, got %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}
