package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"
)

// HealthHandler handles GET /health — liveness probe.
// Returns 200 immediately; confirms the process is alive.
type HealthHandler struct{}

func NewHealthHandler() *HealthHandler {
	return &HealthHandler{}
}

type healthResponse struct {
	OK bool `json:"ok"`
}

func (h *HealthHandler) Liveness(c echo.Context) error {
	return c.JSON(http.StatusOK, healthResponse{OK: true})
}

// ReadinessHandler handles GET /health/ready — readiness probe.
// Checks Postgres and Redis connectivity before declaring the service
// ready. Redis is optional; when absent it is reported as disabled and
// does not fail readiness.
type ReadinessHandler struct {
	pool  *pgxpool.Pool
	redis *redis.Client
}

func NewReadinessHandler(pool *pgxpool.Pool, rdb *redis.Client) *ReadinessHandler {
	return &ReadinessHandler{pool: pool, redis: rdb}
}

type dependencyStatus struct {
	Status string `json:"status"`
	Error  string `json:"error,omitempty"`
}

type readinessResponse struct {
	Status   string           `json:"status"`
	Postgres dependencyStatus `json:"postgres"`
	Redis    dependencyStatus `json:"redis"`
}

func (h *ReadinessHandler) Readiness(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 2*time.Second)
	defer cancel()

	resp := readinessResponse{Status: "ready"}
	code := http.StatusOK

	if err := h.pool.Ping(ctx); err != nil {
		resp.Postgres = dependencyStatus{Status: "down", Error: err.Error()}
		resp.Status = "degraded"
		code = http.StatusServiceUnavailable
	} else {
		resp.Postgres = dependencyStatus{Status: "up"}
	}

	if h.redis == nil {
		resp.Redis = dependencyStatus{Status: "disabled"}
	} else if err := h.redis.Ping(ctx).Err(); err != nil {
		resp.Redis = dependencyStatus{Status: "down", Error: err.Error()}
	} else {
		resp.Redis = dependencyStatus{Status: "up"}
	}

	return c.JSON(code, resp)
}
