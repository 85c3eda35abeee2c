package handler

import (
	"context"
	"time"

	"talenthub/internal/database"
	"talenthub/internal/infrastructure/cache"

	"github.com/gofiber/fiber/v3"
)

type HealthHandler struct {
	db    database.DB
	cache *cache.Redis
}

func NewHealthHandler(db database.DB, cache *cache.Redis) *HealthHandler {
	return &HealthHandler{db: db, cache: cache}
}

func (h *HealthHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	r.Get("/health", h.Health)
}

func (h *HealthHandler) Health(c fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 2*time.Second)
	defer cancel()

	status := fiber.StatusOK
	overall := "ok"
	dbStatus := "up"
	if h.db == nil || h.db.Ping(ctx) != nil {
		dbStatus = "down"
		overall = "degraded"
		status = fiber.StatusServiceUnavailable
	}

	cacheStatus := "up"
	if h.cache == nil || h.cache.Ping(ctx) != nil {
		// The cache is a bypassable dependency; a down cache does not fail
		// the health check.
		cacheStatus = "down"
	}

	return c.Status(status).JSON(fiber.Map{
		"status":   overall,
		"database": dbStatus,
		"cache":    cacheStatus,
	})
}
