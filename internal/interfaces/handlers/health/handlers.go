package health

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// Handlers reports liveness of the process and its backing stores.
type Handlers struct {
	DB    *gorm.DB
	Redis *redis.Client
}

func NewHandlers(db *gorm.DB, rdb *redis.Client) *Handlers {
	return &Handlers{DB: db, Redis: rdb}
}

// JSON returns component statuses. 200 when everything is up, 503 when a
// backing store is unreachable.
func (h *Handlers) JSON(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.UserContext(), 2*time.Second)
	defer cancel()

	status := fiber.StatusOK
	components := fiber.Map{"app": "ok"}

	dbStatus := "ok"
	if h.DB == nil {
		dbStatus = "not configured"
	} else if sqlDB, err := h.DB.DB(); err != nil || sqlDB.PingContext(ctx) != nil {
		dbStatus = "down"
		status = fiber.StatusServiceUnavailable
	}
	components["database"] = dbStatus

	redisStatus := "ok"
	if h.Redis == nil {
		redisStatus = "not configured"
	} else if err := h.Redis.Ping(ctx).Err(); err != nil {
		redisStatus = "down"
		status = fiber.StatusServiceUnavailable
	}
	components["redis"] = redisStatus

	return c.Status(status).JSON(fiber.Map{
		"status":     components,
		"checked_at": time.Now().UTC(),
	})
}
