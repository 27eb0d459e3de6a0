package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"
)

type HealthHandler struct {
	redisClient *redis.Client
}

var healthHandler *HealthHandler

func NewHealthHandler(redisClient *redis.Client) *HealthHandler {
	return &HealthHandler{
		redisClient: redisClient,
	}
}

func SetupHealthHandler(redisClient *redis.Client) {
	healthHandler = NewHealthHandler(redisClient)
}

func GetHealthHandler() *HealthHandler {
	return healthHandler
}

func (h *HealthHandler) CheckHealth(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{
		"status": "Server is running",
		"time":   time.Now().Format(time.RFC3339),
	})
}

func (h *HealthHandler) CheckRedisHealth(c echo.Context) error {
	if err := h.redisClient.Ping(c.Request().Context()).Err(); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{
			"status": "Redis connection failed",
			"error":  err.Error(),
		})
	}

	return c.JSON(http.StatusOK, map[string]string{
		"status": "Redis connected successfully",
	})
}
