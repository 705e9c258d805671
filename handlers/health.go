package handlers

import (
	"context"
	"net/http"
	"time"

	"barberbook/database"
	"barberbook/utils"

	"github.com/gin-gonic/gin"
)

// HealthHandler reports liveness of the store and the cache.
func HealthHandler(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
	defer cancel()

	status := http.StatusOK
	checks := gin.H{"mongo": "ok", "redis": "ok"}

	if err := database.MongoClient.Ping(ctx, nil); err != nil {
		checks["mongo"] = err.Error()
		status = http.StatusServiceUnavailable
	}
	if err := utils.GetCacheClient().Ping(ctx).Err(); err != nil {
		checks["redis"] = err.Error()
		status = http.StatusServiceUnavailable
	}

	c.JSON(status, checks)
}
