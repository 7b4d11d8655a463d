package controllers

import (
	"net/http"

	"github.com/KCP2005/date-collection/internal/domain/services"
	"github.com/KCP2005/date-collection/internal/domain/services/container"

	"github.com/gin-gonic/gin"
)

// HandlePingFunc answers liveness probes
func HandlePingFunc() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		ctx.JSON(http.StatusOK, gin.H{"message": "pong"})
	}
}

// HandleHealthFunc reports dependency health
func HandleHealthFunc(container *container.ServiceContainer) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		status := http.StatusOK
		dbStatus := "up"
		redisStatus := "disabled"

		sqlDB, err := container.GetDB().DB()
		if err != nil || sqlDB.Ping() != nil {
			dbStatus = "down"
			status = http.StatusInternalServerError
		}

		if redisService, ok := container.GetService("redis").(services.InterfaceRedisService); ok && redisService != nil {
			if err := redisService.Ping(); err != nil {
				redisStatus = "down"
			} else {
				redisStatus = "up"
			}
		}

		ctx.JSON(status, gin.H{
			"database": dbStatus,
			"redis":    redisStatus,
		})
	}
}
