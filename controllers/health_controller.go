package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// HealthCheck reports service and database health.
func HealthCheck(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		response := gin.H{
			"status":    "ok",
			"timestamp": time.Now().Unix(),
			"db":        "ok",
		}

		sqlDB, err := db.DB()
		if err != nil {
			response["status"] = "degraded"
			response["db"] = "error: cannot get DB instance"
			c.JSON(http.StatusInternalServerError, response)
			return
		}
		if err := sqlDB.Ping(); err != nil {
			response["status"] = "degraded"
			response["db"] = "error: cannot connect to DB"
			c.JSON(http.StatusInternalServerError, response)
			return
		}

		c.JSON(http.StatusOK, response)
	}
}
