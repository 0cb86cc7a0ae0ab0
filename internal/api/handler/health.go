package handler

import (
    "net/http"

    "github.com/gin-gonic/gin"
    "gorm.io/gorm"
)

// Health pings the store.
// @Summary 健康检查
// @Tags 系统
// @Success 200 {object} map[string]string
// @Failure 503 {object} map[string]string
// @Router /health [get]
func Health(db *gorm.DB) gin.HandlerFunc {
    return func(c *gin.Context) {
        sqlDB, err := db.DB()
        if err == nil {
            err = sqlDB.PingContext(c.Request.Context())
        }
        if err != nil {
            c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable", "error": err.Error()})
            return
        }
        c.JSON(http.StatusOK, gin.H{"status": "ok"})
    }
}
