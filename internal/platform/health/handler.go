package health

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gnomelab/gnome-horoscope-backend/internal/platform/database"
)

// Handler 处理存活探针请求。
// 数据库连接异常时仍返回200，但状态标记为degraded，
// 便于外部监控区分"进程存活"和"依赖可用"。
func Handler(c *gin.Context) {
	status := "ok"
	if err := database.Ping(); err != nil {
		status = "degraded"
	}

	c.JSON(http.StatusOK, gin.H{
		"status":    status,
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}
