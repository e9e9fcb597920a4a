package analytics

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gnomelab/gnome-horoscope-backend/internal/identity"
)

// recentActionResponse 是最近行为列表中单条记录的API响应模型
type recentActionResponse struct {
	Action    string      `json:"action"`
	Data      interface{} `json:"data"`
	Timestamp string      `json:"timestamp"`
}

// GetUserAnalytics 返回某用户的行为统计：按行为计数的聚合加上最近10条记录
func GetUserAnalytics(c *gin.Context) {
	id := identity.Resolve(c.Query("init_data"))

	stats, err := CountsByAction(id.UserID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Ошибка получения аналитики"})
		return
	}

	events, err := Recent(id.UserID, 10)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Ошибка получения аналитики"})
		return
	}

	recent := make([]recentActionResponse, 0, len(events))
	for _, event := range events {
		var data interface{}
		if event.Data != "" {
			// 反序列化失败时保留原始字符串，聚合接口不因脏数据而失败
			if err := json.Unmarshal([]byte(event.Data), &data); err != nil {
				data = event.Data
			}
		}
		recent = append(recent, recentActionResponse{
			Action:    event.Action,
			Data:      data,
			Timestamp: event.Timestamp.UTC().Format(time.RFC3339),
		})
	}

	var total int64
	for _, count := range stats {
		total += count
	}

	c.JSON(http.StatusOK, gin.H{
		"user_id":           id.UserID,
		"action_statistics": stats,
		"recent_actions":    recent,
		"total_actions":     total,
	})
}
