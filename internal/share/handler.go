package share

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gnomelab/gnome-horoscope-backend/internal/analytics"
	"github.com/gnomelab/gnome-horoscope-backend/internal/identity"
	"github.com/gnomelab/gnome-horoscope-backend/internal/platform/config"
)

// ShareRequestBody 定义了创建分享请求体的JSON结构
type ShareRequestBody struct {
	InitData    string          `json:"initData"`
	ContentType string          `json:"content_type"`
	Content     json.RawMessage `json:"content"`
	ShareText   string          `json:"share_text"`
}

// ShareContent 处理创建分享的请求
func ShareContent(c *gin.Context) {
	var body ShareRequestBody
	if err := c.ShouldBindJSON(&body); err != nil ||
		body.ContentType == "" || len(body.Content) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Недостаточно данных"})
		return
	}

	// 解析用户身份，校验失败降级为匿名身份
	id := identity.Resolve(body.InitData)

	analytics.Track(id.UserID, "share_content", map[string]interface{}{
		"type": body.ContentType,
	})

	entry := SharedContent{
		UserID:      id.UserID,
		ContentType: body.ContentType,
		Content:     string(body.Content),
		ShareText:   body.ShareText,
	}
	if err := Create(&entry); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Ошибка создания репоста"})
		return
	}

	shareURL := fmt.Sprintf("%s/shared/%d", config.Cfg.Server.FrontendURL, entry.ID)
	c.JSON(http.StatusOK, gin.H{
		"status":     "success",
		"share_id":   entry.ID,
		"share_url":  shareURL,
		"share_text": fmt.Sprintf("🧙‍♂️ %s - %s #ГномыйГороскоп", body.ShareText, shareURL),
	})
}

// GetSharedContent 处理按ID读取分享内容的请求
// 每次成功读取都会将该分享的查看计数加一。
func GetSharedContent(c *gin.Context) {
	rawID := c.Param("id")
	id, err := strconv.ParseUint(rawID, 10, 32)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Контент не найден"})
		return
	}

	entry, err := FetchAndCountView(uint(id))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Ошибка получения контента"})
		return
	}
	if entry == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Контент не найден"})
		return
	}

	var content interface{}
	if err := json.Unmarshal([]byte(entry.Content), &content); err != nil {
		content = entry.Content
	}

	c.JSON(http.StatusOK, gin.H{
		"content_type": entry.ContentType,
		"content":      content,
		"share_text":   entry.ShareText,
		"views":        entry.ViewCount,
		"created_at":   entry.CreatedAt.UTC().Format(time.RFC3339),
	})
}
