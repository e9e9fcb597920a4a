package favorite

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gnomelab/gnome-horoscope-backend/internal/analytics"
	"github.com/gnomelab/gnome-horoscope-backend/internal/identity"
)

// AddFavoriteRequestBody 定义了添加收藏请求体的JSON结构
// Content 为任意JSON值，按原样序列化存储。
type AddFavoriteRequestBody struct {
	InitData string          `json:"initData"`
	Type     string          `json:"type"`
	Content  json.RawMessage `json:"content"`
}

// FavoriteResponse 定义了收藏列表中单条记录的API响应模型
type FavoriteResponse struct {
	Type    string      `json:"type"`
	Content interface{} `json:"content"`
	AddedAt string      `json:"added_at"`
}

// AddFavorite 处理添加收藏的请求
func AddFavorite(c *gin.Context) {
	var body AddFavoriteRequestBody

	// 1. 绑定并验证请求体：三个字段都是必填的
	if err := c.ShouldBindJSON(&body); err != nil ||
		body.InitData == "" || body.Type == "" || len(body.Content) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Недостаточно данных"})
		return
	}

	// 2. 解析用户身份，校验失败降级为匿名身份
	id := identity.Resolve(body.InitData)

	// 3. 追加收藏记录
	entry := Favorite{
		UserID:      id.UserID,
		ContentType: body.Type,
		Content:     string(body.Content),
		AddedAt:     time.Now().UTC(),
	}
	if err := Append(&entry); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Ошибка добавления в избранное"})
		return
	}

	analytics.Track(id.UserID, "add_favorite", map[string]interface{}{
		"type": body.Type,
	})

	c.JSON(http.StatusOK, gin.H{"status": "added", "message": "Добавлено в избранное"})
}

// GetFavorites 处理查询收藏列表的请求
func GetFavorites(c *gin.Context) {
	id := identity.Resolve(c.Query("init_data"))

	entries, err := ListByUser(id.UserID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Ошибка получения избранного"})
		return
	}

	favorites := make([]FavoriteResponse, 0, len(entries))
	for _, entry := range entries {
		var content interface{}
		// 反序列化失败时保留原始字符串，列表接口不因脏数据而失败
		if err := json.Unmarshal([]byte(entry.Content), &content); err != nil {
			content = entry.Content
		}
		favorites = append(favorites, FavoriteResponse{
			Type:    entry.ContentType,
			Content: content,
			AddedAt: entry.AddedAt.UTC().Format(time.RFC3339),
		})
	}

	c.JSON(http.StatusOK, gin.H{"favorites": favorites})
}
