package user

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gnomelab/gnome-horoscope-backend/internal/analytics"
	"github.com/gnomelab/gnome-horoscope-backend/internal/identity"
)

// SettingsPayload 定义了前端提交设置时settings字段的JSON结构
type SettingsPayload struct {
	ZodiacSign       string `json:"zodiac_sign"`
	BirthTime        string `json:"birth_time"`
	BirthLocation    string `json:"birth_location"`
	NotificationTime string `json:"notification_time"`
	Premium          bool   `json:"premium"`
	Language         string `json:"language"`
	Theme            string `json:"theme"`
}

// SaveSettingsRequestBody 定义了保存设置请求体的JSON结构
type SaveSettingsRequestBody struct {
	InitData string           `json:"initData"`
	Settings *SettingsPayload `json:"settings"`
}

// SettingsResponse 定义了查询设置的API响应模型
// 从未保存过设置的用户会得到文档化的默认对象，而不是404。
type SettingsResponse struct {
	ZodiacSign       *string `json:"zodiac_sign"`
	BirthTime        *string `json:"birth_time"`
	BirthLocation    *string `json:"birth_location"`
	NotificationTime string  `json:"notification_time"`
	Premium          bool    `json:"premium"`
	Language         string  `json:"language"`
	Theme            string  `json:"theme"`
	CreatedAt        *string `json:"created_at"`
}

// defaultSettingsResponse 是从未配置过的用户看到的默认设置对象
func defaultSettingsResponse() SettingsResponse {
	return SettingsResponse{
		NotificationTime: "09:00",
		Premium:          false,
		Language:         "ru",
		Theme:            "light",
	}
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

// SaveSettings 处理保存用户设置的请求
func SaveSettings(c *gin.Context) {
	var body SaveSettingsRequestBody

	// 1. 绑定并验证请求体
	if err := c.ShouldBindJSON(&body); err != nil || body.InitData == "" || body.Settings == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Недостаточно данных"})
		return
	}

	// 2. 解析用户身份，校验失败降级为匿名身份
	id := identity.Resolve(body.InitData)

	analytics.Track(id.UserID, "save_settings", map[string]interface{}{
		"zodiac_sign": body.Settings.ZodiacSign,
	})

	// 3. 应用默认值后upsert
	payload := body.Settings
	if payload.NotificationTime == "" {
		payload.NotificationTime = "09:00"
	}
	if payload.Language == "" {
		payload.Language = "ru"
	}
	if payload.Theme == "" {
		payload.Theme = "light"
	}

	settings := Settings{
		UserID:           id.UserID,
		ZodiacSign:       payload.ZodiacSign,
		BirthTime:        payload.BirthTime,
		BirthLocation:    payload.BirthLocation,
		NotificationTime: payload.NotificationTime,
		Premium:          payload.Premium,
		Language:         payload.Language,
		Theme:            payload.Theme,
	}
	if err := UpsertSettings(&settings); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Ошибка сохранения настроек"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "success", "message": "Настройки сохранены"})
}

// GetUserSettings 处理查询用户设置的请求
func GetUserSettings(c *gin.Context) {
	id := identity.Resolve(c.Query("init_data"))

	settings, err := GetSettings(id.UserID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Ошибка получения настроек"})
		return
	}

	if settings == nil {
		c.JSON(http.StatusOK, defaultSettingsResponse())
		return
	}

	createdAt := settings.CreatedAt.UTC().Format(time.RFC3339)
	c.JSON(http.StatusOK, SettingsResponse{
		ZodiacSign:       optional(settings.ZodiacSign),
		BirthTime:        optional(settings.BirthTime),
		BirthLocation:    optional(settings.BirthLocation),
		NotificationTime: settings.NotificationTime,
		Premium:          settings.Premium,
		Language:         settings.Language,
		Theme:            settings.Theme,
		CreatedAt:        &createdAt,
	})
}
