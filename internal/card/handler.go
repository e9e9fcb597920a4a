package card

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gnomelab/gnome-horoscope-backend/internal/analytics"
	"github.com/gnomelab/gnome-horoscope-backend/internal/identity"
	"github.com/gnomelab/gnome-horoscope-backend/pkg/daykey"
)

// DayCardRequestBody 定义了抽卡请求体的JSON结构
type DayCardRequestBody struct {
	InitData string `json:"initData"`
}

// DayCardResponse 定义了抽卡的API响应模型
type DayCardResponse struct {
	Title  string `json:"title"`
	Text   string `json:"text"`
	Reused bool   `json:"reused"`
	Date   string `json:"date"`
}

// GetDayCard 处理"每日卡片"请求（每个用户每天只抽一次）
func GetDayCard(c *gin.Context) {
	var body DayCardRequestBody

	// 1. 绑定并验证请求体
	if err := c.ShouldBindJSON(&body); err != nil || body.InitData == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "initData отсутствует"})
		return
	}

	// 2. 解析用户身份，校验失败降级为匿名身份
	id := identity.Resolve(body.InitData)
	date := daykey.Today()

	// 3. 抽卡（或复读当天已抽取的卡片）
	entry, reused, err := Draw(id.UserID, date)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Ошибка получения карты дня"})
		return
	}

	if !reused {
		analytics.Track(id.UserID, "get_day_card", map[string]interface{}{
			"card": entry.CardTitle,
		})
	}

	c.JSON(http.StatusOK, DayCardResponse{
		Title:  entry.CardTitle,
		Text:   entry.CardText,
		Reused: reused,
		Date:   date,
	})
}
