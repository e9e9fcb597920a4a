package horoscope

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/gnomelab/gnome-horoscope-backend/internal/analytics"
	"github.com/gnomelab/gnome-horoscope-backend/internal/identity"
	"github.com/gnomelab/gnome-horoscope-backend/internal/user"
	"github.com/gnomelab/gnome-horoscope-backend/pkg/daykey"
)

// HoroscopeResponse 定义了每日运势的API响应模型
type HoroscopeResponse struct {
	Sign   string `json:"sign"`
	Date   string `json:"date"`
	Text   string `json:"text"`
	Cached bool   `json:"cached"`
	Source string `json:"source"`
}

// PremiumRequestBody 定义了高级运势请求体的JSON结构
type PremiumRequestBody struct {
	InitData string `json:"initData"`
	Sign     string `json:"sign" binding:"required"`
}

// GetHoroscope 处理每日运势请求
// 同一 (星座, 日期) 每天只生成一次文本，之后从缓存复用。
func GetHoroscope(c *gin.Context) {
	sign := c.Query("sign")
	date := c.Query("date")
	if date == "" {
		date = daykey.Today()
	}

	// 1. 校验星座合法性
	if !IsValidSign(sign) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Неизвестный знак зодиака"})
		return
	}

	// 2. 可选的user_id只用于行为日志
	if rawUserID := c.Query("user_id"); rawUserID != "" {
		if userID, err := strconv.ParseInt(rawUserID, 10, 64); err == nil {
			analytics.Track(userID, "get_horoscope", map[string]interface{}{
				"sign": sign,
				"date": date,
			})
		}
	}

	// 3. 先查缓存
	entry, err := GetCached(sign, date)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Ошибка получения гороскопа"})
		return
	}
	if entry != nil {
		c.JSON(http.StatusOK, HoroscopeResponse{
			Sign:   sign,
			Date:   date,
			Text:   entry.Text,
			Cached: true,
			Source: SourceCache,
		})
		return
	}

	// 4. 缓存未命中：生成文本并写入缓存
	text, source := defaultProvider.TextFor(sign, date)
	winner, err := SaveCached(&DailyCache{Sign: sign, Date: date, Text: text})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Ошибка получения гороскопа"})
		return
	}

	c.JSON(http.StatusOK, HoroscopeResponse{
		Sign:   sign,
		Date:   date,
		Text:   winner.Text,
		Cached: false,
		Source: source,
	})
}

// GetPremiumHoroscope 处理高级运势请求
// 如果用户保存过出生时间/地点，会在解读中使用。
func GetPremiumHoroscope(c *gin.Context) {
	var body PremiumRequestBody
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Недостаточно данных"})
		return
	}

	id := identity.Resolve(body.InitData)

	// 读取已保存的出生信息，没有设置时按空值处理
	var birthTime, birthLocation string
	settings, err := user.GetSettings(id.UserID)
	if err == nil && settings != nil {
		birthTime = settings.BirthTime
		birthLocation = settings.BirthLocation
	}

	analytics.Track(id.UserID, "get_premium_horoscope", map[string]interface{}{
		"sign": body.Sign,
	})

	date := daykey.Today()
	c.JSON(http.StatusOK, gin.H{
		"sign":            body.Sign,
		"date":            date,
		"premium_data":    GeneratePremium(body.Sign, date, birthTime, birthLocation),
		"user_birth_time": birthTime,
		"user_location":   birthLocation,
	})
}
