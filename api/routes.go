package api

import (
	"github.com/gin-gonic/gin"
	"github.com/gnomelab/gnome-horoscope-backend/internal/analytics"
	"github.com/gnomelab/gnome-horoscope-backend/internal/card"
	"github.com/gnomelab/gnome-horoscope-backend/internal/favorite"
	"github.com/gnomelab/gnome-horoscope-backend/internal/horoscope"
	"github.com/gnomelab/gnome-horoscope-backend/internal/platform/health"
	"github.com/gnomelab/gnome-horoscope-backend/internal/share"
	"github.com/gnomelab/gnome-horoscope-backend/internal/user"
)

// SetupRoutes 注册项目的所有API路由
func SetupRoutes(router *gin.Engine) {
	// 存活探针
	router.GET("/health", health.Handler)

	api := router.Group("/api")
	{
		// 运势相关的路由
		api.GET("/horoscope", horoscope.GetHoroscope)
		api.POST("/horoscope/premium", horoscope.GetPremiumHoroscope)

		// 每日卡片
		api.POST("/day-card", card.GetDayCard)

		// 收藏相关的路由
		api.POST("/favorites", favorite.AddFavorite)
		api.GET("/favorites", favorite.GetFavorites)

		// 用户设置
		api.POST("/user/settings", user.SaveSettings)
		api.GET("/user/settings", user.GetUserSettings)

		// 行为统计
		api.GET("/analytics/user", analytics.GetUserAnalytics)

		// 分享相关的路由
		api.POST("/share", share.ShareContent)
		api.GET("/shared/:id", share.GetSharedContent)
	}
}
