package main

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/gnomelab/gnome-horoscope-backend/api"
	"github.com/gnomelab/gnome-horoscope-backend/internal/horoscope"
	"github.com/gnomelab/gnome-horoscope-backend/internal/notification"
	"github.com/gnomelab/gnome-horoscope-backend/internal/platform/config"
	"github.com/gnomelab/gnome-horoscope-backend/internal/platform/database"
	"github.com/gnomelab/gnome-horoscope-backend/internal/platform/shutdown"
	"github.com/gnomelab/gnome-horoscope-backend/internal/platform/startup"
	"github.com/gnomelab/gnome-horoscope-backend/pkg/lifecycle"
	"github.com/gnomelab/gnome-horoscope-backend/pkg/telegram"
	"github.com/joho/godotenv"
)

func main() {
	// 1. 加载.env（若存在）与配置
	_ = godotenv.Load()
	cfg, err := config.LoadConfig()
	if err != nil {
		panic(fmt.Sprintf("配置加载失败，无法启动: %v", err))
	}

	// 2. 初始化数据库并幂等地创建业务表
	database.InitDB(cfg.Database.Sqlite.Path)
	if err := startup.InitializeApplication(); err != nil {
		panic(fmt.Sprintf("应用初始化失败，无法启动: %v", err))
	}

	// 3. 装配运势文本提供者
	horoscope.InitProvider(cfg.Horoscope.APIKey)

	r := gin.Default()
	r.Use(api.RequestIDMiddleware())

	// 4. 配置CORS中间件
	allowedOrigins := cfg.Server.Cors.AllowedOrigins
	if len(allowedOrigins) == 0 && cfg.Server.FrontendURL != "" {
		allowedOrigins = []string{cfg.Server.FrontendURL}
	}
	r.Use(cors.New(cors.Config{
		AllowOrigins:     allowedOrigins,
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length", api.RequestIDHeader},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	api.SetupRoutes(r)

	// 5. 创建生命周期管理器并启动每日推送调度器
	gracefulManager := lifecycle.NewManager()
	forcefulManager := lifecycle.NewManager()

	if cfg.Telegram.BotToken != "" {
		handle, err := gracefulManager.NewServiceHandle("notification-scheduler")
		if err != nil {
			panic(fmt.Sprintf("无法注册推送调度器: %v", err))
		}
		dispatcher := notification.NewDispatcher(
			horoscope.DefaultProvider(),
			telegram.NewBotSender(cfg.Telegram.BotToken),
		)
		go notification.StartScheduler(handle, dispatcher)
	} else {
		fmt.Println("未配置BOT_TOKEN，跳过每日推送调度器。")
	}

	// 6. 启动HTTP服务器并等待停机信号
	server := &http.Server{
		Addr:    cfg.Server.Address,
		Handler: r,
	}
	go func() {
		fmt.Printf("服务器已准备就绪，开始监听 %s\n", cfg.Server.Address)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			panic("Failed to start server: " + err.Error())
		}
	}()

	coordinator := shutdown.NewCoordinator(gracefulManager, forcefulManager)
	coordinator.ListenForSignalsAndShutdown(server)
}
