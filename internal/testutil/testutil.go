package testutil

import (
	"fmt"
	"sync/atomic"
	"testing"

	"github.com/gnomelab/gnome-horoscope-backend/internal/platform/config"
	"github.com/gnomelab/gnome-horoscope-backend/internal/platform/database"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// TestBotToken 是测试专用的botToken，只在测试二进制中出现。
const TestBotToken = "123456:TEST-TOKEN-do-not-use"

// dbCounter 为每个测试分配独立的内存数据库名
var dbCounter int64

// SetupDB 为一个测试装配独立的内存SQLite数据库和测试配置。
// 数据库在测试结束时自动释放。
func SetupDB(t *testing.T) {
	t.Helper()

	name := fmt.Sprintf("file:testdb%d?mode=memory&cache=shared", atomic.AddInt64(&dbCounter, 1))
	db, err := gorm.Open(sqlite.Open(name), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("无法打开内存数据库: %v", err)
	}

	database.DB = db
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	})

	config.Cfg = &config.Config{
		Server: config.ServerConfig{
			Address:     ":0",
			FrontendURL: "https://gnome-horoscope.example",
		},
		Telegram: config.TelegramConfig{BotToken: TestBotToken},
	}
}
