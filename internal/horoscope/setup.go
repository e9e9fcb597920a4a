package horoscope

import (
	"fmt"

	"github.com/gnomelab/gnome-horoscope-backend/internal/platform/database"
)

// defaultProvider 是handler使用的全局运势文本提供者，
// 在应用启动时由InitProvider装配一次。
var defaultProvider *Provider

// InitProvider 装配本模块的运势文本提供者。
func InitProvider(apiKey string) {
	defaultProvider = NewProvider(apiKey)
}

// DefaultProvider 返回当前装配的运势文本提供者。
func DefaultProvider() *Provider {
	return defaultProvider
}

// migrateDB 确保daily_cache表结构存在且最新
func migrateDB() error {
	if err := database.DB.AutoMigrate(&DailyCache{}); err != nil {
		return fmt.Errorf("无法迁移daily_cache表: %w", err)
	}
	return nil
}

// PrimeDB 是horoscope模块的初始化总入口
func PrimeDB() error {
	return migrateDB()
}
