package analytics

import (
	"fmt"

	"github.com/gnomelab/gnome-horoscope-backend/internal/platform/database"
)

// migrateDB 确保user_analytics表结构存在且最新
func migrateDB() error {
	if err := database.DB.AutoMigrate(&Event{}); err != nil {
		return fmt.Errorf("无法迁移user_analytics表: %w", err)
	}
	return nil
}

// PrimeDB 是analytics模块的初始化总入口
func PrimeDB() error {
	return migrateDB()
}
