package user

import (
	"fmt"

	"github.com/gnomelab/gnome-horoscope-backend/internal/platform/database"
)

// migrateDB 确保user_settings表结构存在且最新
func migrateDB() error {
	if err := database.DB.AutoMigrate(&Settings{}); err != nil {
		return fmt.Errorf("无法迁移user_settings表: %w", err)
	}
	return nil
}

// PrimeDB 是user模块的初始化总入口
func PrimeDB() error {
	return migrateDB()
}
