package share

import (
	"fmt"

	"github.com/gnomelab/gnome-horoscope-backend/internal/platform/database"
)

// migrateDB 确保shared_content表结构存在且最新
func migrateDB() error {
	if err := database.DB.AutoMigrate(&SharedContent{}); err != nil {
		return fmt.Errorf("无法迁移shared_content表: %w", err)
	}
	return nil
}

// PrimeDB 是share模块的初始化总入口
func PrimeDB() error {
	return migrateDB()
}
