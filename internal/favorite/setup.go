package favorite

import (
	"fmt"

	"github.com/gnomelab/gnome-horoscope-backend/internal/platform/database"
)

// migrateDB 确保favorites表结构存在且最新
func migrateDB() error {
	if err := database.DB.AutoMigrate(&Favorite{}); err != nil {
		return fmt.Errorf("无法迁移favorites表: %w", err)
	}
	return nil
}

// PrimeDB 是favorite模块的初始化总入口
func PrimeDB() error {
	return migrateDB()
}
