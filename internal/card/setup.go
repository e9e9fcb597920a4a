package card

import (
	"fmt"

	"github.com/gnomelab/gnome-horoscope-backend/internal/platform/database"
)

// migrateDB 确保day_cards表结构存在且最新
func migrateDB() error {
	if err := database.DB.AutoMigrate(&DayCard{}); err != nil {
		return fmt.Errorf("无法迁移day_cards表: %w", err)
	}
	return nil
}

// PrimeDB 是card模块的初始化总入口
func PrimeDB() error {
	return migrateDB()
}
