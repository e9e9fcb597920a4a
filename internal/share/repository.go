package share

import (
	"errors"

	"github.com/gnomelab/gnome-horoscope-backend/internal/platform/database"
	"gorm.io/gorm"
)

// Create 落库一条分享记录并回填其自增ID。
func Create(entry *SharedContent) error {
	return database.DB.Create(entry).Error
}

// FetchAndCountView 按ID读取分享记录并将查看计数加一。
// 读取与计数在同一事务中完成；未知ID返回 (nil, nil)。
func FetchAndCountView(id uint) (*SharedContent, error) {
	var entry SharedContent

	err := database.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&entry, id).Error; err != nil {
			return err
		}
		if err := tx.Model(&entry).
			UpdateColumn("view_count", gorm.Expr("view_count + 1")).Error; err != nil {
			return err
		}
		// 返回自增后的计数
		entry.ViewCount++
		return nil
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &entry, nil
}
