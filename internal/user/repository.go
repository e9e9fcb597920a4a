package user

import (
	"errors"

	"github.com/gnomelab/gnome-horoscope-backend/internal/platform/database"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// UpsertSettings 以upsert语义保存用户设置。
// 冲突时只更新设置字段，保留首次创建时间，UpdatedAt由GORM自动刷新。
func UpsertSettings(settings *Settings) error {
	return database.DB.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "user_id"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"zodiac_sign", "birth_time", "birth_location",
			"notification_time", "premium", "language", "theme", "updated_at",
		}),
	}).Create(settings).Error
}

// GetSettings 按用户ID查询设置。
// 用户从未保存过设置时返回 (nil, nil)，而不是错误。
func GetSettings(userID int64) (*Settings, error) {
	var settings Settings
	err := database.DB.Where("user_id = ?", userID).First(&settings).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &settings, nil
}

// ListNotifiable 返回所有已选择星座的用户设置，供每日推送扫描使用。
func ListNotifiable() ([]Settings, error) {
	var rows []Settings
	err := database.DB.
		Where("zodiac_sign IS NOT NULL AND zodiac_sign != ''").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}
