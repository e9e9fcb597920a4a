package favorite

import (
	"github.com/gnomelab/gnome-horoscope-backend/internal/platform/database"
)

// Append 追加一条收藏记录。
func Append(entry *Favorite) error {
	return database.DB.Create(entry).Error
}

// ListByUser 返回用户的全部收藏，按收藏时间倒序（同一时刻按主键倒序）。
func ListByUser(userID int64) ([]Favorite, error) {
	var entries []Favorite
	err := database.DB.
		Where("user_id = ?", userID).
		Order("added_at DESC, id DESC").
		Find(&entries).Error
	if err != nil {
		return nil, err
	}
	return entries, nil
}
