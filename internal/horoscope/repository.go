package horoscope

import (
	"errors"
	"fmt"

	"github.com/gnomelab/gnome-horoscope-backend/internal/platform/database"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GetCached 查询 (sign, date) 的缓存条目，未命中时返回 (nil, nil)。
func GetCached(sign string, date string) (*DailyCache, error) {
	var entry DailyCache
	err := database.DB.Where("sign = ? AND date = ?", sign, date).First(&entry).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &entry, nil
}

// SaveCached 以"插入或忽略"的语义写入缓存条目，并返回最终生效的条目。
// 并发请求同一 (sign, date) 时由唯一约束保证至多一个写入者胜出；
// 冲突方读回胜出者的文本，保证同一天所有请求看到一致的内容。
func SaveCached(entry *DailyCache) (*DailyCache, error) {
	err := database.DB.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "sign"}, {Name: "date"}},
		DoNothing: true,
	}).Create(entry).Error
	if err != nil {
		return nil, err
	}

	// 无论自己是否胜出，都以数据库中的行为准
	winner, err := GetCached(entry.Sign, entry.Date)
	if err != nil {
		return nil, err
	}
	if winner == nil {
		return nil, fmt.Errorf("缓存条目写入后立即丢失 (sign=%s, date=%s)", entry.Sign, entry.Date)
	}
	return winner, nil
}
