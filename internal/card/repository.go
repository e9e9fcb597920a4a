package card

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/gnomelab/gnome-horoscope-backend/internal/platform/database"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GetForDay 查询用户某天已抽取的卡片，未抽过时返回 (nil, nil)。
func GetForDay(userID int64, date string) (*DayCard, error) {
	var entry DayCard
	err := database.DB.Where("user_id = ? AND date = ?", userID, date).First(&entry).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &entry, nil
}

// Draw 为用户抽取当天的卡片。
// 返回 (卡片, 是否复用, 错误)。并发请求同一 (user_id, date) 时
// 由唯一约束保证至多一个写入者胜出，落败方读回胜出者的卡片。
func Draw(userID int64, date string) (*DayCard, bool, error) {
	// 1. 先查已有记录
	existing, err := GetForDay(userID, date)
	if err != nil {
		return nil, false, err
	}
	if existing != nil {
		return existing, true, nil
	}

	// 2. 从卡池中均匀随机抽一张，以"插入或忽略"的语义落库
	picked := pool[rand.Intn(len(pool))]
	entry := DayCard{
		UserID:    userID,
		Date:      date,
		CardTitle: picked.Title,
		CardText:  picked.Text,
	}
	err = database.DB.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}, {Name: "date"}},
		DoNothing: true,
	}).Create(&entry).Error
	if err != nil {
		return nil, false, err
	}

	// 3. 以数据库中的行为准：冲突时返回并发胜出者的卡片
	winner, err := GetForDay(userID, date)
	if err != nil {
		return nil, false, err
	}
	if winner == nil {
		return nil, false, fmt.Errorf("卡片写入后立即丢失 (user_id=%d, date=%s)", userID, date)
	}

	reused := winner.ID != entry.ID
	return winner, reused, nil
}
