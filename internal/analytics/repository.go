package analytics

import (
	"github.com/gnomelab/gnome-horoscope-backend/internal/platform/database"
)

// actionCount 是按行为标签聚合的查询结果行
type actionCount struct {
	Action string
	Count  int64
}

// CountsByAction 统计某用户每种行为的发生次数。
func CountsByAction(userID int64) (map[string]int64, error) {
	var rows []actionCount
	err := database.DB.Model(&Event{}).
		Select("action, COUNT(*) as count").
		Where("user_id = ?", userID).
		Group("action").
		Order("count DESC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	stats := make(map[string]int64, len(rows))
	for _, row := range rows {
		stats[row.Action] = row.Count
	}
	return stats, nil
}

// Recent 返回某用户最近的N条行为日志，按时间倒序。
func Recent(userID int64, limit int) ([]Event, error) {
	var events []Event
	err := database.DB.
		Where("user_id = ?", userID).
		Order("timestamp DESC").
		Limit(limit).
		Find(&events).Error
	if err != nil {
		return nil, err
	}
	return events, nil
}
