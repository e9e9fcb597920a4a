package horoscope

import "time"

// DailyCache 定义了运势文本在SQLite数据库中的缓存模型。
// (sign, date) 组合唯一：每个星座每天只生成一次文本，
// 首次请求时惰性写入，之后全天复用。
type DailyCache struct {
	ID uint `gorm:"primarykey"`

	// Sign 是俄文星座名
	Sign string `gorm:"uniqueIndex:idx_sign_date;not null"`

	// Date 是UTC日期分区键，"YYYY-MM-DD"格式
	Date string `gorm:"uniqueIndex:idx_sign_date;not null"`

	// Text 是当天的运势文本
	Text string `gorm:"not null"`

	CreatedAt time.Time
}

// TableName 指定表名，与既有部署的库结构保持一致。
func (DailyCache) TableName() string {
	return "daily_cache"
}
