package analytics

import "time"

// Event 定义了用户行为日志在SQLite数据库中的持久化模型。
// 只追加，不修改；读取只发生在聚合查询中。
type Event struct {
	ID uint `gorm:"primarykey"`

	// UserID 是触发行为的用户ID
	UserID int64 `gorm:"index;not null"`

	// Action 是行为标签，例如 "get_horoscope"、"add_favorite"
	Action string `gorm:"not null"`

	// Data 是可选的JSON负载，无负载时为空字符串
	Data string

	// Timestamp 是行为发生的UTC时刻
	Timestamp time.Time `gorm:"index"`
}

// TableName 指定表名，与既有部署的库结构保持一致。
func (Event) TableName() string {
	return "user_analytics"
}
