package favorite

import "time"

// Favorite 定义了收藏条目在SQLite数据库中的持久化模型。
// 每个用户的收藏是只追加的列表，允许重复收藏同一内容。
type Favorite struct {
	ID uint `gorm:"primarykey"`

	// UserID 是收藏所属用户的ID
	UserID int64 `gorm:"index;not null"`

	// ContentType 是被收藏内容的类型，例如 "horoscope"、"day_card"
	ContentType string `gorm:"not null"`

	// Content 是被收藏内容的JSON序列化文本
	Content string `gorm:"not null"`

	// AddedAt 是收藏发生的UTC时刻
	AddedAt time.Time `gorm:"index"`
}

// TableName 指定表名，与既有部署的库结构保持一致。
func (Favorite) TableName() string {
	return "favorites"
}
