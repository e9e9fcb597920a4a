package user

import (
	"time"
)

// Settings 定义了用户个性化设置在SQLite数据库中的持久化模型。
// 每个用户至多一行，保存时执行upsert（后写覆盖）。
type Settings struct {
	ID uint `gorm:"primarykey"`

	// UserID 是Telegram用户ID（或匿名哨兵ID），每个用户只有一行
	UserID int64 `gorm:"uniqueIndex;not null"`

	// ZodiacSign 是用户选择的星座（俄文名，如 "Лев"）
	ZodiacSign string

	// BirthTime 是可选的出生时间，用于高级运势的附加解读
	BirthTime string

	// BirthLocation 是可选的出生地点
	BirthLocation string

	// NotificationTime 是每日推送的时刻，"HH:MM"格式，分钟精度
	NotificationTime string `gorm:"default:'09:00'"`

	// Premium 标记用户是否开通高级功能
	Premium bool

	Language string `gorm:"default:'ru'"`
	Theme    string `gorm:"default:'light'"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName 指定表名，与既有部署的库结构保持一致。
func (Settings) TableName() string {
	return "user_settings"
}
