package card

import "time"

// DayCard 定义了"每日卡片"在SQLite数据库中的持久化模型。
// (user_id, date) 组合唯一：每个用户每天只抽一次卡，
// 当天的后续请求原样复读首次抽取的结果。
type DayCard struct {
	ID uint `gorm:"primarykey"`

	// UserID 是抽卡用户的ID
	UserID int64 `gorm:"uniqueIndex:idx_user_date;not null"`

	// Date 是UTC日期分区键，"YYYY-MM-DD"格式
	Date string `gorm:"uniqueIndex:idx_user_date;not null"`

	// CardTitle 是卡片名称
	CardTitle string `gorm:"not null"`

	// CardText 是卡片的建议文本
	CardText string `gorm:"not null"`

	CreatedAt time.Time
}

// TableName 指定表名，与既有部署的库结构保持一致。
func (DayCard) TableName() string {
	return "day_cards"
}
