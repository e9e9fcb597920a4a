package share

import "time"

// SharedContent 定义了被分享内容在SQLite数据库中的持久化模型。
// ViewCount 在每次按ID读取时自增，读取操作有意地不幂等。
type SharedContent struct {
	ID uint `gorm:"primarykey"`

	// UserID 是发起分享的用户ID
	UserID int64 `gorm:"index;not null"`

	// ContentType 是被分享内容的类型
	ContentType string `gorm:"not null"`

	// Content 是被分享内容的JSON序列化文本
	Content string `gorm:"not null"`

	// ShareText 是用户附带的分享文案
	ShareText string

	// ViewCount 是该分享被查看的次数
	ViewCount int `gorm:"not null;default:0"`

	CreatedAt time.Time
}

// TableName 指定表名，与既有部署的库结构保持一致。
func (SharedContent) TableName() string {
	return "shared_content"
}
