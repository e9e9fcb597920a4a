package analytics

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/gnomelab/gnome-horoscope-backend/internal/platform/database"
)

// Track 记录一条用户行为日志。
// 这是尽力而为的副作用：任何失败只打印日志，绝不影响父请求。
func Track(userID int64, action string, payload map[string]interface{}) {
	var data string
	if payload != nil {
		encoded, err := json.Marshal(payload)
		if err != nil {
			fmt.Printf("行为日志: 无法序列化负载 (action=%s): %v\n", action, err)
		} else {
			data = string(encoded)
		}
	}

	event := Event{
		UserID:    userID,
		Action:    action,
		Data:      data,
		Timestamp: time.Now().UTC(),
	}
	if err := database.DB.Create(&event).Error; err != nil {
		fmt.Printf("行为日志: 写入失败 (action=%s): %v\n", action, err)
	}
}
