package telegram

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

const sendMessageTimeout = 10 * time.Second

// MessageSender 是消息推送能力的抽象。
// 通知调度器依赖此接口，便于在测试中替换为假实现。
type MessageSender interface {
	SendMessage(chatID int64, text string) error
}

// BotSender 通过Telegram Bot API向用户推送消息。
type BotSender struct {
	botToken string
	client   *http.Client
	// baseURL 可在测试中覆盖，默认指向官方API
	baseURL string
}

// NewBotSender 创建一个使用给定botToken的消息推送客户端。
func NewBotSender(botToken string) *BotSender {
	return &BotSender{
		botToken: botToken,
		client:   &http.Client{Timeout: sendMessageTimeout},
		baseURL:  "https://api.telegram.org",
	}
}

type sendMessageRequest struct {
	ChatID    int64  `json:"chat_id"`
	Text      string `json:"text"`
	ParseMode string `json:"parse_mode"`
}

// SendMessage 调用Bot API的sendMessage方法。
// 任何非200响应都视为发送失败。
func (s *BotSender) SendMessage(chatID int64, text string) error {
	payload, err := json.Marshal(sendMessageRequest{
		ChatID:    chatID,
		Text:      text,
		ParseMode: "HTML",
	})
	if err != nil {
		return err
	}

	url := fmt.Sprintf("%s/bot%s/sendMessage", s.baseURL, s.botToken)
	resp, err := s.client.Post(url, "application/json", bytes.NewReader(payload))
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("sendMessage返回状态码 %d", resp.StatusCode)
	}
	return nil
}
