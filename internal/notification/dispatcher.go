package notification

import (
	"fmt"
	"time"

	"github.com/gnomelab/gnome-horoscope-backend/internal/analytics"
	"github.com/gnomelab/gnome-horoscope-backend/internal/horoscope"
	"github.com/gnomelab/gnome-horoscope-backend/internal/user"
	"github.com/gnomelab/gnome-horoscope-backend/pkg/daykey"
	"github.com/gnomelab/gnome-horoscope-backend/pkg/lifecycle"
	"github.com/gnomelab/gnome-horoscope-backend/pkg/telegram"
)

// sweepInterval 是推送扫描的周期，与通知时刻的分钟精度一致
const sweepInterval = time.Minute

// Dispatcher 负责每日运势的推送扫描。
// 它遍历所有已选择星座的用户设置，把通知时刻等于当前时刻的用户
// 的运势文本推送出去。
type Dispatcher struct {
	provider *horoscope.Provider
	sender   telegram.MessageSender
}

// NewDispatcher 创建一个推送调度器。
func NewDispatcher(provider *horoscope.Provider, sender telegram.MessageSender) *Dispatcher {
	return &Dispatcher{provider: provider, sender: sender}
}

// Sweep 执行一轮推送扫描。
// 单个用户的推送失败只打印日志，不中断整轮扫描。
func (d *Dispatcher) Sweep(now time.Time) {
	rows, err := user.ListNotifiable()
	if err != nil {
		fmt.Printf("推送扫描: 无法读取用户设置: %v\n", err)
		return
	}

	currentTime := now.Format("15:04")
	for _, settings := range rows {
		if settings.NotificationTime != currentTime {
			continue
		}

		text, _ := d.provider.TextFor(settings.ZodiacSign, daykey.For(now))
		message := fmt.Sprintf("🧙‍♂️ Ваш гороскоп на сегодня (%s):\n\n%s", settings.ZodiacSign, text)

		if err := d.sender.SendMessage(settings.UserID, message); err != nil {
			fmt.Printf("推送扫描: 发送给用户 %d 失败: %v\n", settings.UserID, err)
			continue
		}

		analytics.Track(settings.UserID, "daily_notification_sent", map[string]interface{}{
			"sign": settings.ZodiacSign,
		})
	}
}

// StartScheduler 启动一个后台Goroutine来按分钟执行推送扫描
// 它接收一个lifecycle.Handle来管理其生命周期
func StartScheduler(handle *lifecycle.Handle, dispatcher *Dispatcher) {
	defer handle.Close() // 确保在退出时通知管理器
	fmt.Println("每日运势推送调度器已启动。")

	for {
		// 使用可中断的休眠来代替ticker。
		// 这使得整个循环可以在收到停机信号时立刻从休眠中唤醒并退出。
		if err := handle.Sleep(sweepInterval); err != nil {
			fmt.Println("推送调度器: 休眠被中断，正在关闭...")
			return
		}

		dispatcher.Sweep(time.Now())
	}
}
