package identity

import (
	"github.com/gnomelab/gnome-horoscope-backend/internal/platform/config"
	"github.com/gnomelab/gnome-horoscope-backend/pkg/telegram"
)

// AnonymousUserID 是所有未通过真实性校验的请求共享的哨兵用户ID。
// 这是一个有意的设计：开发环境和匿名访问会合并到同一个账号下。
// 注意：多租户生产环境下这意味着所有未验证请求互相可见，部署前必须评估。
const AnonymousUserID int64 = 12345

// Identity 表示一次请求的用户身份。
// 要么是通过initData签名校验的真实Telegram用户，要么是匿名哨兵身份。
type Identity struct {
	// UserID 是业务层使用的用户标识
	UserID int64

	// Verified 表示身份是否通过了Telegram签名校验
	Verified bool

	// User 是校验通过时initData中嵌入的完整用户信息，匿名时为nil
	User *telegram.User
}

// Anonymous 返回匿名哨兵身份。
func Anonymous() Identity {
	return Identity{UserID: AnonymousUserID}
}

// Resolve 对initData做真实性校验并返回请求身份。
// 校验失败或initData为空时静默降级为匿名身份，绝不报错。
func Resolve(initData string) Identity {
	if initData == "" {
		return Anonymous()
	}

	user, ok := telegram.VerifyInitData(initData, config.Cfg.Telegram.BotToken)
	if !ok {
		return Anonymous()
	}

	return Identity{
		UserID:   user.ID,
		Verified: true,
		User:     user,
	}
}
