package startup

import (
	"fmt"

	"github.com/gnomelab/gnome-horoscope-backend/internal/analytics"
	"github.com/gnomelab/gnome-horoscope-backend/internal/card"
	"github.com/gnomelab/gnome-horoscope-backend/internal/favorite"
	"github.com/gnomelab/gnome-horoscope-backend/internal/horoscope"
	"github.com/gnomelab/gnome-horoscope-backend/internal/share"
	"github.com/gnomelab/gnome-horoscope-backend/internal/user"
)

// InitializeApplication 是应用首次启动时执行的总入口
// 它幂等地创建全部六张业务表。
func InitializeApplication() error {
	fmt.Println("开始应用首次初始化...")

	if err := horoscope.PrimeDB(); err != nil {
		return err
	}
	if err := card.PrimeDB(); err != nil {
		return err
	}
	if err := favorite.PrimeDB(); err != nil {
		return err
	}
	if err := user.PrimeDB(); err != nil {
		return err
	}
	if err := analytics.PrimeDB(); err != nil {
		return err
	}
	if err := share.PrimeDB(); err != nil {
		return err
	}

	fmt.Println("应用初始化完成！")
	return nil
}
