package daykey

import "time"

// layout 是日期分区键的格式，UTC日历日。
const layout = "2006-01-02"

// Today 返回当前UTC日期的分区键，例如 "2025-09-01"。
// 运势缓存和每日卡片都以它作为"每天一次"的唯一性分区。
func Today() string {
	return time.Now().UTC().Format(layout)
}

// For 返回指定时刻对应的UTC日期分区键。
func For(t time.Time) string {
	return t.UTC().Format(layout)
}
