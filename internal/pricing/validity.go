package pricing

import "time"

// Usable 判断规则在 now 时刻是否可用。
// 时间窗口为半开区间 [from, until)：下界含、上界不含。
// from 为空表示立即生效，until 为空表示永不过期。
func Usable(isActive bool, from, until *time.Time, now time.Time) bool {
	if !isActive {
		return false
	}
	if from != nil && now.Before(*from) {
		return false
	}
	if until != nil && !now.Before(*until) {
		return false
	}
	return true
}
