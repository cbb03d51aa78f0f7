package service

import "time"

// WeekWindow 返回 now 所在周的窗口 [weekStart, weekEnd)。
// 周起点为最近的周日本地零点（Weekday 0=Sunday）。
func WeekWindow(now time.Time) (start, end time.Time) {
	midnight := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	start = midnight.AddDate(0, 0, -int(now.Weekday()))
	end = start.AddDate(0, 0, 7)
	return start, end
}

// MonthWindow 返回 now 所在自然月的窗口 [monthStart, nextMonthStart) 与 YYYY-MM 标识。
func MonthWindow(now time.Time) (start, end time.Time, monthYear string) {
	start = time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	end = start.AddDate(0, 1, 0)
	return start, end, start.Format("2006-01")
}
