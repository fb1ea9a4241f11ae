package util

import (
	"strconv"
)

// DayKey 返回 day 在数据文件中使用的字符串键
func DayKey(day int) string {
	return strconv.Itoa(day)
}

// ParseDayKey 将数据文件中的字符串键解析为天数，解析失败时返回 0
func ParseDayKey(key string) int {
	day, _ := strconv.Atoi(key)
	return day
}

// FormatTimeDisplay 将分钟格式化为 "2h 15m" / "45m" 形式
func FormatTimeDisplay(minutes int) string {
	if minutes < 60 {
		return strconv.Itoa(minutes) + "m"
	}
	return strconv.Itoa(minutes/60) + "h " + strconv.Itoa(minutes%60) + "m"
}
