package model

// DashboardSummary 侧边栏统计
type DashboardSummary struct {
	CompletionPercentage float64 `json:"completionPercentage"`
	CurrentDay           int     `json:"currentDay"`
	Finished             bool    `json:"finished"`
	LearningStreak       int     `json:"learningStreak"`
	TotalTimeMinutes     int     `json:"totalTimeMinutes"`
	TotalTimeDisplay     string  `json:"totalTimeDisplay"`
}

// WeekCompletion 某周完成情况 done/total
type WeekCompletion struct {
	Week      int `json:"week"`
	Completed int `json:"completed"`
	Total     int `json:"total"`
}

// Dashboard 仪表盘聚合数据
// swagger:model Dashboard
type Dashboard struct {
	Summary          DashboardSummary `json:"summary"`
	CurrentTopic     *DayInfo         `json:"currentTopic,omitempty"`
	WeeklyCompletion []WeekCompletion `json:"weeklyCompletion"`
	Upcoming         []DayInfo        `json:"upcoming"`
}

// HeatmapData 进度热力图数据：21 个标签与 0/1 完成向量
type HeatmapData struct {
	Days      []string `json:"days"`
	Completed []int    `json:"completed"`
}

// TimePoint 每日学习时长曲线上的一个点
type TimePoint struct {
	Day     int `json:"day"`
	Minutes int `json:"minutes"`
}

// CalendarCell 学习日历中的一格，最近30天倒序产生
type CalendarCell struct {
	Date   string `json:"date"`
	Active bool   `json:"active"`
}

// ChartBundle 仪表盘全部图表的数据源
// swagger:model ChartBundle
type ChartBundle struct {
	Heatmap        HeatmapData    `json:"heatmap"`
	WeeklyProgress []int          `json:"weeklyProgress"`
	WeeklyTime     []int          `json:"weeklyTime"`
	TimeSpent      []TimePoint    `json:"timeSpent"`
	Gauge          float64        `json:"gauge"`
	StreakCalendar []CalendarCell `json:"streakCalendar"`
}
