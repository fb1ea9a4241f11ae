package service

import (
	"strconv"
	"time"

	"pylearn_tracker/internal/model"
	"pylearn_tracker/internal/util"
)

// ChartService 仪表盘图表数据源
// 只产出数据，渲染交给前端图表库。
type ChartService struct {
	progress *ProgressService
}

func NewChartService(progress *ProgressService) *ChartService {
	return &ChartService{progress: progress}
}

// calendarWindow 学习日历回看的自然日天数
const calendarWindow = 30

// GetChartBundle 一次产出仪表盘需要的全部图表数据
func (s *ChartService) GetChartBundle() (*model.ChartBundle, error) {
	rows, err := s.progress.AllProgressRows()
	if err != nil {
		return nil, err
	}
	weeklyProgress, err := s.progress.WeeklyCompletionCounts()
	if err != nil {
		return nil, err
	}
	weeklyTime, err := s.progress.WeeklyTimeTotals()
	if err != nil {
		return nil, err
	}
	percentage, err := s.progress.CompletionPercentage()
	if err != nil {
		return nil, err
	}

	return &model.ChartBundle{
		Heatmap:        heatmapFromRows(rows),
		WeeklyProgress: weeklyProgress,
		WeeklyTime:     weeklyTime,
		TimeSpent:      timeSeriesFromRows(rows),
		Gauge:          percentage,
		StreakCalendar: streakCalendarFromRows(rows, time.Now()),
	}, nil
}

func heatmapFromRows(rows []model.ProgressRow) model.HeatmapData {
	heatmap := model.HeatmapData{
		Days:      make([]string, len(rows)),
		Completed: make([]int, len(rows)),
	}
	for i, row := range rows {
		heatmap.Days[i] = "Day " + strconv.Itoa(row.Day)
		if row.Completed {
			heatmap.Completed[i] = 1
		}
	}
	return heatmap
}

func timeSeriesFromRows(rows []model.ProgressRow) []model.TimePoint {
	points := make([]model.TimePoint, len(rows))
	for i, row := range rows {
		points[i] = model.TimePoint{Day: row.Day, Minutes: row.TimeSpentMinutes}
	}
	return points
}

// streakCalendarFromRows 最近 30 天，今天在前，有完成记录的日期标记 active
func streakCalendarFromRows(rows []model.ProgressRow, today time.Time) []model.CalendarCell {
	dates := make(map[string]bool, len(rows))
	for _, row := range rows {
		if row.CompletionDate != "" {
			dates[row.CompletionDate] = true
		}
	}

	cells := make([]model.CalendarCell, calendarWindow)
	for i := 0; i < calendarWindow; i++ {
		date := today.AddDate(0, 0, -i).Format(util.DateFormat)
		cells[i] = model.CalendarCell{Date: date, Active: dates[date]}
	}
	return cells
}
