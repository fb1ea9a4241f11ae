package service

import (
	"pylearn_tracker/internal/model"
	"pylearn_tracker/internal/util"
)

// DashboardService 仪表盘聚合
type DashboardService struct {
	progress   *ProgressService
	curriculum *CurriculumService
}

func NewDashboardService(progress *ProgressService, curriculum *CurriculumService) *DashboardService {
	return &DashboardService{progress: progress, curriculum: curriculum}
}

// upcomingWindow 仪表盘"接下来"最多展示的天数
const upcomingWindow = 3

// GetDashboard 汇总侧边栏统计、当前主题、每周完成和即将到来的天
func (s *DashboardService) GetDashboard() (*model.Dashboard, error) {
	percentage, err := s.progress.CompletionPercentage()
	if err != nil {
		return nil, err
	}
	currentDay, err := s.progress.CurrentDay()
	if err != nil {
		return nil, err
	}
	streak, err := s.progress.LearningStreak()
	if err != nil {
		return nil, err
	}
	totalTime, err := s.progress.TotalTimeSpent()
	if err != nil {
		return nil, err
	}

	dayCount := s.curriculum.DayCount()
	dashboard := &model.Dashboard{
		Summary: model.DashboardSummary{
			CompletionPercentage: percentage,
			CurrentDay:           currentDay,
			Finished:             currentDay > dayCount,
			LearningStreak:       streak,
			TotalTimeMinutes:     totalTime,
			TotalTimeDisplay:     util.FormatTimeDisplay(totalTime),
		},
	}

	if currentDay <= dayCount {
		info, err := s.curriculum.DayInfo(currentDay)
		if err != nil {
			return nil, err
		}
		dashboard.CurrentTopic = info
	}

	counts, err := s.progress.WeeklyCompletionCounts()
	if err != nil {
		return nil, err
	}
	dashboard.WeeklyCompletion = make([]model.WeekCompletion, len(counts))
	for i, completed := range counts {
		dashboard.WeeklyCompletion[i] = model.WeekCompletion{
			Week:      i + 1,
			Completed: completed,
			Total:     DaysPerWeek,
		}
	}

	dashboard.Upcoming = []model.DayInfo{}
	for day := currentDay; day <= dayCount && day < currentDay+upcomingWindow; day++ {
		info, err := s.curriculum.DayInfo(day)
		if err != nil {
			continue
		}
		dashboard.Upcoming = append(dashboard.Upcoming, *info)
	}

	return dashboard, nil
}
