package service

import (
	"sort"
	"strings"
	"time"

	"pylearn_tracker/internal/model"
	"pylearn_tracker/internal/repository"
	"pylearn_tracker/internal/util"
)

// ProgressService 进度追踪核心服务
// 每次变更都完整执行 读取-修改-回写，文件被手工编辑过也不会丢更新。
type ProgressService struct {
	repo       *repository.ProgressRepository
	curriculum *CurriculumService
}

func NewProgressService(repo *repository.ProgressRepository, curriculum *CurriculumService) *ProgressService {
	return &ProgressService{repo: repo, curriculum: curriculum}
}

// checkDay 天数越界属于调用方错误，直接拒绝而不是截断
func (s *ProgressService) checkDay(day int) error {
	if !s.curriculum.ValidDay(day) {
		return util.ErrInvalidDay
	}
	return nil
}

// CheckDay 校验天数是否在课程范围内
func (s *ProgressService) CheckDay(day int) error {
	return s.checkDay(day)
}

// MarkDayComplete 标记某天完成/未完成
// false→true 时写入当天日期；取消完成保留原完成日期（历史行为，刻意不清除）。
func (s *ProgressService) MarkDayComplete(day int, completed bool) error {
	if err := s.checkDay(day); err != nil {
		return err
	}

	doc, err := s.repo.Load()
	if err != nil {
		return err
	}

	key := util.DayKey(day)
	entry := doc.Progress[key]
	if completed && !entry.Completed {
		entry.CompletionDate = time.Now().Format(util.DateFormat)
	}
	entry.Completed = completed
	doc.Progress[key] = entry

	return s.repo.Save(doc)
}

// UpdateTimeSpent 以 小时+分钟 覆盖写入当天学习时长
// 负值来自界面以外的调用，按 0 处理而不是报错。
func (s *ProgressService) UpdateTimeSpent(day, hours, minutes int) error {
	if err := s.checkDay(day); err != nil {
		return err
	}
	if hours < 0 {
		hours = 0
	}
	if minutes < 0 {
		minutes = 0
	}
	total := hours*60 + minutes

	doc, err := s.repo.Load()
	if err != nil {
		return err
	}

	key := util.DayKey(day)
	entry := doc.Progress[key]
	entry.TimeSpentMinutes = total
	doc.Progress[key] = entry
	// 顶层 time_spent 是旧版字段，同步写入供外部脚本继续读取
	doc.TimeSpent[key] = total

	return s.repo.Save(doc)
}

// SaveNote 覆盖保存笔记，空串清空内容但保留键
func (s *ProgressService) SaveNote(day int, content string) error {
	if err := s.checkDay(day); err != nil {
		return err
	}

	doc, err := s.repo.Load()
	if err != nil {
		return err
	}

	doc.Notes[util.DayKey(day)] = content
	return s.repo.Save(doc)
}

// Note 返回某天的笔记，未写过返回空串
func (s *ProgressService) Note(day int) (string, error) {
	if err := s.checkDay(day); err != nil {
		return "", err
	}

	doc, err := s.repo.Load()
	if err != nil {
		return "", err
	}

	return doc.Notes[util.DayKey(day)], nil
}

// MarkResourceUsed 记录某天使用了某资源，重复标记幂等
func (s *ProgressService) MarkResourceUsed(day int, name string) error {
	if err := s.checkDay(day); err != nil {
		return err
	}

	doc, err := s.repo.Load()
	if err != nil {
		return err
	}

	key := util.DayKey(day)
	for _, used := range doc.ResourcesUsed[key] {
		if used == name {
			return nil
		}
	}
	doc.ResourcesUsed[key] = append(doc.ResourcesUsed[key], name)

	return s.repo.Save(doc)
}

// UnmarkResourceUsed 移除资源使用标记，不存在时为空操作
func (s *ProgressService) UnmarkResourceUsed(day int, name string) error {
	if err := s.checkDay(day); err != nil {
		return err
	}

	doc, err := s.repo.Load()
	if err != nil {
		return err
	}

	key := util.DayKey(day)
	used := doc.ResourcesUsed[key]
	for i, got := range used {
		if got == name {
			doc.ResourcesUsed[key] = append(used[:i], used[i+1:]...)
			return s.repo.Save(doc)
		}
	}

	return nil
}

// ResourcesUsedFor 某天已标记使用的资源名集合
func (s *ProgressService) ResourcesUsedFor(day int) ([]string, error) {
	if err := s.checkDay(day); err != nil {
		return nil, err
	}

	doc, err := s.repo.Load()
	if err != nil {
		return nil, err
	}

	used := doc.ResourcesUsed[util.DayKey(day)]
	if used == nil {
		used = []string{}
	}
	return used, nil
}

// RecordUpload 覆盖记录某天的解答文件名、存储对象路径和上传时间，不保存文件内容
func (s *ProgressService) RecordUpload(day int, filename, objectName string, uploadedAt time.Time) error {
	if err := s.checkDay(day); err != nil {
		return err
	}

	doc, err := s.repo.Load()
	if err != nil {
		return err
	}

	doc.Uploads[util.DayKey(day)] = model.UploadRecord{
		Filename:   filename,
		UploadTime: uploadedAt.Format(util.TimeFormat),
		ObjectName: objectName,
	}

	return s.repo.Save(doc)
}

// Upload 某天的上传记录，没有时返回 ErrNoUpload
func (s *ProgressService) Upload(day int) (*model.UploadRecord, error) {
	if err := s.checkDay(day); err != nil {
		return nil, err
	}

	doc, err := s.repo.Load()
	if err != nil {
		return nil, err
	}

	record, ok := doc.Uploads[util.DayKey(day)]
	if !ok {
		return nil, util.ErrNoUpload
	}
	return &record, nil
}

// AllProgressRows 固定返回 21 行，文件里缺失的天按未开始补齐
// 图表和表格都以此为唯一数据源。
func (s *ProgressService) AllProgressRows() ([]model.ProgressRow, error) {
	doc, err := s.repo.Load()
	if err != nil {
		return nil, err
	}
	return rowsFromDocument(doc, s.curriculum.DayCount()), nil
}

func rowsFromDocument(doc *model.ProgressDocument, dayCount int) []model.ProgressRow {
	rows := make([]model.ProgressRow, dayCount)
	for day := 1; day <= dayCount; day++ {
		entry := doc.Progress[util.DayKey(day)]
		rows[day-1] = model.ProgressRow{
			Day:              day,
			Completed:        entry.Completed,
			CompletionDate:   entry.CompletionDate,
			TimeSpentMinutes: entry.TimeSpentMinutes,
		}
	}
	return rows
}

// CompletionPercentage 完成百分比，0..100
func (s *ProgressService) CompletionPercentage() (float64, error) {
	rows, err := s.AllProgressRows()
	if err != nil {
		return 0, err
	}

	completed := 0
	for _, row := range rows {
		if row.Completed {
			completed++
		}
	}
	return float64(completed) / float64(len(rows)) * 100, nil
}

// WeeklyCompletionCounts 每周完成天数，固定 3 个窗口
func (s *ProgressService) WeeklyCompletionCounts() ([]int, error) {
	rows, err := s.AllProgressRows()
	if err != nil {
		return nil, err
	}

	counts := make([]int, s.curriculum.WeekCount())
	for _, row := range rows {
		if row.Completed {
			counts[(row.Day-1)/DaysPerWeek]++
		}
	}
	return counts, nil
}

// WeeklyTimeTotals 每周学习时长合计（分钟）
func (s *ProgressService) WeeklyTimeTotals() ([]int, error) {
	rows, err := s.AllProgressRows()
	if err != nil {
		return nil, err
	}

	totals := make([]int, s.curriculum.WeekCount())
	for _, row := range rows {
		totals[(row.Day-1)/DaysPerWeek] += row.TimeSpentMinutes
	}
	return totals, nil
}

// TotalTimeSpent 全部天数学习时长合计（分钟）
func (s *ProgressService) TotalTimeSpent() (int, error) {
	rows, err := s.AllProgressRows()
	if err != nil {
		return 0, err
	}

	total := 0
	for _, row := range rows {
		total += row.TimeSpentMinutes
	}
	return total, nil
}

// CurrentDay 最小的未完成天数；21 天全部完成时返回 22 表示课程结束
func (s *ProgressService) CurrentDay() (int, error) {
	rows, err := s.AllProgressRows()
	if err != nil {
		return 0, err
	}

	for _, row := range rows {
		if !row.Completed {
			return row.Day, nil
		}
	}
	return s.curriculum.DayCount() + 1, nil
}

// LearningStreak 从今天起向前数连续有完成记录的自然日天数
func (s *ProgressService) LearningStreak() (int, error) {
	doc, err := s.repo.Load()
	if err != nil {
		return 0, err
	}
	return streakFrom(doc, time.Now()), nil
}

// streakFrom 同一天完成多个 day 只计一次，遇到第一个空档即停
func streakFrom(doc *model.ProgressDocument, today time.Time) int {
	dates := make(map[string]bool, len(doc.Progress))
	for _, entry := range doc.Progress {
		if entry.CompletionDate != "" {
			dates[entry.CompletionDate] = true
		}
	}

	streak := 0
	for d := today; dates[d.Format(util.DateFormat)]; d = d.AddDate(0, 0, -1) {
		streak++
	}
	return streak
}

// ExportNotes 把全部笔记导出为一份纯文本，按天升序
func (s *ProgressService) ExportNotes() (string, error) {
	doc, err := s.repo.Load()
	if err != nil {
		return "", err
	}

	days := make([]int, 0, len(doc.Notes))
	for key := range doc.Notes {
		if day := util.ParseDayKey(key); s.curriculum.ValidDay(day) {
			days = append(days, day)
		}
	}
	sort.Ints(days)

	var b strings.Builder
	for _, day := range days {
		info, err := s.curriculum.DayInfo(day)
		if err != nil {
			continue
		}
		b.WriteString("# Day " + util.DayKey(day) + ": " + info.Topic + "\n")
		b.WriteString("Week " + util.DayKey(info.Week) + ": " + info.WeekTitle + "\n\n")
		b.WriteString(doc.Notes[util.DayKey(day)] + "\n\n")
		b.WriteString(strings.Repeat("-", 50) + "\n\n")
	}

	return b.String(), nil
}

// DayDetail 天追踪页聚合视图：进度行 + 笔记 + 已用资源 + 上传记录
func (s *ProgressService) DayDetail(day int) (*model.DayDetail, error) {
	if err := s.checkDay(day); err != nil {
		return nil, err
	}

	doc, err := s.repo.Load()
	if err != nil {
		return nil, err
	}

	key := util.DayKey(day)
	entry := doc.Progress[key]

	detail := &model.DayDetail{
		ProgressRow: model.ProgressRow{
			Day:              day,
			Completed:        entry.Completed,
			CompletionDate:   entry.CompletionDate,
			TimeSpentMinutes: entry.TimeSpentMinutes,
		},
		Note:          doc.Notes[key],
		ResourcesUsed: doc.ResourcesUsed[key],
	}
	if detail.ResourcesUsed == nil {
		detail.ResourcesUsed = []string{}
	}
	if record, ok := doc.Uploads[key]; ok {
		detail.Upload = &record
	}

	return detail, nil
}
