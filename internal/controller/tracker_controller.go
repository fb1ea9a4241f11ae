package controller

import (
	"pylearn_tracker/internal/service"
	"pylearn_tracker/internal/util"

	"github.com/gin-gonic/gin"
)

// TrackerController 天追踪：完成状态、学习时长、资源使用
type TrackerController struct {
	Progress *service.ProgressService
}

func NewTrackerController(progress *service.ProgressService) *TrackerController {
	return &TrackerController{Progress: progress}
}

// GetDayDetail godoc
// @Summary 获取某天的进度详情
// @Description 进度行、笔记、已用资源和上传记录的聚合视图
// @Tags 天追踪
// @Produce json
// @Param day path int true "天数 1-21"
// @Success 200 {object} util.Response{data=model.DayDetail}
// @Failure 400 {object} util.Response
// @Router /api/days/{day} [get]
func (c *TrackerController) GetDayDetail(ctx *gin.Context) {
	day, ok := parseDay(ctx)
	if !ok {
		return
	}

	detail, err := c.Progress.DayDetail(day)
	if err != nil {
		respondStoreError(ctx, err)
		return
	}

	util.Success(ctx, detail)
}

type completionRequest struct {
	Completed *bool `json:"completed" binding:"required"`
}

// UpdateCompletion godoc
// @Summary 标记某天完成/未完成
// @Tags 天追踪
// @Accept json
// @Produce json
// @Param day path int true "天数 1-21"
// @Param body body completionRequest true "完成状态"
// @Success 200 {object} util.Response
// @Failure 400 {object} util.Response
// @Router /api/days/{day}/completion [post]
func (c *TrackerController) UpdateCompletion(ctx *gin.Context) {
	day, ok := parseDay(ctx)
	if !ok {
		return
	}

	var req completionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	if err := c.Progress.MarkDayComplete(day, *req.Completed); err != nil {
		respondStoreError(ctx, err)
		return
	}

	util.Success(ctx, gin.H{"day": day, "completed": *req.Completed})
}

type timeSpentRequest struct {
	Hours   int `json:"hours"`
	Minutes int `json:"minutes"`
}

// UpdateTimeSpent godoc
// @Summary 覆盖记录某天学习时长
// @Tags 天追踪
// @Accept json
// @Produce json
// @Param day path int true "天数 1-21"
// @Param body body timeSpentRequest true "小时和分钟"
// @Success 200 {object} util.Response
// @Failure 400 {object} util.Response
// @Router /api/days/{day}/time [put]
func (c *TrackerController) UpdateTimeSpent(ctx *gin.Context) {
	day, ok := parseDay(ctx)
	if !ok {
		return
	}

	var req timeSpentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	if err := c.Progress.UpdateTimeSpent(day, req.Hours, req.Minutes); err != nil {
		respondStoreError(ctx, err)
		return
	}

	util.Success(ctx, gin.H{"day": day})
}

// GetResourcesUsed godoc
// @Summary 获取某天已标记使用的资源
// @Tags 天追踪
// @Produce json
// @Param day path int true "天数 1-21"
// @Success 200 {object} util.Response{data=[]string}
// @Router /api/days/{day}/resources [get]
func (c *TrackerController) GetResourcesUsed(ctx *gin.Context) {
	day, ok := parseDay(ctx)
	if !ok {
		return
	}

	used, err := c.Progress.ResourcesUsedFor(day)
	if err != nil {
		respondStoreError(ctx, err)
		return
	}

	util.Success(ctx, used)
}

type resourceRequest struct {
	Name string `json:"name" binding:"required"`
}

// MarkResourceUsed godoc
// @Summary 标记某天使用了某资源
// @Description 重复标记幂等，同一资源名只记录一次
// @Tags 天追踪
// @Accept json
// @Produce json
// @Param day path int true "天数 1-21"
// @Param body body resourceRequest true "资源名"
// @Success 200 {object} util.Response
// @Failure 400 {object} util.Response
// @Router /api/days/{day}/resources [post]
func (c *TrackerController) MarkResourceUsed(ctx *gin.Context) {
	day, ok := parseDay(ctx)
	if !ok {
		return
	}

	var req resourceRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	if err := c.Progress.MarkResourceUsed(day, req.Name); err != nil {
		respondStoreError(ctx, err)
		return
	}

	util.Success(ctx, gin.H{"day": day, "name": req.Name})
}

// UnmarkResourceUsed godoc
// @Summary 移除某天的资源使用标记
// @Tags 天追踪
// @Produce json
// @Param day path int true "天数 1-21"
// @Param name path string true "资源名"
// @Success 200 {object} util.Response
// @Router /api/days/{day}/resources/{name} [delete]
func (c *TrackerController) UnmarkResourceUsed(ctx *gin.Context) {
	day, ok := parseDay(ctx)
	if !ok {
		return
	}

	if err := c.Progress.UnmarkResourceUsed(day, ctx.Param("name")); err != nil {
		respondStoreError(ctx, err)
		return
	}

	util.Success(ctx, gin.H{"day": day})
}

// GetProgressRows godoc
// @Summary 获取全部 21 天的归一化进度行
// @Tags 进度
// @Produce json
// @Success 200 {object} util.Response{data=[]model.ProgressRow}
// @Router /api/progress [get]
func (c *TrackerController) GetProgressRows(ctx *gin.Context) {
	rows, err := c.Progress.AllProgressRows()
	if err != nil {
		respondStoreError(ctx, err)
		return
	}

	util.Success(ctx, rows)
}

// GetWeeklyProgress godoc
// @Summary 获取按周聚合的完成数和学习时长
// @Tags 进度
// @Produce json
// @Success 200 {object} util.Response
// @Router /api/progress/weekly [get]
func (c *TrackerController) GetWeeklyProgress(ctx *gin.Context) {
	counts, err := c.Progress.WeeklyCompletionCounts()
	if err != nil {
		respondStoreError(ctx, err)
		return
	}
	totals, err := c.Progress.WeeklyTimeTotals()
	if err != nil {
		respondStoreError(ctx, err)
		return
	}

	util.Success(ctx, gin.H{
		"completionCounts": counts,
		"timeTotals":       totals,
	})
}
