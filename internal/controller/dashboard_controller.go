package controller

import (
	"pylearn_tracker/internal/service"
	"pylearn_tracker/internal/util"

	"github.com/gin-gonic/gin"
)

type DashboardController struct {
	DashboardService *service.DashboardService
	ChartService     *service.ChartService
}

func NewDashboardController(dashboardService *service.DashboardService, chartService *service.ChartService) *DashboardController {
	return &DashboardController{DashboardService: dashboardService, ChartService: chartService}
}

// GetDashboard godoc
// @Summary 获取仪表盘数据
// @Description 完成百分比、当前天、连续学习天数、总时长、每周完成与接下来的课程
// @Tags 仪表盘
// @Produce json
// @Success 200 {object} util.Response{data=model.Dashboard}
// @Router /api/dashboard [get]
func (c *DashboardController) GetDashboard(ctx *gin.Context) {
	dashboard, err := c.DashboardService.GetDashboard()
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, dashboard)
}

// GetCharts godoc
// @Summary 获取仪表盘全部图表数据
// @Description 热力图、每周柱状图、每日时长曲线、完成度仪表和学习日历
// @Tags 仪表盘
// @Produce json
// @Success 200 {object} util.Response{data=model.ChartBundle}
// @Router /api/dashboard/charts [get]
func (c *DashboardController) GetCharts(ctx *gin.Context) {
	bundle, err := c.ChartService.GetChartBundle()
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, bundle)
}
