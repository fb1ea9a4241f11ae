package controller

import (
	"pylearn_tracker/internal/service"
	"pylearn_tracker/internal/util"

	"github.com/gin-gonic/gin"
)

type CurriculumController struct {
	Service *service.CurriculumService
}

func NewCurriculumController(s *service.CurriculumService) *CurriculumController {
	return &CurriculumController{Service: s}
}

// GetCurriculum godoc
// @Summary 获取完整课程表
// @Description 21天课程按周分组返回
// @Tags 课程表
// @Produce json
// @Success 200 {object} util.Response{data=[]model.CurriculumWeek}
// @Router /api/curriculum [get]
func (c *CurriculumController) GetCurriculum(ctx *gin.Context) {
	util.Success(ctx, c.Service.Weeks())
}

// GetDayInfo godoc
// @Summary 获取某天的课程信息
// @Tags 课程表
// @Produce json
// @Param day path int true "天数 1-21"
// @Success 200 {object} util.Response{data=model.DayInfo}
// @Failure 400 {object} util.Response
// @Router /api/curriculum/days/{day} [get]
func (c *CurriculumController) GetDayInfo(ctx *gin.Context) {
	day, ok := parseDay(ctx)
	if !ok {
		return
	}

	info, err := c.Service.DayInfo(day)
	if err != nil {
		respondStoreError(ctx, err)
		return
	}

	util.Success(ctx, info)
}

// GetTools godoc
// @Summary 获取推荐学习工具列表
// @Tags 课程表
// @Produce json
// @Success 200 {object} util.Response{data=[]string}
// @Router /api/curriculum/tools [get]
func (c *CurriculumController) GetTools(ctx *gin.Context) {
	util.Success(ctx, c.Service.AdditionalTools())
}
