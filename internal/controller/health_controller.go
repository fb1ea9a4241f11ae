package controller

import (
	"net/http"

	"pylearn_tracker/internal/repository"
	"pylearn_tracker/internal/util"

	"github.com/gin-gonic/gin"
)

type HealthController struct {
	Repo *repository.ProgressRepository
}

func NewHealthController(repo *repository.ProgressRepository) *HealthController {
	return &HealthController{Repo: repo}
}

// HealthCheck godoc
// @Summary 健康检查
// @Description 检查服务与进度存储状态
// @Tags 系统
// @Produce json
// @Success 200 {object} util.Response
// @Router /api/health [get]
func (c *HealthController) HealthCheck(ctx *gin.Context) {
	if err := c.Repo.Ping(); err != nil {
		util.Error(ctx, http.StatusServiceUnavailable, "Progress storage unavailable")
		return
	}

	util.Success(ctx, gin.H{
		"status": "ok",
		"components": gin.H{
			"storage": "up",
		},
	})
}
