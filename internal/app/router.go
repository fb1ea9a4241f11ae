package app

import (
	"pylearn_tracker/docs"
	"pylearn_tracker/pkg/monitoring"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func (a *App) registerRoutes(router *gin.Engine, c *controllers) {
	docs.SwaggerInfo.BasePath = "/api"
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL("/swagger/doc.json")))

	router.GET("/metrics", monitoring.PrometheusHandler())

	api := router.Group("/api")
	{
		api.GET("/health", c.health.HealthCheck)

		// 课程表（只读）
		api.GET("/curriculum", c.curriculum.GetCurriculum)
		api.GET("/curriculum/tools", c.curriculum.GetTools)
		api.GET("/curriculum/days/:day", c.curriculum.GetDayInfo)

		// 天追踪
		days := api.Group("/days/:day")
		{
			days.GET("", c.tracker.GetDayDetail)
			days.POST("/completion", c.tracker.UpdateCompletion)
			days.PUT("/time", c.tracker.UpdateTimeSpent)
			days.GET("/note", c.note.GetNote)
			days.PUT("/note", c.note.SaveNote)
			days.GET("/resources", c.tracker.GetResourcesUsed)
			days.POST("/resources", c.tracker.MarkResourceUsed)
			days.DELETE("/resources/:name", c.tracker.UnmarkResourceUsed)
			days.POST("/solution", c.upload.UploadSolution)
			days.GET("/solution", c.upload.GetSolution)
		}

		// 进度与仪表盘
		api.GET("/progress", c.tracker.GetProgressRows)
		api.GET("/progress/weekly", c.tracker.GetWeeklyProgress)
		api.GET("/dashboard", c.dashboard.GetDashboard)
		api.GET("/dashboard/charts", c.dashboard.GetCharts)

		// 笔记导出
		api.GET("/notes/export", c.note.ExportNotes)
	}
}
