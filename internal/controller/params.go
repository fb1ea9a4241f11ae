package controller

import (
	"errors"
	"strconv"

	"pylearn_tracker/internal/util"

	"github.com/gin-gonic/gin"
)

// parseDay 解析路径中的 :day，非数字直接 400
// 范围校验交给服务层（ErrInvalidDay）。
func parseDay(ctx *gin.Context) (int, bool) {
	day, err := strconv.Atoi(ctx.Param("day"))
	if err != nil {
		util.BadRequest(ctx, "invalid day")
		return 0, false
	}
	return day, true
}

// respondStoreError 按错误类型映射 HTTP 状态
func respondStoreError(ctx *gin.Context, err error) {
	switch {
	case errors.Is(err, util.ErrInvalidDay):
		util.BadRequest(ctx, err.Error())
	case errors.Is(err, util.ErrNoUpload), errors.Is(err, util.ErrDayNotFound):
		util.NotFound(ctx)
	default:
		util.LogInternalError(ctx, err)
	}
}
