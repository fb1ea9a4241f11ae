package controller

import (
	"fmt"
	"path/filepath"
	"time"

	"pylearn_tracker/internal/service"
	"pylearn_tracker/internal/util"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// UploadController 练习解答文件上传
// 文件内容交给存储后端，进度文件只记录文件名和上传时间。
type UploadController struct {
	Progress *service.ProgressService
	Storage  *service.StorageService
}

func NewUploadController(progress *service.ProgressService, storage *service.StorageService) *UploadController {
	return &UploadController{Progress: progress, Storage: storage}
}

// UploadSolution godoc
// @Summary 上传某天的练习解答文件
// @Description 仅接受 Python 源文件，存储后记录到当天进度
// @Tags 上传
// @Accept multipart/form-data
// @Produce json
// @Param day path int true "天数 1-21"
// @Param file formData file true "解答文件(.py)"
// @Success 201 {object} util.Response
// @Failure 400 {object} util.Response
// @Router /api/days/{day}/solution [post]
func (c *UploadController) UploadSolution(ctx *gin.Context) {
	day, ok := parseDay(ctx)
	if !ok {
		return
	}
	// 越界天数在写入存储前拒绝
	if err := c.Progress.CheckDay(day); err != nil {
		respondStoreError(ctx, err)
		return
	}

	file, err := ctx.FormFile("file")
	if err != nil {
		util.BadRequest(ctx, "file is required")
		return
	}

	// 客户端提交的文件名可能带路径，只保留最后一段
	filename := filepath.Base(file.Filename)
	if !util.IsSolutionFile(filename) {
		util.BadRequest(ctx, util.ErrInvalidSolution.Error())
		return
	}

	src, err := file.Open()
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	defer src.Close()

	// Python 源码按文本校验，空文件会被识别为 octet-stream
	mimeType, err := util.ValidateMimeType(src, []string{util.MimeText, util.MimeOctetStream})
	if err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}
	if _, err := src.Seek(0, 0); err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	objectName := fmt.Sprintf("solutions/day_%02d/%s_%s", day, uuid.New().String(), filename)
	url, err := c.Storage.Upload(ctx.Request.Context(), objectName, src, file.Size, mimeType)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	// 同一天重复上传时清理旧对象，清理失败不阻塞本次上传
	if prior, err := c.Progress.Upload(day); err == nil && prior.ObjectName != "" {
		_ = c.Storage.Delete(ctx.Request.Context(), prior.ObjectName)
	}

	uploadedAt := time.Now()
	if err := c.Progress.RecordUpload(day, filename, objectName, uploadedAt); err != nil {
		respondStoreError(ctx, err)
		return
	}

	util.Created(ctx, gin.H{
		"day":        day,
		"filename":   filename,
		"uploadTime": uploadedAt.Format(util.TimeFormat),
		"url":        url,
	})
}

// GetSolution godoc
// @Summary 获取某天的解答上传记录
// @Tags 上传
// @Produce json
// @Param day path int true "天数 1-21"
// @Success 200 {object} util.Response{data=model.UploadRecord}
// @Failure 404 {object} util.Response
// @Router /api/days/{day}/solution [get]
func (c *UploadController) GetSolution(ctx *gin.Context) {
	day, ok := parseDay(ctx)
	if !ok {
		return
	}

	record, err := c.Progress.Upload(day)
	if err != nil {
		respondStoreError(ctx, err)
		return
	}

	util.Success(ctx, record)
}
