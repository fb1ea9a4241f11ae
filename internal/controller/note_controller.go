package controller

import (
	"net/http"

	"pylearn_tracker/internal/service"
	"pylearn_tracker/internal/util"

	"github.com/gin-gonic/gin"
)

type NoteController struct {
	Progress *service.ProgressService
}

func NewNoteController(progress *service.ProgressService) *NoteController {
	return &NoteController{Progress: progress}
}

// GetNote godoc
// @Summary 获取某天的笔记
// @Tags 笔记
// @Produce json
// @Param day path int true "天数 1-21"
// @Success 200 {object} util.Response
// @Failure 400 {object} util.Response
// @Router /api/days/{day}/note [get]
func (c *NoteController) GetNote(ctx *gin.Context) {
	day, ok := parseDay(ctx)
	if !ok {
		return
	}

	note, err := c.Progress.Note(day)
	if err != nil {
		respondStoreError(ctx, err)
		return
	}

	util.Success(ctx, gin.H{"day": day, "content": note})
}

type noteRequest struct {
	Content string `json:"content"`
}

// SaveNote godoc
// @Summary 保存某天的笔记
// @Description 原样覆盖保存，空内容清空笔记
// @Tags 笔记
// @Accept json
// @Produce json
// @Param day path int true "天数 1-21"
// @Param body body noteRequest true "笔记内容"
// @Success 200 {object} util.Response
// @Failure 400 {object} util.Response
// @Router /api/days/{day}/note [put]
func (c *NoteController) SaveNote(ctx *gin.Context) {
	day, ok := parseDay(ctx)
	if !ok {
		return
	}

	var req noteRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	if err := c.Progress.SaveNote(day, req.Content); err != nil {
		respondStoreError(ctx, err)
		return
	}

	util.Success(ctx, gin.H{"day": day})
}

// ExportNotes godoc
// @Summary 导出全部笔记为纯文本
// @Tags 笔记
// @Produce plain
// @Success 200 {string} string
// @Router /api/notes/export [get]
func (c *NoteController) ExportNotes(ctx *gin.Context) {
	text, err := c.Progress.ExportNotes()
	if err != nil {
		respondStoreError(ctx, err)
		return
	}

	ctx.Header("Content-Disposition", `attachment; filename="python_learning_notes.txt"`)
	ctx.Data(http.StatusOK, "text/plain; charset=utf-8", []byte(text))
}
