package controller

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pylearn_tracker/internal/repository"
	"pylearn_tracker/internal/service"
	"pylearn_tracker/internal/util"
)

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	repo := repository.NewProgressRepository(filepath.Join(t.TempDir(), "progress.json"))
	require.NoError(t, repo.Initialize())

	curriculum := service.NewCurriculumService()
	progress := service.NewProgressService(repo, curriculum)

	curriculumCtl := NewCurriculumController(curriculum)
	tracker := NewTrackerController(progress)
	notes := NewNoteController(progress)
	dashboard := NewDashboardController(
		service.NewDashboardService(progress, curriculum),
		service.NewChartService(progress),
	)
	health := NewHealthController(repo)

	r := gin.New()
	api := r.Group("/api")
	{
		api.GET("/health", health.HealthCheck)
		api.GET("/curriculum", curriculumCtl.GetCurriculum)
		api.GET("/curriculum/days/:day", curriculumCtl.GetDayInfo)
		api.GET("/curriculum/tools", curriculumCtl.GetTools)
		api.GET("/dashboard", dashboard.GetDashboard)
		api.GET("/dashboard/charts", dashboard.GetCharts)
		api.GET("/progress", tracker.GetProgressRows)
		api.GET("/progress/weekly", tracker.GetWeeklyProgress)
		api.GET("/notes/export", notes.ExportNotes)

		days := api.Group("/days/:day")
		{
			days.GET("", tracker.GetDayDetail)
			days.POST("/completion", tracker.UpdateCompletion)
			days.PUT("/time", tracker.UpdateTimeSpent)
			days.GET("/note", notes.GetNote)
			days.PUT("/note", notes.SaveNote)
			days.GET("/resources", tracker.GetResourcesUsed)
			days.POST("/resources", tracker.MarkResourceUsed)
			days.DELETE("/resources/:name", tracker.UnmarkResourceUsed)
		}
	}
	return r
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Buffer
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewBuffer(data)
	} else {
		reader = bytes.NewBuffer(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeResponse(t *testing.T, w *httptest.ResponseRecorder) util.Response {
	t.Helper()
	var resp util.Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}

func TestHealthEndpoint(t *testing.T) {
	r := newTestRouter(t)

	w := doJSON(t, r, "GET", "/api/health", nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestGetCurriculum(t *testing.T) {
	r := newTestRouter(t)

	w := doJSON(t, r, "GET", "/api/curriculum", nil)
	require.Equal(t, http.StatusOK, w.Code)

	resp := decodeResponse(t, w)
	weeks, ok := resp.Data.([]interface{})
	require.True(t, ok)
	assert.Len(t, weeks, 3)
}

func TestGetDayInfo(t *testing.T) {
	r := newTestRouter(t)

	w := doJSON(t, r, "GET", "/api/curriculum/days/1", nil)
	require.Equal(t, http.StatusOK, w.Code)

	resp := decodeResponse(t, w)
	data := resp.Data.(map[string]interface{})
	assert.Equal(t, "Variables & Data Types", data["topic"])

	// 非数字天数
	w = doJSON(t, r, "GET", "/api/curriculum/days/abc", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// 越界天数
	w = doJSON(t, r, "GET", "/api/curriculum/days/25", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestUpdateCompletionFlow(t *testing.T) {
	r := newTestRouter(t)

	w := doJSON(t, r, "POST", "/api/days/5/completion", gin.H{"completed": true})
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, r, "GET", "/api/days/5", nil)
	require.Equal(t, http.StatusOK, w.Code)
	data := decodeResponse(t, w).Data.(map[string]interface{})
	assert.Equal(t, true, data["completed"])
	assert.NotEmpty(t, data["completionDate"])
}

func TestUpdateCompletionValidation(t *testing.T) {
	r := newTestRouter(t)

	// completed 字段必填
	w := doJSON(t, r, "POST", "/api/days/5/completion", gin.H{})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// 越界天数拒绝写入
	w = doJSON(t, r, "POST", "/api/days/22/completion", gin.H{"completed": true})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(t, r, "POST", "/api/days/0/completion", gin.H{"completed": true})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestUpdateTimeSpentEndpoint(t *testing.T) {
	r := newTestRouter(t)

	w := doJSON(t, r, "PUT", "/api/days/3/time", gin.H{"hours": 1, "minutes": 15})
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, r, "GET", "/api/days/3", nil)
	require.Equal(t, http.StatusOK, w.Code)
	data := decodeResponse(t, w).Data.(map[string]interface{})
	assert.Equal(t, float64(75), data["timeSpentMinutes"])
}

func TestNoteEndpoints(t *testing.T) {
	r := newTestRouter(t)

	w := doJSON(t, r, "PUT", "/api/days/2/note", gin.H{"content": "operators precedence"})
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, r, "GET", "/api/days/2/note", nil)
	require.Equal(t, http.StatusOK, w.Code)
	data := decodeResponse(t, w).Data.(map[string]interface{})
	assert.Equal(t, "operators precedence", data["content"])
}

func TestResourceEndpoints(t *testing.T) {
	r := newTestRouter(t)

	w := doJSON(t, r, "POST", "/api/days/5/resources", gin.H{"name": "W3Schools"})
	require.Equal(t, http.StatusOK, w.Code)

	// 幂等
	w = doJSON(t, r, "POST", "/api/days/5/resources", gin.H{"name": "W3Schools"})
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, r, "GET", "/api/days/5/resources", nil)
	require.Equal(t, http.StatusOK, w.Code)
	used := decodeResponse(t, w).Data.([]interface{})
	require.Len(t, used, 1)
	assert.Equal(t, "W3Schools", used[0])

	w = doJSON(t, r, "DELETE", "/api/days/5/resources/W3Schools", nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, r, "GET", "/api/days/5/resources", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, decodeResponse(t, w).Data)
}

func TestGetProgressRows(t *testing.T) {
	r := newTestRouter(t)

	w := doJSON(t, r, "GET", "/api/progress", nil)
	require.Equal(t, http.StatusOK, w.Code)

	rows := decodeResponse(t, w).Data.([]interface{})
	assert.Len(t, rows, 21)
}

func TestGetWeeklyProgress(t *testing.T) {
	r := newTestRouter(t)

	doJSON(t, r, "POST", "/api/days/1/completion", gin.H{"completed": true})
	doJSON(t, r, "PUT", "/api/days/8/time", gin.H{"minutes": 20})

	w := doJSON(t, r, "GET", "/api/progress/weekly", nil)
	require.Equal(t, http.StatusOK, w.Code)

	data := decodeResponse(t, w).Data.(map[string]interface{})
	counts := data["completionCounts"].([]interface{})
	totals := data["timeTotals"].([]interface{})
	require.Len(t, counts, 3)
	require.Len(t, totals, 3)
	assert.Equal(t, float64(1), counts[0])
	assert.Equal(t, float64(20), totals[1])
}

func TestGetDashboardEndpoint(t *testing.T) {
	r := newTestRouter(t)

	w := doJSON(t, r, "GET", "/api/dashboard", nil)
	require.Equal(t, http.StatusOK, w.Code)

	data := decodeResponse(t, w).Data.(map[string]interface{})
	summary := data["summary"].(map[string]interface{})
	assert.Equal(t, float64(1), summary["currentDay"])
}

func TestExportNotesEndpoint(t *testing.T) {
	r := newTestRouter(t)

	doJSON(t, r, "PUT", "/api/days/1/note", gin.H{"content": "print() basics"})

	w := doJSON(t, r, "GET", "/api/notes/export", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.True(t, strings.HasPrefix(w.Header().Get("Content-Type"), "text/plain"))
	assert.Contains(t, w.Header().Get("Content-Disposition"), "python_learning_notes.txt")
	assert.Contains(t, w.Body.String(), "# Day 1: Variables & Data Types")
	assert.Contains(t, w.Body.String(), "print() basics")
}
