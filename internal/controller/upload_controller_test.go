package controller

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pylearn_tracker/internal/config"
	"pylearn_tracker/internal/repository"
	"pylearn_tracker/internal/service"
)

func newUploadRouter(t *testing.T) (*gin.Engine, string) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	repo := repository.NewProgressRepository(filepath.Join(t.TempDir(), "progress.json"))
	require.NoError(t, repo.Initialize())

	curriculum := service.NewCurriculumService()
	progress := service.NewProgressService(repo, curriculum)

	uploadDir := filepath.Join(t.TempDir(), "uploads")
	require.NoError(t, os.MkdirAll(uploadDir, 0755))

	cfg := &config.Config{}
	cfg.Storage.Type = "local"
	cfg.Storage.LocalPath = uploadDir
	storage := service.NewStorageService(cfg)

	upload := NewUploadController(progress, storage)

	r := gin.New()
	r.POST("/api/days/:day/solution", upload.UploadSolution)
	r.GET("/api/days/:day/solution", upload.GetSolution)
	return r, uploadDir
}

func doUpload(t *testing.T, r *gin.Engine, path, filename, content string) *httptest.ResponseRecorder {
	t.Helper()

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	part, err := writer.CreateFormFile("file", filename)
	require.NoError(t, err)
	_, err = part.Write([]byte(content))
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	req := httptest.NewRequest("POST", path, &body)
	req.Header.Set("Content-Type", writer.FormDataContentType())

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

// storedFiles 返回目录下全部普通文件的相对路径
func storedFiles(t *testing.T, dir string) []string {
	t.Helper()
	var files []string
	err := filepath.Walk(dir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if !info.IsDir() {
			rel, err := filepath.Rel(dir, path)
			if err != nil {
				return err
			}
			files = append(files, rel)
		}
		return nil
	})
	require.NoError(t, err)
	return files
}

func TestUploadSolutionFlow(t *testing.T) {
	r, uploadDir := newUploadRouter(t)

	w := doUpload(t, r, "/api/days/5/solution", "day5_solution.py", "print('hello')\n")
	require.Equal(t, http.StatusCreated, w.Code)

	resp := decodeResponse(t, w)
	data := resp.Data.(map[string]interface{})
	assert.Equal(t, "day5_solution.py", data["filename"])
	assert.NotEmpty(t, data["uploadTime"])
	assert.NotEmpty(t, data["url"])

	files := storedFiles(t, uploadDir)
	require.Len(t, files, 1)
	assert.Contains(t, files[0], filepath.Join("solutions", "day_05"))

	// 上传记录可读回
	req := httptest.NewRequest("GET", "/api/days/5/solution", nil)
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)
	record := decodeResponse(t, w).Data.(map[string]interface{})
	assert.Equal(t, "day5_solution.py", record["filename"])
}

func TestUploadSolutionReplacesPreviousObject(t *testing.T) {
	r, uploadDir := newUploadRouter(t)

	w := doUpload(t, r, "/api/days/5/solution", "first.py", "print('v1')\n")
	require.Equal(t, http.StatusCreated, w.Code)
	require.Len(t, storedFiles(t, uploadDir), 1)

	w = doUpload(t, r, "/api/days/5/solution", "second.py", "print('v2')\n")
	require.Equal(t, http.StatusCreated, w.Code)

	// 旧对象已清理，同一天只保留最新上传
	files := storedFiles(t, uploadDir)
	require.Len(t, files, 1)
	assert.Contains(t, files[0], "second.py")

	req := httptest.NewRequest("GET", "/api/days/5/solution", nil)
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)
	require.Equal(t, http.StatusOK, resp.Code)
	record := decodeResponse(t, resp).Data.(map[string]interface{})
	assert.Equal(t, "second.py", record["filename"])
}

func TestUploadSolutionStripsPathFromFilename(t *testing.T) {
	r, uploadDir := newUploadRouter(t)

	w := doUpload(t, r, "/api/days/5/solution", "../../../../escaped.py", "print('x')\n")
	require.Equal(t, http.StatusCreated, w.Code)

	// 文件名只保留最后一段，文件绝不落在存储目录之外
	data := decodeResponse(t, w).Data.(map[string]interface{})
	assert.Equal(t, "escaped.py", data["filename"])

	files := storedFiles(t, uploadDir)
	require.Len(t, files, 1)
	assert.Contains(t, files[0], filepath.Join("solutions", "day_05"))

	parent := storedFiles(t, filepath.Dir(uploadDir))
	assert.Equal(t, len(files), len(parent))
}

func TestUploadSolutionRejectsNonPython(t *testing.T) {
	r, _ := newUploadRouter(t)

	w := doUpload(t, r, "/api/days/5/solution", "report.pdf", "%PDF-1.4")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestUploadSolutionRejectsInvalidDay(t *testing.T) {
	r, _ := newUploadRouter(t)

	w := doUpload(t, r, "/api/days/22/solution", "day22.py", "print('x')")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestUploadSolutionRequiresFile(t *testing.T) {
	r, _ := newUploadRouter(t)

	req := httptest.NewRequest("POST", "/api/days/5/solution", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetSolutionMissing(t *testing.T) {
	r, _ := newUploadRouter(t)

	req := httptest.NewRequest("GET", "/api/days/9/solution", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
