package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"abc-retail/libs"
	"abc-retail/libs/libtest"
	"abc-retail/models"
	"abc-retail/services"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newFunctionRouter(t *testing.T, maxBody int64) (*gin.Engine, libs.FileShare) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	share := libs.NewLocalFileShare(t.TempDir())
	svc := services.NewFunctionService(libtest.NewMemoryBlobStore(), share, nil, "messages", nil)
	ctrl := NewFunctionController(svc, maxBody)

	router := gin.New()
	router.POST("/api/UploadToFileShare", ctrl.UploadToFileShare)
	return router, share
}

func TestUploadToFileShareAcceptsEmptyBody(t *testing.T) {
	router, share := newFunctionRouter(t, 16)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/UploadToFileShare", nil))
	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Data models.FunctionResult `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))

	data, err := share.Read(context.Background(), services.FunctionFileShare, "", body.Data.Name)
	require.NoError(t, err)
	assert.Empty(t, data)
}

func TestUploadToFileShareRejectsOversizedBody(t *testing.T) {
	router, _ := newFunctionRouter(t, 16)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/UploadToFileShare", strings.NewReader(strings.Repeat("x", 64)))
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusRequestEntityTooLarge, w.Code)
}
