package main

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMountUploadsServesConfiguredDir(t *testing.T) {
	gin.SetMode(gin.TestMode)
	oldWD, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(t.TempDir()))
	t.Cleanup(func() { _ = os.Chdir(oldWD) })

	uploadDir := filepath.Join("media", "uploads")
	require.NoError(t, os.MkdirAll(uploadDir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(uploadDir, "x.jpg"), []byte("jpegdata"), 0o644))

	r := gin.New()
	mountUploads(r, uploadDir)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/media/uploads/x.jpg", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "jpegdata", w.Body.String())
}
