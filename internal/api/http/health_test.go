package http

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/engineers-planet/site/internal/leads/domain"
	"github.com/engineers-planet/site/internal/storage/memory"
)

type pingFunc func(context.Context) error

func (f pingFunc) Ping(ctx context.Context) error { return f(ctx) }

func TestHealthCheck(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	NewHealthHandler("site", "1.0.0", map[string]Pinger{
		"records": pingFunc(func(context.Context) error { return nil }),
		"redis":   pingFunc(func(context.Context) error { return errors.New("connection refused") }),
		"nats":    nil,
	}).RegisterRoutes(r)

	for _, path := range []string{"/health", "/healthz"} {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
		require.Equal(t, http.StatusOK, w.Code, path)

		var resp HealthResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, "healthy", resp.Status)
		assert.Equal(t, "site", resp.Service)
		assert.Equal(t, map[string]string{"records": "up", "redis": "down", "nats": "disabled"}, resp.Backends)
	}
}

func TestRegisterUploads(t *testing.T) {
	gin.SetMode(gin.TestMode)
	store := memory.New("http://localhost:8080")
	r := gin.New()
	RegisterUploads(r, store)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/uploads/2026/10/missing.pdf", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestRegisterUploads_IgnoresClaimedContentType(t *testing.T) {
	gin.SetMode(gin.TestMode)
	store := memory.New("http://localhost:8080")
	r := gin.New()
	RegisterUploads(r, store)

	res, err := store.UploadFile(context.Background(), domain.File{
		Name:        "cv.pdf",
		ContentType: "text/html",
		Open: func() (io.ReadCloser, error) {
			return io.NopCloser(strings.NewReader("<script>alert(1)</script>")), nil
		},
	})
	require.NoError(t, err)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, strings.TrimPrefix(res.FileURL, "http://localhost:8080"), nil))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/pdf", w.Header().Get("Content-Type"))
	assert.Equal(t, "nosniff", w.Header().Get("X-Content-Type-Options"))
	assert.True(t, strings.HasPrefix(w.Header().Get("Content-Disposition"), "attachment"))
}

func TestServedType(t *testing.T) {
	assert.Equal(t, "application/pdf", servedType("uploads/2026/10/x_cv.PDF"))
	assert.Equal(t, "application/octet-stream", servedType("uploads/2026/10/x_notes"))
}
