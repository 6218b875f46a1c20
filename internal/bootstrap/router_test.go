package bootstrap

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/engineers-planet/site/config"
)

func memoryConfig() *config.Config {
	return &config.Config{
		Server: config.ServerConfig{
			Port:               "8080",
			PublicURL:          "http://localhost:8080",
			CORSAllowedOrigins: []string{"*"},
			RateLimitRPS:       0.001,
			RateLimitBurst:     2,
			MaxUploadBytes:     1 << 20,
		},
		Submission: config.SubmissionConfig{
			RecordBackend: config.BackendMemory,
			FileBackend:   config.BackendMemory,
			ResetDelay:    time.Second,
			CallTimeout:   time.Second,
		},
		App: config.AppConfig{Environment: "test", Version: "test"},
	}
}

func newRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	cfg := memoryConfig()
	b, err := OpenBackends(context.Background(), cfg, zap.NewNop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = b.Close() })

	assert.NotNil(t, b.Memory)
	assert.Nil(t, b.Events)

	r, err := BuildRouter(RouterDeps{ServiceName: "site", Config: cfg, Backends: b, Logger: zap.NewNop()})
	require.NoError(t, err)
	return r
}

func TestBuildRouter_Routes(t *testing.T) {
	r := newRouter(t)

	for _, path := range []string{"/", "/health", "/api/v1/config", "/api/v1/forms/projects/state"} {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
		assert.Equal(t, http.StatusOK, w.Code, path)
		assert.NotEmpty(t, w.Header().Get("X-Request-ID"), path)
	}
}

func TestBuildRouter_RateLimitsFormPosts(t *testing.T) {
	r := newRouter(t)

	post := func() int {
		req := httptest.NewRequest(http.MethodPost, "/forms/companies", strings.NewReader("company_name="))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		return w.Code
	}

	assert.Equal(t, http.StatusUnprocessableEntity, post())
	assert.Equal(t, http.StatusUnprocessableEntity, post())
	assert.Equal(t, http.StatusTooManyRequests, post())

	// the page itself is not limited
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestOpenBackends_UnsupportedBackend(t *testing.T) {
	cfg := memoryConfig()
	cfg.Submission.FileBackend = "ftp"

	_, err := OpenBackends(context.Background(), cfg, zap.NewNop())
	assert.ErrorContains(t, err, "unsupported FILE_BACKEND")
}

func TestCORSConfig(t *testing.T) {
	wildcard := corsConfig([]string{"*"})
	assert.True(t, wildcard.AllowAllOrigins)
	assert.False(t, wildcard.AllowCredentials)
	assert.NoError(t, wildcard.Validate())

	fixed := corsConfig([]string{"https://engineersplanet.it"})
	assert.False(t, fixed.AllowAllOrigins)
	assert.True(t, fixed.AllowCredentials)
	assert.Equal(t, []string{"https://engineersplanet.it"}, fixed.AllowOrigins)
}

func TestBuildRouter_WildcardCORSWithoutCredentials(t *testing.T) {
	r := newRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/forms/companies/state", nil)
	req.Header.Set("Origin", "https://evil.example")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
	assert.Empty(t, w.Header().Get("Access-Control-Allow-Credentials"))
}

func TestGinMode(t *testing.T) {
	assert.Equal(t, gin.ReleaseMode, GinMode("production"))
	assert.Equal(t, gin.ReleaseMode, GinMode("staging"))
	assert.Equal(t, gin.TestMode, GinMode("test"))
	assert.Equal(t, gin.DebugMode, GinMode("development"))
	assert.Equal(t, gin.DebugMode, GinMode(""))
}
