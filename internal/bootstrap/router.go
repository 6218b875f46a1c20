package bootstrap

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/engineers-planet/site/config"
	httpapi "github.com/engineers-planet/site/internal/api/http"
	"github.com/engineers-planet/site/internal/api/http/middleware"
	leadshttp "github.com/engineers-planet/site/internal/leads/http"
	"github.com/engineers-planet/site/internal/leads/service"
	"github.com/engineers-planet/site/internal/site"
)

type RouterDeps struct {
	ServiceName string
	Config      *config.Config
	Backends    *Backends
	Logger      *zap.Logger
}

// NewForms wires the three form workflows to the configured backends.
func NewForms(dep RouterDeps) *service.Forms {
	return service.NewForms(service.Deps{
		Records:     dep.Backends.Records,
		Files:       dep.Backends.Files,
		States:      dep.Backends.States,
		Events:      dep.Backends.Events,
		Notifier:    service.ContextNotifier{Logger: dep.Logger},
		Logger:      dep.Logger,
		ResetDelay:  dep.Config.Submission.ResetDelay,
		CallTimeout: dep.Config.Submission.CallTimeout,
	})
}

func BuildRouter(dep RouterDeps) (*gin.Engine, error) {
	renderer, err := site.NewRenderer()
	if err != nil {
		return nil, err
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestIDMiddleware(dep.Logger))
	r.MaxMultipartMemory = 8 << 20

	healthHandler := httpapi.NewHealthHandler(dep.ServiceName, dep.Config.App.Version, dep.Backends.Health)
	healthHandler.RegisterRoutes(r)

	if dep.Backends.Memory != nil {
		httpapi.RegisterUploads(r, dep.Backends.Memory)
	}

	handler := leadshttp.New(NewForms(dep), renderer, dep.Logger, leadshttp.Options{
		Version:        dep.Config.App.Version,
		MaxUploadBytes: dep.Config.Server.MaxUploadBytes,
		SecureCookies:  dep.Config.App.Environment == "production",
	})

	limiter := middleware.NewIPRateLimiter(dep.Config.Server.RateLimitRPS, dep.Config.Server.RateLimitBurst)

	r.GET("/", handler.Home)
	forms := r.Group("/forms")
	forms.Use(limiter.Middleware())
	handler.RegisterForms(forms)

	api := r.Group("/api/v1")
	api.Use(cors.New(corsConfig(dep.Config.Server.CORSAllowedOrigins)))
	handler.RegisterState(api)
	submissions := api.Group("")
	submissions.Use(limiter.Middleware())
	handler.RegisterAPI(submissions)

	return r, nil
}

// corsConfig allows credentials only for an explicit origin list; a
// wildcard reflects any origin without cookies.
func corsConfig(origins []string) cors.Config {
	cfg := cors.Config{
		AllowMethods:  []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "X-Request-Id"},
		ExposeHeaders: []string{"X-Request-Id"},
		MaxAge:        12 * time.Hour,
	}
	if len(origins) == 0 || (len(origins) == 1 && origins[0] == "*") {
		cfg.AllowAllOrigins = true
		return cfg
	}
	cfg.AllowOrigins = origins
	cfg.AllowCredentials = true
	return cfg
}
