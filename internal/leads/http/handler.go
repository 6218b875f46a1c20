package http

import (
	"go.uber.org/zap"

	"github.com/engineers-planet/site/internal/leads/service"
	"github.com/engineers-planet/site/internal/site"
)

// Handler serves the landing page, its form posts and the JSON API.
type Handler struct {
	forms    *service.Forms
	renderer *site.Renderer
	logger   *zap.Logger

	version        string
	maxUploadBytes int64
	secureCookies  bool
}

type Options struct {
	Version        string
	MaxUploadBytes int64
	SecureCookies  bool
}

func New(forms *service.Forms, renderer *site.Renderer, logger *zap.Logger, opts Options) *Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	if opts.MaxUploadBytes <= 0 {
		opts.MaxUploadBytes = 64 << 20
	}
	return &Handler{
		forms:          forms,
		renderer:       renderer,
		logger:         logger,
		version:        opts.Version,
		maxUploadBytes: opts.MaxUploadBytes,
		secureCookies:  opts.SecureCookies,
	}
}
