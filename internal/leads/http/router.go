package http

import "github.com/gin-gonic/gin"

// RegisterForms attaches the browser form posts under rg (normally /forms).
func (h *Handler) RegisterForms(rg *gin.RouterGroup) {
	rg.POST("/companies", postForm(h, h.forms.Companies))
	rg.POST("/engineers", postForm(h, h.forms.Engineers))
	rg.POST("/projects", postForm(h, h.forms.Projects))
}

// RegisterAPI attaches the JSON submission endpoints.
func (h *Handler) RegisterAPI(rg *gin.RouterGroup) {
	rg.POST("/company-inquiries", postAPI(h, h.forms.Companies))
	rg.POST("/engineer-applications", postAPI(h, h.forms.Engineers))
	rg.POST("/project-submissions", postAPI(h, h.forms.Projects))
}

// RegisterState attaches the read-only endpoints.
func (h *Handler) RegisterState(rg *gin.RouterGroup) {
	rg.GET("/forms/:kind/state", h.state)
	rg.GET("/config", h.config)
}
