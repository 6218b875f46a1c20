package http

import (
	"encoding/base64"
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/engineers-planet/site/internal/leads/service"
	"github.com/engineers-planet/site/internal/site"
)

const (
	visitorCookie = "ep_visitor"
	flashCookie   = "ep_flash"

	visitorMaxAge = 60 * 60 * 24 * 365
)

// visitorID returns the visitor's id, issuing a new cookie when there is none.
// Each visitor gets its own instance of every form.
func (h *Handler) visitorID(c *gin.Context) string {
	if id := c.GetString(visitorCookie); id != "" {
		return id
	}
	if v, err := c.Cookie(visitorCookie); err == nil {
		if _, err := uuid.Parse(v); err == nil {
			c.Set(visitorCookie, v)
			return v
		}
	}
	id := uuid.NewString()
	h.setCookie(c, visitorCookie, id, visitorMaxAge)
	c.Set(visitorCookie, id)
	return id
}

func (h *Handler) setCookie(c *gin.Context, name, value string, maxAge int) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(name, value, maxAge, "/", "", h.secureCookies, true)
}

// setFlash stores toasts to show on the next page view.
func (h *Handler) setFlash(c *gin.Context, notes []service.Notification) {
	if len(notes) == 0 {
		return
	}
	data, err := json.Marshal(toasts(notes))
	if err != nil {
		return
	}
	h.setCookie(c, flashCookie, base64.RawURLEncoding.EncodeToString(data), 60)
}

// takeFlash reads and clears the pending toasts.
func (h *Handler) takeFlash(c *gin.Context) []site.Toast {
	v, err := c.Cookie(flashCookie)
	if err != nil || v == "" {
		return nil
	}
	h.setCookie(c, flashCookie, "", -1)

	data, err := base64.RawURLEncoding.DecodeString(v)
	if err != nil {
		return nil
	}
	var out []site.Toast
	if err := json.Unmarshal(data, &out); err != nil {
		return nil
	}
	return out
}

func toasts(notes []service.Notification) []site.Toast {
	out := make([]site.Toast, 0, len(notes))
	for _, n := range notes {
		out = append(out, site.Toast{Level: string(n.Level), Message: n.Message})
	}
	return out
}
