package http

import (
	"mime"
	"net/http"
	"path"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/engineers-planet/site/internal/storage/memory"
)

// RegisterUploads serves files held by the in-memory store under /uploads.
// Files are always sent as downloads, typed by their extension; the type the
// uploader claimed is ignored.
func RegisterUploads(r gin.IRouter, store *memory.Store) {
	r.GET("/uploads/*key", func(c *gin.Context) {
		key := "uploads/" + strings.TrimPrefix(c.Param("key"), "/")
		obj, ok := store.Object(key)
		if !ok {
			c.Status(http.StatusNotFound)
			return
		}

		c.Header("X-Content-Type-Options", "nosniff")
		c.Header("Content-Disposition", mime.FormatMediaType("attachment", map[string]string{"filename": path.Base(key)}))
		c.Data(http.StatusOK, servedType(key), obj.Data)
	})
}

func servedType(key string) string {
	if t := mime.TypeByExtension(strings.ToLower(path.Ext(key))); t != "" {
		return t
	}
	return "application/octet-stream"
}
