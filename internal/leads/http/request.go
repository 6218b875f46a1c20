package http

import (
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/engineers-planet/site/internal/leads/domain"
	"github.com/engineers-planet/site/internal/leads/service"
)

// readFields collects the named fields from a form or JSON body.
func readFields(c *gin.Context, names []string) (service.Fields, error) {
	fields := service.Fields{}
	if strings.HasPrefix(c.ContentType(), "application/json") {
		var body map[string]any
		if err := json.NewDecoder(c.Request.Body).Decode(&body); err != nil && err != io.EOF {
			return nil, fmt.Errorf("invalid JSON body: %w", err)
		}
		for _, name := range names {
			switch v := body[name].(type) {
			case nil:
			case string:
				fields[name] = v
			default:
				fields[name] = fmt.Sprint(v)
			}
		}
		return fields, nil
	}

	for _, name := range names {
		fields[name] = c.PostForm(name)
	}
	return fields, nil
}

// readFiles returns the files posted under field, in the order they were sent.
func readFiles(c *gin.Context, field string) ([]domain.File, error) {
	if field == "" || !strings.HasPrefix(c.ContentType(), "multipart/") {
		return nil, nil
	}
	form, err := c.MultipartForm()
	if err != nil {
		return nil, fmt.Errorf("invalid multipart body: %w", err)
	}

	headers := form.File[field]
	files := make([]domain.File, 0, len(headers))
	for _, fh := range headers {
		if fh.Filename == "" && fh.Size == 0 {
			continue // empty file input
		}
		files = append(files, fileFromHeader(fh))
	}
	return files, nil
}

func fileFromHeader(fh *multipart.FileHeader) domain.File {
	return domain.File{
		Name:        fh.Filename,
		Size:        fh.Size,
		ContentType: fh.Header.Get("Content-Type"),
		Open: func() (io.ReadCloser, error) {
			return fh.Open()
		},
	}
}
