package domain

import (
	"fmt"
	"path/filepath"
	"strings"
)

// UploadMode says how many files a form takes.
type UploadMode int

const (
	UploadNone UploadMode = iota
	UploadSingle
	UploadMultiple
)

// UploadPolicy describes the file input of a form.
type UploadPolicy struct {
	Mode       UploadMode
	Field      string   // multipart field name
	Extensions []string // lower case, with dot
	MaxBytes   int64
	Hint       string
}

const mb = 1 << 20

var (
	CVPolicy = UploadPolicy{
		Mode:       UploadSingle,
		Field:      "cv",
		Extensions: []string{".pdf", ".doc", ".docx"},
		MaxBytes:   5 * mb,
		Hint:       "PDF, DOC, DOCX (max 5MB)",
	}
	AttachmentPolicy = UploadPolicy{
		Mode:       UploadMultiple,
		Field:      "attachments",
		Extensions: []string{".pdf", ".doc", ".docx", ".txt", ".png", ".jpg", ".jpeg", ".zip"},
		MaxBytes:   10 * mb,
		Hint:       "PDF, DOC, Images, ZIP (max 10MB each)",
	}
)

// Accept renders the extensions for an <input accept> attribute.
func (p UploadPolicy) Accept() string {
	return strings.Join(p.Extensions, ",")
}

// Check validates the selected files against the policy.
func (p UploadPolicy) Check(files []File) []FieldError {
	var errs []FieldError
	switch p.Mode {
	case UploadNone:
		if len(files) > 0 {
			return []FieldError{{Field: "files", Message: "This form does not accept files"}}
		}
		return nil
	case UploadSingle:
		if len(files) > 1 {
			errs = append(errs, FieldError{Field: p.Field, Message: "Only one file can be uploaded"})
		}
	}

	for _, f := range files {
		ext := strings.ToLower(filepath.Ext(f.Name))
		if !p.allowed(ext) {
			errs = append(errs, FieldError{
				Field:   p.Field,
				Message: fmt.Sprintf("%s: file type not allowed (%s)", f.Name, p.Hint),
			})
			continue
		}
		if p.MaxBytes > 0 && f.Size > p.MaxBytes {
			errs = append(errs, FieldError{
				Field:   p.Field,
				Message: fmt.Sprintf("%s: file too large (%s)", f.Name, p.Hint),
			})
		}
	}
	return errs
}

func (p UploadPolicy) allowed(ext string) bool {
	if len(p.Extensions) == 0 {
		return true
	}
	for _, e := range p.Extensions {
		if e == ext {
			return true
		}
	}
	return false
}
