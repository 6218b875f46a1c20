package domain

import (
	"strconv"
	"strings"
)

// EntityKind names the record collections held by the external backend.
type EntityKind string

const (
	KindCompanyInquiry      EntityKind = "CompanyInquiry"
	KindEngineerApplication EntityKind = "EngineerApplication"
	KindProjectSubmission   EntityKind = "ProjectSubmission"
)

// Kinds lists every entity kind, in page order.
var Kinds = []EntityKind{KindCompanyInquiry, KindEngineerApplication, KindProjectSubmission}

// Collection is the snake_case plural used for Firestore collections and SQL tables.
func (k EntityKind) Collection() string {
	switch k {
	case KindCompanyInquiry:
		return "company_inquiries"
	case KindEngineerApplication:
		return "engineer_applications"
	case KindProjectSubmission:
		return "project_submissions"
	}
	return ""
}

// Slug is the short name used in URLs and form ids.
func (k EntityKind) Slug() string {
	switch k {
	case KindCompanyInquiry:
		return "companies"
	case KindEngineerApplication:
		return "engineers"
	case KindProjectSubmission:
		return "projects"
	}
	return ""
}

// KindFromSlug maps "companies", "engineers" or "projects" back to a kind.
func KindFromSlug(slug string) (EntityKind, error) {
	for _, k := range Kinds {
		if k.Slug() == slug {
			return k, nil
		}
	}
	return "", ErrUnknownKind
}

// CompanyInquiry is created by the "For Companies" form.
type CompanyInquiry struct {
	CompanyName           string `json:"company_name" firestore:"company_name" validate:"required,max=200"`
	Email                 string `json:"email" firestore:"email" validate:"required,email,max=255"`
	EngineeringDiscipline string `json:"engineering_discipline" firestore:"engineering_discipline" validate:"required,discipline"`
	Message               string `json:"message,omitempty" firestore:"message" validate:"max=4000"`
}

// EngineerApplication is created by the "For Engineers" form.
type EngineerApplication struct {
	FullName        string `json:"full_name" firestore:"full_name" validate:"required,max=200"`
	Email           string `json:"email" firestore:"email" validate:"required,email,max=255"`
	CountryOfOrigin string `json:"country_of_origin" firestore:"country_of_origin" validate:"required,max=100"`
	Specialization  string `json:"specialization" firestore:"specialization" validate:"required,discipline"`
	YearsExperience int    `json:"years_experience" firestore:"years_experience" validate:"gte=0"`
	LinkedInURL     string `json:"linkedin_url,omitempty" firestore:"linkedin_url" validate:"max=500"`
	CVURL           string `json:"cv_url" firestore:"cv_url"`
}

// ProjectSubmission is created by the project submission form.
type ProjectSubmission struct {
	CompanyName           string   `json:"company_name" firestore:"company_name" validate:"required,max=200"`
	Email                 string   `json:"email" firestore:"email" validate:"required,email,max=255"`
	Phone                 string   `json:"phone,omitempty" firestore:"phone" validate:"max=50"`
	ProjectTitle          string   `json:"project_title" firestore:"project_title" validate:"required,max=300"`
	Abstract              string   `json:"abstract" firestore:"abstract" validate:"required,max=20000"`
	EngineeringDiscipline string   `json:"engineering_discipline" firestore:"engineering_discipline" validate:"required,project_discipline"`
	AttachmentURLs        []string `json:"attachment_urls" firestore:"attachment_urls"`
}

// ParseYearsExperience parses the free text years field. Anything that is not a
// non-negative integer becomes 0.
func ParseYearsExperience(s string) int {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0
	}
	// leading digits only, so "7 years" still reads as 7
	end := 0
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	n, err := strconv.Atoi(s[:end])
	if err != nil || n < 0 {
		return 0
	}
	return n
}
