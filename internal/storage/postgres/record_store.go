package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/engineers-planet/site/internal/leads/domain"
	"github.com/google/uuid"
	"github.com/lib/pq"
)

// RecordStore writes submission records to Postgres. It has no read path.
type RecordStore struct {
	db *sql.DB
}

func NewRecordStore(db *sql.DB) *RecordStore {
	return &RecordStore{db: db}
}

// Create inserts payload into the table of kind and returns the new id.
func (r *RecordStore) Create(ctx context.Context, kind domain.EntityKind, payload any) (string, error) {
	if kind.Collection() == "" {
		return "", domain.ErrUnknownKind
	}
	id := uuid.New().String()

	var (
		query string
		args  []any
	)
	switch p := payload.(type) {
	case domain.CompanyInquiry:
		query = `
			INSERT INTO company_inquiries (id, company_name, email, engineering_discipline, message)
			VALUES ($1, $2, $3, $4, $5)
			RETURNING created_at
		`
		args = []any{id, p.CompanyName, p.Email, p.EngineeringDiscipline, nullString(p.Message)}
	case domain.EngineerApplication:
		query = `
			INSERT INTO engineer_applications (id, full_name, email, country_of_origin, specialization,
			                                   years_experience, linkedin_url, cv_url)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
			RETURNING created_at
		`
		args = []any{id, p.FullName, p.Email, p.CountryOfOrigin, p.Specialization,
			p.YearsExperience, nullString(p.LinkedInURL), p.CVURL}
	case domain.ProjectSubmission:
		query = `
			INSERT INTO project_submissions (id, company_name, email, phone, project_title, abstract,
			                                 engineering_discipline, attachment_urls)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
			RETURNING created_at
		`
		urls := p.AttachmentURLs
		if urls == nil {
			urls = []string{}
		}
		args = []any{id, p.CompanyName, p.Email, nullString(p.Phone), p.ProjectTitle, p.Abstract,
			p.EngineeringDiscipline, pq.Array(urls)}
	default:
		return "", fmt.Errorf("%w: %T", domain.ErrUnknownKind, payload)
	}

	var createdAt time.Time
	if err := r.db.QueryRowContext(ctx, query, args...).Scan(&createdAt); err != nil {
		return "", fmt.Errorf("failed to insert %s: %w", kind.Collection(), err)
	}
	return id, nil
}

// Ping reports whether the database answers.
func (r *RecordStore) Ping(ctx context.Context) error {
	return r.db.PingContext(ctx)
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
