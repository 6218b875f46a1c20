package postgres

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/engineers-planet/site/config"
	"github.com/engineers-planet/site/internal/leads/domain"
)

func setupRecordStore(t *testing.T) (*RecordStore, sqlmock.Sqlmock, *sql.DB) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)

	return NewRecordStore(db), mock, db
}

func TestRecordStore_Create(t *testing.T) {
	store, mock, db := setupRecordStore(t)
	defer db.Close()
	ctx := context.Background()

	t.Run("company inquiry without message", func(t *testing.T) {
		mock.ExpectQuery(`INSERT INTO company_inquiries`).
			WithArgs(
				sqlmock.AnyArg(), // id (UUID)
				"Acme",
				"hr@acme.it",
				"Civil",
				nil, // message
			).
			WillReturnRows(sqlmock.NewRows([]string{"created_at"}).AddRow(time.Now()))

		id, err := store.Create(ctx, domain.KindCompanyInquiry, domain.CompanyInquiry{
			CompanyName:           "Acme",
			Email:                 "hr@acme.it",
			EngineeringDiscipline: "Civil",
		})
		require.NoError(t, err)
		assert.Len(t, id, 36)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("engineer application", func(t *testing.T) {
		mock.ExpectQuery(`INSERT INTO engineer_applications`).
			WithArgs(
				sqlmock.AnyArg(),
				"Ana Souza",
				"ana@example.com",
				"Brazil",
				"Software",
				int64(5),
				"https://linkedin.com/in/ana",
				"https://files.test/cv.pdf",
			).
			WillReturnRows(sqlmock.NewRows([]string{"created_at"}).AddRow(time.Now()))

		_, err := store.Create(ctx, domain.KindEngineerApplication, domain.EngineerApplication{
			FullName:        "Ana Souza",
			Email:           "ana@example.com",
			CountryOfOrigin: "Brazil",
			Specialization:  "Software",
			YearsExperience: 5,
			LinkedInURL:     "https://linkedin.com/in/ana",
			CVURL:           "https://files.test/cv.pdf",
		})
		require.NoError(t, err)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("project submission", func(t *testing.T) {
		mock.ExpectQuery(`INSERT INTO project_submissions`).
			WithArgs(
				sqlmock.AnyArg(),
				"Acme",
				"pm@acme.it",
				nil, // phone
				"Line automation",
				"Automate the line.",
				"Multiple Disciplines",
				sqlmock.AnyArg(), // attachment_urls TEXT[]
			).
			WillReturnRows(sqlmock.NewRows([]string{"created_at"}).AddRow(time.Now()))

		_, err := store.Create(ctx, domain.KindProjectSubmission, domain.ProjectSubmission{
			CompanyName:           "Acme",
			Email:                 "pm@acme.it",
			ProjectTitle:          "Line automation",
			Abstract:              "Automate the line.",
			EngineeringDiscipline: "Multiple Disciplines",
		})
		require.NoError(t, err)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("wraps database errors", func(t *testing.T) {
		mock.ExpectQuery(`INSERT INTO company_inquiries`).
			WillReturnError(errors.New("connection reset"))

		_, err := store.Create(ctx, domain.KindCompanyInquiry, domain.CompanyInquiry{CompanyName: "Acme"})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "company_inquiries")
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("rejects unknown payloads", func(t *testing.T) {
		_, err := store.Create(ctx, domain.KindCompanyInquiry, struct{}{})
		assert.ErrorIs(t, err, domain.ErrUnknownKind)

		_, err = store.Create(ctx, domain.EntityKind("Other"), domain.CompanyInquiry{})
		assert.ErrorIs(t, err, domain.ErrUnknownKind)
	})
}

func TestMigrate(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectExec(`CREATE TABLE IF NOT EXISTS company_inquiries`).WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec(`CREATE TABLE IF NOT EXISTS engineer_applications`).WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec(`CREATE TABLE IF NOT EXISTS project_submissions`).WillReturnResult(sqlmock.NewResult(0, 0))

	require.NoError(t, Migrate(context.Background(), db))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestDSN(t *testing.T) {
	dsn := DSN(&config.DatabaseConfig{Host: "db", Port: 5432, User: "u", Password: "p", Name: "site"})
	assert.Equal(t, "host=db port=5432 user=u password=p dbname=site sslmode=disable", dsn)
}
