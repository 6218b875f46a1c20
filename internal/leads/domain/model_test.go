package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseYearsExperience(t *testing.T) {
	tests := []struct {
		in   string
		want int
	}{
		{"", 0},
		{"abc", 0},
		{"7", 7},
		{" 12 ", 12},
		{"7 years", 7},
		{"-3", 0},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseYearsExperience(tt.in))
		})
	}
}

func TestEntityKindNames(t *testing.T) {
	assert.Equal(t, "company_inquiries", KindCompanyInquiry.Collection())
	assert.Equal(t, "engineer_applications", KindEngineerApplication.Collection())
	assert.Equal(t, "project_submissions", KindProjectSubmission.Collection())
	assert.Empty(t, EntityKind("Other").Collection())

	for _, k := range Kinds {
		got, err := KindFromSlug(k.Slug())
		require.NoError(t, err)
		assert.Equal(t, k, got)
	}

	_, err := KindFromSlug("admins")
	assert.ErrorIs(t, err, ErrUnknownKind)
}

func TestDisciplines(t *testing.T) {
	assert.Len(t, Disciplines, 6)
	assert.Len(t, ProjectDisciplines, 7)
	assert.Equal(t, MultipleDisciplines, ProjectDisciplines[6])

	assert.True(t, IsDiscipline("Robotics"))
	assert.False(t, IsDiscipline("Multiple Disciplines"))
	assert.True(t, IsProjectDiscipline("Multiple Disciplines"))
	assert.False(t, IsProjectDiscipline("Chemical"))
}

func TestFormID(t *testing.T) {
	assert.Equal(t, "v1:engineers", FormID("v1", KindEngineerApplication))
}

func TestValidationErrorMessage(t *testing.T) {
	err := &ValidationError{Fields: []FieldError{
		{Field: "email", Message: "Invalid email format"},
	}}
	assert.Equal(t, "Invalid email format", err.Message("email"))
	assert.Empty(t, err.Message("company_name"))
	assert.Contains(t, err.Error(), "email: Invalid email format")
}
