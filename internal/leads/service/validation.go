package service

import (
	"errors"
	"reflect"
	"strings"

	"github.com/engineers-planet/site/internal/leads/domain"
	"github.com/go-playground/validator/v10"
)

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(jsonFieldName)
	_ = v.RegisterValidation("discipline", func(fl validator.FieldLevel) bool {
		return domain.IsDiscipline(fl.Field().String())
	})
	_ = v.RegisterValidation("project_discipline", func(fl validator.FieldLevel) bool {
		return domain.IsProjectDiscipline(fl.Field().String())
	})
	return v
}

// validatePayload turns validator errors into a domain.ValidationError.
func validatePayload(v *validator.Validate, payload any) error {
	err := v.Struct(payload)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}

	out := &domain.ValidationError{}
	for _, fe := range verrs {
		out.Fields = append(out.Fields, domain.FieldError{
			Field:   fe.Field(),
			Message: errorMessage(fe),
		})
	}
	return out
}

func errorMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "This field is required"
	case "email":
		return "Invalid email format"
	case "discipline", "project_discipline":
		return "Select one of the listed disciplines"
	case "max":
		return "Too long"
	case "gte":
		return "Value too small"
	default:
		return "Invalid value"
	}
}

// jsonFieldName reports fields by their wire name, e.g. company_name.
func jsonFieldName(f reflect.StructField) string {
	name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
	if name == "" || name == "-" {
		return f.Name
	}
	return name
}
