package service

import (
	"context"
	"time"

	"github.com/engineers-planet/site/internal/leads/domain"
)

var CompanyInquirySchema = Schema[domain.CompanyInquiry]{
	Kind:   domain.KindCompanyInquiry,
	Fields: []string{"company_name", "email", "engineering_discipline", "message"},
	Upload: domain.UploadPolicy{Mode: domain.UploadNone},
	Build: func(f Fields) domain.CompanyInquiry {
		return domain.CompanyInquiry{
			CompanyName:           f.Get("company_name"),
			Email:                 f.Get("email"),
			EngineeringDiscipline: f.Get("engineering_discipline"),
			Message:               f.Get("message"),
		}
	},
	SuccessMessage: "Thank you! We'll be in touch within 24 hours.",
	FailureMessage: "Failed to send your inquiry. Please try again.",
}

var EngineerApplicationSchema = Schema[domain.EngineerApplication]{
	Kind: domain.KindEngineerApplication,
	Fields: []string{
		"full_name", "email", "country_of_origin", "specialization",
		"years_experience", "linkedin_url",
	},
	Upload: domain.CVPolicy,
	Build: func(f Fields) domain.EngineerApplication {
		return domain.EngineerApplication{
			FullName:        f.Get("full_name"),
			Email:           f.Get("email"),
			CountryOfOrigin: f.Get("country_of_origin"),
			Specialization:  f.Get("specialization"),
			YearsExperience: domain.ParseYearsExperience(f.Get("years_experience")),
			LinkedInURL:     f.Get("linkedin_url"),
		}
	},
	Attach: func(p *domain.EngineerApplication, refs []string) {
		p.CVURL = ""
		if len(refs) > 0 {
			p.CVURL = refs[0]
		}
	},
	SuccessMessage: "Application submitted successfully!",
	FailureMessage: "Failed to submit your application. Please try again.",
}

var ProjectSubmissionSchema = Schema[domain.ProjectSubmission]{
	Kind: domain.KindProjectSubmission,
	Fields: []string{
		"company_name", "email", "phone", "project_title",
		"abstract", "engineering_discipline",
	},
	Upload: domain.AttachmentPolicy,
	Build: func(f Fields) domain.ProjectSubmission {
		return domain.ProjectSubmission{
			CompanyName:           f.Get("company_name"),
			Email:                 f.Get("email"),
			Phone:                 f.Get("phone"),
			ProjectTitle:          f.Get("project_title"),
			Abstract:              f.Get("abstract"),
			EngineeringDiscipline: f.Get("engineering_discipline"),
			AttachmentURLs:        []string{},
		}
	},
	Attach: func(p *domain.ProjectSubmission, refs []string) {
		p.AttachmentURLs = append([]string{}, refs...)
	},
	SuccessMessage: "Project submitted successfully! We'll be in touch soon.",
	FailureMessage: "Failed to submit project. Please try again.",
}

// Forms bundles the three workflows used by the site. They share one state
// store and reset delay.
type Forms struct {
	Companies *Workflow[domain.CompanyInquiry]
	Engineers *Workflow[domain.EngineerApplication]
	Projects  *Workflow[domain.ProjectSubmission]

	states     domain.StateStore
	resetDelay time.Duration
}

func NewForms(deps Deps) *Forms {
	deps = deps.withDefaults()
	return &Forms{
		Companies:  NewWorkflow(CompanyInquirySchema, deps),
		Engineers:  NewWorkflow(EngineerApplicationSchema, deps),
		Projects:   NewWorkflow(ProjectSubmissionSchema, deps),
		states:     deps.States,
		resetDelay: deps.ResetDelay,
	}
}

// Phase reports the phase of the visitor's form of the given kind.
func (f *Forms) Phase(ctx context.Context, visitorID string, kind domain.EntityKind) (domain.Phase, error) {
	return f.states.Phase(ctx, domain.FormID(visitorID, kind))
}

// ResetDelay is how long a submitted form shows its confirmation.
func (f *Forms) ResetDelay() time.Duration {
	return f.resetDelay
}
