package site

import "github.com/engineers-planet/site/internal/leads/domain"

const BrandName = "Engineers Planet"

type Stat struct {
	Value string
	Label string
}

type CTA struct {
	Label  string
	Anchor string
	Style  string // "primary" or "outline"
}

type Hero struct {
	Headline    string
	Highlight   string
	Tagline     string
	Location    string
	CTAs        []CTA
	Stats       []Stat
	ScrollHint  string
	ScrollToRef string
}

type Profile struct {
	Name      string
	Role      string
	ImageURL  string
	Bio       string
	Focus     string
	Strengths []string
}

type About struct {
	Paragraphs []string
	Profiles   []Profile
	Mission    string
	MissionTag string
}

type Step struct {
	Title       string
	Description string
}

type Card struct {
	Title string
	Desc  string
}

type Testimonial struct {
	Quote    string
	Name     string
	Role     string
	ImageURL string
}

type Companies struct {
	Steps       []Step
	Benefits    []Card
	Trusted     []string
	Disciplines []domain.Discipline
}

type Engineers struct {
	Disciplines []domain.Discipline
	Benefits    []Card
	Testimonial Testimonial
}

type Projects struct {
	Disciplines []domain.Discipline
	WhySubmit   []Card
}

type FooterLink struct {
	Label string
	Href  string
}

type Footer struct {
	Blurb   string
	Links   []FooterLink
	Social  []FooterLink
	Contact []string
}

// DefaultHero is the hero copy.
var DefaultHero = Hero{
	Headline:  "Connecting Exceptional Engineers",
	Highlight: "with Italian Innovation",
	Tagline:   "We vet, place and support international engineering talent.",
	Location:  "Based in Milan, connecting the world's best talent with Italy's leading companies.",
	CTAs: []CTA{
		{Label: "I'm Hiring", Anchor: "companies", Style: "primary"},
		{Label: "I'm an Engineer", Anchor: "engineers", Style: "outline"},
		{Label: "Submit a Project", Anchor: "projects", Style: "primary"},
	},
	Stats: []Stat{
		{Value: "500+", Label: "Engineers Placed"},
		{Value: "150+", Label: "Partner Companies"},
		{Value: "98%", Label: "Success Rate"},
	},
	ScrollToRef: "about",
}

var DefaultAbout = About{
	Paragraphs: []string{
		"Working in Italy means joining one of Europe's most vibrant engineering ecosystems, from automotive and aerospace to automation and renewable energy.",
		"We combine engineering expertise with cultural insight so that every placement works for the engineer and for the company.",
	},
	Profiles: []Profile{
		{
			Name:      "Technical Director",
			Role:      "Electronic Engineer & Co-Founder",
			Bio:       "With over 15 years in electronic engineering and semiconductor design, our Technical Director brings unparalleled expertise in vetting engineering talent.",
			Focus:     "Technical Vetting & Skill Verification",
			Strengths: []string{"Expert in technical assessments", "Deep industry connections", "Engineering-first approach"},
		},
		{
			Name:      "Maria Letizia Somma",
			Role:      "Head of Communications & Co-Founder",
			Bio:       "Doctor Maria Letizia Somma is a multilingual HR Manager and Engineering Head Hunter with a top-honors degree in Foreign Languages, combining international experience with technical expertise.",
			Focus:     "Cultural Integration & Communications",
			Strengths: []string{"Media & PR expertise", "Soft skills coaching", "Cultural liaison services"},
		},
	},
	MissionTag: "Our Mission",
	Mission:    "To bridge the gap between global engineering talent and Italian industry, creating lasting partnerships built on trust and technical excellence.",
}

var DefaultCompanies = Companies{
	Steps: []Step{
		{Title: "Technical Screening", Description: "Rigorous assessment of technical skills by our engineering team, including practical problem-solving tests."},
		{Title: "Credential Verification", Description: "Complete verification of educational background, certifications, and professional experience."},
		{Title: "Soft Skills Assessment", Description: "Evaluation of communication abilities, cultural adaptability, and team collaboration potential."},
		{Title: "Perfect Match", Description: "Strategic matching based on technical requirements, company culture, and long-term fit."},
	},
	Benefits: []Card{
		{Title: "Pre-Vetted Excellence", Desc: "Every candidate undergoes rigorous technical testing by our engineering team."},
		{Title: "Reduced Hiring Time", Desc: "Average time-to-hire of just 3 weeks compared to industry average of 8+ weeks."},
		{Title: "Cultural Integration Support", Desc: "We provide ongoing support to ensure smooth onboarding and cultural adaptation."},
	},
	Trusted:     []string{"Pirelli", "Leonardo", "Fiat", "Luxottica"},
	Disciplines: domain.Disciplines,
}

var DefaultEngineers = Engineers{
	Disciplines: domain.Disciplines,
	Benefits: []Card{
		{Title: "Work in Italy", Desc: "Join innovative companies in Milan, Turin, and beyond"},
		{Title: "Career Growth", Desc: "Access top-tier positions with competitive packages"},
		{Title: "Skill Development", Desc: "Continuous learning and professional development"},
		{Title: "Cultural Support", Desc: "Comprehensive relocation and integration assistance"},
	},
	Testimonial: Testimonial{
		Quote:    "Engineers Planet made my transition to Italy seamless. From technical interviews to cultural guidance, they supported me at every step.",
		Name:     "Carlos M.",
		Role:     "Electronic Engineer, now at Pirelli",
		ImageURL: "https://images.unsplash.com/photo-1507003211169-0a1dd7228f2d?w=100&h=100&fit=crop&crop=face",
	},
}

var DefaultProjects = Projects{
	Disciplines: domain.ProjectDisciplines,
	WhySubmit: []Card{
		{Title: "Fast Response", Desc: "Get feedback within 24 hours"},
		{Title: "Expert Matching", Desc: "We connect you with perfectly suited engineers"},
		{Title: "Full Support", Desc: "From vetting to onboarding and beyond"},
	},
}

var DefaultFooter = Footer{
	Blurb: "Connecting exceptional engineering talent with Italy's leading companies.",
	Links: []FooterLink{
		{Label: "About", Href: "#about"},
		{Label: "For Companies", Href: "#companies"},
		{Label: "For Engineers", Href: "#engineers"},
		{Label: "Submit a Project", Href: "#projects"},
	},
	Social: []FooterLink{
		{Label: "LinkedIn", Href: "#"},
		{Label: "Twitter", Href: "#"},
		{Label: "Instagram", Href: "#"},
	},
	Contact: []string{"Milan, Italy", "info@engineersplanet.it"},
}

// FormCopy is the fixed text around one form.
type FormCopy struct {
	Title        string
	SubmitLabel  string
	BusyLabel    string
	ConfirmTitle string
	ConfirmText  string
}

var FormCopies = map[domain.EntityKind]FormCopy{
	domain.KindCompanyInquiry: {
		Title:        "Request Engineers",
		SubmitLabel:  "Submit Request",
		BusyLabel:    "Submitting...",
		ConfirmTitle: "Request Submitted!",
		ConfirmText:  "Our team will contact you within 24 hours.",
	},
	domain.KindEngineerApplication: {
		Title:        "Apply Now",
		SubmitLabel:  "Submit Application",
		BusyLabel:    "Submitting...",
		ConfirmTitle: "Application Submitted!",
		ConfirmText:  "We'll review your profile and get back to you soon.",
	},
	domain.KindProjectSubmission: {
		Title:        "Project Details",
		SubmitLabel:  "Submit Project",
		BusyLabel:    "Submitting Project...",
		ConfirmTitle: "Project Submitted!",
		ConfirmText:  "Our team will review your project and contact you within 24 hours.",
	},
}
