package model

// Request is the raw generation payload as submitted by the form. Field
// names mirror the public API contract.
type Request struct {
	Name            string         `json:"name"`
	Email           string         `json:"email"`
	Phone           string         `json:"phone,omitempty"`
	LinkedIn        string         `json:"linkedin,omitempty"`
	GitHub          string         `json:"github,omitempty"`
	Twitter         string         `json:"twitter,omitempty"`
	Website         string         `json:"website,omitempty"`
	Tagline         string         `json:"tagline,omitempty"`
	AboutHint       string         `json:"aboutHint,omitempty"`
	Skills          string         `json:"skills"`
	Experience      string         `json:"experience,omitempty"`
	ResearchProfile string         `json:"researchProfile,omitempty"`
	Achievements    string         `json:"achievements,omitempty"`
	Events          string         `json:"events,omitempty"`
	Languages       string         `json:"languages,omitempty"`
	ProfilePic      string         `json:"profilePic,omitempty"`
	UseAI           bool           `json:"useAI"`
	Template        string         `json:"template,omitempty"`
	Projects        []ProjectInput `json:"projects,omitempty"`
}

type ProjectInput struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Image       string `json:"image,omitempty"`
}

// Theme selects one of the fixed visual presentations. Unrecognized values
// fall back to ModernGlass; the conditional-section logic is identical
// across themes.
type Theme string

const (
	ThemeModernGlass      Theme = "Modern Glass"
	ThemeMinimalDark      Theme = "Minimal Dark"
	ThemeCreativeGradient Theme = "Creative Gradient"
)

// ParseTheme maps a template-name string onto a Theme, defaulting to
// ModernGlass for anything it does not recognize.
func ParseTheme(s string) Theme {
	switch s {
	case string(ThemeMinimalDark):
		return ThemeMinimalDark
	case string(ThemeCreativeGradient):
		return ThemeCreativeGradient
	default:
		return ThemeModernGlass
	}
}

// Record is the canonical portfolio record built once per generation
// request. It lives only for the duration of that request.
type Record struct {
	Name            string
	Email           string
	Phone           string
	LinkedIn        string
	GitHub          string
	Twitter         string
	Website         string
	Tagline         string
	AboutHint       string
	Experience      string
	ResearchProfile string
	Achievements    string
	Events          string
	Skills          []string
	Languages       []string
	ProfilePic      string
	UseAI           bool
	Theme           Theme
	Projects        []Project
}

// Project is a normalized project entry. ID is assigned during
// normalization and is stable only within a single request.
type Project struct {
	ID          string
	Name        string
	Description string
	Image       string
}

// FirstSkill returns the first normalized skill, or "technology" when the
// list is empty, matching the deterministic fallback sentences.
func (r *Record) FirstSkill() string {
	if len(r.Skills) > 0 {
		return r.Skills[0]
	}
	return "technology"
}

// Enrichment holds the optional AI-generated additions for one request. It
// is never persisted.
type Enrichment struct {
	About    string
	Projects map[string]ProjectEnrichment
}

// ProjectEnrichment carries the generated description and image reference
// for a single project, keyed by the project's request-scoped ID.
type ProjectEnrichment struct {
	Description string
	Image       string
}

// ProjectFor returns the enrichment recorded for the given project ID, if
// any.
func (e *Enrichment) ProjectFor(id string) ProjectEnrichment {
	if e == nil || e.Projects == nil {
		return ProjectEnrichment{}
	}
	return e.Projects[id]
}
