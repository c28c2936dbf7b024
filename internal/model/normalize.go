package model

import (
	"strings"

	"github.com/google/uuid"
)

// InputError reports a request precondition violation. It is the only
// failure a caller of the generation pipeline ever sees.
type InputError struct {
	// Field names the precondition that failed, when a single field is at
	// fault. Reason overrides the default message for shape-level failures.
	Field  string
	Reason string
}

func (e *InputError) Error() string {
	if e.Reason != "" {
		return e.Reason
	}
	return "required field missing or empty: " + e.Field
}

// SplitList splits a comma-separated string into trimmed, non-empty
// tokens. Order and duplicates are preserved; the operation is idempotent
// over its own joined output.
func SplitList(s string) []string {
	var out []string
	for _, tok := range strings.Split(s, ",") {
		tok = strings.TrimSpace(tok)
		if tok != "" {
			out = append(out, tok)
		}
	}
	return out
}

// Normalize turns the raw form payload into a canonical Record. It fails
// with *InputError when name, email, or skills is empty after trimming;
// everything else is optional. Projects without a name are silently
// dropped, and each kept project gets a request-scoped identifier.
func Normalize(req Request) (*Record, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, &InputError{Field: "name"}
	}
	email := strings.TrimSpace(req.Email)
	if email == "" {
		return nil, &InputError{Field: "email"}
	}
	skills := SplitList(req.Skills)
	if len(skills) == 0 {
		return nil, &InputError{Field: "skills"}
	}

	rec := &Record{
		Name:            name,
		Email:           email,
		Phone:           strings.TrimSpace(req.Phone),
		LinkedIn:        strings.TrimSpace(req.LinkedIn),
		GitHub:          strings.TrimSpace(req.GitHub),
		Twitter:         strings.TrimSpace(req.Twitter),
		Website:         strings.TrimSpace(req.Website),
		Tagline:         strings.TrimSpace(req.Tagline),
		AboutHint:       strings.TrimSpace(req.AboutHint),
		Experience:      strings.TrimSpace(req.Experience),
		ResearchProfile: strings.TrimSpace(req.ResearchProfile),
		Achievements:    strings.TrimSpace(req.Achievements),
		Events:          strings.TrimSpace(req.Events),
		Skills:          skills,
		Languages:       SplitList(req.Languages),
		ProfilePic:      strings.TrimSpace(req.ProfilePic),
		UseAI:           req.UseAI,
		Theme:           ParseTheme(req.Template),
	}

	for _, p := range req.Projects {
		pname := strings.TrimSpace(p.Name)
		if pname == "" {
			continue
		}
		rec.Projects = append(rec.Projects, Project{
			ID:          uuid.NewString(),
			Name:        pname,
			Description: strings.TrimSpace(p.Description),
			Image:       strings.TrimSpace(p.Image),
		})
	}

	return rec, nil
}
