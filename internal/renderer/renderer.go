package renderer

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"strings"

	"portfolio-generator/internal/model"
)

//go:embed templates/*.tmpl
var templatesFS embed.FS

var tpls = template.Must(template.New("").ParseFS(templatesFS, "templates/*.tmpl"))

// Documents is the result of one render: two complete, self-contained
// HTML5 documents.
type Documents struct {
	PortfolioHTML string
	ResumeHTML    string
}

// FallbackProjectDescription is the literal card text used when neither an
// explicit nor a generated description exists.
const FallbackProjectDescription = "Professional project"

// FallbackAbout builds the about paragraph used when AI is disabled and no
// hint was supplied.
func FallbackAbout(name, firstSkill string) string {
	return fmt.Sprintf("%s is a passionate professional with expertise in %s.", name, firstSkill)
}

type contactLink struct {
	Label    string
	Href     template.URL
	External bool
}

type projectCard struct {
	Name        string
	Description string
	Image       template.URL
}

type documentView struct {
	Name       string
	Tagline    string
	About      string
	ProfilePic template.URL
	CSS        template.CSS
	Contacts   []contactLink

	Research     template.HTML
	Experience   template.HTML
	Achievements template.HTML
	Events       template.HTML
	Skills       []string
	Languages    string
	Projects     []projectCard

	// Contactline is the one-line header summary used by the resume layout.
	ContactLine string
}

// Render produces the portfolio and resume documents for a normalized
// record plus whatever enrichment succeeded. It is deterministic and
// side-effect-free; the record's theme changes presentation only.
func Render(rec *model.Record, enr *model.Enrichment) (Documents, error) {
	view := buildView(rec, enr)

	var portfolio bytes.Buffer
	if err := tpls.ExecuteTemplate(&portfolio, "portfolio.html.tmpl", view); err != nil {
		return Documents{}, fmt.Errorf("render portfolio: %w", err)
	}

	var resume bytes.Buffer
	if err := tpls.ExecuteTemplate(&resume, "resume.html.tmpl", view); err != nil {
		return Documents{}, fmt.Errorf("render resume: %w", err)
	}

	return Documents{PortfolioHTML: portfolio.String(), ResumeHTML: resume.String()}, nil
}

func buildView(rec *model.Record, enr *model.Enrichment) documentView {
	about := rec.AboutHint
	if enr != nil && enr.About != "" {
		about = enr.About
	}
	if about == "" {
		about = FallbackAbout(rec.Name, rec.FirstSkill())
	}

	view := documentView{
		Name:         rec.Name,
		Tagline:      rec.Tagline,
		About:        about,
		ProfilePic:   safeURL(rec.ProfilePic),
		CSS:          buildCSS(themeStyle(rec.Theme)),
		Research:     nl2br(rec.ResearchProfile),
		Experience:   nl2br(rec.Experience),
		Achievements: nl2br(rec.Achievements),
		Events:       nl2br(rec.Events),
		Skills:       rec.Skills,
		Languages:    strings.Join(rec.Languages, ", "),
	}

	// Fixed emission order; absent fields contribute nothing.
	contacts := []struct {
		label, href string
		external    bool
	}{
		{"Email", prefixHref("mailto:", rec.Email), false},
		{"Phone", prefixHref("tel:", rec.Phone), false},
		{"LinkedIn", rec.LinkedIn, true},
		{"GitHub", rec.GitHub, true},
		{"Twitter", rec.Twitter, true},
		{"Website", rec.Website, true},
	}
	for _, c := range contacts {
		if c.href == "" {
			continue
		}
		if href := safeURL(c.href); href != "" {
			view.Contacts = append(view.Contacts, contactLink{Label: c.label, Href: href, External: c.external})
		}
	}

	for _, p := range rec.Projects {
		gen := enr.ProjectFor(p.ID)
		desc := p.Description
		if desc == "" {
			desc = gen.Description
		}
		if desc == "" {
			desc = FallbackProjectDescription
		}
		image := p.Image
		if image == "" {
			image = gen.Image
		}
		view.Projects = append(view.Projects, projectCard{
			Name:        p.Name,
			Description: desc,
			Image:       safeURL(image),
		})
	}

	parts := make([]string, 0, 3)
	if rec.Tagline != "" {
		parts = append(parts, rec.Tagline)
	}
	parts = append(parts, rec.Email)
	if rec.Phone != "" {
		parts = append(parts, rec.Phone)
	}
	view.ContactLine = strings.Join(parts, " | ")

	return view
}

func prefixHref(prefix, value string) string {
	if value == "" {
		return ""
	}
	return prefix + value
}

// nl2br escapes each line of user text and joins them with explicit line
// breaks, so embedded newlines survive the HTML output.
func nl2br(s string) template.HTML {
	if s == "" {
		return ""
	}
	lines := strings.Split(s, "\n")
	esc := make([]string, len(lines))
	for i, line := range lines {
		esc[i] = template.HTMLEscapeString(strings.TrimRight(line, "\r"))
	}
	return template.HTML(strings.Join(esc, "<br>"))
}

// safeURL admits http(s), mailto, tel, image data URIs, and scheme-less
// references. Anything with another explicit scheme is dropped so
// user-controlled links cannot introduce a script-injection path.
func safeURL(s string) template.URL {
	s = strings.TrimSpace(s)
	if s == "" {
		return ""
	}
	lower := strings.ToLower(s)
	for _, prefix := range []string{"http://", "https://", "mailto:", "tel:", "data:image/"} {
		if strings.HasPrefix(lower, prefix) {
			return template.URL(s)
		}
	}
	if !strings.Contains(s, ":") {
		return template.URL(s)
	}
	return ""
}
