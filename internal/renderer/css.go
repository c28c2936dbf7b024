package renderer

import (
	"html/template"
	"strings"
	texttemplate "text/template"
)

// The portfolio stylesheet is one body of CSS filled in from a theme's
// style values. Keeping a single sheet guarantees the themes cannot drift
// structurally.
const portfolioCSS = `
    * {
      margin: 0;
      padding: 0;
      box-sizing: border-box;
    }

    body {
      font-family: {{.FontFamily}};
      background: {{.PageBackground}};
      color: {{.PageColor}};
      line-height: 1.6;
    }

    .container {
      max-width: 1200px;
      margin: 0 auto;
      padding: 40px 20px;
    }

    header, section {
      background: {{.CardBackground}};
      {{if .CardBlur}}backdrop-filter: blur(10px);
      {{end}}border: {{.CardBorder}};
      border-radius: 20px;
      padding: 40px;
      margin-bottom: 30px;
      box-shadow: {{.CardShadow}};
    }

    header {
      padding: 50px;
      text-align: center;
    }

    .profile-pic {
      width: 160px;
      height: 160px;
      border-radius: 50%;
      margin: 0 auto 25px;
      object-fit: cover;
      border: 5px solid {{.Accent}};
    }

    h1 {
      color: {{.HeadingColor}};
      font-size: 3em;
      margin-bottom: 10px;
    }

    .tagline {
      color: {{.TaglineColor}};
      font-size: 1.4em;
      font-weight: 600;
      margin-bottom: 20px;
    }

    .about {
      color: {{.BodyColor}};
      font-size: 1.15em;
      margin-bottom: 25px;
      line-height: 1.9;
      max-width: 700px;
      margin-left: auto;
      margin-right: auto;
    }

    .contact-links {
      display: flex;
      justify-content: center;
      flex-wrap: wrap;
      gap: 12px;
      margin-top: 25px;
    }

    .contact-link {
      display: inline-block;
      padding: 12px 24px;
      background: {{.LinkBackground}};
      color: {{.LinkColor}};
      text-decoration: none;
      border-radius: 30px;
      font-size: 0.95em;
      font-weight: 500;
    }

    h2 {
      color: {{.HeadingColor}};
      font-size: 2em;
      margin-bottom: 25px;
      padding-bottom: 10px;
      border-bottom: 3px solid;
      border-image: {{.AccentGradient}} 1;
    }

    section p {
      color: {{.BodyColor}};
    }

    .skills {
      display: flex;
      flex-wrap: wrap;
      gap: 12px;
    }

    .skill {
      background: {{.TagBackground}};
      color: {{.TagColor}};
      padding: 10px 22px;
      border-radius: 25px;
      font-size: 0.95em;
      font-weight: 600;
    }

    .projects {
      display: grid;
      grid-template-columns: repeat(auto-fit, minmax(320px, 1fr));
      gap: 25px;
    }

    .project-card {
      border: 2px solid {{.Accent}};
      border-radius: 15px;
      padding: 25px;
    }

    .project-card h3 {
      color: {{.HeadingColor}};
      margin-bottom: 10px;
    }

    .project-image {
      width: 100%;
      height: 180px;
      object-fit: cover;
      border-radius: 10px;
      margin-bottom: 15px;
    }

    footer {
      text-align: center;
      padding: 20px;
      color: {{.FooterColor}};
    }
`

var cssTpl = texttemplate.Must(texttemplate.New("css").Parse(portfolioCSS))

func buildCSS(st style) template.CSS {
	var b strings.Builder
	if err := cssTpl.Execute(&b, st); err != nil {
		// the template is static and the style struct has no failing paths
		panic(err)
	}
	return template.CSS(b.String())
}
