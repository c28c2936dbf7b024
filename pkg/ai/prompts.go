package ai

import (
	"fmt"
	"strings"
)

// SectionKind names the narrative field a text enhancement targets.
type SectionKind string

const (
	SectionExperience   SectionKind = "experience"
	SectionAchievements SectionKind = "achievements"
	SectionEvents       SectionKind = "events"
)

var enhanceInstructions = map[SectionKind]string{
	SectionExperience:   "Enhance and improve the following work experience description to make it more professional, impactful, and compelling. Add action verbs and quantifiable achievements where possible. Keep it concise but detailed",
	SectionAchievements: "Enhance and improve the following achievements/awards description to make it sound more impressive and professional. Use strong language and highlight the impact. Keep it clear and concise",
	SectionEvents:       "Enhance and improve the following conferences/seminars/trainings description to make it more impactful and professional. Add context about what was learned or how it contributed to professional growth",
}

func buildEnhancePrompt(kind SectionKind, text string) (string, bool) {
	instr, ok := enhanceInstructions[kind]
	if !ok {
		return "", false
	}
	return fmt.Sprintf("%s:\n\n%q\n\nProvide only the enhanced version without any additional explanation.", instr, text), true
}

func buildDescriptionPrompt(projectName, skillsHint string) string {
	if skillsHint == "" {
		skillsHint = "web technologies"
	}
	return fmt.Sprintf("Generate a professional 1-2 sentence description for a project called %q built with %s. Make it concise, impressive, and suitable for a portfolio. Return only the description, no quotes or extra text.", projectName, skillsHint)
}

func buildImagePrompt(projectName, description string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Create a concise, visual prompt for an AI image generator for a project called %q. ", projectName)
	if description != "" {
		fmt.Fprintf(&b, "Project description: %s. ", description)
	}
	b.WriteString("The image should be modern, professional, and represent the project visually. Keep it under 100 words. Start directly with the visual description.")
	return b.String()
}

// BioRequest carries everything the about-bio capability may draw on.
type BioRequest struct {
	Name              string
	Skills            []string
	ProjectNames      []string
	ExperienceExcerpt string
	ResearchExcerpt   string
	PersonalHint      string
}

func buildBioPrompt(req BioRequest) string {
	orNotSpecified := func(s string) string {
		if s == "" {
			return "Not specified"
		}
		return s
	}
	excerpt := req.ExperienceExcerpt
	if len(excerpt) > 200 {
		excerpt = excerpt[:200]
	}
	return fmt.Sprintf(`You are a professional portfolio writer. Create professional portfolio content for:

Name: %s
Skills: %s
Projects: %s
Experience: %s
Research Profile: %s
Personal Note: %s

Generate a JSON response with exactly this structure (no markdown, just JSON):
{
  "about": "A compelling 2-3 sentence professional bio that highlights key strengths and experience"
}`,
		req.Name,
		strings.Join(req.Skills, ", "),
		strings.Join(req.ProjectNames, ", "),
		orNotSpecified(excerpt),
		orNotSpecified(req.ResearchExcerpt),
		orNotSpecified(req.PersonalHint))
}
