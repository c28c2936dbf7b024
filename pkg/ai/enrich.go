package ai

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"
	"time"

	"portfolio-generator/internal/common"
)

// FallbackBio is the deterministic about paragraph used whenever the bio
// capability fails or returns unparseable content.
func FallbackBio(name, firstSkill string) string {
	return fmt.Sprintf("%s is a talented professional with expertise in %s. Passionate about creating impactful solutions and continuous learning.", name, firstSkill)
}

// FallbackDescription is the deterministic project sentence used when the
// description capability cannot reach the completion service.
func FallbackDescription(projectName, firstSkill string) string {
	return fmt.Sprintf("%s is a professional project showcasing expertise in %s.", projectName, firstSkill)
}

// EnhanceText rewrites a narrative field through the completion service.
// The input text must be non-empty and the kind must be one of the known
// sections. On failure the caller keeps the original text; enhancement
// never blanks out content.
func (c *Client) EnhanceText(ctx context.Context, text string, kind SectionKind) (string, error) {
	if strings.TrimSpace(text) == "" {
		return "", &EnrichmentError{Op: "enhance-text", Err: ErrEmptyInput}
	}
	prompt, ok := buildEnhancePrompt(kind, text)
	if !ok {
		return "", &EnrichmentError{Op: "enhance-text", Err: fmt.Errorf("unknown section kind %q", kind)}
	}
	out, err := c.complete(ctx, prompt, 0, 0)
	if err != nil {
		return "", &EnrichmentError{Op: "enhance-text", Err: err}
	}
	return strings.TrimSpace(out), nil
}

// GenerateProjectDescription drafts a one/two sentence project
// description. On upstream failure it returns the deterministic fallback
// sentence so the generation pipeline never stalls on AI.
func (c *Client) GenerateProjectDescription(ctx context.Context, projectName, skillsHint string) (string, error) {
	if strings.TrimSpace(projectName) == "" {
		return "", &EnrichmentError{Op: "project-description", Err: ErrEmptyInput}
	}
	out, err := c.complete(ctx, buildDescriptionPrompt(projectName, skillsHint), 0.7, 150)
	if err != nil {
		common.Logger().Warn("ai: project description failed, using fallback", "project", projectName, "error", err)
		return FallbackDescription(projectName, firstToken(skillsHint)), nil
	}
	return strings.TrimSpace(out), nil
}

// GenerateProjectImage drafts a short visual prompt and encodes it into a
// fetchable image URL. No image bytes are produced; this is URL synthesis.
// On upstream failure it returns an empty reference, never an error that
// blocks generation.
func (c *Client) GenerateProjectImage(ctx context.Context, projectName, description string) (string, error) {
	if strings.TrimSpace(projectName) == "" {
		return "", &EnrichmentError{Op: "project-image", Err: ErrEmptyInput}
	}
	prompt, err := c.complete(ctx, buildImagePrompt(projectName, description), 0.8, 150)
	if err != nil {
		common.Logger().Warn("ai: image prompt failed, skipping image", "project", projectName, "error", err)
		return "", nil
	}
	return c.imageURL(strings.TrimSpace(prompt)), nil
}

func (c *Client) imageURL(prompt string) string {
	return fmt.Sprintf("%s/prompt/%s?width=600&height=400&seed=%d",
		c.imageBase, url.PathEscape(prompt), time.Now().UnixMilli())
}

// GenerateAboutBio asks for a single-field structured response and parses
// it out of the raw completion, which may wrap the payload in commentary.
// Any failure falls back to the deterministic template sentence; the
// returned bio is never empty.
func (c *Client) GenerateAboutBio(ctx context.Context, req BioRequest) (string, error) {
	firstSkill := firstToken(strings.Join(req.Skills, ", "))

	out, err := c.complete(ctx, buildBioPrompt(req), 0.7, 400)
	if err != nil {
		common.Logger().Warn("ai: bio generation failed, using fallback", "error", err)
		return FallbackBio(req.Name, firstSkill), nil
	}

	payload, ok := extractJSONObject(out)
	if !ok {
		common.Logger().Warn("ai: bio response held no structured payload, using fallback")
		return FallbackBio(req.Name, firstSkill), nil
	}
	var parsed struct {
		About string `json:"about"`
	}
	if err := json.Unmarshal([]byte(payload), &parsed); err != nil || strings.TrimSpace(parsed.About) == "" {
		common.Logger().Warn("ai: bio payload unparseable, using fallback", "error", err)
		return FallbackBio(req.Name, firstSkill), nil
	}
	return strings.TrimSpace(parsed.About), nil
}

// extractJSONObject scans for the outermost object in a completion that
// may surround its JSON with prose or code fences.
func extractJSONObject(s string) (string, bool) {
	start := strings.IndexByte(s, '{')
	end := strings.LastIndexByte(s, '}')
	if start < 0 || end <= start {
		return "", false
	}
	return s[start : end+1], true
}

func firstToken(commaList string) string {
	for _, tok := range strings.Split(commaList, ",") {
		if tok = strings.TrimSpace(tok); tok != "" {
			return tok
		}
	}
	return "technology"
}
