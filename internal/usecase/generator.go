package usecase

import (
	"context"
	"strings"
	"sync"

	"portfolio-generator/internal/common"
	"portfolio-generator/internal/model"
	"portfolio-generator/internal/renderer"
	"portfolio-generator/pkg/ai"
)

// Enricher is the subset of AI capabilities the generation pipeline uses.
type Enricher interface {
	GenerateAboutBio(ctx context.Context, req ai.BioRequest) (string, error)
	GenerateProjectDescription(ctx context.Context, projectName, skillsHint string) (string, error)
	GenerateProjectImage(ctx context.Context, projectName, description string) (string, error)
}

// Generator sequences normalization, optional enrichment, and rendering.
// Only a normalization failure is fatal; every enrichment failure degrades
// to the field's deterministic fallback.
type Generator struct {
	enricher    Enricher
	concurrency int
}

func NewGenerator(enricher Enricher, concurrency int) *Generator {
	if concurrency <= 0 {
		concurrency = 4
	}
	return &Generator{enricher: enricher, concurrency: concurrency}
}

// Generate runs the full pipeline for one request and returns both
// documents. The returned error is always a *model.InputError.
func (g *Generator) Generate(ctx context.Context, req model.Request) (renderer.Documents, error) {
	rec, err := model.Normalize(req)
	if err != nil {
		return renderer.Documents{}, err
	}

	enr := &model.Enrichment{Projects: map[string]model.ProjectEnrichment{}}
	if rec.UseAI && g.enricher != nil {
		g.enrich(ctx, rec, enr)
	}

	return renderer.Render(rec, enr)
}

func (g *Generator) enrich(ctx context.Context, rec *model.Record, enr *model.Enrichment) {
	log := common.Logger()

	bio, err := g.enricher.GenerateAboutBio(ctx, ai.BioRequest{
		Name:              rec.Name,
		Skills:            rec.Skills,
		ProjectNames:      projectNames(rec),
		ExperienceExcerpt: rec.Experience,
		ResearchExcerpt:   rec.ResearchProfile,
		PersonalHint:      rec.AboutHint,
	})
	if err != nil || strings.TrimSpace(bio) == "" {
		log.Warn("generator: bio enrichment failed", "error", err)
		bio = ai.FallbackBio(rec.Name, rec.FirstSkill())
	}
	enr.About = bio

	// Per-project calls are independent; run them behind a small semaphore
	// and merge results in input order.
	skillsHint := strings.Join(rec.Skills, ", ")
	results := make([]model.ProjectEnrichment, len(rec.Projects))

	var wg sync.WaitGroup
	sem := make(chan struct{}, g.concurrency)
	for i, p := range rec.Projects {
		if p.Description != "" && p.Image != "" {
			continue
		}
		wg.Add(1)
		go func(i int, p model.Project) {
			defer wg.Done()
			sem <- struct{}{}
			defer func() { <-sem }()

			var gen model.ProjectEnrichment
			if p.Description == "" {
				desc, err := g.enricher.GenerateProjectDescription(ctx, p.Name, skillsHint)
				if err != nil {
					log.Warn("generator: project description enrichment failed", "project", p.Name, "error", err)
				} else {
					gen.Description = desc
				}
			}
			if p.Image == "" {
				desc := p.Description
				if desc == "" {
					desc = gen.Description
				}
				img, err := g.enricher.GenerateProjectImage(ctx, p.Name, desc)
				if err != nil {
					log.Warn("generator: project image enrichment failed", "project", p.Name, "error", err)
				} else {
					gen.Image = img
				}
			}
			results[i] = gen
		}(i, p)
	}
	wg.Wait()

	for i, p := range rec.Projects {
		if results[i] != (model.ProjectEnrichment{}) {
			enr.Projects[p.ID] = results[i]
		}
	}
}

func projectNames(rec *model.Record) []string {
	names := make([]string, 0, len(rec.Projects))
	for _, p := range rec.Projects {
		names = append(names, p.Name)
	}
	return names
}
