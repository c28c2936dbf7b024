package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"portfolio-generator/internal/config"
	"portfolio-generator/internal/model"
	"portfolio-generator/internal/usecase"
	"portfolio-generator/pkg/ai"
)

// Offline smoke tool: reads a generation request from a JSON file and
// writes portfolio.html / resume.html next to it. AI enrichment runs only
// when LLM_API_KEY is set and the request asks for it.
func main() {
	if len(os.Args) < 2 {
		fmt.Fprintln(os.Stderr, "usage: test_generator <request.json> [output-dir]")
		os.Exit(1)
	}

	data, err := os.ReadFile(os.Args[1])
	if err != nil {
		fmt.Fprintf(os.Stderr, "read request: %v\n", err)
		os.Exit(1)
	}

	var req model.Request
	if err := json.Unmarshal(data, &req); err != nil {
		fmt.Fprintf(os.Stderr, "parse request: %v\n", err)
		os.Exit(1)
	}

	cfg := config.Load()
	if cfg.LLM.APIKey == "" {
		req.UseAI = false
	}
	generator := usecase.NewGenerator(ai.NewClient(cfg), cfg.EnrichConcurrency)

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	docs, err := generator.Generate(ctx, req)
	if err != nil {
		fmt.Fprintf(os.Stderr, "generation failed: %v\n", err)
		os.Exit(1)
	}

	outDir := "."
	if len(os.Args) > 2 {
		outDir = os.Args[2]
	}
	if err := os.WriteFile(outDir+"/portfolio.html", []byte(docs.PortfolioHTML), 0o644); err != nil {
		fmt.Fprintf(os.Stderr, "write portfolio: %v\n", err)
		os.Exit(1)
	}
	if err := os.WriteFile(outDir+"/resume.html", []byte(docs.ResumeHTML), 0o644); err != nil {
		fmt.Fprintf(os.Stderr, "write resume: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("wrote %s/portfolio.html and %s/resume.html\n", outDir, outDir)
}
