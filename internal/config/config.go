package config

import (
	"os"
	"strconv"
)

// Config holds every tunable the server reads from the environment. All
// fields have working defaults except the API keys and the upload
// destination, which must be supplied at deployment time.
type Config struct {
	Port string

	LLM struct {
		BaseURL    string
		APIKey     string
		Model      string
		TimeoutSec int
	}

	// ImageServiceURL is the base of the prompt-to-image URL synthesis
	// service; the generated image reference embeds an URL-encoded prompt.
	ImageServiceURL string

	// EnrichConcurrency caps concurrent outbound enrichment calls during a
	// single generation request.
	EnrichConcurrency int

	Upload struct {
		APIBase    string
		Token      string
		Owner      string
		Repo       string
		Branch     string
		PathPrefix string
	}
}

func Load() *Config {
	cfg := &Config{}

	cfg.Port = getenv("PORT", "3000")

	cfg.LLM.BaseURL = getenv("LLM_BASE_URL", "https://api.groq.com/openai/v1")
	cfg.LLM.APIKey = os.Getenv("LLM_API_KEY")
	cfg.LLM.Model = getenv("LLM_MODEL", "llama-3.3-70b-versatile")
	cfg.LLM.TimeoutSec = getenvInt("LLM_TIMEOUT_SEC", 60)

	cfg.ImageServiceURL = getenv("IMAGE_SERVICE_URL", "https://image.pollinations.ai")

	cfg.EnrichConcurrency = getenvInt("ENRICH_CONCURRENCY", 4)

	cfg.Upload.APIBase = getenv("UPLOAD_GITHUB_API", "https://api.github.com")
	cfg.Upload.Token = os.Getenv("UPLOAD_GITHUB_TOKEN")
	cfg.Upload.Owner = os.Getenv("UPLOAD_GITHUB_OWNER")
	cfg.Upload.Repo = os.Getenv("UPLOAD_GITHUB_REPO")
	cfg.Upload.Branch = getenv("UPLOAD_GITHUB_BRANCH", "main")
	cfg.Upload.PathPrefix = getenv("UPLOAD_PATH_PREFIX", "portfolio/images")

	return cfg
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getenvInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			return n
		}
	}
	return fallback
}
