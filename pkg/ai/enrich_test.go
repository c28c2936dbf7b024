package ai

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"portfolio-generator/internal/config"
)

func testClient(t *testing.T, handler http.HandlerFunc) (*Client, *httptest.Server) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	cfg := &config.Config{}
	cfg.LLM.BaseURL = srv.URL
	cfg.LLM.APIKey = "test-key"
	cfg.LLM.Model = "test-model"
	cfg.LLM.TimeoutSec = 5
	cfg.ImageServiceURL = "https://image.example"
	return NewClient(cfg), srv
}

func completionHandler(t *testing.T, content string) http.HandlerFunc {
	t.Helper()
	return func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/chat/completions" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		if got := r.Header.Get("Authorization"); got != "Bearer test-key" {
			t.Errorf("Authorization = %q", got)
		}
		var req chatRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Errorf("request body unparseable: %v", err)
		}
		if req.Model != "test-model" {
			t.Errorf("model = %q", req.Model)
		}
		resp := map[string]interface{}{
			"choices": []map[string]interface{}{
				{"message": map[string]string{"role": "assistant", "content": content}},
			},
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(resp)
	}
}

func failingHandler(w http.ResponseWriter, r *http.Request) {
	http.Error(w, "boom", http.StatusInternalServerError)
}

func TestEnhanceText(t *testing.T) {
	c, _ := testClient(t, completionHandler(t, "  Polished experience text.  "))

	got, err := c.EnhanceText(context.Background(), "raw text", SectionExperience)
	if err != nil {
		t.Fatalf("EnhanceText() error = %v", err)
	}
	if got != "Polished experience text." {
		t.Errorf("EnhanceText() = %q", got)
	}
}

func TestEnhanceTextEmptyInput(t *testing.T) {
	c, _ := testClient(t, completionHandler(t, "unused"))

	_, err := c.EnhanceText(context.Background(), "   ", SectionAchievements)
	if !errors.Is(err, ErrEmptyInput) {
		t.Errorf("error = %v, want ErrEmptyInput", err)
	}
	var enrichErr *EnrichmentError
	if !errors.As(err, &enrichErr) {
		t.Errorf("error type = %T, want *EnrichmentError", err)
	}
}

func TestEnhanceTextUnknownKind(t *testing.T) {
	c, _ := testClient(t, completionHandler(t, "unused"))
	if _, err := c.EnhanceText(context.Background(), "text", SectionKind("poetry")); err == nil {
		t.Error("expected error for unknown section kind")
	}
}

func TestEnhanceTextUpstreamFailure(t *testing.T) {
	c, _ := testClient(t, failingHandler)
	if _, err := c.EnhanceText(context.Background(), "text", SectionEvents); err == nil {
		t.Error("expected error so the caller keeps the original text")
	}
}

func TestGenerateProjectDescription(t *testing.T) {
	c, _ := testClient(t, completionHandler(t, "Tracker keeps tabs on things."))

	got, err := c.GenerateProjectDescription(context.Background(), "Tracker", "Go, Rust")
	if err != nil {
		t.Fatalf("GenerateProjectDescription() error = %v", err)
	}
	if got != "Tracker keeps tabs on things." {
		t.Errorf("description = %q", got)
	}
}

func TestGenerateProjectDescriptionFallback(t *testing.T) {
	c, _ := testClient(t, failingHandler)

	got, err := c.GenerateProjectDescription(context.Background(), "Tracker", "Go, Rust")
	if err != nil {
		t.Fatalf("fallback path must not error, got %v", err)
	}
	want := "Tracker is a professional project showcasing expertise in Go."
	if got != want {
		t.Errorf("fallback = %q, want %q", got, want)
	}
}

func TestGenerateProjectDescriptionRequiresName(t *testing.T) {
	c, _ := testClient(t, completionHandler(t, "unused"))
	if _, err := c.GenerateProjectDescription(context.Background(), "  ", "Go"); err == nil {
		t.Error("expected error for empty project name")
	}
}

func TestGenerateProjectImage(t *testing.T) {
	c, _ := testClient(t, completionHandler(t, "a sleek dashboard UI"))

	got, err := c.GenerateProjectImage(context.Background(), "Tracker", "keeps tabs")
	if err != nil {
		t.Fatalf("GenerateProjectImage() error = %v", err)
	}
	if !strings.HasPrefix(got, "https://image.example/prompt/a%20sleek%20dashboard%20UI?") {
		t.Errorf("image URL = %q", got)
	}
	if !strings.Contains(got, "width=600") || !strings.Contains(got, "height=400") || !strings.Contains(got, "seed=") {
		t.Errorf("image URL missing parameters: %q", got)
	}
}

func TestGenerateProjectImageFailureMeansAbsence(t *testing.T) {
	c, _ := testClient(t, failingHandler)

	got, err := c.GenerateProjectImage(context.Background(), "Tracker", "")
	if err != nil {
		t.Fatalf("image failure must not error, got %v", err)
	}
	if got != "" {
		t.Errorf("expected absent image, got %q", got)
	}
}

func TestGenerateAboutBio(t *testing.T) {
	content := "Sure! Here is the JSON you asked for:\n```json\n{\"about\": \"Ana ships reliable systems.\"}\n```"
	c, _ := testClient(t, completionHandler(t, content))

	got, err := c.GenerateAboutBio(context.Background(), BioRequest{Name: "Ana", Skills: []string{"Go"}})
	if err != nil {
		t.Fatalf("GenerateAboutBio() error = %v", err)
	}
	if got != "Ana ships reliable systems." {
		t.Errorf("bio = %q", got)
	}
}

func TestGenerateAboutBioFallbacks(t *testing.T) {
	want := "Ana is a talented professional with expertise in Go. Passionate about creating impactful solutions and continuous learning."

	tests := []struct {
		name    string
		handler http.HandlerFunc
	}{
		{name: "upstream failure", handler: failingHandler},
		{name: "no structured payload", handler: completionHandler(t, "I cannot produce JSON today.")},
		{name: "payload missing field", handler: completionHandler(t, `{"bio": "wrong key"}`)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, _ := testClient(t, tt.handler)
			got, err := c.GenerateAboutBio(context.Background(), BioRequest{Name: "Ana", Skills: []string{"Go", "Rust"}})
			if err != nil {
				t.Fatalf("fallback path must not error, got %v", err)
			}
			if got != want {
				t.Errorf("bio = %q, want %q", got, want)
			}
		})
	}
}

func TestExtractJSONObject(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
		ok   bool
	}{
		{name: "bare object", in: `{"about":"x"}`, want: `{"about":"x"}`, ok: true},
		{name: "wrapped in prose", in: "Here you go: {\"about\":\"x\"} hope it helps", want: `{"about":"x"}`, ok: true},
		{name: "code fence", in: "```json\n{\"about\":\"x\"}\n```", want: `{"about":"x"}`, ok: true},
		{name: "no object", in: "no json here", want: "", ok: false},
		{name: "only open brace", in: "{oops", want: "", ok: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := extractJSONObject(tt.in)
			if ok != tt.ok || got != tt.want {
				t.Errorf("extractJSONObject(%q) = %q, %v; want %q, %v", tt.in, got, ok, tt.want, tt.ok)
			}
		})
	}
}

func TestFirstToken(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Go, Rust", "Go"},
		{" , Rust", "Rust"},
		{"", "technology"},
		{" , ", "technology"},
	}
	for _, tt := range tests {
		if got := firstToken(tt.in); got != tt.want {
			t.Errorf("firstToken(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
