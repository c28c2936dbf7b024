package model

import (
	"errors"
	"reflect"
	"strings"
	"testing"
)

func validRequest() Request {
	return Request{
		Name:   "Ana",
		Email:  "a@b.com",
		Skills: "Go, Rust",
	}
}

func TestNormalizeRequiredFields(t *testing.T) {
	tests := []struct {
		name      string
		mutate    func(*Request)
		wantField string
	}{
		{name: "missing name", mutate: func(r *Request) { r.Name = "" }, wantField: "name"},
		{name: "whitespace name", mutate: func(r *Request) { r.Name = "   " }, wantField: "name"},
		{name: "missing email", mutate: func(r *Request) { r.Email = "" }, wantField: "email"},
		{name: "missing skills", mutate: func(r *Request) { r.Skills = "" }, wantField: "skills"},
		{name: "skills only commas", mutate: func(r *Request) { r.Skills = " , ,, " }, wantField: "skills"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validRequest()
			tt.mutate(&req)
			_, err := Normalize(req)
			var inputErr *InputError
			if !errors.As(err, &inputErr) {
				t.Fatalf("Normalize() error = %v, want *InputError", err)
			}
			if inputErr.Field != tt.wantField {
				t.Errorf("InputError.Field = %q, want %q", inputErr.Field, tt.wantField)
			}
			if !strings.Contains(inputErr.Error(), tt.wantField) {
				t.Errorf("error message %q does not name field %q", inputErr.Error(), tt.wantField)
			}
		})
	}
}

func TestSplitList(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want []string
	}{
		{name: "simple", in: "Go, Rust", want: []string{"Go", "Rust"}},
		{name: "empty tokens dropped", in: "Go,,Rust, ,", want: []string{"Go", "Rust"}},
		{name: "order and duplicates preserved", in: "go, Go, go", want: []string{"go", "Go", "go"}},
		{name: "empty", in: "", want: nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SplitList(tt.in)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("SplitList(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestSplitListIdempotent(t *testing.T) {
	in := "  Go ,Rust,  , Python , Go"
	once := SplitList(in)
	twice := SplitList(strings.Join(once, ","))
	if !reflect.DeepEqual(once, twice) {
		t.Errorf("re-splitting normalized output changed it: %v vs %v", once, twice)
	}
}

func TestNormalizeProjects(t *testing.T) {
	req := validRequest()
	req.Projects = []ProjectInput{
		{Name: "Tracker", Description: " a tool "},
		{Name: "   "},
		{Name: "", Description: "orphan"},
		{Name: "Solver", Image: "https://example.com/s.png"},
	}

	rec, err := Normalize(req)
	if err != nil {
		t.Fatalf("Normalize() error = %v", err)
	}
	if len(rec.Projects) != 2 {
		t.Fatalf("kept %d projects, want 2", len(rec.Projects))
	}
	if rec.Projects[0].Name != "Tracker" || rec.Projects[1].Name != "Solver" {
		t.Errorf("project order not preserved: %+v", rec.Projects)
	}
	if rec.Projects[0].Description != "a tool" {
		t.Errorf("description not trimmed: %q", rec.Projects[0].Description)
	}
	if rec.Projects[0].ID == "" || rec.Projects[1].ID == "" {
		t.Error("projects missing request-scoped IDs")
	}
	if rec.Projects[0].ID == rec.Projects[1].ID {
		t.Error("project IDs not unique")
	}
}

func TestNormalizeTrimsNarrativeFields(t *testing.T) {
	req := validRequest()
	req.Experience = "  built things\nshipped things  "
	req.Tagline = " engineer "
	req.Languages = "English, Spanish"

	rec, err := Normalize(req)
	if err != nil {
		t.Fatalf("Normalize() error = %v", err)
	}
	if rec.Experience != "built things\nshipped things" {
		t.Errorf("Experience = %q", rec.Experience)
	}
	if rec.Tagline != "engineer" {
		t.Errorf("Tagline = %q", rec.Tagline)
	}
	if !reflect.DeepEqual(rec.Languages, []string{"English", "Spanish"}) {
		t.Errorf("Languages = %v", rec.Languages)
	}
}

func TestParseTheme(t *testing.T) {
	tests := []struct {
		in   string
		want Theme
	}{
		{"Modern Glass", ThemeModernGlass},
		{"Minimal Dark", ThemeMinimalDark},
		{"Creative Gradient", ThemeCreativeGradient},
		{"", ThemeModernGlass},
		{"Neon Future", ThemeModernGlass},
	}
	for _, tt := range tests {
		if got := ParseTheme(tt.in); got != tt.want {
			t.Errorf("ParseTheme(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestFirstSkill(t *testing.T) {
	rec := &Record{Skills: []string{"Go", "Rust"}}
	if got := rec.FirstSkill(); got != "Go" {
		t.Errorf("FirstSkill() = %q, want Go", got)
	}
	empty := &Record{}
	if got := empty.FirstSkill(); got != "technology" {
		t.Errorf("FirstSkill() on empty = %q, want technology", got)
	}
}

func TestValidateRequestBody(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		wantErr bool
	}{
		{name: "valid", body: `{"name":"Ana","email":"a@b.com","skills":"Go"}`, wantErr: false},
		{name: "missing email", body: `{"name":"Ana","skills":"Go"}`, wantErr: true},
		{name: "wrong type", body: `{"name":"Ana","email":"a@b.com","skills":["Go"]}`, wantErr: true},
		{name: "projects accepted", body: `{"name":"Ana","email":"a@b.com","skills":"Go","projects":[{"name":"T"}]}`, wantErr: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateRequestBody([]byte(tt.body))
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateRequestBody() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil {
				var inputErr *InputError
				if !errors.As(err, &inputErr) {
					t.Errorf("error type = %T, want *InputError", err)
				}
			}
		})
	}
}
