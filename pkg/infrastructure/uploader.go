package infrastructure

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"portfolio-generator/internal/config"
)

// Uploader stores project images in a GitHub repository through the
// contents API and returns a publicly fetchable raw URL. The destination
// is deployment configuration, never hard-coded.
type Uploader struct {
	httpClient *http.Client
	apiBase    string
	token      string
	owner      string
	repo       string
	branch     string
	pathPrefix string
}

func NewUploader(cfg *config.Config) *Uploader {
	return &Uploader{
		httpClient: &http.Client{Timeout: 30 * time.Second},
		apiBase:    cfg.Upload.APIBase,
		token:      cfg.Upload.Token,
		owner:      cfg.Upload.Owner,
		repo:       cfg.Upload.Repo,
		branch:     cfg.Upload.Branch,
		pathPrefix: cfg.Upload.PathPrefix,
	}
}

// Configured reports whether an upload destination has been supplied.
func (u *Uploader) Configured() bool {
	return u.owner != "" && u.repo != "" && u.token != ""
}

type uploadRequest struct {
	Message string `json:"message"`
	Content string `json:"content"`
	Branch  string `json:"branch,omitempty"`
}

type uploadResponse struct {
	Content struct {
		HTMLURL string `json:"html_url"`
	} `json:"content"`
	Message string `json:"message"`
}

// UploadImage stores the given image content under fileName and returns a
// raw URL. Content may be a data URI or a bare base64 string; bytes pass
// through opaquely.
func (u *Uploader) UploadImage(ctx context.Context, fileName, content string) (string, error) {
	if !u.Configured() {
		return "", errors.New("upload destination not configured")
	}
	if fileName == "" || content == "" {
		return "", errors.New("file name and content are required")
	}

	// Strip the data-URI envelope; the contents API wants bare base64.
	if strings.HasPrefix(content, "data:image") {
		if idx := strings.IndexByte(content, ','); idx >= 0 {
			content = content[idx+1:]
		}
	}

	body, err := json.Marshal(uploadRequest{
		Message: "Add project image: " + fileName,
		Content: content,
		Branch:  u.branch,
	})
	if err != nil {
		return "", err
	}

	endpoint := fmt.Sprintf("%s/repos/%s/%s/contents/%s/%s", u.apiBase, u.owner, u.repo, u.pathPrefix, fileName)
	req, err := http.NewRequestWithContext(ctx, http.MethodPut, endpoint, bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Authorization", "token "+u.token)
	req.Header.Set("Content-Type", "application/json")

	resp, err := u.httpClient.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	respBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}

	var parsed uploadResponse
	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		if json.Unmarshal(respBytes, &parsed) == nil && parsed.Message != "" {
			return "", fmt.Errorf("upload failed: %s", parsed.Message)
		}
		return "", fmt.Errorf("upload failed with status %d", resp.StatusCode)
	}
	if err := json.Unmarshal(respBytes, &parsed); err != nil {
		return "", fmt.Errorf("upload response unparseable: %w", err)
	}
	if parsed.Content.HTMLURL == "" {
		return "", errors.New("upload response missing content url")
	}

	return strings.Replace(parsed.Content.HTMLURL, "/blob/", "/raw/", 1), nil
}
