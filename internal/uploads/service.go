// Package uploads resolves the form's binary asset slots (icon, APK)
// into URL field values before a submission is persisted.
package uploads

import (
	"bytes"
	"context"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"strings"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"

	"github.com/NMTSolutions/NMT-Website-Redesigned/internal/domain"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Result is one upload outcome. An empty URL on a requested slot is a
// soft per-file failure; the coordinator falls back to the previous
// value for that slot.
type Result struct {
	URL string `json:"url"`
}

// Service is the file upload collaborator: ordered files in, ordered
// results out. A nil result set (or a transport error) signals total
// upload failure.
type Service interface {
	Upload(ctx context.Context, files []domain.FileInput) ([]Result, error)
}

// HTTPClient matches the subset of http.Client the HTTP service uses.
type HTTPClient interface {
	Do(*http.Request) (*http.Response, error)
}

// HTTPService talks to the remote file storage front door. Binary
// multipart bodies need per-part filenames, which is why this client is
// built directly on mime/multipart rather than the form helpers used by
// the backend client.
type HTTPService struct {
	base    *url.URL
	client  HTTPClient
	timeout time.Duration
}

func NewHTTPService(baseURL string, timeout time.Duration, client HTTPClient) (*HTTPService, error) {
	if strings.TrimSpace(baseURL) == "" {
		return nil, errors.New("uploads: base URL is required")
	}
	parsed, err := url.Parse(baseURL)
	if err != nil {
		return nil, errors.Wrap(err, "uploads: parse base URL")
	}
	if client == nil {
		client = http.DefaultClient
	}
	if timeout <= 0 {
		timeout = 60 * time.Second
	}
	return &HTTPService{base: parsed, client: client, timeout: timeout}, nil
}

// Upload sends all files in one multipart request under the repeated
// "files" field and decodes the ordered result list.
func (s *HTTPService) Upload(ctx context.Context, files []domain.FileInput) ([]Result, error) {
	if len(files) == 0 {
		return []Result{}, nil
	}

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	for _, f := range files {
		part, err := writer.CreateFormFile("files", f.Name)
		if err != nil {
			return nil, errors.Wrap(err, "uploads: build form")
		}
		if _, err := part.Write(f.Data); err != nil {
			return nil, errors.Wrap(err, "uploads: write file part")
		}
	}
	if err := writer.Close(); err != nil {
		return nil, errors.Wrap(err, "uploads: finalize form")
	}

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	endpoint := s.base.JoinPath("files").String()
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, &body)
	if err != nil {
		return nil, errors.Wrap(err, "uploads: build request")
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "uploads: request")
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.Wrap(err, "uploads: read response")
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, errors.Errorf("uploads: service returned status %d", resp.StatusCode)
	}

	var results []Result
	if err := json.Unmarshal(data, &results); err != nil {
		return nil, errors.Wrap(err, "uploads: decode results")
	}
	return results, nil
}
