// Package backend is the HTTP client for the remote product endpoint.
// The endpoint is an opaque collaborator: multipart POST creates,
// multipart PATCH updates, JSON DELETE removes, and every reply uses
// the uniform {message, data} envelope.
package backend

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/guonaihong/gout"
	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"

	"github.com/NMTSolutions/NMT-Website-Redesigned/internal/domain"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Envelope is the uniform backend reply. Data is the canonical record
// on successful create/update and absent otherwise.
type Envelope struct {
	Message string          `json:"message"`
	Data    *domain.Product `json:"data,omitempty"`
}

// ListEnvelope wraps the product collection returned by GET.
type ListEnvelope struct {
	Message string           `json:"message"`
	Data    []domain.Product `json:"data"`
}

// Error is a non-success backend reply. Its message is the
// server-provided text, surfaced to the user verbatim.
type Error struct {
	StatusCode int
	Message    string
}

func (e *Error) Error() string {
	return e.Message
}

// Client is the product endpoint contract the workflow depends on.
type Client interface {
	List(ctx context.Context) ([]domain.Product, error)
	Create(ctx context.Context, payload domain.SubmissionPayload) (*domain.Product, string, error)
	Update(ctx context.Context, payload domain.SubmissionPayload) (*domain.Product, string, error)
	Delete(ctx context.Context, productID string) (string, error)
}

// HTTPClient implements Client over the configured base URL.
type HTTPClient struct {
	productsURL string
	timeout     time.Duration
}

func NewHTTPClient(baseURL string, timeout time.Duration) (*HTTPClient, error) {
	baseURL = strings.TrimRight(strings.TrimSpace(baseURL), "/")
	if baseURL == "" {
		return nil, errors.New("backend: base URL is required")
	}
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &HTTPClient{
		productsURL: baseURL + "/products",
		timeout:     timeout,
	}, nil
}

func (c *HTTPClient) List(ctx context.Context) ([]domain.Product, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	var body string
	var code int
	err := gout.GET(c.productsURL).
		WithContext(ctx).
		BindBody(&body).
		Code(&code).
		Do()
	if err != nil {
		return nil, errors.Wrap(err, "backend: list products")
	}

	var env ListEnvelope
	if err := json.Unmarshal([]byte(body), &env); err != nil {
		return nil, errors.Wrap(err, "backend: decode product list")
	}
	if !success(code) {
		return nil, &Error{StatusCode: code, Message: envMessage(env.Message, code)}
	}
	return env.Data, nil
}

func (c *HTTPClient) Create(ctx context.Context, payload domain.SubmissionPayload) (*domain.Product, string, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	var body string
	var code int
	err := gout.POST(c.productsURL).
		WithContext(ctx).
		SetForm(formOf(payload)).
		BindBody(&body).
		Code(&code).
		Do()
	if err != nil {
		return nil, "", errors.Wrap(err, "backend: create product")
	}
	return c.decodeMutation(body, code)
}

func (c *HTTPClient) Update(ctx context.Context, payload domain.SubmissionPayload) (*domain.Product, string, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	var body string
	var code int
	err := gout.PATCH(c.productsURL).
		WithContext(ctx).
		SetForm(formOf(payload)).
		BindBody(&body).
		Code(&code).
		Do()
	if err != nil {
		return nil, "", errors.Wrap(err, "backend: update product")
	}
	return c.decodeMutation(body, code)
}

func (c *HTTPClient) Delete(ctx context.Context, productID string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	var body string
	var code int
	err := gout.DELETE(c.productsURL).
		WithContext(ctx).
		SetJSON(gout.H{"productId": productID}).
		BindBody(&body).
		Code(&code).
		Do()
	if err != nil {
		return "", errors.Wrap(err, "backend: delete product")
	}

	var env Envelope
	if err := json.Unmarshal([]byte(body), &env); err != nil {
		return "", errors.Wrap(err, "backend: decode delete reply")
	}
	if !success(code) {
		return "", &Error{StatusCode: code, Message: envMessage(env.Message, code)}
	}
	return env.Message, nil
}

func (c *HTTPClient) decodeMutation(body string, code int) (*domain.Product, string, error) {
	var env Envelope
	if err := json.Unmarshal([]byte(body), &env); err != nil {
		if !success(code) {
			return nil, "", &Error{StatusCode: code, Message: envMessage("", code)}
		}
		return nil, "", errors.Wrap(err, "backend: decode reply")
	}
	if !success(code) {
		return nil, "", &Error{StatusCode: code, Message: envMessage(env.Message, code)}
	}
	return env.Data, env.Message, nil
}

func formOf(payload domain.SubmissionPayload) gout.H {
	form := gout.H{}
	for k, v := range payload.Fields() {
		form[k] = v
	}
	return form
}

func success(code int) bool {
	return code >= 200 && code <= 299
}

func envMessage(message string, code int) string {
	if message != "" {
		return message
	}
	return fmt.Sprintf("backend returned status %d", code)
}
