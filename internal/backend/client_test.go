package backend

import (
	"context"
	stdjson "encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/NMTSolutions/NMT-Website-Redesigned/internal/domain"
)

func testPayload() domain.SubmissionPayload {
	return domain.SubmissionPayload{
		ProductName:    "Demo",
		ProductType:    domain.ProductTypeWeb,
		Description:    "demo product",
		Technologies:   "Go,React,",
		ReadmeMarkup:   "# Demo",
		RepositoryLink: "https://x/y",
		WebsiteLink:    "https://x",
	}
}

func TestCreateSendsFormFieldsAndDecodesEnvelope(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/products", r.URL.Path)

		assert.Equal(t, "Demo", r.FormValue("productName"))
		assert.Equal(t, "Web", r.FormValue("productType"))
		assert.Equal(t, "Go,React,", r.FormValue("technologies"))
		assert.Equal(t, "https://x", r.FormValue("websiteLink"))
		// Create payloads never carry update-only fields.
		assert.Empty(t, r.FormValue("productId"))
		assert.Empty(t, r.FormValue("filesToDelete"))

		w.Header().Set("Content-Type", "application/json")
		_ = stdjson.NewEncoder(w).Encode(Envelope{
			Message: "Product created",
			Data:    &domain.Product{ID: "p-1", Name: "Demo", Type: domain.ProductTypeWeb},
		})
	}))
	defer srv.Close()

	client, err := NewHTTPClient(srv.URL, 5*time.Second)
	require.NoError(t, err)

	created, msg, err := client.Create(context.Background(), testPayload())
	require.NoError(t, err)
	require.NotNil(t, created)
	assert.Equal(t, "p-1", created.ID)
	assert.Equal(t, "Product created", msg)
}

func TestUpdateUsesPatchWithIdentityFields(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPatch, r.Method)
		assert.Equal(t, "42", r.FormValue("productId"))
		assert.Equal(t, "old-icon.png,", r.FormValue("filesToDelete"))

		w.Header().Set("Content-Type", "application/json")
		_ = stdjson.NewEncoder(w).Encode(Envelope{
			Message: "Product updated",
			Data:    &domain.Product{ID: "42", Name: "Demo"},
		})
	}))
	defer srv.Close()

	client, err := NewHTTPClient(srv.URL, 5*time.Second)
	require.NoError(t, err)

	payload := testPayload()
	payload.ProductID = "42"
	payload.FilesToDelete = "old-icon.png,"

	updated, msg, err := client.Update(context.Background(), payload)
	require.NoError(t, err)
	assert.Equal(t, "42", updated.ID)
	assert.Equal(t, "Product updated", msg)
}

func TestBackendRejectionSurfacesServerMessage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		_ = stdjson.NewEncoder(w).Encode(Envelope{Message: "product name already exists"})
	}))
	defer srv.Close()

	client, err := NewHTTPClient(srv.URL, 5*time.Second)
	require.NoError(t, err)

	_, _, err = client.Create(context.Background(), testPayload())
	require.Error(t, err)
	var beErr *Error
	require.ErrorAs(t, err, &beErr)
	assert.Equal(t, http.StatusBadRequest, beErr.StatusCode)
	assert.Equal(t, "product name already exists", err.Error())
}

func TestDeleteSendsJSONBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodDelete, r.Method)
		var body map[string]string
		require.NoError(t, stdjson.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "42", body["productId"])

		w.Header().Set("Content-Type", "application/json")
		_ = stdjson.NewEncoder(w).Encode(Envelope{Message: "Product deleted"})
	}))
	defer srv.Close()

	client, err := NewHTTPClient(srv.URL, 5*time.Second)
	require.NoError(t, err)

	msg, err := client.Delete(context.Background(), "42")
	require.NoError(t, err)
	assert.Equal(t, "Product deleted", msg)
}

func TestListDecodesCollectionEnvelope(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodGet, r.Method)
		w.Header().Set("Content-Type", "application/json")
		_ = stdjson.NewEncoder(w).Encode(ListEnvelope{
			Message: "ok",
			Data: []domain.Product{
				{ID: "1", Name: "one"},
				{ID: "2", Name: "two"},
			},
		})
	}))
	defer srv.Close()

	client, err := NewHTTPClient(srv.URL, 5*time.Second)
	require.NoError(t, err)

	products, err := client.List(context.Background())
	require.NoError(t, err)
	require.Len(t, products, 2)
	assert.Equal(t, "two", products[1].Name)
}

func TestNewHTTPClientRequiresBaseURL(t *testing.T) {
	_, err := NewHTTPClient("   ", time.Second)
	assert.Error(t, err)
}
