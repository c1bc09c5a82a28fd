package adminapi

import (
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/gocarina/gocsv"
	"github.com/labstack/echo/v4"
	"github.com/mitchellh/mapstructure"
	"go.uber.org/zap"

	"github.com/NMTSolutions/NMT-Website-Redesigned/internal/backend"
	"github.com/NMTSolutions/NMT-Website-Redesigned/internal/domain"
	"github.com/NMTSolutions/NMT-Website-Redesigned/internal/uploads"
	"github.com/NMTSolutions/NMT-Website-Redesigned/internal/webserver"
	"github.com/NMTSolutions/NMT-Website-Redesigned/internal/workflow"
)

// registerProductRoutes registers the product editing endpoints
func registerProductRoutes() {
	webserver.ApiGET("/products", listProducts)
	webserver.ApiGET("/products/export", exportProducts)
	webserver.ApiPOST("/products", createProduct)
	webserver.ApiPATCH("/products/:id", updateProduct)
	webserver.ApiDELETE("/products/:id", deleteProduct)
}

func listProducts(c echo.Context) error {
	return ok(c, GetApp(c).Store().Snapshot())
}

func createProduct(c echo.Context) error {
	draft, err := parseDraft(c, nil)
	if err != nil {
		return fail(c, http.StatusBadRequest, "INVALID_REQUEST", "Unable to parse submission", err.Error())
	}
	if err := draft.Validate(); err != nil {
		return fail(c, http.StatusBadRequest, "INVALID_REQUEST", err.Error(), nil)
	}
	return runSubmission(c, *draft)
}

func updateProduct(c echo.Context) error {
	id := c.Param("id")
	previous, found := GetApp(c).Store().Get(id)
	if !found {
		return fail(c, http.StatusNotFound, "NOT_FOUND", "Product not found", nil)
	}

	draft, err := parseDraft(c, &previous)
	if err != nil {
		return fail(c, http.StatusBadRequest, "INVALID_REQUEST", "Unable to parse submission", err.Error())
	}
	if err := draft.Validate(); err != nil {
		return fail(c, http.StatusBadRequest, "INVALID_REQUEST", err.Error(), nil)
	}
	return runSubmission(c, *draft)
}

func runSubmission(c echo.Context, draft domain.Draft) error {
	canonical, err := GetApp(c).Workflow().Submit(c.Request().Context(), draft)
	if err != nil {
		return submissionError(c, err)
	}
	return okMessage(c, "Product saved", canonical)
}

func deleteProduct(c echo.Context) error {
	id := c.Param("id")
	if err := GetApp(c).Workflow().Delete(c.Request().Context(), id); err != nil {
		return submissionError(c, err)
	}
	zap.L().Info("product deleted", zap.String("id", id))
	return ok(c, map[string]interface{}{"productId": id})
}

// exportProducts streams the current store as CSV for offline review.
func exportProducts(c echo.Context) error {
	items := GetApp(c).Store().Snapshot()
	data, err := gocsv.MarshalString(&items)
	if err != nil {
		return fail(c, http.StatusInternalServerError, "EXPORT_FAILED", "Failed to export products", err.Error())
	}
	c.Response().Header().Set(echo.HeaderContentDisposition, `attachment; filename="products.csv"`)
	return c.Blob(http.StatusOK, "text/csv", []byte(data))
}

// submissionError maps workflow failures onto the response envelope.
// Backend rejections keep the server-provided message verbatim.
func submissionError(c echo.Context, err error) error {
	var beErr *backend.Error
	switch {
	case errors.Is(err, workflow.ErrSubmissionInFlight):
		return fail(c, http.StatusConflict, "IN_FLIGHT", "Another submission is in progress", nil)
	case errors.Is(err, uploads.ErrUploadFailed):
		return fail(c, http.StatusBadGateway, "UPLOAD_FAILED", "Upload Failed", nil)
	case errors.As(err, &beErr):
		return fail(c, beErr.StatusCode, "BACKEND_REJECTED", beErr.Message, nil)
	default:
		return fail(c, http.StatusBadGateway, "SUBMISSION_FAILED", err.Error(), nil)
	}
}

// productFormFields mirrors the multipart text fields of the editing
// form, decoded off the generic form value map.
type productFormFields struct {
	ProductName    string `mapstructure:"productName"`
	ProductType    string `mapstructure:"productType"`
	Description    string `mapstructure:"description"`
	ReadmeMarkup   string `mapstructure:"readmeMarkup"`
	RepositoryLink string `mapstructure:"repositoryLink"`
	Technologies   string `mapstructure:"technologies"`
	WebsiteLink    string `mapstructure:"websiteLink"`
}

func parseDraft(c echo.Context, previous *domain.Product) (*domain.Draft, error) {
	form, err := c.MultipartForm()
	if err != nil {
		return nil, fmt.Errorf("multipart form required: %w", err)
	}

	values := make(map[string]interface{}, len(form.Value))
	for k, v := range form.Value {
		if len(v) > 0 {
			values[k] = v[0]
		}
	}

	var fields productFormFields
	if err := mapstructure.Decode(values, &fields); err != nil {
		return nil, fmt.Errorf("decode form fields: %w", err)
	}

	draft := &domain.Draft{
		Product: domain.Product{
			Name:           fields.ProductName,
			Type:           domain.ProductType(fields.ProductType),
			Description:    fields.Description,
			ReadmeMarkup:   fields.ReadmeMarkup,
			RepositoryLink: fields.RepositoryLink,
			Technologies:   domain.ParseTechnologies(fields.Technologies).String(),
			WebsiteLink:    fields.WebsiteLink,
		},
		Previous: previous,
	}

	if draft.Icon, err = readFormFile(c, domain.FieldIcon); err != nil {
		return nil, err
	}
	// Only the Mobile form renders an APK input; ignore strays.
	if domain.HasFormField(draft.Product.Type, domain.FieldApk) {
		if draft.Apk, err = readFormFile(c, domain.FieldApk); err != nil {
			return nil, err
		}
	}
	return draft, nil
}

func readFormFile(c echo.Context, field string) (*domain.FileInput, error) {
	fh, err := c.FormFile(field)
	if err != nil {
		// Absent file input means "keep existing value".
		return nil, nil
	}
	src, err := fh.Open()
	if err != nil {
		return nil, fmt.Errorf("open %s upload: %w", field, err)
	}
	defer src.Close()

	data, err := io.ReadAll(src)
	if err != nil {
		return nil, fmt.Errorf("read %s upload: %w", field, err)
	}
	return &domain.FileInput{Name: fh.Filename, Size: fh.Size, Data: data}, nil
}
