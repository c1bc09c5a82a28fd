package domain

import (
	"strings"

	"github.com/pkg/errors"
)

// ProductType is the case-study variant of a product.
type ProductType string

const (
	ProductTypeIoT    ProductType = "IoT"
	ProductTypeWeb    ProductType = "Web"
	ProductTypeMobile ProductType = "Mobile"
)

// ProductTypes lists every supported variant.
var ProductTypes = []ProductType{ProductTypeIoT, ProductTypeWeb, ProductTypeMobile}

func (t ProductType) Valid() bool {
	switch t {
	case ProductTypeIoT, ProductTypeWeb, ProductTypeMobile:
		return true
	}
	return false
}

// Product represents one showcased application record. The ID is empty
// until the first successful create; afterwards the server-returned
// canonical record is authoritative.
type Product struct {
	ID             string      `json:"productId" csv:"product_id"`
	Name           string      `json:"productName" csv:"product_name"`
	Type           ProductType `json:"productType" csv:"product_type"`
	Icon           string      `json:"icon" csv:"icon"`
	Description    string      `json:"description" csv:"description"`
	ReadmeMarkup   string      `json:"readmeMarkup" csv:"readme_markup"`
	RepositoryLink string      `json:"repositoryLink" csv:"repository_link"`
	Technologies   string      `json:"technologies" csv:"technologies"`
	ApkLink        string      `json:"apk" csv:"apk"`
	WebsiteLink    string      `json:"websiteLink" csv:"website_link"`
	CreatedAt      string      `json:"createdAt,omitempty" csv:"created_at"`
	UpdatedAt      string      `json:"updatedAt,omitempty" csv:"updated_at"`
}

// FileInput is one submitted binary asset (icon or APK). A nil input or
// a zero-size selection means "keep the existing value".
type FileInput struct {
	Name string
	Size int64
	Data []byte
}

// Pending reports whether the input should participate in an upload.
func (f *FileInput) Pending() bool {
	return f != nil && f.Size > 0
}

// Draft is the submit-time snapshot of the editing form. It is built
// once per submission and never mutated afterwards, so the payload the
// workflow sends is unambiguous.
type Draft struct {
	Product Product
	Icon    *FileInput
	Apk     *FileInput
	// Previous is the record being edited; nil means create mode.
	Previous *Product
}

// IsUpdate reports whether the draft edits an existing record.
func (d Draft) IsUpdate() bool {
	return d.Previous != nil
}

// Validate performs the input-layer presence checks. Server-side
// validation remains the backend's concern.
func (d Draft) Validate() error {
	if !d.Product.Type.Valid() {
		return errors.Errorf("invalid product type %q", d.Product.Type)
	}
	if strings.TrimSpace(d.Product.Name) == "" {
		return errors.New("product name is required")
	}
	if strings.TrimSpace(d.Product.Description) == "" {
		return errors.New("description is required")
	}
	if strings.TrimSpace(d.Product.RepositoryLink) == "" {
		return errors.New("repository link is required")
	}
	if strings.TrimSpace(d.Product.ReadmeMarkup) == "" {
		return errors.New("readme markup is required")
	}
	if ParseTechnologies(d.Product.Technologies).Len() == 0 {
		return errors.New("at least one technology must be selected")
	}
	if d.IsUpdate() && d.Previous.ID == "" {
		return errors.New("previous product has no id")
	}
	return nil
}

// SubmissionPayload holds the finalized multipart field values sent to
// the backend product endpoint. Icon and Apk are URL strings resolved
// by the upload step, never raw files.
type SubmissionPayload struct {
	ProductID      string
	ProductName    string
	ProductType    ProductType
	Description    string
	Technologies   string
	ReadmeMarkup   string
	RepositoryLink string
	WebsiteLink    string
	Icon           string
	Apk            string
	FilesToDelete  string
}

// Fields returns the multipart form fields. ProductID and FilesToDelete
// appear only when set (update flows); everything else is always sent,
// empty strings included.
func (p SubmissionPayload) Fields() map[string]string {
	fields := map[string]string{
		"productName":    p.ProductName,
		"productType":    string(p.ProductType),
		"description":    p.Description,
		"technologies":   p.Technologies,
		"readmeMarkup":   p.ReadmeMarkup,
		"repositoryLink": p.RepositoryLink,
		"websiteLink":    p.WebsiteLink,
		"icon":           p.Icon,
		"apk":            p.Apk,
	}
	if p.ProductID != "" {
		fields["productId"] = p.ProductID
	}
	if p.FilesToDelete != "" {
		fields["filesToDelete"] = p.FilesToDelete
	}
	return fields
}

// Payload builds the outgoing payload from the draft and the settled
// upload resolution values.
func (d Draft) Payload(icon, apk, filesToDelete string) SubmissionPayload {
	p := SubmissionPayload{
		ProductName:    d.Product.Name,
		ProductType:    d.Product.Type,
		Description:    d.Product.Description,
		Technologies:   d.Product.Technologies,
		ReadmeMarkup:   d.Product.ReadmeMarkup,
		RepositoryLink: d.Product.RepositoryLink,
		WebsiteLink:    d.Product.WebsiteLink,
		Icon:           icon,
		Apk:            apk,
	}
	if d.IsUpdate() {
		p.ProductID = d.Previous.ID
		p.FilesToDelete = filesToDelete
	}
	return p
}
