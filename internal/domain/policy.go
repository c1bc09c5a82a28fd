package domain

// Form field names as rendered by the editing surface and sent on the
// multipart wire.
const (
	FieldProductName    = "productName"
	FieldProductType    = "productType"
	FieldIcon           = "icon"
	FieldDescription    = "description"
	FieldReadmeMarkup   = "readmeMarkup"
	FieldRepositoryLink = "repositoryLink"
	FieldTechnologies   = "technologies"
	FieldWebsiteLink    = "websiteLink"
	FieldApk            = "apk"
)

var commonFormFields = []string{
	FieldProductName,
	FieldProductType,
	FieldIcon,
	FieldDescription,
	FieldReadmeMarkup,
	FieldRepositoryLink,
	FieldTechnologies,
}

// formFieldPolicy maps every product variant to the ordered field set
// its form renders. Each variant must have an entry; a missing one is a
// defect, which the exhaustiveness test guards.
var formFieldPolicy = map[ProductType][]string{
	ProductTypeIoT:    commonFormFields,
	ProductTypeWeb:    append(append([]string{}, commonFormFields...), FieldWebsiteLink),
	ProductTypeMobile: append(append([]string{}, commonFormFields...), FieldApk),
}

// FormFields returns the ordered field set for the variant. ok is false
// for unknown variants.
func FormFields(t ProductType) (fields []string, ok bool) {
	policy, ok := formFieldPolicy[t]
	if !ok {
		return nil, false
	}
	fields = make([]string, len(policy))
	copy(fields, policy)
	return fields, true
}

// HasFormField reports whether the variant's form renders the field.
func HasFormField(t ProductType, field string) bool {
	fields, ok := formFieldPolicy[t]
	if !ok {
		return false
	}
	for _, f := range fields {
		if f == field {
			return true
		}
	}
	return false
}
