package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFieldPolicyCoversEveryVariant(t *testing.T) {
	for _, pt := range ProductTypes {
		fields, ok := FormFields(pt)
		require.True(t, ok, "variant %s has no field policy entry", pt)
		require.NotEmpty(t, fields)
	}
}

func TestMobileVariantFields(t *testing.T) {
	assert.True(t, HasFormField(ProductTypeMobile, FieldApk))
	assert.False(t, HasFormField(ProductTypeMobile, FieldWebsiteLink))
}

func TestWebVariantFields(t *testing.T) {
	assert.True(t, HasFormField(ProductTypeWeb, FieldWebsiteLink))
	assert.False(t, HasFormField(ProductTypeWeb, FieldApk))
}

func TestIoTVariantFields(t *testing.T) {
	assert.False(t, HasFormField(ProductTypeIoT, FieldApk))
	assert.False(t, HasFormField(ProductTypeIoT, FieldWebsiteLink))
}

func TestUnknownVariantHasNoFields(t *testing.T) {
	_, ok := FormFields(ProductType("Desktop"))
	assert.False(t, ok)
}

func TestFormFieldsReturnsCopy(t *testing.T) {
	fields, ok := FormFields(ProductTypeIoT)
	require.True(t, ok)
	fields[0] = "tampered"
	again, _ := FormFields(ProductTypeIoT)
	assert.Equal(t, FieldProductName, again[0])
}
