package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validDraft() Draft {
	return Draft{
		Product: Product{
			Name:           "Demo",
			Type:           ProductTypeWeb,
			Description:    "demo product",
			ReadmeMarkup:   "# Demo",
			RepositoryLink: "https://x/y",
			Technologies:   "Go,React,",
			WebsiteLink:    "https://x",
		},
	}
}

func TestDraftValidate(t *testing.T) {
	require.NoError(t, validDraft().Validate())

	missingName := validDraft()
	missingName.Product.Name = " "
	assert.Error(t, missingName.Validate())

	badType := validDraft()
	badType.Product.Type = "Desktop"
	assert.Error(t, badType.Validate())

	noTech := validDraft()
	noTech.Product.Technologies = ","
	assert.Error(t, noTech.Validate())

	noRepo := validDraft()
	noRepo.Product.RepositoryLink = ""
	assert.Error(t, noRepo.Validate())
}

func TestFileInputPending(t *testing.T) {
	assert.False(t, (*FileInput)(nil).Pending())
	assert.False(t, (&FileInput{Name: "a.png"}).Pending())
	assert.True(t, (&FileInput{Name: "a.png", Size: 12}).Pending())
}

func TestCreatePayloadFields(t *testing.T) {
	d := validDraft()
	fields := d.Payload("", "", "").Fields()

	// File-bearing fields ride along as empty strings on create.
	require.Contains(t, fields, "icon")
	require.Contains(t, fields, "apk")
	assert.Equal(t, "", fields["icon"])
	assert.Equal(t, "", fields["apk"])

	// Update-only fields never leak into create payloads.
	assert.NotContains(t, fields, "productId")
	assert.NotContains(t, fields, "filesToDelete")

	assert.Equal(t, "Demo", fields["productName"])
	assert.Equal(t, "Web", fields["productType"])
	assert.Equal(t, "Go,React,", fields["technologies"])
	assert.Equal(t, "https://x", fields["websiteLink"])
}

func TestUpdatePayloadFields(t *testing.T) {
	prev := Product{ID: "42", Icon: "https://cdn/x/old-icon.png"}
	d := validDraft()
	d.Previous = &prev

	fields := d.Payload("https://cdn/x/new-icon.png", "", "old-icon.png,").Fields()
	assert.Equal(t, "42", fields["productId"])
	assert.Equal(t, "old-icon.png,", fields["filesToDelete"])
	assert.Equal(t, "https://cdn/x/new-icon.png", fields["icon"])
}
