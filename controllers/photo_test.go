package controllers

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// With no CDN domain configured, no URL can be ours; the delete must not
// reach the storage client.
func TestRemovePhotoFromS3WithoutCDNDomain(t *testing.T) {
	prev := cdnDomain
	cdnDomain = ""
	defer func() { cdnDomain = prev }()

	assert.NotPanics(t, func() {
		RemovePhotoFromS3("https://cdn.example.com/items/abc.jpg")
	})
}

func TestRemovePhotoFromS3ForeignURL(t *testing.T) {
	prev := cdnDomain
	cdnDomain = "cdn.teapos.example"
	defer func() { cdnDomain = prev }()

	assert.NotPanics(t, func() {
		RemovePhotoFromS3("https://elsewhere.example.com/items/abc.jpg")
	})
}
