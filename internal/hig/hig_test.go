package hig

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSearch_WithoutPlatform(t *testing.T) {
	result := Search("dark mode", "")

	assert.Equal(t, "dark mode", result.Query)
	assert.Equal(t, baseURL, result.DirectLink)
	assert.Equal(t,
		"https://www.google.com/search?q=site:developer.apple.com/design/human-interface-guidelines+dark+mode",
		result.SearchURL)
	assert.Empty(t, result.PlatformURL)
	assert.Empty(t, result.PlatformSearch)
}

func TestSearch_WithPlatform(t *testing.T) {
	result := Search("navigation", "iOS")

	assert.Equal(t, baseURL+"/platforms/ios", result.PlatformURL)
	assert.Contains(t, result.PlatformSearch, "+ios+navigation")
}

func TestSearch_UnknownPlatformOmitsPlatformLinks(t *testing.T) {
	result := Search("buttons", "windows")

	assert.Empty(t, result.PlatformURL)
	assert.Empty(t, result.PlatformSearch)
}

func TestListPlatforms(t *testing.T) {
	platforms := ListPlatforms()
	require.Len(t, platforms, 5)

	assert.Equal(t, "ios", platforms[0].Platform)
	assert.Equal(t, "IOS", platforms[0].Name)
	assert.Equal(t, baseURL+"/platforms/ios", platforms[0].URL)

	last := platforms[len(platforms)-1]
	assert.Equal(t, "visionOS", last.Name)
}
