// Package hig builds links into Apple's Human Interface Guidelines.
//
// The guidelines have no first-party search endpoint, so queries are routed
// through Google site search scoped to the guidelines pages.
package hig

import (
	"fmt"
	"net/url"
	"strings"
)

const baseURL = "https://developer.apple.com/design/human-interface-guidelines"

// Platforms lists every platform with a dedicated guidelines section.
var Platforms = []string{"ios", "macos", "tvos", "watchos", "visionos"}

// SearchResult carries the generated guidelines search links.
type SearchResult struct {
	Query          string `json:"query"`
	Platform       string `json:"platform,omitempty"`
	BaseURL        string `json:"base_url"`
	SearchURL      string `json:"search_url"`
	DirectLink     string `json:"direct_link"`
	PlatformURL    string `json:"platform_url,omitempty"`
	PlatformSearch string `json:"platform_search,omitempty"`
}

// Platform is one supported platform with its guidelines landing page.
type Platform struct {
	Platform string `json:"platform"`
	Name     string `json:"name"`
	URL      string `json:"url"`
}

// Search builds guidelines search links for a query, optionally scoped to
// one platform.
func Search(query, platform string) SearchResult {
	encoded := url.QueryEscape(query)

	result := SearchResult{
		Query:      query,
		Platform:   platform,
		BaseURL:    baseURL,
		SearchURL:  siteSearchURL(encoded),
		DirectLink: baseURL,
	}

	lower := strings.ToLower(platform)
	if lower != "" && supported(lower) {
		result.PlatformURL = fmt.Sprintf("%s/platforms/%s", baseURL, lower)
		result.PlatformSearch = siteSearchURL(lower + "+" + encoded)
	}
	return result
}

// ListPlatforms returns every supported platform with its guidelines URL.
func ListPlatforms() []Platform {
	platforms := make([]Platform, 0, len(Platforms))
	for _, p := range Platforms {
		name := strings.ToUpper(p)
		if p == "visionos" {
			name = "visionOS"
		}
		platforms = append(platforms, Platform{
			Platform: p,
			Name:     name,
			URL:      fmt.Sprintf("%s/platforms/%s", baseURL, p),
		})
	}
	return platforms
}

func siteSearchURL(terms string) string {
	return "https://www.google.com/search?q=site:developer.apple.com/design/human-interface-guidelines+" + terms
}

func supported(platform string) bool {
	for _, p := range Platforms {
		if platform == p {
			return true
		}
	}
	return false
}
