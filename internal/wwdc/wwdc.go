// Package wwdc builds search and session links for WWDC content hosted on
// wwdcnotes.com and developer.apple.com.
package wwdc

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/appledeepdocs/appledocsmcp/internal/errors"
)

const (
	notesBaseURL = "https://wwdcnotes.com"
	appleBaseURL = "https://developer.apple.com"
)

// SearchResult carries search URLs for a WWDC topic plus topic-specific
// session categories.
type SearchResult struct {
	Query      string            `json:"query"`
	SearchURLs map[string]string `json:"search_urls"`
	Tip        string            `json:"tip,omitempty"`
	Categories []string          `json:"categories,omitempty"`
}

// Session carries the links for one WWDC session.
type Session struct {
	SessionID string            `json:"session_id"`
	URLs      map[string]string `json:"urls"`
}

// SearchSessions builds WWDC search URLs for a topic. Performance, Swift,
// and SwiftUI topics get a curated category list pointing at the session
// tracks most likely to cover them.
func SearchSessions(query string) SearchResult {
	encoded := url.QueryEscape(query)
	lower := strings.ToLower(query)

	result := SearchResult{
		Query: query,
		SearchURLs: map[string]string{
			"wwdcnotes":    fmt.Sprintf("%s/search?q=%s", notesBaseURL, encoded),
			"apple_videos": fmt.Sprintf("%s/search/?q=%s&type=Videos", appleBaseURL, encoded),
		},
	}

	switch {
	case containsAny(lower, "performance", "optimize", "fast", "memory"):
		result.Tip = "WWDC has extensive performance sessions not found in regular docs"
		result.Categories = []string{"Instruments", "App Performance", "Memory Management"}
	case strings.Contains(lower, "swiftui"):
		result.Categories = []string{"SwiftUI Essentials", "SwiftUI Layout", "SwiftUI Animation"}
	case strings.Contains(lower, "swift"):
		result.Categories = []string{"What's New in Swift", "Swift Concurrency"}
	}
	return result
}

// SessionInfo builds session links from an ID like "wwdc2023-10154" (a "/"
// separator is also accepted).
func SessionInfo(sessionID string) (Session, error) {
	normalized := strings.ReplaceAll(strings.ToLower(sessionID), "/", "-")
	parts := strings.Split(normalized, "-")
	if len(parts) < 2 || !strings.Contains(parts[0], "wwdc") {
		return Session{}, errors.ValidationError(errors.ErrCodeInvalidInput,
			"invalid session ID format").
			WithSuggestion("Use the format wwdc2023-10154")
	}

	year := strings.ReplaceAll(parts[0], "wwdc", "")
	number := parts[1]
	return Session{
		SessionID: fmt.Sprintf("wwdc%s-%s", year, number),
		URLs: map[string]string{
			"wwdcnotes":   fmt.Sprintf("%s/notes/wwdc%s/%s", notesBaseURL, year, number),
			"apple_video": fmt.Sprintf("%s/videos/play/wwdc%s/%s/", appleBaseURL, year, number),
		},
	}, nil
}

func containsAny(s string, substrings ...string) bool {
	for _, sub := range substrings {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}
