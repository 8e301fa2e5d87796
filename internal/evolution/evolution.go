// Package evolution searches Swift Evolution proposals using the official
// swift.org JSON feed.
package evolution

import (
	"context"
	"fmt"
	"regexp"
	"sort"
	"strings"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/appledeepdocs/appledocsmcp/internal/fetch"
)

const (
	// DefaultFeedURL is the official swift.org proposal feed.
	DefaultFeedURL = "https://download.swift.org/swift-evolution/v1/evolution.json"

	githubWebBase = "https://github.com/swiftlang/swift-evolution"
	githubRawBase = "https://raw.githubusercontent.com/swiftlang/swift-evolution/main/proposals"

	// Relevance scoring weights.
	scoreExactVersion   = 100
	scorePartialVersion = 50
	scoreStatus         = 15
	scoreTitle          = 10
	scoreSummary        = 5

	maxResults        = 20
	summaryTruncateAt = 200
)

// swiftVersionRe extracts a version from queries like "swift 6" or
// "Swift 6.1".
var swiftVersionRe = regexp.MustCompile(`swift\s*(\d+\.?\d*)`)

// feed mirrors the evolution.json document.
type feed struct {
	Proposals              []proposal `json:"proposals"`
	ImplementationVersions []string   `json:"implementationVersions"`
}

type proposal struct {
	ID      string `json:"id"`
	Title   string `json:"title"`
	Summary string `json:"summary"`
	Link    string `json:"link"`
	Status  struct {
		State   string `json:"state"`
		Version string `json:"version"`
	} `json:"status"`
	Authors []struct {
		Name string `json:"name"`
	} `json:"authors"`
}

// ProposalSummary is one search hit.
type ProposalSummary struct {
	SENumber       string `json:"se_number"`
	Title          string `json:"title"`
	Status         string `json:"status"`
	Version        string `json:"version"`
	Summary        string `json:"summary"`
	GitHubURL      string `json:"github_url"`
	RelevanceScore int    `json:"relevance_score"`
}

// SearchResult is the response to a proposal search.
type SearchResult struct {
	Feature           string            `json:"feature"`
	TotalFound        int               `json:"total_found"`
	Proposals         []ProposalSummary `json:"proposals"`
	AvailableVersions []string          `json:"available_versions"`
}

// Proposal is the detailed view of one proposal.
type Proposal struct {
	SENumber    string   `json:"se_number"`
	Title       string   `json:"title"`
	Status      string   `json:"status"`
	Version     string   `json:"version"`
	Summary     string   `json:"summary"`
	Authors     []string `json:"authors"`
	GitHubURL   string   `json:"github_url"`
	RawURL      string   `json:"raw_url"`
	SwiftOrgURL string   `json:"swift_org_url"`
}

// Client searches the proposal feed. The feed is cached with a TTL and
// concurrent refreshes are collapsed into a single fetch.
type Client struct {
	fetcher *fetch.Client
	feedURL string
	ttl     time.Duration

	group singleflight.Group

	mu        sync.RWMutex
	cached    *feed
	fetchedAt time.Time
}

// NewClient creates a Client reading from the official swift.org feed.
func NewClient(fetcher *fetch.Client, ttl time.Duration) *Client {
	return &Client{
		fetcher: fetcher,
		feedURL: DefaultFeedURL,
		ttl:     ttl,
	}
}

// loadFeed returns the cached feed, refreshing it when stale. Concurrent
// callers share one in-flight fetch.
func (c *Client) loadFeed(ctx context.Context) (*feed, error) {
	c.mu.RLock()
	if c.cached != nil && time.Since(c.fetchedAt) < c.ttl {
		cached := c.cached
		c.mu.RUnlock()
		return cached, nil
	}
	c.mu.RUnlock()

	result, err, _ := c.group.Do("feed", func() (any, error) {
		var fresh feed
		if err := c.fetcher.GetJSON(ctx, c.feedURL, &fresh); err != nil {
			return nil, err
		}
		c.mu.Lock()
		c.cached = &fresh
		c.fetchedAt = time.Now()
		c.mu.Unlock()
		return &fresh, nil
	})
	if err != nil {
		return nil, err
	}
	return result.(*feed), nil
}

// SearchProposals searches proposals by feature name, Swift version, or
// status, returning the top matches by relevance score.
func (c *Client) SearchProposals(ctx context.Context, feature string) (*SearchResult, error) {
	data, err := c.loadFeed(ctx)
	if err != nil {
		return nil, err
	}

	lower := strings.ToLower(feature)
	var searchVersion string
	if m := swiftVersionRe.FindStringSubmatch(lower); m != nil {
		searchVersion = m[1]
	}

	var results []ProposalSummary
	for _, p := range data.Proposals {
		score := 0

		if searchVersion != "" {
			switch {
			case p.Status.Version == searchVersion:
				score += scoreExactVersion
			case p.Status.Version != "" && strings.HasPrefix(p.Status.Version, searchVersion):
				score += scorePartialVersion
			}
		}
		if strings.Contains(strings.ToLower(p.Title), lower) {
			score += scoreTitle
		}
		if strings.Contains(strings.ToLower(p.Summary), lower) {
			score += scoreSummary
		}
		if strings.Contains(strings.ToLower(p.Status.State), lower) {
			score += scoreStatus
		}
		if score == 0 {
			continue
		}

		results = append(results, ProposalSummary{
			SENumber:       p.ID,
			Title:          p.Title,
			Status:         stateOrUnknown(p.Status.State),
			Version:        versionOrNA(p.Status.Version),
			Summary:        truncateSummary(p.Summary),
			GitHubURL:      fmt.Sprintf("%s/blob/main/proposals/%s", githubWebBase, p.Link),
			RelevanceScore: score,
		})
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].RelevanceScore > results[j].RelevanceScore
	})

	total := len(results)
	if total > maxResults {
		results = results[:maxResults]
	}
	return &SearchResult{
		Feature:           feature,
		TotalFound:        total,
		Proposals:         results,
		AvailableVersions: data.ImplementationVersions,
	}, nil
}

// GetProposal returns one proposal by SE number. Accepts "SE-0413", "0413",
// and "413"; short forms are zero-padded. A nil Proposal with nil error
// means the number is unknown.
func (c *Client) GetProposal(ctx context.Context, seNumber string) (*Proposal, error) {
	data, err := c.loadFeed(ctx)
	if err != nil {
		return nil, err
	}

	normalized := NormalizeSENumber(seNumber)
	for _, p := range data.Proposals {
		if !strings.EqualFold(p.ID, normalized) {
			continue
		}
		authors := make([]string, 0, len(p.Authors))
		for _, a := range p.Authors {
			name := a.Name
			if name == "" {
				name = "Unknown"
			}
			authors = append(authors, name)
		}
		return &Proposal{
			SENumber:    p.ID,
			Title:       p.Title,
			Status:      stateOrUnknown(p.Status.State),
			Version:     versionOrNA(p.Status.Version),
			Summary:     p.Summary,
			Authors:     authors,
			GitHubURL:   fmt.Sprintf("%s/blob/main/proposals/%s", githubWebBase, p.Link),
			RawURL:      fmt.Sprintf("%s/%s", githubRawBase, p.Link),
			SwiftOrgURL: fmt.Sprintf("https://www.swift.org/swift-evolution/#?id=%s", p.ID),
		}, nil
	}
	return nil, nil
}

// NormalizeSENumber converts a proposal number to the canonical SE-XXXX
// form.
func NormalizeSENumber(seNumber string) string {
	normalized := strings.ToUpper(strings.TrimSpace(seNumber))
	if strings.HasPrefix(normalized, "SE-") {
		return normalized
	}
	for len(normalized) < 4 {
		normalized = "0" + normalized
	}
	return "SE-" + normalized
}

func truncateSummary(summary string) string {
	if len(summary) > summaryTruncateAt {
		return summary[:summaryTruncateAt] + "..."
	}
	return summary
}

func stateOrUnknown(state string) string {
	if state == "" {
		return "unknown"
	}
	return state
}

func versionOrNA(version string) string {
	if version == "" {
		return "N/A"
	}
	return version
}
