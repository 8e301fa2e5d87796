// Package appledocs fetches and parses Apple Developer documentation
// through the JSON endpoints backing developer.apple.com pages.
package appledocs

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	lru "github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/appledeepdocs/appledocsmcp/internal/errors"
	"github.com/appledeepdocs/appledocsmcp/internal/fetch"
	"github.com/appledeepdocs/appledocsmcp/internal/validation"
)

const defaultBaseURL = "https://developer.apple.com"

// Documentation is the parsed form of one documentation page.
type Documentation struct {
	Title       string      `json:"title"`
	Abstract    string      `json:"abstract"`
	Declaration string      `json:"declaration"`
	Discussion  string      `json:"discussion"`
	Parameters  []Parameter `json:"parameters"`
	Returns     string      `json:"returns"`
	URL         string      `json:"url"`
	JSONURL     string      `json:"json_url"`
}

// Parameter is one documented parameter.
type Parameter struct {
	Name    string `json:"name"`
	Content string `json:"content"`
}

// SearchLinks carries generated documentation search URLs.
type SearchLinks struct {
	Query      string            `json:"query"`
	Platform   string            `json:"platform,omitempty"`
	SearchURLs map[string]string `json:"search_urls"`
}

// FrameworkInfo is a direct link to a framework's documentation page.
type FrameworkInfo struct {
	Name string `json:"name"`
	URL  string `json:"url"`
	Note string `json:"note"`
}

// Client fetches Apple documentation pages. Parsed pages are cached with a
// TTL so repeated lookups of the same symbol stay off the network.
type Client struct {
	fetcher *fetch.Client
	cache   *lru.LRU[string, *Documentation]
	baseURL string
}

// NewClient creates a Client. cacheSize bounds the number of cached pages
// and ttl bounds their freshness.
func NewClient(fetcher *fetch.Client, cacheSize int, ttl time.Duration) *Client {
	return &Client{
		fetcher: fetcher,
		cache:   lru.NewLRU[string, *Documentation](cacheSize, nil, ttl),
		baseURL: defaultBaseURL,
	}
}

// docPayload mirrors the slice of Apple's documentation JSON we consume.
type docPayload struct {
	Metadata struct {
		Title string `json:"title"`
	} `json:"metadata"`
	Abstract               []inlineText     `json:"abstract"`
	PrimaryContentSections []contentSection `json:"primaryContentSections"`
	Sections               []pageSection    `json:"sections"`
}

type inlineText struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

type contentSection struct {
	Kind         string `json:"kind"`
	Declarations []struct {
		Tokens []inlineText `json:"tokens"`
	} `json:"declarations"`
	Content []struct {
		Type          string       `json:"type"`
		InlineContent []inlineText `json:"inlineContent"`
	} `json:"content"`
}

type pageSection struct {
	Title string `json:"title"`
	Items []struct {
		Name    string       `json:"name"`
		Content []inlineText `json:"content"`
	} `json:"items"`
	Content []inlineText `json:"content"`
}

// FetchDocumentation fetches and parses the documentation page behind an
// Apple documentation URL. The primary JSON endpoint is tried first, then
// the older data.json layout.
func (c *Client) FetchDocumentation(ctx context.Context, pageURL string) (*Documentation, error) {
	if err := validation.AppleDocURL(pageURL); err != nil {
		return nil, err
	}

	path := strings.TrimSuffix(strings.SplitN(pageURL, "/documentation/", 2)[1], "/")

	primary := fmt.Sprintf("%s/tutorials/data/documentation/%s.json", c.baseURL, path)
	fallback := fmt.Sprintf("%s/documentation/%s/data.json", c.baseURL, path)

	if doc, ok := c.cache.Get(primary); ok {
		return doc, nil
	}
	if doc, ok := c.cache.Get(fallback); ok {
		return doc, nil
	}

	jsonURL := primary
	var payload docPayload
	err := c.fetcher.GetJSON(ctx, jsonURL, &payload)
	if err != nil {
		jsonURL = fallback
		payload = docPayload{}
		if ferr := c.fetcher.GetJSON(ctx, jsonURL, &payload); ferr != nil {
			return nil, errors.Wrap(errors.ErrCodeUpstreamStatus, err).
				WithDetail("url", pageURL).
				WithSuggestion("Check that the URL is correct and the page exists")
		}
	}

	doc := parsePayload(&payload)
	doc.URL = pageURL
	doc.JSONURL = jsonURL
	c.cache.Add(jsonURL, doc)
	return doc, nil
}

func parsePayload(payload *docPayload) *Documentation {
	doc := &Documentation{Title: "Unknown"}
	if payload.Metadata.Title != "" {
		doc.Title = payload.Metadata.Title
	}

	for _, item := range payload.Abstract {
		if item.Type == "text" {
			doc.Abstract += item.Text
		}
	}

	for _, section := range payload.PrimaryContentSections {
		switch section.Kind {
		case "declarations":
			// Declarations arrive tokenized for syntax highlighting;
			// concatenating the tokens restores the signature.
			for _, decl := range section.Declarations {
				for _, token := range decl.Tokens {
					doc.Declaration += token.Text
				}
			}
		case "content":
			for _, content := range section.Content {
				if content.Type != "paragraph" {
					continue
				}
				for _, inline := range content.InlineContent {
					doc.Discussion += inline.Text
				}
			}
		}
	}

	for _, section := range payload.Sections {
		switch section.Title {
		case "Parameters":
			for _, item := range section.Items {
				doc.Parameters = append(doc.Parameters, Parameter{
					Name:    item.Name,
					Content: joinText(item.Content),
				})
			}
		case "Return Value":
			doc.Returns = joinText(section.Content)
		}
	}
	return doc
}

func joinText(items []inlineText) string {
	var b strings.Builder
	for _, item := range items {
		b.WriteString(item.Text)
	}
	return b.String()
}

// SearchOnline builds documentation search URLs for a query, optionally
// biased toward one platform.
func (c *Client) SearchOnline(query, platform string) SearchLinks {
	encoded := url.QueryEscape(query)

	urls := map[string]string{
		"apple_direct": fmt.Sprintf("%s/documentation/technologies?filter=%s", defaultBaseURL, encoded),
		"google":       "https://www.google.com/search?q=site:developer.apple.com+" + encoded,
		"github":       fmt.Sprintf("https://github.com/search?q=%s+language:swift&type=code", encoded),
	}
	if platform != "" {
		urls["apple_direct"] += "+" + platform
		urls["google"] += "+" + platform
	}

	return SearchLinks{Query: query, Platform: platform, SearchURLs: urls}
}

// GetFrameworkInfo builds the documentation link for a framework name.
// Spaces and hyphens are dropped to match Apple's URL scheme ("Core Data"
// becomes "coredata").
func (c *Client) GetFrameworkInfo(framework string) FrameworkInfo {
	path := strings.ToLower(framework)
	path = strings.ReplaceAll(path, " ", "")
	path = strings.ReplaceAll(path, "-", "")

	return FrameworkInfo{
		Name: framework,
		URL:  fmt.Sprintf("%s/documentation/%s", defaultBaseURL, path),
		Note: "Direct link to framework documentation",
	}
}
