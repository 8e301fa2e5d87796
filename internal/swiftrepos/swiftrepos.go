// Package swiftrepos searches Apple's open-source Swift repositories on
// GitHub and fetches source files from them.
//
// Searching goes through GitHub's web search URLs rather than the API, so
// no authentication or rate-limit handling is needed. Fetching converts
// blob URLs to raw.githubusercontent.com and only allows the apple and
// swiftlang organizations.
package swiftrepos

import (
	"context"
	"fmt"
	"net/url"
	"path"
	"regexp"
	"strings"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/appledeepdocs/appledocsmcp/internal/errors"
	"github.com/appledeepdocs/appledocsmcp/internal/fetch"
)

// SearchLinks carries GitHub search URLs with different scopes.
type SearchLinks struct {
	Query      string            `json:"query"`
	SearchURLs map[string]string `json:"search_urls"`
	Note       string            `json:"note"`
	Tip        string            `json:"tip"`
}

// File is a fetched GitHub source file.
type File struct {
	Content  string `json:"content"`
	URL      string `json:"url"`
	RawURL   string `json:"raw_url"`
	Language string `json:"language"`
	Repo     string `json:"repo"`
	Path     string `json:"path"`
	Size     int    `json:"size"`
	Lines    int    `json:"lines"`
}

// blobURLRe and rawURLRe parse the two accepted GitHub URL shapes, pinned
// to the allowed organizations.
var (
	blobURLRe = regexp.MustCompile(`github\.com/(apple|swiftlang)/([^/]+)/blob/([^/]+)/(.+)`)
	rawURLRe  = regexp.MustCompile(`raw\.githubusercontent\.com/(apple|swiftlang)/([^/]+)/([^/]+)/(.+)`)
)

// Client searches and fetches from Apple's Swift repositories. Fetched
// files are kept in an LRU cache keyed by raw URL.
type Client struct {
	fetcher *fetch.Client
	cache   *lru.Cache[string, *File]
	// rawBase replaces the raw.githubusercontent.com origin; it exists so
	// tests can point fetches at a local server.
	rawBase string
}

// NewClient creates a Client caching up to cacheSize fetched files.
func NewClient(fetcher *fetch.Client, cacheSize int) (*Client, error) {
	cache, err := lru.New[string, *File](cacheSize)
	if err != nil {
		return nil, errors.New(errors.ErrCodeInternal, "failed to create file cache", err)
	}
	return &Client{
		fetcher: fetcher,
		cache:   cache,
		rawBase: "https://raw.githubusercontent.com",
	}, nil
}

// SearchRepos builds GitHub search URLs scoped to the apple and swiftlang
// organizations.
func SearchRepos(query string) SearchLinks {
	encoded := url.QueryEscape(query)
	orgs := "+org:apple+org:swiftlang"

	return SearchLinks{
		Query: query,
		SearchURLs: map[string]string{
			"github_search": fmt.Sprintf("https://github.com/search?q=%s%s&type=code", encoded, orgs),
			"swift_code":    fmt.Sprintf("https://github.com/search?q=%s+language:Swift%s&type=code", encoded, orgs),
			"repositories":  fmt.Sprintf("https://github.com/search?q=%s%s&type=repositories", encoded, orgs),
			"issues":        fmt.Sprintf("https://github.com/search?q=%s%s&type=issues", encoded, orgs),
			"apple_org":     fmt.Sprintf("https://github.com/search?q=%s+org:apple&type=code", encoded),
			"swiftlang_org": fmt.Sprintf("https://github.com/search?q=%s+org:swiftlang&type=code", encoded),
		},
		Note: "GitHub's search algorithm will automatically find relevant code, types, and discussions.",
		Tip:  "Start with \"github_search\" - it searches across code, comments, and documentation. Use \"repositories\" to find relevant projects.",
	}
}

// FetchFile fetches a source file from a GitHub blob or raw URL. Only the
// apple and swiftlang organizations are accepted.
func (c *Client) FetchFile(ctx context.Context, fileURL string) (*File, error) {
	info, ok := parseGitHubURL(fileURL)
	if !ok {
		return nil, errors.ValidationError(errors.ErrCodeInvalidURL,
			"URL must be a file in the github.com/apple or github.com/swiftlang organizations").
			WithDetail("url", fileURL).
			WithSuggestion("Example: https://github.com/apple/swift/blob/main/stdlib/public/Concurrency/Task.swift")
	}

	rawURL := fmt.Sprintf("%s/%s/%s/%s/%s", c.rawBase, info.org, info.repo, info.branch, info.path)
	if file, found := c.cache.Get(rawURL); found {
		return file, nil
	}

	content, err := c.fetcher.GetText(ctx, rawURL)
	if err != nil {
		return nil, err
	}

	file := &File{
		Content:  content,
		URL:      fileURL,
		RawURL:   rawURL,
		Language: detectLanguage(info.path),
		Repo:     info.org + "/" + info.repo,
		Path:     info.path,
		Size:     len(content),
		Lines:    strings.Count(content, "\n") + 1,
	}
	c.cache.Add(rawURL, file)
	return file, nil
}

type githubFile struct {
	org    string
	repo   string
	branch string
	path   string
}

func parseGitHubURL(fileURL string) (githubFile, bool) {
	for _, re := range []*regexp.Regexp{blobURLRe, rawURLRe} {
		if m := re.FindStringSubmatch(fileURL); m != nil {
			return githubFile{org: m[1], repo: m[2], branch: m[3], path: m[4]}, true
		}
	}
	return githubFile{}, false
}

// detectLanguage maps a file extension to a display language.
func detectLanguage(filePath string) string {
	switch path.Ext(filePath) {
	case ".swift":
		return "swift"
	case ".md":
		return "markdown"
	case ".py":
		return "python"
	case ".cpp", ".cc", ".cxx":
		return "cpp"
	case ".c":
		return "c"
	case ".h", ".hpp":
		return "header"
	case ".json":
		return "json"
	case ".yaml", ".yml":
		return "yaml"
	case ".sh":
		return "shell"
	case ".txt":
		return "text"
	default:
		return "unknown"
	}
}
