package localdocs

// Root is one discovered documentation root.
type Root struct {
	// Path is the directory containing the markdown documents.
	Path string
	// Tag identifies the owning Xcode installation (e.g., "Xcode-26.0.0.app").
	Tag string
}

// DocKey uniquely identifies a document within the index. The same document
// name may appear under several Xcode versions; the pair is what is unique.
type DocKey struct {
	XcodeVersion string
	Name         string
}

// Document holds the indexed metadata for one markdown file. Full text is
// kept separately in the index content map.
type Document struct {
	// Name is the file's stem (base name without the .md extension).
	Name string
	// Path is the absolute path of the source file, kept for disk fallback.
	Path string
	// Size is the file size in bytes.
	Size int64
	// XcodeVersion is the tag of the owning installation.
	XcodeVersion string
	// Topics are up to MaxTopics heading titles from the document prefix.
	Topics []string
}

// MatchType distinguishes where a query matched.
type MatchType string

const (
	// MatchFilename indicates the query matched the document name.
	MatchFilename MatchType = "filename"
	// MatchContent indicates the query matched the document body.
	MatchContent MatchType = "content"
)

// Match is a single query hit inside one document.
type Match struct {
	// Type is filename or content.
	Type MatchType `json:"type"`
	// Context is the document name for filename matches, or the
	// whitespace-normalized text surrounding a content match.
	Context string `json:"context"`
	// Position is the byte offset of a content match start, present for
	// every content match (including offset zero) and absent for filename
	// matches.
	Position *int `json:"position,omitempty"`
}

// DocumentResult is one document's entry in a search response.
type DocumentResult struct {
	Document     string  `json:"document"`
	XcodeVersion string  `json:"xcode_version"`
	Matches      []Match `json:"matches"`
	TotalMatches int     `json:"total_matches"`

	// filenameHit marks a document whose name matched the query; it only
	// drives ranking and never leaves the package.
	filenameHit bool
}

// SearchResponse is the ranked result of a search.
type SearchResponse struct {
	Query string `json:"query"`
	// TotalResults counts matching documents before truncation.
	TotalResults int              `json:"total_results"`
	Results      []DocumentResult `json:"results"`
}

// DocumentSummary is one entry in the deduplicated catalog listing.
type DocumentSummary struct {
	Name   string   `json:"name"`
	Topics []string `json:"topics"`
	Size   int64    `json:"size"`
	// XcodeVersions lists every installation shipping this document,
	// sorted and unique.
	XcodeVersions []string `json:"xcode_versions"`
}

// Options tunes index construction and search behavior.
type Options struct {
	// ContextWindow is the total number of context bytes captured around
	// a content match, split evenly before and after it.
	ContextWindow int
	// MaxMatchesPerDoc caps filename + content matches per document.
	MaxMatchesPerDoc int
	// MaxDocResults caps the documents returned from one search.
	MaxDocResults int
	// MaxTopics caps heading-derived topics per document.
	MaxTopics int
	// TopicPreviewBytes is how much of the document prefix is scanned
	// for topic headings.
	TopicPreviewBytes int
}

// DefaultOptions returns the standard tuning values.
func DefaultOptions() Options {
	return Options{
		ContextWindow:     100,
		MaxMatchesPerDoc:  5,
		MaxDocResults:     20,
		MaxTopics:         5,
		TopicPreviewBytes: 500,
	}
}
