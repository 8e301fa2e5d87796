package mcp

import (
	"github.com/appledeepdocs/appledocsmcp/internal/appledocs"
	"github.com/appledeepdocs/appledocsmcp/internal/evolution"
	"github.com/appledeepdocs/appledocsmcp/internal/hig"
	"github.com/appledeepdocs/appledocsmcp/internal/localdocs"
	"github.com/appledeepdocs/appledocsmcp/internal/suggest"
	"github.com/appledeepdocs/appledocsmcp/internal/swiftrepos"
	"github.com/appledeepdocs/appledocsmcp/internal/wwdc"
)

// Local documentation tools.

// SearchDocsInput defines the input schema for the search_docs tool.
type SearchDocsInput struct {
	Query         string `json:"query" jsonschema:"search term to find in documentation, e.g. 'liquid glass' or 'TabBar'"`
	CaseSensitive bool   `json:"case_sensitive,omitempty" jsonschema:"whether to perform case-sensitive search, default false"`
}

// SearchDocsOutput defines the output schema for the search_docs tool.
type SearchDocsOutput struct {
	localdocs.SearchResponse
	Suggestions []suggest.Suggestion `json:"suggestions,omitempty"`
}

// GetDocumentInput defines the input schema for the get_document tool.
type GetDocumentInput struct {
	Name         string `json:"name" jsonschema:"document name, e.g. 'SwiftUI-Implementing-Liquid-Glass-Design'"`
	XcodeVersion string `json:"xcode_version,omitempty" jsonschema:"optional specific Xcode version, e.g. 'Xcode-26.0.0.app'"`
}

// GetDocumentOutput defines the output schema for the get_document tool.
type GetDocumentOutput struct {
	Name    string `json:"name"`
	Content string `json:"content" jsonschema:"full markdown content of the documentation file"`
}

// ListDocumentsInput defines the input schema for the list_documents tool.
type ListDocumentsInput struct {
	Filter string `json:"filter,omitempty" jsonschema:"optional filter string to match document names"`
}

// ListDocumentsOutput defines the output schema for the list_documents tool.
type ListDocumentsOutput struct {
	Documents []localdocs.DocumentSummary `json:"documents"`
	Total     int                         `json:"total"`
}

// XcodeVersionsInput defines the (empty) input schema for the
// get_xcode_versions tool.
type XcodeVersionsInput struct{}

// XcodeVersionsOutput defines the output schema for the get_xcode_versions
// tool.
type XcodeVersionsOutput struct {
	XcodeVersions []string `json:"xcode_versions"`
}

// Apple Developer documentation tools.

// FetchAppleDocInput defines the input schema for the
// fetch_apple_documentation tool.
type FetchAppleDocInput struct {
	URL string `json:"url" jsonschema:"Apple documentation URL, e.g. https://developer.apple.com/documentation/swiftui/view"`
}

// SearchAppleOnlineInput defines the input schema for the
// search_apple_online tool.
type SearchAppleOnlineInput struct {
	Query    string `json:"query" jsonschema:"search term, e.g. 'async await' or 'Int128'"`
	Platform string `json:"platform,omitempty" jsonschema:"optional platform filter: ios, macos, tvos, watchos, visionos"`
}

// LocalDocsSection summarizes local hits inside a combined online search.
type LocalDocsSection struct {
	Found   int                        `json:"found"`
	Results []localdocs.DocumentResult `json:"results"`
}

// SearchAppleOnlineOutput defines the output schema for the
// search_apple_online tool.
type SearchAppleOnlineOutput struct {
	Query       string                `json:"query"`
	Platform    string                `json:"platform,omitempty"`
	LocalDocs   LocalDocsSection      `json:"local_docs"`
	Online      appledocs.SearchLinks `json:"online"`
	Suggestions []suggest.Suggestion  `json:"suggestions,omitempty"`
}

// FrameworkInfoInput defines the input schema for the get_framework_info
// tool.
type FrameworkInfoInput struct {
	Framework string `json:"framework" jsonschema:"framework name, e.g. 'SwiftUI', 'UIKit', 'Core Data'"`
}

// Swift Evolution tools.

// SearchEvolutionInput defines the input schema for the
// search_swift_evolution tool.
type SearchEvolutionInput struct {
	Feature string `json:"feature" jsonschema:"feature, version, or status to search for, e.g. 'actors', 'Swift 6', 'rejected'"`
}

// SearchEvolutionOutput defines the output schema for the
// search_swift_evolution tool.
type SearchEvolutionOutput struct {
	evolution.SearchResult
	Suggestions []suggest.Suggestion `json:"suggestions,omitempty"`
}

// GetProposalInput defines the input schema for the
// get_swift_evolution_proposal tool.
type GetProposalInput struct {
	SENumber string `json:"se_number" jsonschema:"proposal number, e.g. 'SE-0413', '0413', or '413'"`
}

// GitHub repository tools.

// SearchReposInput defines the input schema for the search_swift_repos
// tool.
type SearchReposInput struct {
	Query string `json:"query" jsonschema:"question or search term, e.g. 'Can I use SPM for applications?'"`
}

// SearchReposOutput defines the output schema for the search_swift_repos
// tool.
type SearchReposOutput struct {
	swiftrepos.SearchLinks
	Suggestions []suggest.Suggestion `json:"suggestions,omitempty"`
}

// FetchGitHubFileInput defines the input schema for the fetch_github_file
// tool.
type FetchGitHubFileInput struct {
	URL string `json:"url" jsonschema:"GitHub file URL from the apple or swiftlang organizations"`
}

// WWDC tools.

// SearchWWDCInput defines the input schema for the search_wwdc_notes tool.
type SearchWWDCInput struct {
	Query string `json:"query" jsonschema:"topic to search WWDC sessions for"`
}

// SearchWWDCOutput defines the output schema for the search_wwdc_notes
// tool.
type SearchWWDCOutput struct {
	wwdc.SearchResult
	Suggestions []suggest.Suggestion `json:"suggestions,omitempty"`
}

// GetWWDCSessionInput defines the input schema for the get_wwdc_session
// tool.
type GetWWDCSessionInput struct {
	SessionID string `json:"session_id" jsonschema:"session ID in the format wwdc2023-10154"`
}

// Human Interface Guidelines tools.

// SearchHIGInput defines the input schema for the
// search_human_interface_guidelines tool.
type SearchHIGInput struct {
	Query    string `json:"query" jsonschema:"design topic, e.g. 'navigation', 'buttons', 'dark mode'"`
	Platform string `json:"platform,omitempty" jsonschema:"optional platform filter: ios, macos, tvos, watchos, visionos"`
}

// SearchHIGOutput defines the output schema for the
// search_human_interface_guidelines tool.
type SearchHIGOutput struct {
	hig.SearchResult
	Suggestions []suggest.Suggestion `json:"suggestions,omitempty"`
}

// ListHIGPlatformsInput defines the (empty) input schema for the
// list_human_interface_guidelines_platforms tool.
type ListHIGPlatformsInput struct{}

// ListHIGPlatformsOutput defines the output schema for the
// list_human_interface_guidelines_platforms tool.
type ListHIGPlatformsOutput struct {
	Platforms []hig.Platform `json:"platforms"`
}
