package mcp

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/appledeepdocs/appledocsmcp/internal/appledocs"
	"github.com/appledeepdocs/appledocsmcp/internal/config"
	docerrors "github.com/appledeepdocs/appledocsmcp/internal/errors"
	"github.com/appledeepdocs/appledocsmcp/internal/evolution"
	"github.com/appledeepdocs/appledocsmcp/internal/fetch"
	"github.com/appledeepdocs/appledocsmcp/internal/localdocs"
	"github.com/appledeepdocs/appledocsmcp/internal/swiftrepos"
)

func newTestServer(t *testing.T) *Server {
	t.Helper()

	dir := t.TempDir()
	write := func(name, content string) {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name+".md"), []byte(content), 0o644))
	}
	write("liquid-glass", "# Liquid Glass\nGlass morphism guidance for views.")
	write("concurrency", "Actors isolate state from data races.")

	index := localdocs.Build(
		[]localdocs.Root{{Path: dir, Tag: "Xcode-26.0.0.app"}},
		localdocs.DefaultOptions(), nil)

	fetcher := fetch.NewClient()
	repos, err := swiftrepos.NewClient(fetcher, 10)
	require.NoError(t, err)

	srv, err := NewServer(
		index,
		appledocs.NewClient(fetcher, 10, time.Minute),
		evolution.NewClient(fetcher, time.Minute),
		repos,
		config.NewConfig(),
		nil)
	require.NoError(t, err)
	return srv
}

func TestNewServer_RequiresIndex(t *testing.T) {
	fetcher := fetch.NewClient()
	repos, err := swiftrepos.NewClient(fetcher, 10)
	require.NoError(t, err)

	_, err = NewServer(nil,
		appledocs.NewClient(fetcher, 10, time.Minute),
		evolution.NewClient(fetcher, time.Minute),
		repos, nil, nil)
	assert.Error(t, err)
}

func TestHandleSearchDocs(t *testing.T) {
	srv := newTestServer(t)

	_, out, err := srv.handleSearchDocs(context.Background(), nil,
		SearchDocsInput{Query: "glass"})
	require.NoError(t, err)

	require.Equal(t, 1, out.TotalResults)
	result := out.Results[0]
	assert.Equal(t, "liquid-glass", result.Document)
	assert.Equal(t, "Xcode-26.0.0.app", result.XcodeVersion)
	// Filename match first, then content matches.
	assert.Equal(t, localdocs.MatchFilename, result.Matches[0].Type)
}

func TestHandleSearchDocs_RejectsEmptyQuery(t *testing.T) {
	srv := newTestServer(t)

	_, _, err := srv.handleSearchDocs(context.Background(), nil,
		SearchDocsInput{Query: "   "})
	require.Error(t, err)

	var mcpErr *MCPError
	require.ErrorAs(t, err, &mcpErr)
	assert.Equal(t, ErrCodeInvalidParams, mcpErr.Code)
}

func TestHandleSearchDocs_SuggestionsOnNoResults(t *testing.T) {
	srv := newTestServer(t)

	_, out, err := srv.handleSearchDocs(context.Background(), nil,
		SearchDocsInput{Query: "zebra"})
	require.NoError(t, err)

	assert.Zero(t, out.TotalResults)
	require.NotEmpty(t, out.Suggestions)
	assert.Equal(t, "search_apple_online", out.Suggestions[0].Tool)
}

func TestHandleGetDocument(t *testing.T) {
	srv := newTestServer(t)

	_, out, err := srv.handleGetDocument(context.Background(), nil,
		GetDocumentInput{Name: "concurrency"})
	require.NoError(t, err)
	assert.Contains(t, out.Content, "Actors isolate state")
}

func TestHandleGetDocument_RejectsTraversal(t *testing.T) {
	srv := newTestServer(t)

	for _, name := range []string{"../secrets", "a/b", `a\b`, ""} {
		_, _, err := srv.handleGetDocument(context.Background(), nil,
			GetDocumentInput{Name: name})
		require.Error(t, err, name)

		var mcpErr *MCPError
		require.ErrorAs(t, err, &mcpErr)
		assert.Equal(t, ErrCodeInvalidParams, mcpErr.Code)
	}
}

func TestHandleListDocuments(t *testing.T) {
	srv := newTestServer(t)

	_, out, err := srv.handleListDocuments(context.Background(), nil, ListDocumentsInput{})
	require.NoError(t, err)
	assert.Equal(t, 2, out.Total)

	_, filtered, err := srv.handleListDocuments(context.Background(), nil,
		ListDocumentsInput{Filter: "LIQUID"})
	require.NoError(t, err)
	require.Equal(t, 1, filtered.Total)
	assert.Equal(t, "liquid-glass", filtered.Documents[0].Name)
}

func TestHandleXcodeVersions(t *testing.T) {
	srv := newTestServer(t)

	_, out, err := srv.handleXcodeVersions(context.Background(), nil, XcodeVersionsInput{})
	require.NoError(t, err)
	assert.Equal(t, []string{"Xcode-26.0.0.app"}, out.XcodeVersions)
}

func TestHandleSearchAppleOnline_CombinesLocalAndOnline(t *testing.T) {
	srv := newTestServer(t)

	_, out, err := srv.handleSearchAppleOnline(context.Background(), nil,
		SearchAppleOnlineInput{Query: "glass", Platform: "iOS"})
	require.NoError(t, err)

	assert.Equal(t, "ios", out.Platform)
	assert.Equal(t, 1, out.LocalDocs.Found)
	require.Len(t, out.LocalDocs.Results, 1)
	assert.Contains(t, out.Online.SearchURLs["google"], "site:developer.apple.com")
}

func TestHandleSearchAppleOnline_RejectsUnknownPlatform(t *testing.T) {
	srv := newTestServer(t)

	_, _, err := srv.handleSearchAppleOnline(context.Background(), nil,
		SearchAppleOnlineInput{Query: "glass", Platform: "windows"})
	require.Error(t, err)

	var mcpErr *MCPError
	require.ErrorAs(t, err, &mcpErr)
	assert.Equal(t, ErrCodeInvalidParams, mcpErr.Code)
}

func TestHandleFrameworkInfo(t *testing.T) {
	srv := newTestServer(t)

	_, out, err := srv.handleFrameworkInfo(context.Background(), nil,
		FrameworkInfoInput{Framework: "SwiftUI"})
	require.NoError(t, err)
	assert.Equal(t, "https://developer.apple.com/documentation/swiftui", out.URL)

	_, _, err = srv.handleFrameworkInfo(context.Background(), nil, FrameworkInfoInput{})
	assert.Error(t, err)
}

func TestHandleGetProposal_RequiresNumber(t *testing.T) {
	srv := newTestServer(t)

	_, _, err := srv.handleGetProposal(context.Background(), nil, GetProposalInput{})
	require.Error(t, err)

	var mcpErr *MCPError
	require.ErrorAs(t, err, &mcpErr)
	assert.Equal(t, ErrCodeInvalidParams, mcpErr.Code)
}

func TestHandleSearchRepos(t *testing.T) {
	srv := newTestServer(t)

	_, out, err := srv.handleSearchRepos(context.Background(), nil,
		SearchReposInput{Query: "property wrappers"})
	require.NoError(t, err)
	assert.Len(t, out.SearchURLs, 6)
}

func TestHandleFetchGitHubFile_RejectsForeignOrg(t *testing.T) {
	srv := newTestServer(t)

	_, _, err := srv.handleFetchGitHubFile(context.Background(), nil,
		FetchGitHubFileInput{URL: "https://github.com/evil/repo/blob/main/x.swift"})
	require.Error(t, err)

	var mcpErr *MCPError
	require.ErrorAs(t, err, &mcpErr)
	assert.Equal(t, ErrCodeInvalidParams, mcpErr.Code)
}

func TestHandleWWDCTools(t *testing.T) {
	srv := newTestServer(t)

	_, search, err := srv.handleSearchWWDC(context.Background(), nil,
		SearchWWDCInput{Query: "swiftui animation"})
	require.NoError(t, err)
	assert.Contains(t, search.SearchURLs["wwdcnotes"], "wwdcnotes.com/search")

	_, session, err := srv.handleGetWWDCSession(context.Background(), nil,
		GetWWDCSessionInput{SessionID: "wwdc2024-10101"})
	require.NoError(t, err)
	assert.Equal(t, "wwdc2024-10101", session.SessionID)

	_, _, err = srv.handleGetWWDCSession(context.Background(), nil,
		GetWWDCSessionInput{SessionID: "nope"})
	assert.Error(t, err)
}

func TestHandleHIGTools(t *testing.T) {
	srv := newTestServer(t)

	_, search, err := srv.handleSearchHIG(context.Background(), nil,
		SearchHIGInput{Query: "navigation", Platform: "ios"})
	require.NoError(t, err)
	assert.Contains(t, search.PlatformURL, "/platforms/ios")

	_, platforms, err := srv.handleListHIGPlatforms(context.Background(), nil, ListHIGPlatformsInput{})
	require.NoError(t, err)
	assert.Len(t, platforms.Platforms, 5)
}

func TestMapError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode int
	}{
		{"validation", docerrors.New(docerrors.ErrCodeQueryEmpty, "empty", nil), ErrCodeInvalidParams},
		{"timeout", docerrors.New(docerrors.ErrCodeNetworkTimeout, "slow", nil), ErrCodeTimeout},
		{"unreachable", docerrors.New(docerrors.ErrCodeNetworkUnavailable, "down", nil), ErrCodeUpstreamFailed},
		{"upstream status", docerrors.New(docerrors.ErrCodeUpstreamStatus, "404", nil), ErrCodeUpstreamFailed},
		{"doc missing", docerrors.New(docerrors.ErrCodeDocNotFound, "gone", nil), ErrCodeNotFound},
		{"config", docerrors.New(docerrors.ErrCodeNoDocRoots, "no docs", nil), ErrCodeDocsUnavailable},
		{"context deadline", context.DeadlineExceeded, ErrCodeTimeout},
		{"plain", assert.AnError, ErrCodeInternalError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mapped := MapError(tt.err)
			require.NotNil(t, mapped)
			assert.Equal(t, tt.wantCode, mapped.Code)
		})
	}
}

func TestMapError_IncludesSuggestion(t *testing.T) {
	err := docerrors.New(docerrors.ErrCodeNoDocRoots, "no Xcode documentation found", nil).
		WithSuggestion("Set XCODE_DOC_PATH to a documentation folder")

	mapped := MapError(err)
	assert.Contains(t, mapped.Message, "XCODE_DOC_PATH")
}

func TestMapError_NilIsNil(t *testing.T) {
	assert.Nil(t, MapError(nil))
}
