// Package mcp implements the Model Context Protocol server for
// appledocsmcp.
package mcp

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/appledeepdocs/appledocsmcp/internal/appledocs"
	"github.com/appledeepdocs/appledocsmcp/internal/config"
	"github.com/appledeepdocs/appledocsmcp/internal/evolution"
	"github.com/appledeepdocs/appledocsmcp/internal/hig"
	"github.com/appledeepdocs/appledocsmcp/internal/localdocs"
	"github.com/appledeepdocs/appledocsmcp/internal/suggest"
	"github.com/appledeepdocs/appledocsmcp/internal/swiftrepos"
	"github.com/appledeepdocs/appledocsmcp/internal/validation"
	"github.com/appledeepdocs/appledocsmcp/internal/wwdc"
	"github.com/appledeepdocs/appledocsmcp/pkg/version"
)

// onlineLocalResultCap limits how many local hits a combined online search
// embeds alongside the generated URLs.
const onlineLocalResultCap = 5

// Server is the MCP server for appledocsmcp. It bridges AI clients with the
// local documentation index and the upstream documentation sources.
type Server struct {
	mcp       *mcp.Server
	index     *localdocs.Index
	appleDocs *appledocs.Client
	proposals *evolution.Client
	repos     *swiftrepos.Client
	suggester *suggest.Engine
	config    *config.Config
	logger    *slog.Logger
}

// NewServer creates a new MCP server over an already-built documentation
// index.
func NewServer(index *localdocs.Index, appleDocs *appledocs.Client, proposals *evolution.Client, repos *swiftrepos.Client, cfg *config.Config, logger *slog.Logger) (*Server, error) {
	if index == nil {
		return nil, errors.New("documentation index is required")
	}
	if appleDocs == nil || proposals == nil || repos == nil {
		return nil, errors.New("upstream clients are required")
	}
	if cfg == nil {
		cfg = config.NewConfig()
	}
	if logger == nil {
		logger = slog.Default()
	}

	s := &Server{
		index:     index,
		appleDocs: appleDocs,
		proposals: proposals,
		repos:     repos,
		suggester: suggest.NewEngine(),
		config:    cfg,
		logger:    logger,
	}

	s.mcp = mcp.NewServer(
		&mcp.Implementation{
			Name:    cfg.Server.Name,
			Version: version.Version,
		},
		nil,
	)
	s.registerTools()

	return s, nil
}

// MCPServer returns the underlying MCP server instance.
func (s *Server) MCPServer() *mcp.Server {
	return s.mcp
}

// Serve starts the server with the specified transport.
func (s *Server) Serve(ctx context.Context, transport string) error {
	s.logger.Info("starting MCP server",
		slog.String("transport", transport),
		slog.Int("documents", s.index.DocumentCount()),
		slog.Int("installations", len(s.index.Roots())))

	switch transport {
	case "stdio":
		err := s.mcp.Run(ctx, &mcp.StdioTransport{})
		if err != nil && err != context.Canceled {
			s.logger.Error("MCP server stopped with error",
				slog.String("error", err.Error()))
		} else {
			s.logger.Info("MCP server stopped gracefully")
		}
		return err
	default:
		return fmt.Errorf("unknown transport: %s (supported: stdio)", transport)
	}
}

// registerTools registers all tools with the MCP server.
func (s *Server) registerTools() {
	mcp.AddTool(s.mcp, &mcp.Tool{
		Name:        "search_docs",
		Description: "Search Xcode's hidden local documentation for design patterns and implementation guides: Liquid Glass design, advanced SwiftUI patterns, framework details not in public docs, performance and accessibility guides.",
	}, s.handleSearchDocs)

	mcp.AddTool(s.mcp, &mcp.Tool{
		Name:        "get_document",
		Description: "Retrieve full content of a local Xcode documentation file by name, optionally from a specific Xcode version.",
	}, s.handleGetDocument)

	mcp.AddTool(s.mcp, &mcp.Tool{
		Name:        "list_documents",
		Description: "List all available Xcode hidden documentation files with names, topics, sizes, and the Xcode versions shipping them.",
	}, s.handleListDocuments)

	mcp.AddTool(s.mcp, &mcp.Tool{
		Name:        "get_xcode_versions",
		Description: "Get the list of installed Xcode versions with hidden documentation.",
	}, s.handleXcodeVersions)

	mcp.AddTool(s.mcp, &mcp.Tool{
		Name:        "fetch_apple_documentation",
		Description: "Fetch and parse structured documentation (title, abstract, declaration, discussion, parameters) from an Apple Developer documentation URL.",
	}, s.handleFetchAppleDoc)

	mcp.AddTool(s.mcp, &mcp.Tool{
		Name:        "search_apple_online",
		Description: "Search both local Xcode docs and Apple's online documentation. Returns local hits plus search URLs for the Apple Developer site, Google, and GitHub.",
	}, s.handleSearchAppleOnline)

	mcp.AddTool(s.mcp, &mcp.Tool{
		Name:        "get_framework_info",
		Description: "Get the direct Apple Developer documentation URL for a framework.",
	}, s.handleFrameworkInfo)

	mcp.AddTool(s.mcp, &mcp.Tool{
		Name:        "search_swift_evolution",
		Description: "Search Swift Evolution proposals to understand the design rationale behind language features. Fetches live data from swift.org.",
	}, s.handleSearchEvolution)

	mcp.AddTool(s.mcp, &mcp.Tool{
		Name:        "get_swift_evolution_proposal",
		Description: "Get detailed information about a specific Swift Evolution proposal by SE number.",
	}, s.handleGetProposal)

	mcp.AddTool(s.mcp, &mcp.Tool{
		Name:        "search_swift_repos",
		Description: "Search across Apple's and SwiftLang's open-source repositories on GitHub. Returns search URLs with several scopes.",
	}, s.handleSearchRepos)

	mcp.AddTool(s.mcp, &mcp.Tool{
		Name:        "fetch_github_file",
		Description: "Fetch source code from a GitHub file in the apple or swiftlang organizations.",
	}, s.handleFetchGitHubFile)

	mcp.AddTool(s.mcp, &mcp.Tool{
		Name:        "search_wwdc_notes",
		Description: "Search WWDC session notes and videos for topics not covered by regular documentation.",
	}, s.handleSearchWWDC)

	mcp.AddTool(s.mcp, &mcp.Tool{
		Name:        "get_wwdc_session",
		Description: "Get links for a specific WWDC session by ID (e.g., wwdc2023-10154).",
	}, s.handleGetWWDCSession)

	mcp.AddTool(s.mcp, &mcp.Tool{
		Name:        "search_human_interface_guidelines",
		Description: "Search Apple's Human Interface Guidelines for design patterns and UI best practices, optionally scoped to one platform.",
	}, s.handleSearchHIG)

	mcp.AddTool(s.mcp, &mcp.Tool{
		Name:        "list_human_interface_guidelines_platforms",
		Description: "List all Apple platforms with dedicated Human Interface Guidelines sections.",
	}, s.handleListHIGPlatforms)

	s.logger.Info("MCP tools registered", slog.Int("count", 15))
}

// suggestions asks the suggestion engine for follow-up tools given how a
// call went.
func (s *Server) suggestions(tool, query string, resultsCount int) []suggest.Suggestion {
	return s.suggester.Suggestions(suggest.Context{
		CurrentTool:  tool,
		Query:        query,
		ResultsCount: resultsCount,
	})
}

func (s *Server) handleSearchDocs(ctx context.Context, _ *mcp.CallToolRequest, input SearchDocsInput) (
	*mcp.CallToolResult,
	SearchDocsOutput,
	error,
) {
	start := time.Now()
	requestID := generateRequestID()

	if err := validation.Query(input.Query); err != nil {
		return nil, SearchDocsOutput{}, MapError(err)
	}

	s.logger.Info("search_docs started",
		slog.String("request_id", requestID),
		slog.String("query", input.Query),
		slog.Bool("case_sensitive", input.CaseSensitive))

	resp := s.index.Search(strings.TrimSpace(input.Query), input.CaseSensitive)

	s.logger.Info("search_docs completed",
		slog.String("request_id", requestID),
		slog.Duration("duration", time.Since(start)),
		slog.Int("result_count", resp.TotalResults))

	return nil, SearchDocsOutput{
		SearchResponse: resp,
		Suggestions:    s.suggestions("search_docs", input.Query, resp.TotalResults),
	}, nil
}

func (s *Server) handleGetDocument(_ context.Context, _ *mcp.CallToolRequest, input GetDocumentInput) (
	*mcp.CallToolResult,
	GetDocumentOutput,
	error,
) {
	if err := validation.DocName(input.Name); err != nil {
		return nil, GetDocumentOutput{}, MapError(err)
	}

	content := s.index.GetDocument(input.Name, input.XcodeVersion)
	return nil, GetDocumentOutput{Name: input.Name, Content: content}, nil
}

func (s *Server) handleListDocuments(_ context.Context, _ *mcp.CallToolRequest, input ListDocumentsInput) (
	*mcp.CallToolResult,
	ListDocumentsOutput,
	error,
) {
	documents := s.index.ListDocuments(input.Filter)
	return nil, ListDocumentsOutput{Documents: documents, Total: len(documents)}, nil
}

func (s *Server) handleXcodeVersions(_ context.Context, _ *mcp.CallToolRequest, _ XcodeVersionsInput) (
	*mcp.CallToolResult,
	XcodeVersionsOutput,
	error,
) {
	return nil, XcodeVersionsOutput{XcodeVersions: s.index.XcodeVersions()}, nil
}

func (s *Server) handleFetchAppleDoc(ctx context.Context, _ *mcp.CallToolRequest, input FetchAppleDocInput) (
	*mcp.CallToolResult,
	*appledocs.Documentation,
	error,
) {
	start := time.Now()
	requestID := generateRequestID()

	doc, err := s.appleDocs.FetchDocumentation(ctx, strings.TrimSpace(input.URL))
	if err != nil {
		s.logger.Error("fetch_apple_documentation failed",
			slog.String("request_id", requestID),
			slog.String("url", input.URL),
			slog.String("error", err.Error()))
		return nil, nil, MapError(err)
	}

	s.logger.Info("fetch_apple_documentation completed",
		slog.String("request_id", requestID),
		slog.Duration("duration", time.Since(start)),
		slog.String("title", doc.Title))
	return nil, doc, nil
}

func (s *Server) handleSearchAppleOnline(_ context.Context, _ *mcp.CallToolRequest, input SearchAppleOnlineInput) (
	*mcp.CallToolResult,
	SearchAppleOnlineOutput,
	error,
) {
	if err := validation.Query(input.Query); err != nil {
		return nil, SearchAppleOnlineOutput{}, MapError(err)
	}
	platform := input.Platform
	if platform != "" {
		normalized, err := validation.Platform(platform)
		if err != nil {
			return nil, SearchAppleOnlineOutput{}, MapError(err)
		}
		platform = normalized
	}

	// Local hits first for speed, online URLs for completeness.
	local := s.index.Search(strings.TrimSpace(input.Query), false)
	localResults := local.Results
	if len(localResults) > onlineLocalResultCap {
		localResults = localResults[:onlineLocalResultCap]
	}

	return nil, SearchAppleOnlineOutput{
		Query:    input.Query,
		Platform: platform,
		LocalDocs: LocalDocsSection{
			Found:   local.TotalResults,
			Results: localResults,
		},
		Online:      s.appleDocs.SearchOnline(input.Query, platform),
		Suggestions: s.suggestions("search_apple_online", input.Query, local.TotalResults),
	}, nil
}

func (s *Server) handleFrameworkInfo(_ context.Context, _ *mcp.CallToolRequest, input FrameworkInfoInput) (
	*mcp.CallToolResult,
	appledocs.FrameworkInfo,
	error,
) {
	if strings.TrimSpace(input.Framework) == "" {
		return nil, appledocs.FrameworkInfo{}, NewInvalidParamsError("framework name is required")
	}
	return nil, s.appleDocs.GetFrameworkInfo(input.Framework), nil
}

func (s *Server) handleSearchEvolution(ctx context.Context, _ *mcp.CallToolRequest, input SearchEvolutionInput) (
	*mcp.CallToolResult,
	SearchEvolutionOutput,
	error,
) {
	if err := validation.Query(input.Feature); err != nil {
		return nil, SearchEvolutionOutput{}, MapError(err)
	}

	result, err := s.proposals.SearchProposals(ctx, input.Feature)
	if err != nil {
		s.logger.Error("search_swift_evolution failed",
			slog.String("feature", input.Feature),
			slog.String("error", err.Error()))
		return nil, SearchEvolutionOutput{}, MapError(err)
	}

	return nil, SearchEvolutionOutput{
		SearchResult: *result,
		Suggestions:  s.suggestions("search_swift_evolution", input.Feature, result.TotalFound),
	}, nil
}

func (s *Server) handleGetProposal(ctx context.Context, _ *mcp.CallToolRequest, input GetProposalInput) (
	*mcp.CallToolResult,
	*evolution.Proposal,
	error,
) {
	if strings.TrimSpace(input.SENumber) == "" {
		return nil, nil, NewInvalidParamsError("se_number is required")
	}

	proposal, err := s.proposals.GetProposal(ctx, input.SENumber)
	if err != nil {
		return nil, nil, MapError(err)
	}
	if proposal == nil {
		return nil, nil, NewNotFoundError(fmt.Sprintf(
			"Proposal %s not found. Visit https://www.swift.org/swift-evolution/ to browse proposals.",
			evolution.NormalizeSENumber(input.SENumber)))
	}
	return nil, proposal, nil
}

func (s *Server) handleSearchRepos(_ context.Context, _ *mcp.CallToolRequest, input SearchReposInput) (
	*mcp.CallToolResult,
	SearchReposOutput,
	error,
) {
	if err := validation.Query(input.Query); err != nil {
		return nil, SearchReposOutput{}, MapError(err)
	}

	return nil, SearchReposOutput{
		SearchLinks: swiftrepos.SearchRepos(input.Query),
		Suggestions: s.suggestions("search_swift_repos", input.Query, 1),
	}, nil
}

func (s *Server) handleFetchGitHubFile(ctx context.Context, _ *mcp.CallToolRequest, input FetchGitHubFileInput) (
	*mcp.CallToolResult,
	*swiftrepos.File,
	error,
) {
	start := time.Now()
	requestID := generateRequestID()

	file, err := s.repos.FetchFile(ctx, strings.TrimSpace(input.URL))
	if err != nil {
		s.logger.Error("fetch_github_file failed",
			slog.String("request_id", requestID),
			slog.String("url", input.URL),
			slog.String("error", err.Error()))
		return nil, nil, MapError(err)
	}

	s.logger.Info("fetch_github_file completed",
		slog.String("request_id", requestID),
		slog.Duration("duration", time.Since(start)),
		slog.String("path", file.Path),
		slog.Int("size", file.Size))
	return nil, file, nil
}

func (s *Server) handleSearchWWDC(_ context.Context, _ *mcp.CallToolRequest, input SearchWWDCInput) (
	*mcp.CallToolResult,
	SearchWWDCOutput,
	error,
) {
	if err := validation.Query(input.Query); err != nil {
		return nil, SearchWWDCOutput{}, MapError(err)
	}

	return nil, SearchWWDCOutput{
		SearchResult: wwdc.SearchSessions(input.Query),
		Suggestions:  s.suggestions("search_wwdc_notes", input.Query, 1),
	}, nil
}

func (s *Server) handleGetWWDCSession(_ context.Context, _ *mcp.CallToolRequest, input GetWWDCSessionInput) (
	*mcp.CallToolResult,
	wwdc.Session,
	error,
) {
	session, err := wwdc.SessionInfo(input.SessionID)
	if err != nil {
		return nil, wwdc.Session{}, MapError(err)
	}
	return nil, session, nil
}

func (s *Server) handleSearchHIG(_ context.Context, _ *mcp.CallToolRequest, input SearchHIGInput) (
	*mcp.CallToolResult,
	SearchHIGOutput,
	error,
) {
	if err := validation.Query(input.Query); err != nil {
		return nil, SearchHIGOutput{}, MapError(err)
	}
	platform := input.Platform
	if platform != "" {
		normalized, err := validation.Platform(platform)
		if err != nil {
			return nil, SearchHIGOutput{}, MapError(err)
		}
		platform = normalized
	}

	return nil, SearchHIGOutput{
		SearchResult: hig.Search(input.Query, platform),
		Suggestions:  s.suggestions("search_human_interface_guidelines", input.Query, 1),
	}, nil
}

func (s *Server) handleListHIGPlatforms(_ context.Context, _ *mcp.CallToolRequest, _ ListHIGPlatformsInput) (
	*mcp.CallToolResult,
	ListHIGPlatformsOutput,
	error,
) {
	return nil, ListHIGPlatformsOutput{Platforms: hig.ListPlatforms()}, nil
}

// generateRequestID creates a short unique request ID for log correlation.
func generateRequestID() string {
	b := make([]byte, 4)
	_, _ = rand.Read(b)
	return hex.EncodeToString(b)
}
