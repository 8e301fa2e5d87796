package cmd

import (
	"context"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/appledeepdocs/appledocsmcp/internal/appledocs"
	"github.com/appledeepdocs/appledocsmcp/internal/config"
	"github.com/appledeepdocs/appledocsmcp/internal/errors"
	"github.com/appledeepdocs/appledocsmcp/internal/evolution"
	"github.com/appledeepdocs/appledocsmcp/internal/fetch"
	"github.com/appledeepdocs/appledocsmcp/internal/localdocs"
	"github.com/appledeepdocs/appledocsmcp/internal/mcp"
	"github.com/appledeepdocs/appledocsmcp/internal/swiftrepos"
)

func newServeCmd() *cobra.Command {
	var transport string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the MCP server",
		Long: `Start the MCP server. The local documentation index is built once at
startup; restart the server after installing or updating Xcode.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runServe(cmd.Context(), transport)
		},
	}

	cmd.Flags().StringVar(&transport, "transport", "stdio", "Transport to use (stdio)")
	return cmd
}

func runServe(ctx context.Context, transport string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	// A machine without Xcode documentation still gets a working server
	// with an empty index; every search simply returns no local results.
	index, err := buildIndex(cfg)
	if err != nil {
		if errors.GetCode(err) != errors.ErrCodeNoDocRoots {
			return err
		}
		slog.Warn("serving with empty documentation index",
			slog.String("error", err.Error()))
		index = localdocs.Build(nil, searchOptions(cfg), nil)
	}

	appleDocs, proposals, repos, err := newUpstreamClients(cfg)
	if err != nil {
		return err
	}

	server, err := mcp.NewServer(index, appleDocs, proposals, repos, cfg, slog.Default())
	if err != nil {
		return err
	}
	return server.Serve(ctx, transport)
}

// buildIndex resolves documentation roots and builds the in-memory index.
func buildIndex(cfg *config.Config) (*localdocs.Index, error) {
	roots, err := localdocs.ResolveRoots(localdocs.LocatorOptions{
		ApplicationsDir: cfg.Locator.ApplicationsDir,
		XcodePatterns:   cfg.Locator.XcodePatterns,
		DocSubpath:      cfg.Locator.DocSubpath,
		OverridePath:    cfg.Locator.OverridePath,
	}, slog.Default())
	if err != nil {
		return nil, err
	}
	return localdocs.Build(roots, searchOptions(cfg), slog.Default()), nil
}

func searchOptions(cfg *config.Config) localdocs.Options {
	return localdocs.Options{
		ContextWindow:     cfg.Search.ContextWindow,
		MaxMatchesPerDoc:  cfg.Search.MaxMatchesPerDoc,
		MaxDocResults:     cfg.Search.MaxDocResults,
		MaxTopics:         cfg.Search.MaxTopics,
		TopicPreviewBytes: cfg.Search.TopicPreviewBytes,
	}
}

// newUpstreamClients builds the clients for the online documentation
// sources from the fetch configuration.
func newUpstreamClients(cfg *config.Config) (*appledocs.Client, *evolution.Client, *swiftrepos.Client, error) {
	fetcher := fetch.NewClient(
		fetch.WithTimeout(cfg.FetchTimeout()),
		fetch.WithUserAgent(cfg.Fetch.UserAgent),
	)

	repos, err := swiftrepos.NewClient(fetcher, cfg.Fetch.FileCacheSize)
	if err != nil {
		return nil, nil, nil, err
	}

	return appledocs.NewClient(fetcher, cfg.Fetch.DocCacheSize, cfg.CacheTTL()),
		evolution.NewClient(fetcher, cfg.CacheTTL()),
		repos,
		nil
}
