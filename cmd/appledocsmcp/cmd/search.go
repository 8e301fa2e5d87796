package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/appledeepdocs/appledocsmcp/internal/validation"
)

func newSearchCmd() *cobra.Command {
	var caseSensitive bool

	cmd := &cobra.Command{
		Use:   "search <query>",
		Short: "Search the local Xcode documentation from the command line",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSearch(cmd.OutOrStdout(), args[0], caseSensitive)
		},
	}

	cmd.Flags().BoolVar(&caseSensitive, "case-sensitive", false, "Match case exactly")
	return cmd
}

func runSearch(out io.Writer, query string, caseSensitive bool) error {
	if err := validation.Query(query); err != nil {
		return err
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	index, err := buildIndex(cfg)
	if err != nil {
		return err
	}

	resp := index.Search(strings.TrimSpace(query), caseSensitive)
	if resp.TotalResults == 0 {
		fmt.Fprintf(out, "No documents match %q.\n", resp.Query)
		return nil
	}

	fmt.Fprintf(out, "%d document(s) match %q:\n\n", resp.TotalResults, resp.Query)
	for _, result := range resp.Results {
		fmt.Fprintf(out, "%s (%s): %d match(es)\n", result.Document, result.XcodeVersion, result.TotalMatches)
		for _, match := range result.Matches {
			fmt.Fprintf(out, "  [%s] %s\n", match.Type, match.Context)
		}
		fmt.Fprintln(out)
	}
	return nil
}
