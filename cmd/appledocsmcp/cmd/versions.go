package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
)

func newVersionsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "versions",
		Short: "List Xcode installations with indexed documentation",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runVersions(cmd.OutOrStdout())
		},
	}
}

func runVersions(out io.Writer) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	index, err := buildIndex(cfg)
	if err != nil {
		return err
	}

	versions := index.XcodeVersions()
	for _, tag := range versions {
		fmt.Fprintln(out, tag)
	}
	fmt.Fprintf(out, "\n%d installation(s), %d document(s) indexed", len(versions), index.DocumentCount())
	if skipped := index.Skipped(); skipped > 0 {
		fmt.Fprintf(out, " (%d file(s) skipped)", skipped)
	}
	fmt.Fprintln(out)
	return nil
}
