package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
)

func newListCmd() *cobra.Command {
	var filter string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List the local documentation catalog",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runList(cmd.OutOrStdout(), filter)
		},
	}

	cmd.Flags().StringVar(&filter, "filter", "", "Only list documents whose name contains this text")
	return cmd
}

func runList(out io.Writer, filter string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	index, err := buildIndex(cfg)
	if err != nil {
		return err
	}

	docs := index.ListDocuments(filter)
	if len(docs) == 0 {
		fmt.Fprintln(out, "No documents found.")
		return nil
	}

	fmt.Fprintf(out, "%d document(s):\n\n", len(docs))
	for _, doc := range docs {
		fmt.Fprintf(out, "%s (%d bytes) [%s]\n", doc.Name, doc.Size, strings.Join(doc.XcodeVersions, ", "))
		if len(doc.Topics) > 0 {
			fmt.Fprintf(out, "  topics: %s\n", strings.Join(doc.Topics, "; "))
		}
	}
	return nil
}
