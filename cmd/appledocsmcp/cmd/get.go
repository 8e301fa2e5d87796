package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/appledeepdocs/appledocsmcp/internal/validation"
)

func newGetCmd() *cobra.Command {
	var xcodeVersion string

	cmd := &cobra.Command{
		Use:   "get <name>",
		Short: "Print a local documentation file",
		Long: `Print the full content of one local documentation file by name (the
file stem, without the .md extension). When a document exists in more
than one Xcode installation, --xcode-version picks which copy.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGet(cmd.OutOrStdout(), args[0], xcodeVersion)
		},
	}

	cmd.Flags().StringVar(&xcodeVersion, "xcode-version", "", "Restrict to one Xcode installation tag")
	return cmd
}

func runGet(out io.Writer, name, xcodeVersion string) error {
	if err := validation.DocName(name); err != nil {
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

	fmt.Fprintln(out, index.GetDocument(name, xcodeVersion))
	return nil
}
