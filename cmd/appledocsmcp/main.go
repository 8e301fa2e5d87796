// Package main provides the entry point for the appledocsmcp CLI.
package main

import (
	"os"

	"github.com/appledeepdocs/appledocsmcp/cmd/appledocsmcp/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
