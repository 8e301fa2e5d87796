package cmd

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListCmd_ListsCatalog(t *testing.T) {
	// Given: a documentation root with two documents
	setupDocsEnv(t, map[string]string{
		"liquid-glass": "# Liquid Glass\nGlass morphism guidance.",
		"concurrency":  "# Swift Concurrency\nActors isolate state.",
	})

	rootCmd := NewRootCmd()
	buf := &bytes.Buffer{}
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"list"})

	// When: listing the catalog
	err := rootCmd.Execute()

	// Then: both documents appear with their topics
	require.NoError(t, err)
	output := buf.String()
	assert.Contains(t, output, "2 document(s)")
	assert.Contains(t, output, "liquid-glass")
	assert.Contains(t, output, "concurrency")
	assert.Contains(t, output, "Liquid Glass")
}

func TestListCmd_FilterNarrowsResults(t *testing.T) {
	setupDocsEnv(t, map[string]string{
		"liquid-glass": "Glass morphism guidance.",
		"concurrency":  "Actors isolate state.",
	})

	rootCmd := NewRootCmd()
	buf := &bytes.Buffer{}
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"list", "--filter", "glass"})

	err := rootCmd.Execute()

	require.NoError(t, err)
	output := buf.String()
	assert.Contains(t, output, "liquid-glass")
	assert.NotContains(t, output, "concurrency")
}

func TestListCmd_NoMatches_ShowsMessage(t *testing.T) {
	// Given: a filter matching nothing in the catalog
	setupDocsEnv(t, map[string]string{
		"concurrency": "Actors isolate state.",
	})

	rootCmd := NewRootCmd()
	buf := &bytes.Buffer{}
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"list", "--filter", "nothing-matches-this"})

	err := rootCmd.Execute()

	require.NoError(t, err)
	assert.Contains(t, buf.String(), "No documents found")
}
