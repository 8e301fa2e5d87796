package cmd

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVersionsCmd_ListsInstallations(t *testing.T) {
	// Given: a documentation root under one Xcode installation
	setupDocsEnv(t, map[string]string{
		"liquid-glass": "Glass morphism guidance.",
		"concurrency":  "Actors isolate state.",
	})

	rootCmd := NewRootCmd()
	buf := &bytes.Buffer{}
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"versions"})

	// When: listing installations
	err := rootCmd.Execute()

	// Then: the installation tag and document count are printed
	require.NoError(t, err)
	output := buf.String()
	assert.Contains(t, output, "Xcode-26.0.0.app")
	assert.Contains(t, output, "1 installation(s)")
	assert.Contains(t, output, "2 document(s)")
}
