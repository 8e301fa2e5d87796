package suggest

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func tools(suggestions []Suggestion) []string {
	names := make([]string, len(suggestions))
	for i, s := range suggestions {
		names[i] = s.Tool
	}
	return names
}

func TestSuggestions_FallbacksOnEmptyResults(t *testing.T) {
	e := NewEngine()

	got := e.Suggestions(Context{CurrentTool: "search_docs", Query: "liquid glass", ResultsCount: 0})
	assert.Equal(t, []string{"search_apple_online", "search_wwdc_notes"}, tools(got))
}

func TestSuggestions_NoFallbacksWhenResultsExist(t *testing.T) {
	e := NewEngine()

	got := e.Suggestions(Context{CurrentTool: "search_docs", Query: "liquid glass", ResultsCount: 7})
	assert.Empty(t, got)
}

func TestSuggestions_KeywordRules(t *testing.T) {
	e := NewEngine()

	got := e.Suggestions(Context{CurrentTool: "search_docs", Query: "why is rationale needed", ResultsCount: 3})
	require.Len(t, got, 1)
	assert.Equal(t, "search_swift_evolution", got[0].Tool)
	assert.Equal(t, "Understand feature design rationale", got[0].Reason)
}

func TestSuggestions_CapsAtThree(t *testing.T) {
	e := NewEngine()

	// Empty results plus several keyword hits would exceed the cap.
	got := e.Suggestions(Context{
		CurrentTool:  "search_docs",
		Query:        "how to build a fast button layout",
		ResultsCount: 0,
	})
	assert.Len(t, got, MaxSuggestions)
}

func TestSuggestions_SkipsCurrentToolAndDuplicates(t *testing.T) {
	e := NewEngine()

	got := e.Suggestions(Context{
		CurrentTool:  "search_swift_repos",
		Query:        "how to implement actors",
		ResultsCount: 0,
	})

	names := tools(got)
	assert.NotContains(t, names, "search_swift_repos")
	seen := make(map[string]bool)
	for _, n := range names {
		assert.False(t, seen[n], "duplicate suggestion %s", n)
		seen[n] = true
	}
}
