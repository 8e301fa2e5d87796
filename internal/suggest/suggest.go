// Package suggest recommends follow-up tools based on the tool just used,
// its result count, and keywords in the query.
package suggest

import "strings"

// MaxSuggestions caps how many suggestions one call returns.
const MaxSuggestions = 3

// Suggestion is one recommended next tool.
type Suggestion struct {
	Tool   string `json:"tool"`
	Reason string `json:"reason"`
}

// Context describes the call the suggestions are for.
type Context struct {
	CurrentTool  string
	Query        string
	ResultsCount int
}

// keywordRule maps query keywords to tools worth trying.
type keywordRule struct {
	keywords []string
	tools    []string
}

// Engine produces next-step tool suggestions.
type Engine struct {
	fallbacks map[string][]string
	rules     []keywordRule
	reasons   map[string]string
}

// NewEngine creates an Engine with the standard tool progression and
// keyword rules.
func NewEngine() *Engine {
	return &Engine{
		// What to try next when the current tool came up empty.
		fallbacks: map[string][]string{
			"search_docs":                       {"search_apple_online", "search_wwdc_notes"},
			"search_apple_online":               {"search_wwdc_notes", "search_swift_repos"},
			"search_swift_evolution":            {"search_swift_repos", "fetch_github_file"},
			"search_swift_repos":                {"fetch_github_file"},
			"search_wwdc_notes":                 {"search_swift_repos"},
			"search_human_interface_guidelines": {"search_docs", "search_apple_online"},
		},
		rules: []keywordRule{
			{[]string{"performance", "optimize", "fast"}, []string{"search_wwdc_notes", "search_swift_repos"}},
			{[]string{"how", "implement", "build"}, []string{"search_swift_repos", "search_wwdc_notes"}},
			{[]string{"why", "design", "rationale"}, []string{"search_swift_evolution"}},
			{[]string{"class", "struct", "protocol"}, []string{"fetch_apple_documentation", "search_apple_online"}},
			{[]string{"design", "ui", "ux", "interface", "button", "navigation", "layout", "color", "typography"},
				[]string{"search_human_interface_guidelines"}},
		},
		reasons: map[string]string{
			"search_apple_online":               "Search Apple's online documentation",
			"search_wwdc_notes":                 "Check WWDC sessions for detailed explanations",
			"search_swift_repos":                "Find implementation examples",
			"fetch_github_file":                 "Fetch specific source files",
			"search_swift_evolution":            "Understand feature design rationale",
			"fetch_apple_documentation":         "Get detailed API documentation",
			"search_human_interface_guidelines": "Find design patterns and UI best practices",
		},
	}
}

// Suggestions returns up to MaxSuggestions recommendations. Empty results
// trigger up to two fallback tools for the current tool; query keywords add
// further tools, skipping the current tool and duplicates.
func (e *Engine) Suggestions(ctx Context) []Suggestion {
	var suggestions []Suggestion
	seen := make(map[string]bool)

	add := func(tool string) bool {
		if tool == ctx.CurrentTool || seen[tool] {
			return len(suggestions) < MaxSuggestions
		}
		seen[tool] = true
		suggestions = append(suggestions, Suggestion{Tool: tool, Reason: e.reason(tool)})
		return len(suggestions) < MaxSuggestions
	}

	if ctx.ResultsCount == 0 {
		fallbacks := e.fallbacks[ctx.CurrentTool]
		if len(fallbacks) > 2 {
			fallbacks = fallbacks[:2]
		}
		for _, tool := range fallbacks {
			if !add(tool) {
				return suggestions
			}
		}
	}

	query := strings.ToLower(ctx.Query)
	for _, rule := range e.rules {
		if !rule.matches(query) {
			continue
		}
		for _, tool := range rule.tools {
			if !add(tool) {
				return suggestions
			}
		}
	}
	return suggestions
}

func (r keywordRule) matches(query string) bool {
	for _, kw := range r.keywords {
		if strings.Contains(query, kw) {
			return true
		}
	}
	return false
}

func (e *Engine) reason(tool string) string {
	if r, ok := e.reasons[tool]; ok {
		return r
	}
	return "Try " + tool
}
