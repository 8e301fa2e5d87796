package wwdc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSearchSessions_BuildsEncodedURLs(t *testing.T) {
	result := SearchSessions("swift concurrency")

	assert.Equal(t, "swift concurrency", result.Query)
	assert.Equal(t, "https://wwdcnotes.com/search?q=swift+concurrency", result.SearchURLs["wwdcnotes"])
	assert.Equal(t, "https://developer.apple.com/search/?q=swift+concurrency&type=Videos", result.SearchURLs["apple_videos"])
}

func TestSearchSessions_TopicCategories(t *testing.T) {
	tests := []struct {
		query   string
		want    []string
		wantTip bool
	}{
		{"memory optimization", []string{"Instruments", "App Performance", "Memory Management"}, true},
		{"SwiftUI layout", []string{"SwiftUI Essentials", "SwiftUI Layout", "SwiftUI Animation"}, false},
		{"swift macros", []string{"What's New in Swift", "Swift Concurrency"}, false},
		{"core data", nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			result := SearchSessions(tt.query)
			assert.Equal(t, tt.want, result.Categories)
			if tt.wantTip {
				assert.NotEmpty(t, result.Tip)
			} else {
				assert.Empty(t, result.Tip)
			}
		})
	}
}

func TestSessionInfo_ParsesVariants(t *testing.T) {
	for _, id := range []string{"wwdc2023-10154", "WWDC2023-10154", "wwdc2023/10154"} {
		session, err := SessionInfo(id)
		require.NoError(t, err, id)

		assert.Equal(t, "wwdc2023-10154", session.SessionID)
		assert.Equal(t, "https://wwdcnotes.com/notes/wwdc2023/10154", session.URLs["wwdcnotes"])
		assert.Equal(t, "https://developer.apple.com/videos/play/wwdc2023/10154/", session.URLs["apple_video"])
	}
}

func TestSessionInfo_RejectsBadFormat(t *testing.T) {
	for _, id := range []string{"10154", "session-10154", ""} {
		_, err := SessionInfo(id)
		assert.Error(t, err, id)
	}
}
