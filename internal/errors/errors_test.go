package errors

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDocsError_Unwrap_PreservesOriginalError(t *testing.T) {
	// Given: an original error
	originalErr := errors.New("original error")

	// When: wrapping with DocsError
	docsErr := New(ErrCodeDocRead, "failed to read Liquid-Glass.md", originalErr)

	// Then: unwrapping returns original error
	require.NotNil(t, docsErr)
	assert.Equal(t, originalErr, errors.Unwrap(docsErr))
	assert.True(t, errors.Is(docsErr, originalErr))
}

func TestDocsError_Error_ReturnsFormattedMessage(t *testing.T) {
	tests := []struct {
		name     string
		code     string
		message  string
		expected string
	}{
		{
			name:     "config error",
			code:     ErrCodeConfigInvalid,
			message:  "config file is malformed",
			expected: "[ERR_101_CONFIG_INVALID] config file is malformed",
		},
		{
			name:     "doc read error",
			code:     ErrCodeDocRead,
			message:  "Liquid-Glass.md unreadable",
			expected: "[ERR_201_DOC_READ] Liquid-Glass.md unreadable",
		},
		{
			name:     "network error",
			code:     ErrCodeNetworkTimeout,
			message:  "request timed out",
			expected: "[ERR_301_NETWORK_TIMEOUT] request timed out",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := New(tt.code, tt.message, nil)
			assert.Equal(t, tt.expected, err.Error())
		})
	}
}

func TestDocsError_Is_MatchesByCode(t *testing.T) {
	err1 := New(ErrCodeDocRead, "doc A unreadable", nil)
	err2 := New(ErrCodeDocRead, "doc B unreadable", nil)

	assert.True(t, errors.Is(err1, err2))
}

func TestDocsError_Is_DoesNotMatchDifferentCodes(t *testing.T) {
	err1 := New(ErrCodeDocRead, "doc unreadable", nil)
	err2 := New(ErrCodeConfigInvalid, "config invalid", nil)

	assert.False(t, errors.Is(err1, err2))
}

func TestDocsError_WithDetails_AddsContext(t *testing.T) {
	err := New(ErrCodeDocRead, "doc unreadable", nil)

	err = err.WithDetail("path", "/Applications/Xcode.app/doc.md")
	err = err.WithDetail("size", "1024")

	assert.Equal(t, "/Applications/Xcode.app/doc.md", err.Details["path"])
	assert.Equal(t, "1024", err.Details["size"])
}

func TestDocsError_WithSuggestion_AddsSuggestion(t *testing.T) {
	err := New(ErrCodeNoDocRoots, "no Xcode installations found", nil)

	err = err.WithSuggestion("Set XCODE_DOC_PATH to a documentation folder")

	assert.Equal(t, "Set XCODE_DOC_PATH to a documentation folder", err.Suggestion)
}

func TestDocsError_CategoryFromCode(t *testing.T) {
	tests := []struct {
		code         string
		wantCategory Category
	}{
		{ErrCodeConfigInvalid, CategoryConfig},
		{ErrCodeNoDocRoots, CategoryConfig},
		{ErrCodeOverridePath, CategoryConfig},
		{ErrCodeDocRead, CategoryIO},
		{ErrCodeDocNotFound, CategoryIO},
		{ErrCodeNetworkTimeout, CategoryNetwork},
		{ErrCodeNetworkUnavailable, CategoryNetwork},
		{ErrCodeInvalidInput, CategoryValidation},
		{ErrCodeQueryTooLong, CategoryValidation},
		{ErrCodeInternal, CategoryInternal},
	}

	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			err := New(tt.code, "message", nil)
			assert.Equal(t, tt.wantCategory, err.Category)
		})
	}
}

func TestIsRetryable(t *testing.T) {
	assert.True(t, IsRetryable(New(ErrCodeNetworkTimeout, "timeout", nil)))
	assert.True(t, IsRetryable(New(ErrCodeNetworkUnavailable, "unreachable", nil)))
	assert.False(t, IsRetryable(New(ErrCodeInvalidURL, "bad url", nil)))
	assert.False(t, IsRetryable(errors.New("plain error")))
	assert.False(t, IsRetryable(nil))
}

func TestWrap_NilReturnsNil(t *testing.T) {
	assert.Nil(t, Wrap(ErrCodeDocRead, nil))
}

func TestRetryWithResult_SucceedsAfterRetryableFailure(t *testing.T) {
	cfg := RetryConfig{
		MaxRetries:   3,
		InitialDelay: time.Millisecond,
		MaxDelay:     time.Millisecond * 4,
		Multiplier:   2.0,
	}

	calls := 0
	result, err := RetryWithResult(context.Background(), cfg, func() (string, error) {
		calls++
		if calls < 3 {
			return "", New(ErrCodeNetworkTimeout, "timeout", nil)
		}
		return "ok", nil
	})

	require.NoError(t, err)
	assert.Equal(t, "ok", result)
	assert.Equal(t, 3, calls)
}

func TestRetryWithResult_DoesNotRetryNonRetryable(t *testing.T) {
	cfg := DefaultRetryConfig()

	calls := 0
	_, err := RetryWithResult(context.Background(), cfg, func() (string, error) {
		calls++
		return "", New(ErrCodeInvalidURL, "bad url", nil)
	})

	require.Error(t, err)
	assert.Equal(t, 1, calls)
}

func TestRetryWithResult_HonorsContextCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := RetryWithResult(ctx, DefaultRetryConfig(), func() (int, error) {
		return 0, New(ErrCodeNetworkTimeout, "timeout", nil)
	})

	assert.ErrorIs(t, err, context.Canceled)
}
