package mcp

import (
	"context"
	"errors"
	"fmt"

	docerrors "github.com/appledeepdocs/appledocsmcp/internal/errors"
)

// Custom MCP error codes for appledocsmcp.
const (
	// ErrCodeDocsUnavailable indicates no local documentation is indexed.
	ErrCodeDocsUnavailable = -32001

	// ErrCodeUpstreamFailed indicates an upstream documentation source
	// could not be reached or returned an error.
	ErrCodeUpstreamFailed = -32002

	// ErrCodeTimeout indicates the request timed out.
	ErrCodeTimeout = -32003

	// ErrCodeNotFound indicates a document or proposal does not exist.
	ErrCodeNotFound = -32004

	// Standard JSON-RPC error codes.
	ErrCodeInvalidParams = -32602
	ErrCodeInternalError = -32603
)

// MCPError represents an MCP protocol error with code and message.
type MCPError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// Error implements the error interface.
func (e *MCPError) Error() string {
	return fmt.Sprintf("MCP error %d: %s", e.Code, e.Message)
}

// MapError converts internal errors to MCP errors. DocsError categories map
// to JSON-RPC codes; the error's suggestion, when present, is appended to
// the message.
func MapError(err error) *MCPError {
	if err == nil {
		return nil
	}

	var docsErr *docerrors.DocsError
	if errors.As(err, &docsErr) {
		return mapDocsError(docsErr)
	}

	switch {
	case errors.Is(err, context.DeadlineExceeded):
		return &MCPError{Code: ErrCodeTimeout, Message: "Request timed out."}
	case errors.Is(err, context.Canceled):
		return &MCPError{Code: ErrCodeTimeout, Message: "Request was canceled."}
	default:
		return &MCPError{Code: ErrCodeInternalError, Message: "Internal server error."}
	}
}

// NewInvalidParamsError creates an error for invalid parameters with a
// custom message.
func NewInvalidParamsError(msg string) *MCPError {
	return &MCPError{Code: ErrCodeInvalidParams, Message: msg}
}

// NewNotFoundError creates an error for a missing document or proposal.
func NewNotFoundError(msg string) *MCPError {
	return &MCPError{Code: ErrCodeNotFound, Message: msg}
}

// mapDocsError converts a DocsError to an MCPError.
func mapDocsError(de *docerrors.DocsError) *MCPError {
	message := de.Message
	if de.Suggestion != "" {
		message = fmt.Sprintf("%s %s", de.Message, de.Suggestion)
	}

	switch de.Category {
	case docerrors.CategoryValidation:
		return &MCPError{Code: ErrCodeInvalidParams, Message: message}
	case docerrors.CategoryNetwork:
		if de.Code == docerrors.ErrCodeNetworkTimeout {
			return &MCPError{Code: ErrCodeTimeout, Message: message}
		}
		return &MCPError{Code: ErrCodeUpstreamFailed, Message: message}
	case docerrors.CategoryIO:
		if de.Code == docerrors.ErrCodeDocNotFound {
			return &MCPError{Code: ErrCodeNotFound, Message: message}
		}
		return &MCPError{Code: ErrCodeInternalError, Message: message}
	case docerrors.CategoryConfig:
		return &MCPError{Code: ErrCodeDocsUnavailable, Message: message}
	default:
		return &MCPError{Code: ErrCodeInternalError, Message: message}
	}
}
