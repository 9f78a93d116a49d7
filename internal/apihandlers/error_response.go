package apihandlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"docreader/internal/models"
)

// APIError defines standard error response
// Example: { "error": { "code": "bad_request", "message": "Invalid ID" } }
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type errorResponse struct {
	Error APIError `json:"error"`
}

// JSONError sends a structured error response
func JSONError(ctx *gin.Context, status int, code, msg string) {
	ctx.JSON(status, errorResponse{Error: APIError{Code: code, Message: msg}})
}

func BadRequest(ctx *gin.Context, msg string) {
	JSONError(ctx, http.StatusBadRequest, "bad_request", msg)
}

func Internal(ctx *gin.Context, msg string) {
	JSONError(ctx, http.StatusInternalServerError, "internal_error", msg)
}

// HandleError maps a sentinel error from the parsing/chunking/embedding
// pipeline to the HTTP status docreader's own API surface needs, falling
// back to a generic 500 for anything unrecognized.
func HandleError(ctx *gin.Context, err error, fallback string) {
	switch {
	case errors.Is(err, models.ErrEmptyDocument):
		BadRequest(ctx, "document has no content to chunk")
	case errors.Is(err, models.ErrUnsupportedFormat):
		BadRequest(ctx, "unsupported document format")
	case errors.Is(err, models.ErrParserChainExhausted):
		BadRequest(ctx, "no parser could read this document")
	default:
		Internal(ctx, fallback)
	}
}
