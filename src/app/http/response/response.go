// Package response defines consistent HTTP response structures.
// All API responses should use these types for consistency.
package response

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"pressroom/src/core/domain"
)

// Success represents a successful response with data.
type Success struct {
	Data any `json:"data"`
}

// Error represents an error response.
type Error struct {
	Error ErrorDetail `json:"error"`
}

// ErrorDetail contains error information.
type ErrorDetail struct {
	// Code is a machine-readable error code (e.g., "ArticleNotFound", "TitleDuplicated")
	Code string `json:"code"`

	// Message is a human-readable error description
	Message string `json:"message"`

	// ArticleID is the article the error refers to, when one exists
	ArticleID string `json:"article_id,omitempty"`

	// RequestID is the request ID for debugging
	RequestID string `json:"request_id,omitempty"`
}

// OK sends a 200 response with data.
func OK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, Success{Data: data})
}

// Created sends a 201 response with the created resource.
func Created(c *gin.Context, data any) {
	c.JSON(http.StatusCreated, Success{Data: data})
}

// BadRequest sends a 400 response.
func BadRequest(c *gin.Context, message string, requestID string) {
	c.JSON(http.StatusBadRequest, Error{
		Error: ErrorDetail{
			Code:      "BAD_REQUEST",
			Message:   message,
			RequestID: requestID,
		},
	})
}

// NotFound sends a 404 response.
func NotFound(c *gin.Context, message, requestID string) {
	c.JSON(http.StatusNotFound, Error{
		Error: ErrorDetail{
			Code:      "NOT_FOUND",
			Message:   message,
			RequestID: requestID,
		},
	})
}

// InternalError sends a 500 response.
func InternalError(c *gin.Context, requestID string) {
	c.JSON(http.StatusInternalServerError, Error{
		Error: ErrorDetail{
			Code:      "INTERNAL_ERROR",
			Message:   "An unexpected error occurred",
			RequestID: requestID,
		},
	})
}

// FromDomainError converts a domain error to an appropriate HTTP response.
// The error code carries the domain error kind verbatim, so API clients
// branch on the same taxonomy the core uses.
func FromDomainError(c *gin.Context, err error, requestID string) {
	kind := domain.KindOf(err)
	switch kind {
	case domain.KindArticleNotFound:
		domainError(c, http.StatusNotFound, kind, err, requestID)
	case domain.KindInvalidTitle:
		domainError(c, http.StatusBadRequest, kind, err, requestID)
	case domain.KindTitleDuplicated,
		domain.KindIDDuplicated,
		domain.KindAlreadyInReview,
		domain.KindAlreadyPublished,
		domain.KindAlreadyDeleted,
		domain.KindStillDraft,
		domain.KindReviewRequired:
		domainError(c, http.StatusConflict, kind, err, requestID)
	default:
		// StorageFailure and anything unclassified. Details stay in the
		// server log, not the response body.
		InternalError(c, requestID)
	}
}

func domainError(c *gin.Context, status int, kind domain.Kind, err error, requestID string) {
	detail := ErrorDetail{
		Code:      string(kind),
		Message:   "request could not be completed",
		RequestID: requestID,
	}

	var de *domain.Error
	if errors.As(err, &de) {
		detail.Message = de.Message
		detail.ArticleID = de.ID.String()
	}

	c.JSON(status, Error{Error: detail})
}
