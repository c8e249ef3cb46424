package domain

import (
	"errors"
	"fmt"
)

// Kind is the machine-readable classification of a domain error. Callers
// branch on the kind, never on message text.
type Kind string

const (
	KindArticleNotFound  Kind = "ArticleNotFound"
	KindTitleDuplicated  Kind = "TitleDuplicated"
	KindIDDuplicated     Kind = "IdDuplicated"
	KindAlreadyInReview  Kind = "AlreadyInReview"
	KindAlreadyPublished Kind = "AlreadyPublished"
	KindAlreadyDeleted   Kind = "AlreadyDeleted"
	KindStillDraft       Kind = "StillDraft"
	KindReviewRequired   Kind = "ReviewRequired"
	KindInvalidTitle     Kind = "InvalidTitle"
	KindStorageFailure   Kind = "StorageFailure"
)

// Error is the single error type produced by the article core. ID points
// at the offending article where one exists.
type Error struct {
	Kind    Kind
	Message string
	ID      ArticleID

	// cause is the underlying failure for StorageFailure errors.
	cause error
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.ID != "" {
		return fmt.Sprintf("%s: %s (article %s)", e.Kind, e.Message, e.ID)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

// Unwrap returns the underlying cause, if any.
func (e *Error) Unwrap() error {
	return e.cause
}

// KindOf extracts the Kind from err, or "" when err is not a domain error.
func KindOf(err error) Kind {
	var de *Error
	if errors.As(err, &de) {
		return de.Kind
	}
	return ""
}

// IsKind reports whether err carries the given kind.
func IsKind(err error, k Kind) bool {
	return KindOf(err) == k
}

// IsNotFound reports whether err is an ArticleNotFound error.
func IsNotFound(err error) bool {
	return IsKind(err, KindArticleNotFound)
}

// IsStorageFailure reports whether err is a StorageFailure error.
func IsStorageFailure(err error) bool {
	return IsKind(err, KindStorageFailure)
}

// NewArticleNotFound indicates no snapshot exists for id.
func NewArticleNotFound(id ArticleID) *Error {
	return &Error{Kind: KindArticleNotFound, Message: "article not found", ID: id}
}

// NewTitleDuplicated indicates a non-deleted article already holds the
// requested title. duplicated is that existing article.
func NewTitleDuplicated(duplicated Article) *Error {
	return &Error{Kind: KindTitleDuplicated, Message: "article title already in use", ID: duplicated.ID}
}

// NewIDDuplicated indicates a freshly generated id collided with an
// existing article. Astronomically rare; exists as a defensive check.
func NewIDDuplicated(duplicated Article) *Error {
	return &Error{Kind: KindIDDuplicated, Message: "article id already in use", ID: duplicated.ID}
}

// NewAlreadyInReview indicates the article is already under review.
func NewAlreadyInReview(id ArticleID) *Error {
	return &Error{Kind: KindAlreadyInReview, Message: "article is already in review", ID: id}
}

// NewAlreadyPublished indicates the article is already published.
func NewAlreadyPublished(id ArticleID) *Error {
	return &Error{Kind: KindAlreadyPublished, Message: "article is already published", ID: id}
}

// NewAlreadyDeleted indicates the article has been deleted.
func NewAlreadyDeleted(id ArticleID) *Error {
	return &Error{Kind: KindAlreadyDeleted, Message: "article has been deleted", ID: id}
}

// NewStillDraft indicates the article is still a draft.
func NewStillDraft(id ArticleID) *Error {
	return &Error{Kind: KindStillDraft, Message: "article is still a draft", ID: id}
}

// NewReviewRequired indicates the article must go through review before
// it can be published.
func NewReviewRequired(id ArticleID) *Error {
	return &Error{Kind: KindReviewRequired, Message: "article must be reviewed before publishing", ID: id}
}

// NewInvalidTitle indicates the supplied title failed validation.
func NewInvalidTitle(message string) *Error {
	return &Error{Kind: KindInvalidTitle, Message: message}
}

// NewStorageFailure wraps a persistence-layer failure. The cause is
// reachable through errors.Unwrap.
func NewStorageFailure(cause error) *Error {
	return &Error{Kind: KindStorageFailure, Message: "storage operation failed", cause: cause}
}
