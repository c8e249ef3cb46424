package domain

import (
	"fmt"
	"strings"
	"time"
)

// Status represents the lifecycle state of an article.
type Status string

const (
	StatusDraft     Status = "DRAFT"
	StatusInReview  Status = "IN_REVIEW"
	StatusPublished Status = "PUBLISHED"
	StatusDeleted   Status = "DELETED"
)

// Valid reports whether s is one of the known statuses.
func (s Status) Valid() bool {
	switch s {
	case StatusDraft, StatusInReview, StatusPublished, StatusDeleted:
		return true
	}
	return false
}

// MaxTitleLength is the longest accepted article title.
const MaxTitleLength = 255

// Title is a validated article title. Uniqueness across non-deleted
// articles is enforced at the use-case level, not here.
type Title string

// NewTitle validates s as an article title.
func NewTitle(s string) (Title, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", NewInvalidTitle("title must not be empty")
	}
	if len(s) > MaxTitleLength {
		return "", NewInvalidTitle(fmt.Sprintf("title must be at most %d bytes", MaxTitleLength))
	}
	return Title(s), nil
}

func (t Title) String() string {
	return string(t)
}

// Article is the aggregate snapshot of one article. Status discriminates
// which optional fields are populated:
//
//	DRAFT      neither ReviewerID nor PublishedAt
//	IN_REVIEW  ReviewerID
//	PUBLISHED  ReviewerID and PublishedAt
//	DELETED    both optional, carried over from the prior state
//
// Values are never mutated in place; every transition builds a fresh
// snapshot.
type Article struct {
	ID          ArticleID  `json:"id"`
	Title       Title      `json:"title"`
	Content     string     `json:"content"`
	Status      Status     `json:"status"`
	ReviewerID  *UserID    `json:"reviewer_id,omitempty"`
	PublishedAt *time.Time `json:"published_at,omitempty"`
}

// Validate checks the status/field invariant.
func (a Article) Validate() error {
	switch a.Status {
	case StatusDraft:
		if a.ReviewerID != nil || a.PublishedAt != nil {
			return fmt.Errorf("draft article %s must not carry reviewer or publish time", a.ID)
		}
	case StatusInReview:
		if a.ReviewerID == nil {
			return fmt.Errorf("in-review article %s is missing a reviewer", a.ID)
		}
		if a.PublishedAt != nil {
			return fmt.Errorf("in-review article %s must not carry a publish time", a.ID)
		}
	case StatusPublished:
		if a.ReviewerID == nil {
			return fmt.Errorf("published article %s is missing a reviewer", a.ID)
		}
		if a.PublishedAt == nil {
			return fmt.Errorf("published article %s is missing a publish time", a.ID)
		}
	case StatusDeleted:
		// Deleted retains whatever reviewer/publish info the article had.
	default:
		return fmt.Errorf("article %s has unknown status %q", a.ID, a.Status)
	}
	return nil
}

// Equal reports whether two snapshots are identical, comparing optional
// fields by value.
func (a Article) Equal(b Article) bool {
	if a.ID != b.ID || a.Title != b.Title || a.Content != b.Content || a.Status != b.Status {
		return false
	}
	if (a.ReviewerID == nil) != (b.ReviewerID == nil) {
		return false
	}
	if a.ReviewerID != nil && *a.ReviewerID != *b.ReviewerID {
		return false
	}
	if (a.PublishedAt == nil) != (b.PublishedAt == nil) {
		return false
	}
	if a.PublishedAt != nil && !a.PublishedAt.Equal(*b.PublishedAt) {
		return false
	}
	return true
}
