package domain

import "time"

// EventName discriminates domain event kinds, one per accepted transition.
type EventName string

const (
	EventArticleCreated       EventName = "ArticleCreated"
	EventArticleReviewStarted EventName = "ArticleReviewStarted"
	EventArticlePublished     EventName = "ArticlePublished"
	EventArticleRejected      EventName = "ArticleRejected"
	EventArticleUnpublished   EventName = "ArticleUnpublished"
	EventArticleDeleted       EventName = "ArticleDeleted"
)

// Event is the immutable envelope produced by an accepted transition. The
// payload holds the fields that changed; Aggregate is the full resulting
// snapshot. Identity and timestamp are assigned once, at creation.
type Event[P any] struct {
	EventID   string
	EventAt   time.Time
	EventName EventName
	Payload   P
	Aggregate Article
}

// CreatedPayload records the initial title and content.
type CreatedPayload struct {
	Title   Title  `json:"title"`
	Content string `json:"content"`
}

// ReviewStartedPayload records the assigned reviewer.
type ReviewStartedPayload struct {
	ReviewerID UserID `json:"reviewer_id"`
}

// PublishedPayload records the publication time.
type PublishedPayload struct {
	PublishedAt time.Time `json:"published_at"`
}

// RejectedPayload records the rejected article's id.
type RejectedPayload struct {
	ID ArticleID `json:"id"`
}

// UnpublishedPayload records the unpublished article's id.
type UnpublishedPayload struct {
	ID ArticleID `json:"id"`
}

// DeletedPayload is the full prior snapshot, so an audit consumer can
// reconstruct what was deleted from the log alone.
type DeletedPayload = Article

type (
	ArticleCreated       = Event[CreatedPayload]
	ArticleReviewStarted = Event[ReviewStartedPayload]
	ArticlePublished     = Event[PublishedPayload]
	ArticleRejected      = Event[RejectedPayload]
	ArticleUnpublished   = Event[UnpublishedPayload]
	ArticleDeleted       = Event[DeletedPayload]
)
