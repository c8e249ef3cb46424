package domain

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// EventFactory mints the identity and timestamps that make transitions
// non-deterministic. The zero value uses real UUIDs and the wall clock;
// tests inject fixed functions to make events reproducible.
type EventFactory struct {
	NewArticleID func() ArticleID
	NewEventID   func() string
	Now          func() time.Time
}

func (f EventFactory) articleID() ArticleID {
	if f.NewArticleID != nil {
		return f.NewArticleID()
	}
	return NewArticleID()
}

func (f EventFactory) eventID() string {
	if f.NewEventID != nil {
		return f.NewEventID()
	}
	return uuid.NewString()
}

func (f EventFactory) now() time.Time {
	if f.Now != nil {
		return f.Now()
	}
	return time.Now().UTC()
}

func unknownStatus(a Article) error {
	// Unreachable for snapshots that passed Validate; defensive only.
	return fmt.Errorf("article %s has unknown status %q", a.ID, a.Status)
}

// Create makes a new draft article. It has no illegal input state;
// uniqueness of title and id is checked by the use-case layer.
func (f EventFactory) Create(title Title, content string) ArticleCreated {
	draft := Article{
		ID:      f.articleID(),
		Title:   title,
		Content: content,
		Status:  StatusDraft,
	}
	return ArticleCreated{
		EventID:   f.eventID(),
		EventAt:   f.now(),
		EventName: EventArticleCreated,
		Payload:   CreatedPayload{Title: title, Content: content},
		Aggregate: draft,
	}
}

// StartReview moves a draft article into review, assigning reviewerID.
func (f EventFactory) StartReview(a Article, reviewerID UserID) (ArticleReviewStarted, error) {
	switch a.Status {
	case StatusDraft:
		reviewer := reviewerID
		inReview := Article{
			ID:         a.ID,
			Title:      a.Title,
			Content:    a.Content,
			Status:     StatusInReview,
			ReviewerID: &reviewer,
		}
		return ArticleReviewStarted{
			EventID:   f.eventID(),
			EventAt:   f.now(),
			EventName: EventArticleReviewStarted,
			Payload:   ReviewStartedPayload{ReviewerID: reviewerID},
			Aggregate: inReview,
		}, nil
	case StatusInReview:
		return ArticleReviewStarted{}, NewAlreadyInReview(a.ID)
	case StatusPublished:
		return ArticleReviewStarted{}, NewAlreadyPublished(a.ID)
	case StatusDeleted:
		return ArticleReviewStarted{}, NewAlreadyDeleted(a.ID)
	default:
		return ArticleReviewStarted{}, unknownStatus(a)
	}
}

// Publish makes an in-review article publicly visible. The publication
// time comes from the factory clock.
func (f EventFactory) Publish(a Article) (ArticlePublished, error) {
	switch a.Status {
	case StatusInReview:
		publishedAt := f.now()
		reviewer := *a.ReviewerID
		published := Article{
			ID:          a.ID,
			Title:       a.Title,
			Content:     a.Content,
			Status:      StatusPublished,
			ReviewerID:  &reviewer,
			PublishedAt: &publishedAt,
		}
		return ArticlePublished{
			EventID:   f.eventID(),
			EventAt:   publishedAt,
			EventName: EventArticlePublished,
			Payload:   PublishedPayload{PublishedAt: publishedAt},
			Aggregate: published,
		}, nil
	case StatusDraft:
		return ArticlePublished{}, NewReviewRequired(a.ID)
	case StatusPublished:
		return ArticlePublished{}, NewAlreadyPublished(a.ID)
	case StatusDeleted:
		return ArticlePublished{}, NewAlreadyDeleted(a.ID)
	default:
		return ArticlePublished{}, unknownStatus(a)
	}
}

// Reject sends an in-review article back to draft, clearing the reviewer.
func (f EventFactory) Reject(a Article) (ArticleRejected, error) {
	switch a.Status {
	case StatusInReview:
		draft := Article{
			ID:      a.ID,
			Title:   a.Title,
			Content: a.Content,
			Status:  StatusDraft,
		}
		return ArticleRejected{
			EventID:   f.eventID(),
			EventAt:   f.now(),
			EventName: EventArticleRejected,
			Payload:   RejectedPayload{ID: a.ID},
			Aggregate: draft,
		}, nil
	case StatusDraft:
		return ArticleRejected{}, NewStillDraft(a.ID)
	case StatusPublished:
		return ArticleRejected{}, NewAlreadyPublished(a.ID)
	case StatusDeleted:
		return ArticleRejected{}, NewAlreadyDeleted(a.ID)
	default:
		return ArticleRejected{}, unknownStatus(a)
	}
}

// Unpublish takes a published article off the air, returning it to review
// with its reviewer retained and the publication time cleared.
func (f EventFactory) Unpublish(a Article) (ArticleUnpublished, error) {
	switch a.Status {
	case StatusPublished:
		reviewer := *a.ReviewerID
		inReview := Article{
			ID:         a.ID,
			Title:      a.Title,
			Content:    a.Content,
			Status:     StatusInReview,
			ReviewerID: &reviewer,
		}
		return ArticleUnpublished{
			EventID:   f.eventID(),
			EventAt:   f.now(),
			EventName: EventArticleUnpublished,
			Payload:   UnpublishedPayload{ID: a.ID},
			Aggregate: inReview,
		}, nil
	case StatusDraft:
		return ArticleUnpublished{}, NewStillDraft(a.ID)
	case StatusInReview:
		return ArticleUnpublished{}, NewAlreadyInReview(a.ID)
	case StatusDeleted:
		return ArticleUnpublished{}, NewAlreadyDeleted(a.ID)
	default:
		return ArticleUnpublished{}, unknownStatus(a)
	}
}

// Delete soft-deletes an article from any live state. The payload carries
// the full prior snapshot for the audit trail. Deleted is terminal:
// deleting again is an error.
func (f EventFactory) Delete(a Article) (ArticleDeleted, error) {
	switch a.Status {
	case StatusDraft, StatusInReview, StatusPublished:
		deleted := Article{
			ID:      a.ID,
			Title:   a.Title,
			Content: a.Content,
			Status:  StatusDeleted,
		}
		if a.ReviewerID != nil {
			reviewer := *a.ReviewerID
			deleted.ReviewerID = &reviewer
		}
		if a.PublishedAt != nil {
			publishedAt := *a.PublishedAt
			deleted.PublishedAt = &publishedAt
		}
		return ArticleDeleted{
			EventID:   f.eventID(),
			EventAt:   f.now(),
			EventName: EventArticleDeleted,
			Payload:   a,
			Aggregate: deleted,
		}, nil
	case StatusDeleted:
		return ArticleDeleted{}, NewAlreadyDeleted(a.ID)
	default:
		return ArticleDeleted{}, unknownStatus(a)
	}
}
