// Package dto contains Data Transfer Objects for HTTP requests and responses.
//
// DTOs are separate from domain entities to:
//   - Control what data is exposed in the API
//   - Handle JSON serialization/deserialization
//   - Add validation tags for request binding
package dto

import (
	"time"

	"pressroom/src/core/domain"
)

// CreateArticleRequest is the payload for POST /v1/articles.
type CreateArticleRequest struct {
	Title   string `json:"title" binding:"required"`
	Content string `json:"content" binding:"required"`
}

// StartReviewRequest is the payload for starting a review.
type StartReviewRequest struct {
	ReviewerID string `json:"reviewer_id" binding:"required,uuid"`
}

// ArticleResponse is the API shape of an article snapshot.
type ArticleResponse struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Content     string     `json:"content"`
	Status      string     `json:"status"`
	ReviewerID  *string    `json:"reviewer_id,omitempty"`
	PublishedAt *time.Time `json:"published_at,omitempty"`
}

// ArticleFromDomain maps an article snapshot to its API shape.
func ArticleFromDomain(a domain.Article) ArticleResponse {
	resp := ArticleResponse{
		ID:      a.ID.String(),
		Title:   a.Title.String(),
		Content: a.Content,
		Status:  string(a.Status),
	}
	if a.ReviewerID != nil {
		reviewer := a.ReviewerID.String()
		resp.ReviewerID = &reviewer
	}
	if a.PublishedAt != nil {
		publishedAt := *a.PublishedAt
		resp.PublishedAt = &publishedAt
	}
	return resp
}

// EventResponse is the API shape of an accepted transition. The payload
// differences between event kinds are not exposed; clients get the event
// identity plus the resulting snapshot.
type EventResponse struct {
	EventID   string          `json:"event_id"`
	EventAt   time.Time       `json:"event_at"`
	EventName string          `json:"event_name"`
	Article   ArticleResponse `json:"article"`
}

// EventFromDomain maps any article event to its API shape.
func EventFromDomain[P any](ev domain.Event[P]) EventResponse {
	return EventResponse{
		EventID:   ev.EventID,
		EventAt:   ev.EventAt,
		EventName: string(ev.EventName),
		Article:   ArticleFromDomain(ev.Aggregate),
	}
}
