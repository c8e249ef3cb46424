package repo

import (
	"fmt"
	"time"

	"pressroom/src/core/domain"
)

// articleRow is the persisted shape of an article snapshot: one row per
// article id, columns the union of all state fields, status discriminating
// which optional columns are semantically populated.
type articleRow struct {
	ID          string
	Title       string
	Content     string
	Status      string
	ReviewerID  *string
	PublishedAt *time.Time
}

func rowFromArticle(a domain.Article) articleRow {
	row := articleRow{
		ID:      a.ID.String(),
		Title:   a.Title.String(),
		Content: a.Content,
		Status:  string(a.Status),
	}
	if a.ReviewerID != nil {
		reviewer := a.ReviewerID.String()
		row.ReviewerID = &reviewer
	}
	if a.PublishedAt != nil {
		publishedAt := *a.PublishedAt
		row.PublishedAt = &publishedAt
	}
	return row
}

// toArticle maps a row back to the aggregate, rejecting rows that violate
// the status/field invariant rather than handing broken state to the core.
func (r articleRow) toArticle() (domain.Article, error) {
	id, err := domain.ParseArticleID(r.ID)
	if err != nil {
		return domain.Article{}, err
	}

	article := domain.Article{
		ID:      id,
		Title:   domain.Title(r.Title),
		Content: r.Content,
		Status:  domain.Status(r.Status),
	}
	if r.ReviewerID != nil {
		reviewer, err := domain.ParseUserID(*r.ReviewerID)
		if err != nil {
			return domain.Article{}, err
		}
		article.ReviewerID = &reviewer
	}
	if r.PublishedAt != nil {
		publishedAt := *r.PublishedAt
		article.PublishedAt = &publishedAt
	}

	if err := article.Validate(); err != nil {
		return domain.Article{}, fmt.Errorf("corrupt article row %s: %w", r.ID, err)
	}
	return article, nil
}
