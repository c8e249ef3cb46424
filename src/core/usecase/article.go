package usecase

import (
	"context"
	"log/slog"

	"pressroom/src/core/domain"
	"pressroom/src/core/ports"
)

// ArticleService orchestrates the article lifecycle: it resolves current
// state, applies a transition, and hands the resulting event to the store.
// Every error it returns is a *domain.Error; nothing is recovered locally.
type ArticleService struct {
	resolver ports.ArticleResolver
	store    ports.ArticleEventStore
	events   domain.EventFactory
	log      *slog.Logger
}

// NewArticleService constructs the service with an injectable event
// factory so callers (and tests) control id generation and time.
func NewArticleService(resolver ports.ArticleResolver, store ports.ArticleEventStore, events domain.EventFactory, log *slog.Logger) *ArticleService {
	return &ArticleService{resolver: resolver, store: store, events: events, log: log}
}

// Create makes a new draft article. The title must be unique among
// non-deleted articles; the freshly generated id is checked for the
// (astronomically rare) collision before anything is written.
func (s *ArticleService) Create(ctx context.Context, title, content string) (*domain.ArticleCreated, error) {
	t, err := domain.NewTitle(title)
	if err != nil {
		return nil, err
	}

	byTitle, err := s.resolver.ResolveByTitle(ctx, t)
	if err != nil {
		return nil, err
	}
	if byTitle != nil {
		return nil, domain.NewTitleDuplicated(*byTitle)
	}

	ev := s.events.Create(t, content)

	byID, err := s.resolver.ResolveByID(ctx, ev.Aggregate.ID)
	if err != nil {
		return nil, err
	}
	if byID != nil {
		return nil, domain.NewIDDuplicated(*byID)
	}

	if err := s.store.StoreCreated(ctx, ev); err != nil {
		return nil, err
	}
	s.log.Info("article created", "article_id", ev.Aggregate.ID, "event_id", ev.EventID)
	return &ev, nil
}

// StartReview assigns a reviewer to a draft article.
func (s *ArticleService) StartReview(ctx context.Context, id domain.ArticleID, reviewerID domain.UserID) (*domain.ArticleReviewStarted, error) {
	article, err := s.resolve(ctx, id)
	if err != nil {
		return nil, err
	}
	ev, err := s.events.StartReview(*article, reviewerID)
	if err != nil {
		return nil, err
	}
	if err := s.store.StoreReviewStarted(ctx, ev); err != nil {
		return nil, err
	}
	s.log.Info("article review started", "article_id", id, "reviewer_id", reviewerID, "event_id", ev.EventID)
	return &ev, nil
}

// Publish makes an in-review article publicly visible.
func (s *ArticleService) Publish(ctx context.Context, id domain.ArticleID) (*domain.ArticlePublished, error) {
	article, err := s.resolve(ctx, id)
	if err != nil {
		return nil, err
	}
	ev, err := s.events.Publish(*article)
	if err != nil {
		return nil, err
	}
	if err := s.store.StorePublished(ctx, ev); err != nil {
		return nil, err
	}
	s.log.Info("article published", "article_id", id, "event_id", ev.EventID)
	return &ev, nil
}

// Reject sends an in-review article back to draft.
func (s *ArticleService) Reject(ctx context.Context, id domain.ArticleID) (*domain.ArticleRejected, error) {
	article, err := s.resolve(ctx, id)
	if err != nil {
		return nil, err
	}
	ev, err := s.events.Reject(*article)
	if err != nil {
		return nil, err
	}
	if err := s.store.StoreRejected(ctx, ev); err != nil {
		return nil, err
	}
	s.log.Info("article rejected", "article_id", id, "event_id", ev.EventID)
	return &ev, nil
}

// Unpublish takes a published article off the air, back into review.
func (s *ArticleService) Unpublish(ctx context.Context, id domain.ArticleID) (*domain.ArticleUnpublished, error) {
	article, err := s.resolve(ctx, id)
	if err != nil {
		return nil, err
	}
	ev, err := s.events.Unpublish(*article)
	if err != nil {
		return nil, err
	}
	if err := s.store.StoreUnpublished(ctx, ev); err != nil {
		return nil, err
	}
	s.log.Info("article unpublished", "article_id", id, "event_id", ev.EventID)
	return &ev, nil
}

// Delete soft-deletes an article from any live state.
func (s *ArticleService) Delete(ctx context.Context, id domain.ArticleID) (*domain.ArticleDeleted, error) {
	article, err := s.resolve(ctx, id)
	if err != nil {
		return nil, err
	}
	ev, err := s.events.Delete(*article)
	if err != nil {
		return nil, err
	}
	if err := s.store.StoreDeleted(ctx, ev); err != nil {
		return nil, err
	}
	s.log.Info("article deleted", "article_id", id, "event_id", ev.EventID)
	return &ev, nil
}

// Get returns the current snapshot for id.
func (s *ArticleService) Get(ctx context.Context, id domain.ArticleID) (*domain.Article, error) {
	return s.resolve(ctx, id)
}

func (s *ArticleService) resolve(ctx context.Context, id domain.ArticleID) (*domain.Article, error) {
	article, err := s.resolver.ResolveByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if article == nil {
		return nil, domain.NewArticleNotFound(id)
	}
	return article, nil
}
