// Package ports defines interfaces (ports) that connect core domain to infrastructure.
// These interfaces follow the ports and adapters (hexagonal) architecture pattern.
//
// Ports are defined here in the core layer, while implementations (adapters)
// live in src/infra/repo. This ensures the core has no dependency on infrastructure.
package ports

import (
	"context"

	"pressroom/src/core/domain"
)

// Repository is the base interface for all repositories.
type Repository interface {
	// Health checks if the underlying storage is reachable.
	Health(ctx context.Context) error
}

// ArticleResolver is the read side: lookups over the latest durably
// committed snapshots. Absence is reported as (nil, nil), not an error.
type ArticleResolver interface {
	// ResolveByID returns the snapshot for id, whatever its status.
	ResolveByID(ctx context.Context, id domain.ArticleID) (*domain.Article, error)

	// ResolveByTitle returns the non-deleted article holding title, serving
	// the title-uniqueness check in the Create use case.
	ResolveByTitle(ctx context.Context, title domain.Title) (*domain.Article, error)
}

// ArticleEventStore is the write side. Each method persists the event's
// aggregate snapshot and appends the event to the immutable log as one
// atomic unit: both happen or neither does. Events for a single article
// are persisted in the order their transitions were accepted.
type ArticleEventStore interface {
	StoreCreated(ctx context.Context, ev domain.ArticleCreated) error
	StoreReviewStarted(ctx context.Context, ev domain.ArticleReviewStarted) error
	StorePublished(ctx context.Context, ev domain.ArticlePublished) error
	StoreRejected(ctx context.Context, ev domain.ArticleRejected) error
	StoreUnpublished(ctx context.Context, ev domain.ArticleUnpublished) error
	StoreDeleted(ctx context.Context, ev domain.ArticleDeleted) error
}

// ArticleRepository bundles both sides for wiring convenience.
type ArticleRepository interface {
	Repository
	ArticleResolver
	ArticleEventStore
}
