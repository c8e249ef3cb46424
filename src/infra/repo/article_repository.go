// Package repo contains PostgreSQL implementations of the core ports.
// It uses pgx directly (no ORM) for explicit SQL control.
package repo

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"pressroom/src/core/domain"
	"pressroom/src/core/ports"
)

// Constraint names from the migrations. 23505 violations are mapped to
// domain errors by matching these, so renaming an index here requires a
// matching migration change.
const (
	constraintArticlePK = "articles_pkey"
	// Partial unique index over non-deleted titles.
	constraintLiveTitle = "articles_live_title_idx"
)

// ArticleRepository implements ports.ArticleRepository on a pgx pool.
//
// Every Store method runs the snapshot write and the event append in one
// transaction. The snapshot row is always written first, so concurrent
// transitions on the same article serialize on its row lock and their
// events land in the log in lock-acquisition order.
type ArticleRepository struct {
	pool *pgxpool.Pool
	log  *slog.Logger
}

var _ ports.ArticleRepository = (*ArticleRepository)(nil)

// NewArticleRepository creates a repository backed by the given pool.
func NewArticleRepository(pool *pgxpool.Pool, log *slog.Logger) *ArticleRepository {
	return &ArticleRepository{pool: pool, log: log}
}

// Health checks database connectivity.
func (r *ArticleRepository) Health(ctx context.Context) error {
	return r.pool.Ping(ctx)
}

const articleColumns = `id, title, content, status, reviewer_id, published_at`

// ResolveByID returns the snapshot for id regardless of status, so deleted
// articles remain visible to callers that hold their id.
func (r *ArticleRepository) ResolveByID(ctx context.Context, id domain.ArticleID) (*domain.Article, error) {
	query := `SELECT ` + articleColumns + ` FROM articles WHERE id = $1`
	return r.resolveOne(ctx, query, id.String())
}

// ResolveByTitle returns the non-deleted article holding title. Deleted
// articles release their title, so they are excluded here.
func (r *ArticleRepository) ResolveByTitle(ctx context.Context, title domain.Title) (*domain.Article, error) {
	query := `SELECT ` + articleColumns + ` FROM articles WHERE title = $1 AND status <> $2`
	return r.resolveOne(ctx, query, title.String(), string(domain.StatusDeleted))
}

func (r *ArticleRepository) resolveOne(ctx context.Context, query string, args ...any) (*domain.Article, error) {
	var row articleRow
	err := r.pool.QueryRow(ctx, query, args...).Scan(
		&row.ID, &row.Title, &row.Content, &row.Status, &row.ReviewerID, &row.PublishedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, domain.NewStorageFailure(fmt.Errorf("query article: %w", err))
	}

	article, err := row.toArticle()
	if err != nil {
		return nil, domain.NewStorageFailure(err)
	}
	return &article, nil
}

// StoreCreated inserts the initial snapshot and appends ArticleCreated.
// Unique violations are mapped to TitleDuplicated or IdDuplicated by
// constraint name, covering races the use-case pre-checks cannot see.
func (r *ArticleRepository) StoreCreated(ctx context.Context, ev domain.ArticleCreated) error {
	return storeEvent(ctx, r, ev, func(ctx context.Context, tx pgx.Tx) error {
		return r.insertSnapshot(ctx, tx, ev.Aggregate)
	})
}

// StoreReviewStarted updates the snapshot and appends ArticleReviewStarted.
func (r *ArticleRepository) StoreReviewStarted(ctx context.Context, ev domain.ArticleReviewStarted) error {
	return storeEvent(ctx, r, ev, func(ctx context.Context, tx pgx.Tx) error {
		return r.updateSnapshot(ctx, tx, ev.Aggregate)
	})
}

// StorePublished updates the snapshot and appends ArticlePublished.
func (r *ArticleRepository) StorePublished(ctx context.Context, ev domain.ArticlePublished) error {
	return storeEvent(ctx, r, ev, func(ctx context.Context, tx pgx.Tx) error {
		return r.updateSnapshot(ctx, tx, ev.Aggregate)
	})
}

// StoreRejected updates the snapshot and appends ArticleRejected.
func (r *ArticleRepository) StoreRejected(ctx context.Context, ev domain.ArticleRejected) error {
	return storeEvent(ctx, r, ev, func(ctx context.Context, tx pgx.Tx) error {
		return r.updateSnapshot(ctx, tx, ev.Aggregate)
	})
}

// StoreUnpublished updates the snapshot and appends ArticleUnpublished.
func (r *ArticleRepository) StoreUnpublished(ctx context.Context, ev domain.ArticleUnpublished) error {
	return storeEvent(ctx, r, ev, func(ctx context.Context, tx pgx.Tx) error {
		return r.updateSnapshot(ctx, tx, ev.Aggregate)
	})
}

// StoreDeleted updates the snapshot and appends ArticleDeleted. Deletion is
// a status change; the row and its history stay in place.
func (r *ArticleRepository) StoreDeleted(ctx context.Context, ev domain.ArticleDeleted) error {
	return storeEvent(ctx, r, ev, func(ctx context.Context, tx pgx.Tx) error {
		return r.updateSnapshot(ctx, tx, ev.Aggregate)
	})
}

// storeEvent wraps one snapshot write plus one event append in a single
// transaction. If either write fails, neither is visible afterwards.
func storeEvent[P any](ctx context.Context, r *ArticleRepository, ev domain.Event[P], writeSnapshot func(ctx context.Context, tx pgx.Tx) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return domain.NewStorageFailure(fmt.Errorf("begin transaction: %w", err))
	}
	defer tx.Rollback(ctx)

	if err := writeSnapshot(ctx, tx); err != nil {
		return err
	}
	if err := r.appendEvent(ctx, tx, ev.EventID, ev.EventAt, string(ev.EventName), ev.Payload, ev.Aggregate); err != nil {
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return domain.NewStorageFailure(fmt.Errorf("commit transaction: %w", err))
	}

	r.log.Debug("event stored",
		"event_id", ev.EventID,
		"event_name", ev.EventName,
		"article_id", ev.Aggregate.ID,
	)
	return nil
}

func (r *ArticleRepository) insertSnapshot(ctx context.Context, tx pgx.Tx, a domain.Article) error {
	const query = `
		INSERT INTO articles (id, title, content, status, reviewer_id, published_at)
		VALUES ($1, $2, $3, $4, $5, $6)`

	row := rowFromArticle(a)
	_, err := tx.Exec(ctx, query, row.ID, row.Title, row.Content, row.Status, row.ReviewerID, row.PublishedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			switch pgErr.ConstraintName {
			case constraintLiveTitle:
				return domain.NewTitleDuplicated(a)
			case constraintArticlePK:
				return domain.NewIDDuplicated(a)
			}
		}
		return domain.NewStorageFailure(fmt.Errorf("insert article: %w", err))
	}
	return nil
}

func (r *ArticleRepository) updateSnapshot(ctx context.Context, tx pgx.Tx, a domain.Article) error {
	const query = `
		UPDATE articles
		SET title = $2, content = $3, status = $4, reviewer_id = $5, published_at = $6
		WHERE id = $1`

	row := rowFromArticle(a)
	tag, err := tx.Exec(ctx, query, row.ID, row.Title, row.Content, row.Status, row.ReviewerID, row.PublishedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" && pgErr.ConstraintName == constraintLiveTitle {
			return domain.NewTitleDuplicated(a)
		}
		return domain.NewStorageFailure(fmt.Errorf("update article: %w", err))
	}
	if tag.RowsAffected() == 0 {
		return domain.NewArticleNotFound(a.ID)
	}
	return nil
}

func (r *ArticleRepository) appendEvent(ctx context.Context, tx pgx.Tx, eventID string, eventAt time.Time, eventName string, payload, aggregate any) error {
	const query = `
		INSERT INTO domain_events (event_id, event_at, event_name, payload, aggregate)
		VALUES ($1, $2, $3, $4, $5)`

	payloadJSON, err := json.Marshal(payload)
	if err != nil {
		return domain.NewStorageFailure(fmt.Errorf("marshal event payload: %w", err))
	}
	aggregateJSON, err := json.Marshal(aggregate)
	if err != nil {
		return domain.NewStorageFailure(fmt.Errorf("marshal event aggregate: %w", err))
	}

	if _, err := tx.Exec(ctx, query, eventID, eventAt, eventName, payloadJSON, aggregateJSON); err != nil {
		return domain.NewStorageFailure(fmt.Errorf("append event: %w", err))
	}
	return nil
}
