package domain

import (
	"fmt"

	"github.com/google/uuid"
)

// ArticleID uniquely identifies an article. It is a distinct type so it
// cannot be mixed up with a UserID or a raw string.
type ArticleID string

// NewArticleID generates a fresh article identifier.
func NewArticleID() ArticleID {
	return ArticleID(uuid.NewString())
}

// ParseArticleID validates s as an article identifier.
func ParseArticleID(s string) (ArticleID, error) {
	u, err := uuid.Parse(s)
	if err != nil {
		return "", fmt.Errorf("invalid article id %q: %w", s, err)
	}
	return ArticleID(u.String()), nil
}

func (id ArticleID) String() string {
	return string(id)
}

// UserID uniquely identifies a user (e.g. a reviewer).
type UserID string

// NewUserID generates a fresh user identifier.
func NewUserID() UserID {
	return UserID(uuid.NewString())
}

// ParseUserID validates s as a user identifier.
func ParseUserID(s string) (UserID, error) {
	u, err := uuid.Parse(s)
	if err != nil {
		return "", fmt.Errorf("invalid user id %q: %w", s, err)
	}
	return UserID(u.String()), nil
}

func (id UserID) String() string {
	return string(id)
}
