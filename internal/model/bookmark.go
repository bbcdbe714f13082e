package model

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// BookmarkStore defines persistence operations for bookmarks.
type BookmarkStore interface {
	Exists(ctx context.Context, userID, bookID uuid.UUID) (bool, error)
	Create(ctx context.Context, bookmark Bookmark) (Bookmark, error)
	Delete(ctx context.Context, userID, bookID uuid.UUID) error
	GetBookIDs(ctx context.Context, userID uuid.UUID) ([]uuid.UUID, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]Bookmark, error)
}

// Bookmark relates a user to a book. Book is populated on joined reads.
type Bookmark struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	BookID    uuid.UUID
	CreatedAt time.Time

	Book *Book
}
