package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/billowria/bookshorts/internal/logger"
	"github.com/billowria/bookshorts/internal/model"
)

// Bookmarks manages the per-user bookmark set.
type Bookmarks struct {
	bookmarkStore model.BookmarkStore
	logger        *logger.Logger
}

func NewBookmarks(bookmarkStore model.BookmarkStore, logger *logger.Logger) *Bookmarks {
	return &Bookmarks{bookmarkStore: bookmarkStore, logger: logger}
}

// Toggle flips the bookmark state for (user, book) and reports whether
// the bookmark now exists. The existence check decides the direction, so
// repeated toggles alternate between add and remove.
func (b *Bookmarks) Toggle(ctx context.Context, userID, bookID uuid.UUID) (added bool, err error) {
	exists, err := b.bookmarkStore.Exists(ctx, userID, bookID)
	if err != nil {
		return false, fmt.Errorf("failed to check bookmark: %w", err)
	}

	if exists {
		err := b.bookmarkStore.Delete(ctx, userID, bookID)
		if err != nil && !errors.Is(err, model.ErrNotFound) {
			return false, fmt.Errorf("failed to remove bookmark: %w", err)
		}
		b.logger.Debug("Bookmarks service: bookmark removed",
			"user_id", userID,
			"book_id", bookID)
		return false, nil
	}

	_, err = b.bookmarkStore.Create(ctx, model.Bookmark{
		UserID: userID,
		BookID: bookID,
	})
	if err != nil {
		return false, fmt.Errorf("failed to add bookmark: %w", err)
	}
	b.logger.Debug("Bookmarks service: bookmark added",
		"user_id", userID,
		"book_id", bookID)
	return true, nil
}

// List returns the user's bookmarks with their books attached, newest
// first.
func (b *Bookmarks) List(ctx context.Context, userID uuid.UUID) ([]model.Bookmark, error) {
	bookmarks, err := b.bookmarkStore.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list bookmarks: %w", err)
	}
	return bookmarks, nil
}

// BookIDs returns just the bookmarked book IDs for cheap membership
// checks on the browsing surface.
func (b *Bookmarks) BookIDs(ctx context.Context, userID uuid.UUID) ([]uuid.UUID, error) {
	ids, err := b.bookmarkStore.GetBookIDs(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get bookmarked book ids: %w", err)
	}
	return ids, nil
}
