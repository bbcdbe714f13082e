package client

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/billowria/bookshorts/internal/logger"
)

// BookmarkSet mirrors which books the user has bookmarked. The local
// set changes only after the server confirms, so the view never shows a
// bookmark the backend doesn't have.
type BookmarkSet struct {
	api     BookmarkAPI
	session *SessionStore
	logger  *logger.Logger

	mu  sync.Mutex
	set map[uuid.UUID]struct{}
}

func NewBookmarkSet(api BookmarkAPI, session *SessionStore, l *logger.Logger) *BookmarkSet {
	return &BookmarkSet{
		api:     api,
		session: session,
		logger:  l,
		set:     make(map[uuid.UUID]struct{}),
	}
}

// Load replaces the set from the server.
func (b *BookmarkSet) Load(ctx context.Context) error {
	ids, err := b.api.BookmarkIDs(ctx)
	if err != nil {
		return err
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	b.set = make(map[uuid.UUID]struct{}, len(ids))
	for _, id := range ids {
		b.set[id] = struct{}{}
	}
	return nil
}

// Contains reports whether the book is bookmarked per the last
// confirmed state.
func (b *BookmarkSet) Contains(bookID uuid.UUID) bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	_, ok := b.set[bookID]
	return ok
}

// Len returns the number of bookmarked books.
func (b *BookmarkSet) Len() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.set)
}

// Toggle flips the bookmark on the server, then reflects the confirmed
// state locally. Without a signed-in user it fails immediately, before
// any remote call. On a failed call the set stays as it was.
func (b *BookmarkSet) Toggle(ctx context.Context, bookID uuid.UUID) (bookmarked bool, err error) {
	if b.session.Snapshot().Identity == nil {
		return false, ErrUnauthenticated
	}

	bookmarked, err = b.api.ToggleBookmark(ctx, bookID)
	if err != nil {
		b.logger.Debug("bookmark toggle failed, keeping local state",
			"book_id", bookID,
			"error", err.Error())
		return false, err
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	if bookmarked {
		b.set[bookID] = struct{}{}
	} else {
		delete(b.set, bookID)
	}
	return bookmarked, nil
}
