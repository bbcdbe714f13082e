package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/billowria/bookshorts/internal/logger"
	"github.com/billowria/bookshorts/internal/mocks"
	"github.com/billowria/bookshorts/internal/model"
)

func TestBookmarks_Toggle_Add(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	bookID := uuid.New()

	store := &mocks.BookmarkStore{}
	store.On("Exists", ctx, userID, bookID).Return(false, nil).Once()
	store.On("Create", ctx, mock.MatchedBy(func(bm model.Bookmark) bool {
		return bm.UserID == userID && bm.BookID == bookID
	})).Return(model.Bookmark{ID: uuid.New(), UserID: userID, BookID: bookID}, nil).Once()

	svc := NewBookmarks(store, logger.New(0))

	added, err := svc.Toggle(ctx, userID, bookID)
	require.NoError(t, err)
	assert.True(t, added)
	store.AssertExpectations(t)
}

func TestBookmarks_Toggle_Remove(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	bookID := uuid.New()

	store := &mocks.BookmarkStore{}
	store.On("Exists", ctx, userID, bookID).Return(true, nil).Once()
	store.On("Delete", ctx, userID, bookID).Return(nil).Once()

	svc := NewBookmarks(store, logger.New(0))

	added, err := svc.Toggle(ctx, userID, bookID)
	require.NoError(t, err)
	assert.False(t, added)
	store.AssertExpectations(t)
}

func TestBookmarks_Toggle_RemoveRaceAlreadyGone(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	bookID := uuid.New()

	store := &mocks.BookmarkStore{}
	store.On("Exists", ctx, userID, bookID).Return(true, nil).Once()
	store.On("Delete", ctx, userID, bookID).Return(model.ErrNotFound).Once()

	svc := NewBookmarks(store, logger.New(0))

	// A concurrent removal between check and delete still lands on "not
	// bookmarked" without an error.
	added, err := svc.Toggle(ctx, userID, bookID)
	require.NoError(t, err)
	assert.False(t, added)
}

func TestBookmarks_Toggle_ExistsError(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	bookID := uuid.New()

	store := &mocks.BookmarkStore{}
	store.On("Exists", ctx, userID, bookID).Return(false, assert.AnError).Once()

	svc := NewBookmarks(store, logger.New(0))

	_, err := svc.Toggle(ctx, userID, bookID)
	require.Error(t, err)
	store.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	store.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything, mock.Anything)
}

func TestBookmarks_List(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	store := &mocks.BookmarkStore{}
	store.On("ListByUser", ctx, userID).Return([]model.Bookmark{
		{ID: uuid.New(), UserID: userID, BookID: uuid.New()},
		{ID: uuid.New(), UserID: userID, BookID: uuid.New()},
	}, nil).Once()

	svc := NewBookmarks(store, logger.New(0))

	bookmarks, err := svc.List(ctx, userID)
	require.NoError(t, err)
	assert.Len(t, bookmarks, 2)
}
