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

func TestContent_Get(t *testing.T) {
	ctx := context.Background()
	bookID := uuid.New()

	store := &mocks.ContentStore{}
	store.On("GetByBookAndType", ctx, bookID, model.ContentTypeCore).Return(model.Content{
		BookID: bookID,
		Type:   model.ContentTypeCore,
		Body:   "<p>summary</p>",
		IsHTML: true,
	}, nil).Once()

	svc := NewContent(store, &mocks.BookStore{}, logger.New(0))

	got, err := svc.Get(ctx, bookID, model.ContentTypeCore)
	require.NoError(t, err)
	assert.Equal(t, "<p>summary</p>", got.Body)
}

func TestContent_Get_InvalidType(t *testing.T) {
	svc := NewContent(&mocks.ContentStore{}, &mocks.BookStore{}, logger.New(0))

	_, err := svc.Get(context.Background(), uuid.New(), model.ContentType("summary"))
	require.ErrorIs(t, err, ErrInvalidContentType)
}

func TestContent_Get_Missing(t *testing.T) {
	ctx := context.Background()
	bookID := uuid.New()

	store := &mocks.ContentStore{}
	store.On("GetByBookAndType", ctx, bookID, model.ContentTypeDeepDive).Return(model.Content{}, model.ErrNotFound).Once()

	svc := NewContent(store, &mocks.BookStore{}, logger.New(0))

	_, err := svc.Get(ctx, bookID, model.ContentTypeDeepDive)
	require.ErrorIs(t, err, model.ErrNotFound)
}

func TestContent_Save(t *testing.T) {
	ctx := context.Background()
	bookID := uuid.New()

	books := &mocks.BookStore{}
	books.On("GetByID", ctx, bookID).Return(model.Book{ID: bookID}, nil).Once()

	store := &mocks.ContentStore{}
	store.On("Upsert", ctx, mock.MatchedBy(func(c model.Content) bool {
		return c.BookID == bookID && c.Type == model.ContentTypeCore
	})).Return(model.Content{ID: uuid.New(), BookID: bookID, Type: model.ContentTypeCore, Body: "<p>v2</p>"}, nil).Once()

	svc := NewContent(store, books, logger.New(0))

	saved, err := svc.Save(ctx, model.Content{BookID: bookID, Type: model.ContentTypeCore, Body: "<p>v2</p>", IsHTML: true})
	require.NoError(t, err)
	assert.Equal(t, "<p>v2</p>", saved.Body)
	store.AssertExpectations(t)
}

func TestContent_Save_UnknownBook(t *testing.T) {
	ctx := context.Background()
	bookID := uuid.New()

	books := &mocks.BookStore{}
	books.On("GetByID", ctx, bookID).Return(model.Book{}, model.ErrNotFound).Once()

	store := &mocks.ContentStore{}
	svc := NewContent(store, books, logger.New(0))

	_, err := svc.Save(ctx, model.Content{BookID: bookID, Type: model.ContentTypeCore})
	require.Error(t, err)
	store.AssertNotCalled(t, "Upsert", mock.Anything, mock.Anything)
}
