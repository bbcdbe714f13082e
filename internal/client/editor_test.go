package client

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/billowria/bookshorts/internal/logger"
	"github.com/billowria/bookshorts/internal/model"
)

func TestContentEditor_LoadExisting(t *testing.T) {
	ctx := context.Background()
	bookID := uuid.New()

	api := &mockContentAPI{}
	api.On("GetContent", ctx, bookID, model.ContentTypeCore).Return(model.Content{
		BookID: bookID,
		Type:   model.ContentTypeCore,
		Body:   "<p>v1</p>",
		IsHTML: true,
	}, nil).Once()

	editor := NewContentEditor(api, logger.New(8))
	require.NoError(t, editor.Load(ctx, bookID, model.ContentTypeCore))

	assert.Equal(t, "<p>v1</p>", editor.Buffer())
	assert.False(t, editor.Dirty())
}

func TestContentEditor_LoadMissingStartsEmpty(t *testing.T) {
	ctx := context.Background()
	bookID := uuid.New()

	api := &mockContentAPI{}
	api.On("GetContent", ctx, bookID, model.ContentTypeDeepDive).Return(model.Content{}, model.ErrNotFound).Once()

	editor := NewContentEditor(api, logger.New(8))

	// A missing section is a blank slate, not a failure.
	require.NoError(t, editor.Load(ctx, bookID, model.ContentTypeDeepDive))
	assert.Empty(t, editor.Buffer())
	assert.False(t, editor.Dirty())
}

func TestContentEditor_DirtyAndDiscard(t *testing.T) {
	ctx := context.Background()
	bookID := uuid.New()

	api := &mockContentAPI{}
	api.On("GetContent", ctx, bookID, model.ContentTypeCore).Return(model.Content{
		BookID: bookID, Type: model.ContentTypeCore, Body: "<p>v1</p>",
	}, nil).Once()

	editor := NewContentEditor(api, logger.New(8))
	require.NoError(t, editor.Load(ctx, bookID, model.ContentTypeCore))

	editor.SetBuffer("<p>v2</p>")
	assert.True(t, editor.Dirty())

	editor.Discard()
	assert.False(t, editor.Dirty())
	assert.Equal(t, "<p>v1</p>", editor.Buffer())
}

func TestContentEditor_SaveAdvancesSnapshot(t *testing.T) {
	ctx := context.Background()
	bookID := uuid.New()

	api := &mockContentAPI{}
	api.On("GetContent", ctx, bookID, model.ContentTypeCore).Return(model.Content{
		BookID: bookID, Type: model.ContentTypeCore, Body: "<p>v1</p>",
	}, nil).Once()
	api.On("SaveContent", ctx, mock.MatchedBy(func(c model.Content) bool {
		return c.BookID == bookID && c.Type == model.ContentTypeCore && c.Body == "<p>v2</p>"
	})).Return(model.Content{
		BookID: bookID, Type: model.ContentTypeCore, Body: "<p>v2</p>", IsHTML: true,
	}, nil).Once()

	editor := NewContentEditor(api, logger.New(8))
	require.NoError(t, editor.Load(ctx, bookID, model.ContentTypeCore))

	editor.SetBuffer("<p>v2</p>")
	require.NoError(t, editor.Save(ctx))

	assert.False(t, editor.Dirty(), "a confirmed save is the new baseline")
	assert.Equal(t, "<p>v2</p>", editor.Buffer())
}

func TestContentEditor_FailedSaveStaysDirty(t *testing.T) {
	ctx := context.Background()
	bookID := uuid.New()

	api := &mockContentAPI{}
	api.On("GetContent", ctx, bookID, model.ContentTypeCore).Return(model.Content{
		BookID: bookID, Type: model.ContentTypeCore, Body: "<p>v1</p>",
	}, nil).Once()
	api.On("SaveContent", ctx, mock.Anything).Return(model.Content{}, assert.AnError).Once()

	editor := NewContentEditor(api, logger.New(8))
	require.NoError(t, editor.Load(ctx, bookID, model.ContentTypeCore))

	editor.SetBuffer("<p>v2</p>")
	require.Error(t, editor.Save(ctx))

	assert.True(t, editor.Dirty())
	assert.Equal(t, "<p>v2</p>", editor.Buffer(), "the draft survives a failed save")
}

func TestContentEditor_CleanSaveIsNoop(t *testing.T) {
	ctx := context.Background()
	bookID := uuid.New()

	api := &mockContentAPI{}
	api.On("GetContent", ctx, bookID, model.ContentTypeCore).Return(model.Content{
		BookID: bookID, Type: model.ContentTypeCore, Body: "<p>v1</p>",
	}, nil).Once()

	editor := NewContentEditor(api, logger.New(8))
	require.NoError(t, editor.Load(ctx, bookID, model.ContentTypeCore))

	require.NoError(t, editor.Save(ctx))
	api.AssertNotCalled(t, "SaveContent", mock.Anything, mock.Anything)
}

func TestContentEditor_SaveBeforeLoad(t *testing.T) {
	editor := NewContentEditor(&mockContentAPI{}, logger.New(8))

	require.ErrorIs(t, editor.Save(context.Background()), ErrNotLoaded)
}
