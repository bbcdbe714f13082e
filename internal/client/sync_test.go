package client

import (
	"context"
	"testing"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/billowria/bookshorts/internal/logger"
	"github.com/billowria/bookshorts/internal/model"
)

const (
	testWait = time.Second
	testTick = time.Millisecond
)

// immediateRetries mirrors the production schedule's attempt count
// without its delays.
func immediateRetries() backoff.BackOff {
	return backoff.WithMaxRetries(&backoff.ZeroBackOff{}, 3)
}

func TestResource_LoadSuccess(t *testing.T) {
	var r Resource[[]string]

	err := r.Load(context.Background(), func(context.Context) ([]string, error) {
		return []string{"a", "b"}, nil
	})
	require.NoError(t, err)

	data, loading, loadErr := r.State()
	assert.Equal(t, []string{"a", "b"}, data)
	assert.False(t, loading)
	assert.NoError(t, loadErr)
}

func TestResource_LoadFailureKeepsData(t *testing.T) {
	var r Resource[[]string]

	require.NoError(t, r.Load(context.Background(), func(context.Context) ([]string, error) {
		return []string{"a"}, nil
	}))
	require.Error(t, r.Load(context.Background(), func(context.Context) ([]string, error) {
		return nil, assert.AnError
	}))

	data, loading, err := r.State()
	assert.Equal(t, []string{"a"}, data, "previous data survives a failed reload")
	assert.False(t, loading)
	assert.ErrorIs(t, err, assert.AnError)
}

func TestResource_StaleResultDiscarded(t *testing.T) {
	var r Resource[string]
	ctx := context.Background()

	release := make(chan struct{})
	firstDone := make(chan struct{})

	go func() {
		_ = r.Load(ctx, func(context.Context) (string, error) {
			<-release
			return "old", nil
		})
		close(firstDone)
	}()

	// Second cycle starts and finishes while the first is in flight.
	require.Eventually(t, func() bool {
		_, loading, _ := r.State()
		return loading
	}, testWait, testTick)
	require.NoError(t, r.Load(ctx, func(context.Context) (string, error) {
		return "new", nil
	}))

	close(release)
	<-firstDone

	data, _, _ := r.State()
	assert.Equal(t, "new", data, "the older response must not overwrite the newer one")
}

func TestBookmarkSync_RetriesThenSucceeds(t *testing.T) {
	ctx := context.Background()
	want := []model.Bookmark{{ID: uuid.New(), BookID: uuid.New()}}

	api := &mockBookmarkAPI{}
	api.On("ListBookmarks", ctx).Return([]model.Bookmark(nil), assert.AnError).Twice()
	api.On("ListBookmarks", ctx).Return(want, nil).Once()

	sync := NewBookmarkSync(api, logger.New(8))
	sync.backOff = immediateRetries

	require.NoError(t, sync.Refresh(ctx))

	data, loading, err := sync.State()
	assert.Equal(t, want, data)
	assert.False(t, loading)
	assert.NoError(t, err)
	api.AssertNumberOfCalls(t, "ListBookmarks", 3)
}

func TestBookmarkSync_GivesUpAfterRetries(t *testing.T) {
	ctx := context.Background()

	api := &mockBookmarkAPI{}
	api.On("ListBookmarks", ctx).Return([]model.Bookmark(nil), assert.AnError)

	sync := NewBookmarkSync(api, logger.New(8))
	sync.backOff = immediateRetries

	require.Error(t, sync.Refresh(ctx))

	// Initial attempt plus three retries.
	api.AssertNumberOfCalls(t, "ListBookmarks", 4)

	_, loading, err := sync.State()
	assert.False(t, loading)
	assert.Error(t, err)
}

func TestBookmarkBackOffSchedule(t *testing.T) {
	b := bookmarkBackOff()

	assert.Equal(t, 1.0, b.NextBackOff().Seconds())
	assert.Equal(t, 2.0, b.NextBackOff().Seconds())
	assert.Equal(t, 4.0, b.NextBackOff().Seconds())
	assert.Equal(t, backoff.Stop, b.NextBackOff())
}

func TestClickReporter_SwallowsErrors(t *testing.T) {
	ctx := context.Background()
	bookID := uuid.New()
	categoryID := uuid.New()

	api := &mockCatalogAPI{}
	api.On("RecordBookClick", ctx, bookID).Return(assert.AnError).Once()
	api.On("RecordCategoryClick", ctx, categoryID).Return(nil).Once()

	reporter := NewClickReporter(api, logger.New(8))

	// Neither call panics or surfaces the failure.
	reporter.ReportBook(ctx, bookID)
	reporter.ReportCategory(ctx, categoryID)
	api.AssertExpectations(t)
}
