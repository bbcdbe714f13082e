package client

import (
	"context"
	"sync"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/google/uuid"

	"github.com/billowria/bookshorts/internal/logger"
	"github.com/billowria/bookshorts/internal/model"
)

// Resource holds remotely-fetched data together with its loading and
// error state. Each load cycle gets a generation number; a result from
// a superseded cycle is discarded so an older response can never
// overwrite a newer one.
type Resource[T any] struct {
	mu      sync.Mutex
	data    T
	loading bool
	err     error
	gen     uint64
}

// State returns the current data, loading flag, and error.
func (r *Resource[T]) State() (data T, loading bool, err error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.data, r.loading, r.err
}

// Load runs fetch and applies the result unless a newer Load started in
// the meantime. On failure the previous data is kept and the error is
// recorded.
func (r *Resource[T]) Load(ctx context.Context, fetch func(context.Context) (T, error)) error {
	r.mu.Lock()
	r.gen++
	gen := r.gen
	r.loading = true
	r.mu.Unlock()

	data, err := fetch(ctx)

	r.mu.Lock()
	defer r.mu.Unlock()
	if gen != r.gen {
		// A newer cycle owns the resource now.
		return err
	}
	r.loading = false
	r.err = err
	if err == nil {
		r.data = data
	}
	return err
}

// Set replaces the data directly, e.g. after a confirmed mutation.
func (r *Resource[T]) Set(data T) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.gen++
	r.data = data
	r.loading = false
	r.err = nil
}

// bookmarkBackOff returns the retry schedule for bookmark fetches:
// three retries after the initial attempt, waiting 1s, 2s, then 4s.
func bookmarkBackOff() backoff.BackOff {
	b := backoff.NewExponentialBackOff()
	b.InitialInterval = 1 * time.Second
	b.RandomizationFactor = 0
	b.Multiplier = 2
	b.MaxElapsedTime = 0
	return backoff.WithMaxRetries(b, 3)
}

// BookmarkSync keeps the signed-in user's bookmark list fresh. Network
// flakiness on the list fetch is retried before it is surfaced.
type BookmarkSync struct {
	api     BookmarkAPI
	logger  *logger.Logger
	backOff func() backoff.BackOff

	resource Resource[[]model.Bookmark]
}

func NewBookmarkSync(api BookmarkAPI, l *logger.Logger) *BookmarkSync {
	return &BookmarkSync{
		api:     api,
		logger:  l,
		backOff: bookmarkBackOff,
	}
}

// State returns the current bookmark list with its loading and error
// flags.
func (s *BookmarkSync) State() ([]model.Bookmark, bool, error) {
	return s.resource.State()
}

// Refresh reloads the bookmark list, retrying transient failures per
// the backoff schedule. A refresh that finishes after a newer one
// started is discarded.
func (s *BookmarkSync) Refresh(ctx context.Context) error {
	return s.resource.Load(ctx, func(ctx context.Context) ([]model.Bookmark, error) {
		var bookmarks []model.Bookmark
		attempt := 0
		op := func() error {
			attempt++
			got, err := s.api.ListBookmarks(ctx)
			if err != nil {
				s.logger.Debug("bookmark fetch failed",
					"attempt", attempt,
					"error", err.Error())
				return err
			}
			bookmarks = got
			return nil
		}
		if err := backoff.Retry(op, backoff.WithContext(s.backOff(), ctx)); err != nil {
			return nil, err
		}
		return bookmarks, nil
	})
}

// ClickReporter sends click telemetry. Failures are logged and
// swallowed; a lost click never interrupts browsing.
type ClickReporter struct {
	api    CatalogAPI
	logger *logger.Logger
}

func NewClickReporter(api CatalogAPI, l *logger.Logger) *ClickReporter {
	return &ClickReporter{api: api, logger: l}
}

func (r *ClickReporter) ReportBook(ctx context.Context, id uuid.UUID) {
	if err := r.api.RecordBookClick(ctx, id); err != nil {
		r.logger.Debug("book click not recorded", "book_id", id, "error", err.Error())
	}
}

func (r *ClickReporter) ReportCategory(ctx context.Context, id uuid.UUID) {
	if err := r.api.RecordCategoryClick(ctx, id); err != nil {
		r.logger.Debug("category click not recorded", "category_id", id, "error", err.Error())
	}
}
