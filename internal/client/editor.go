package client

import (
	"context"
	"errors"
	"sync"

	"github.com/google/uuid"

	"github.com/billowria/bookshorts/internal/logger"
	"github.com/billowria/bookshorts/internal/model"
)

// ErrNotLoaded is returned by editor operations before a successful
// Load.
var ErrNotLoaded = errors.New("editor: no content loaded")

// ContentEditor edits one (book, type) section with an explicit
// buffer/snapshot split: the buffer is what the author is typing, the
// snapshot is the last state the server confirmed. Dirtiness is just
// the difference between the two.
type ContentEditor struct {
	api    ContentAPI
	logger *logger.Logger

	mu       sync.Mutex
	bookID   uuid.UUID
	kind     model.ContentType
	buffer   string
	snapshot string
	loaded   bool
}

func NewContentEditor(api ContentAPI, l *logger.Logger) *ContentEditor {
	return &ContentEditor{api: api, logger: l}
}

// Load fetches the stored section and points both buffer and snapshot
// at it. A book with no section yet starts from an empty buffer; that
// is not an error.
func (e *ContentEditor) Load(ctx context.Context, bookID uuid.UUID, kind model.ContentType) error {
	content, err := e.api.GetContent(ctx, bookID, kind)
	if err != nil && !errors.Is(err, model.ErrNotFound) {
		return err
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	e.bookID = bookID
	e.kind = kind
	e.buffer = content.Body
	e.snapshot = content.Body
	e.loaded = true
	return nil
}

// Buffer returns the working text.
func (e *ContentEditor) Buffer() string {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.buffer
}

// SetBuffer replaces the working text.
func (e *ContentEditor) SetBuffer(text string) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.buffer = text
}

// Dirty reports whether the buffer differs from the last confirmed
// snapshot.
func (e *ContentEditor) Dirty() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.buffer != e.snapshot
}

// Discard resets the buffer to the snapshot.
func (e *ContentEditor) Discard() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.buffer = e.snapshot
}

// Save upserts the buffer. The snapshot advances only when the server
// confirms, so a failed save leaves the editor dirty and the buffer
// intact. Saving a clean editor is a no-op.
func (e *ContentEditor) Save(ctx context.Context) error {
	e.mu.Lock()
	if !e.loaded {
		e.mu.Unlock()
		return ErrNotLoaded
	}
	if e.buffer == e.snapshot {
		e.mu.Unlock()
		return nil
	}
	content := model.Content{
		BookID: e.bookID,
		Type:   e.kind,
		Body:   e.buffer,
		IsHTML: true,
	}
	e.mu.Unlock()

	saved, err := e.api.SaveContent(ctx, content)
	if err != nil {
		e.logger.Error("editor: save failed", "book_id", content.BookID, "error", err.Error())
		return err
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	e.snapshot = saved.Body
	return nil
}
