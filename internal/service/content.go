package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/billowria/bookshorts/internal/logger"
	"github.com/billowria/bookshorts/internal/model"
)

// ErrInvalidContentType is returned for content types other than the
// known section kinds.
var ErrInvalidContentType = fmt.Errorf("invalid content type")

// Content serves and saves the HTML sections attached to books.
type Content struct {
	contentStore model.ContentStore
	bookStore    model.BookStore
	logger       *logger.Logger
}

func NewContent(contentStore model.ContentStore, bookStore model.BookStore, logger *logger.Logger) *Content {
	return &Content{contentStore: contentStore, bookStore: bookStore, logger: logger}
}

// Get returns the section of the given type for a book. A book with no
// saved section yields model.ErrNotFound; callers render that as empty
// rather than as a failure.
func (c *Content) Get(ctx context.Context, bookID uuid.UUID, contentType model.ContentType) (model.Content, error) {
	if !contentType.Valid() {
		return model.Content{}, ErrInvalidContentType
	}
	return c.contentStore.GetByBookAndType(ctx, bookID, contentType)
}

// Save upserts a section keyed by (book, type). The book must exist;
// repeated saves overwrite the previous body.
func (c *Content) Save(ctx context.Context, content model.Content) (model.Content, error) {
	if !content.Type.Valid() {
		return model.Content{}, ErrInvalidContentType
	}

	if _, err := c.bookStore.GetByID(ctx, content.BookID); err != nil {
		return model.Content{}, fmt.Errorf("failed to get book for content: %w", err)
	}

	saved, err := c.contentStore.Upsert(ctx, content)
	if err != nil {
		return model.Content{}, fmt.Errorf("failed to upsert content: %w", err)
	}

	c.logger.Info("Content service: content saved",
		"book_id", content.BookID,
		"type", content.Type)

	return saved, nil
}
