package model

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// ContentStore defines persistence operations for book content.
type ContentStore interface {
	GetByBookAndType(ctx context.Context, bookID uuid.UUID, contentType ContentType) (Content, error)
	Upsert(ctx context.Context, content Content) (Content, error)
}

// ContentType enumerates content section kinds.
type ContentType string

const (
	// ContentTypeCore is the short-form summary.
	ContentTypeCore ContentType = "core"
	// ContentTypeDeepDive is the long-form summary.
	ContentTypeDeepDive ContentType = "deep_dive"
)

// Valid reports whether t is a known content type.
func (t ContentType) Valid() bool {
	return t == ContentTypeCore || t == ContentTypeDeepDive
}

// Content is an HTML section attached to a book, unique per (book, type).
type Content struct {
	ID          uuid.UUID
	BookID      uuid.UUID
	Type        ContentType
	Body        string
	IsHTML      bool
	LastUpdated time.Time
}
