package model

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// BookStore defines persistence operations for books.
type BookStore interface {
	GetByID(ctx context.Context, id uuid.UUID) (Book, error)
	List(ctx context.Context) ([]Book, error)
	ListByCategory(ctx context.Context, categoryID uuid.UUID) ([]Book, error)
	ListFeatured(ctx context.Context, limit int) ([]Book, error)
	Create(ctx context.Context, book Book) (Book, error)
	Update(ctx context.Context, book Book) (Book, error)
	Delete(ctx context.Context, id uuid.UUID) error
	IncrementClicks(ctx context.Context, id uuid.UUID) error
	RecomputeRating(ctx context.Context, id uuid.UUID) error
}

// CategoryStore defines persistence operations for categories.
type CategoryStore interface {
	GetByID(ctx context.Context, id uuid.UUID) (Category, error)
	List(ctx context.Context, activeOnly bool, limit int) ([]Category, error)
	Create(ctx context.Context, category Category) (Category, error)
	Update(ctx context.Context, category Category) (Category, error)
	Delete(ctx context.Context, id uuid.UUID) error
	IncrementClicks(ctx context.Context, id uuid.UUID) error
}

// Book represents a book summary entry in the catalog.
type Book struct {
	ID           uuid.UUID
	CategoryID   uuid.UUID
	Title        string
	CoverImage   string
	DisplayOrder int
	Status       bool
	AvgRating    float64
	ClickCount   int64
	CreatedAt    time.Time
	UpdatedAt    time.Time

	// Category is populated on joined reads, nil otherwise.
	Category *Category
}

// Category groups books on the browsing surface.
type Category struct {
	ID           uuid.UUID
	Name         string
	DisplayOrder int
	Status       bool
	ImageURL     string
	ClickCount   int64
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
