package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/billowria/bookshorts/internal/logger"
	"github.com/billowria/bookshorts/internal/model"
)

// Catalog serves the browsing surface: categories, books, click
// counters, and ratings.
type Catalog struct {
	bookStore     model.BookStore
	categoryStore model.CategoryStore
	ratingStore   model.RatingStore
	logger        *logger.Logger
}

func NewCatalog(
	bookStore model.BookStore,
	categoryStore model.CategoryStore,
	ratingStore model.RatingStore,
	logger *logger.Logger,
) *Catalog {
	return &Catalog{
		bookStore:     bookStore,
		categoryStore: categoryStore,
		ratingStore:   ratingStore,
		logger:        logger,
	}
}

func (c *Catalog) ListCategories(ctx context.Context, activeOnly bool, limit int) ([]model.Category, error) {
	categories, err := c.categoryStore.List(ctx, activeOnly, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}
	return categories, nil
}

func (c *Catalog) GetCategory(ctx context.Context, id uuid.UUID) (model.Category, error) {
	return c.categoryStore.GetByID(ctx, id)
}

func (c *Catalog) CreateCategory(ctx context.Context, category model.Category) (model.Category, error) {
	if category.ID == uuid.Nil {
		category.ID = uuid.New()
	}
	created, err := c.categoryStore.Create(ctx, category)
	if err != nil {
		return model.Category{}, fmt.Errorf("failed to create category: %w", err)
	}
	c.logger.Info("Catalog service: category created", "category_id", created.ID)
	return created, nil
}

func (c *Catalog) UpdateCategory(ctx context.Context, category model.Category) (model.Category, error) {
	updated, err := c.categoryStore.Update(ctx, category)
	if err != nil {
		return model.Category{}, fmt.Errorf("failed to update category: %w", err)
	}
	return updated, nil
}

func (c *Catalog) DeleteCategory(ctx context.Context, id uuid.UUID) error {
	return c.categoryStore.Delete(ctx, id)
}

func (c *Catalog) ListBooks(ctx context.Context) ([]model.Book, error) {
	books, err := c.bookStore.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list books: %w", err)
	}
	return books, nil
}

func (c *Catalog) ListBooksByCategory(ctx context.Context, categoryID uuid.UUID) ([]model.Book, error) {
	books, err := c.bookStore.ListByCategory(ctx, categoryID)
	if err != nil {
		return nil, fmt.Errorf("failed to list books by category: %w", err)
	}
	return books, nil
}

func (c *Catalog) ListFeaturedBooks(ctx context.Context, limit int) ([]model.Book, error) {
	books, err := c.bookStore.ListFeatured(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list featured books: %w", err)
	}
	return books, nil
}

func (c *Catalog) GetBook(ctx context.Context, id uuid.UUID) (model.Book, error) {
	return c.bookStore.GetByID(ctx, id)
}

func (c *Catalog) CreateBook(ctx context.Context, book model.Book) (model.Book, error) {
	if book.ID == uuid.Nil {
		book.ID = uuid.New()
	}
	created, err := c.bookStore.Create(ctx, book)
	if err != nil {
		return model.Book{}, fmt.Errorf("failed to create book: %w", err)
	}
	c.logger.Info("Catalog service: book created", "book_id", created.ID)
	return created, nil
}

func (c *Catalog) UpdateBook(ctx context.Context, book model.Book) (model.Book, error) {
	updated, err := c.bookStore.Update(ctx, book)
	if err != nil {
		return model.Book{}, fmt.Errorf("failed to update book: %w", err)
	}
	return updated, nil
}

func (c *Catalog) DeleteBook(ctx context.Context, id uuid.UUID) error {
	return c.bookStore.Delete(ctx, id)
}

// RecordBookClick bumps the click counter for a book. Callers treat the
// counter as best-effort telemetry, so a failure here never blocks the
// browsing flow.
func (c *Catalog) RecordBookClick(ctx context.Context, id uuid.UUID) error {
	if err := c.bookStore.IncrementClicks(ctx, id); err != nil {
		c.logger.Error("Catalog service: failed to increment book clicks",
			"book_id", id,
			"error", err.Error())
		return fmt.Errorf("failed to increment book clicks: %w", err)
	}
	return nil
}

// RecordCategoryClick bumps the click counter for a category.
func (c *Catalog) RecordCategoryClick(ctx context.Context, id uuid.UUID) error {
	if err := c.categoryStore.IncrementClicks(ctx, id); err != nil {
		c.logger.Error("Catalog service: failed to increment category clicks",
			"category_id", id,
			"error", err.Error())
		return fmt.Errorf("failed to increment category clicks: %w", err)
	}
	return nil
}

// ErrInvalidRating is returned when a rating value falls outside 1..5.
var ErrInvalidRating = fmt.Errorf("rating must be between 1 and 5")

// RateBook stores one user's rating (upserting on repeat) and
// recomputes the book's average so reads stay consistent.
func (c *Catalog) RateBook(ctx context.Context, userID, bookID uuid.UUID, value int) (model.Book, error) {
	if value < 1 || value > 5 {
		return model.Book{}, ErrInvalidRating
	}

	_, err := c.ratingStore.Upsert(ctx, model.Rating{
		ID:     uuid.New(),
		BookID: bookID,
		UserID: userID,
		Rating: value,
	})
	if err != nil {
		return model.Book{}, fmt.Errorf("failed to upsert rating: %w", err)
	}

	if err := c.bookStore.RecomputeRating(ctx, bookID); err != nil {
		return model.Book{}, fmt.Errorf("failed to recompute rating: %w", err)
	}

	book, err := c.bookStore.GetByID(ctx, bookID)
	if err != nil {
		return model.Book{}, fmt.Errorf("failed to get book after rating: %w", err)
	}

	c.logger.Info("Catalog service: book rated",
		"book_id", bookID,
		"user_id", userID,
		"rating", value)

	return book, nil
}
