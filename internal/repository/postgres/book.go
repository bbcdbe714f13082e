package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/billowria/bookshorts/internal/model"
)

var _ model.BookStore = (*BookRepository)(nil)

type BookRepository struct {
	db *Connection
}

func NewBookRepository(db *Connection) *BookRepository {
	return &BookRepository{
		db: db,
	}
}

const bookColumns = `b.id, b.category_id, b.title, b.cover_image, b.display_order, b.status,
	       b.avg_rating, b.click_count, b.created_at, b.updated_at,
	       c.id, c.name, c.display_order, c.status, c.image_url, c.click_count, c.created_at, c.updated_at`

func scanBook(row pgx.Row) (model.Book, error) {
	var book model.Book
	var category model.Category
	err := row.Scan(
		&book.ID, &book.CategoryID, &book.Title, &book.CoverImage, &book.DisplayOrder, &book.Status,
		&book.AvgRating, &book.ClickCount, &book.CreatedAt, &book.UpdatedAt,
		&category.ID, &category.Name, &category.DisplayOrder, &category.Status,
		&category.ImageURL, &category.ClickCount, &category.CreatedAt, &category.UpdatedAt,
	)
	if err != nil {
		return model.Book{}, err
	}
	book.Category = &category
	return book, nil
}

func (r *BookRepository) GetByID(ctx context.Context, id uuid.UUID) (model.Book, error) {
	query := `SELECT ` + bookColumns + `
			  FROM books b JOIN categories c ON c.id = b.category_id
			  WHERE b.id = $1`

	book, err := scanBook(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Book{}, model.ErrNotFound
		}
		return model.Book{}, fmt.Errorf("failed to get book by id: %w", err)
	}

	return book, nil
}

func (r *BookRepository) List(ctx context.Context) ([]model.Book, error) {
	query := `SELECT ` + bookColumns + `
			  FROM books b JOIN categories c ON c.id = b.category_id
			  ORDER BY b.created_at DESC`

	return r.queryBooks(ctx, query)
}

func (r *BookRepository) ListByCategory(ctx context.Context, categoryID uuid.UUID) ([]model.Book, error) {
	query := `SELECT ` + bookColumns + `
			  FROM books b JOIN categories c ON c.id = b.category_id
			  WHERE b.category_id = $1 AND b.status = true
			  ORDER BY b.display_order ASC`

	return r.queryBooks(ctx, query, categoryID)
}

func (r *BookRepository) ListFeatured(ctx context.Context, limit int) ([]model.Book, error) {
	query := `SELECT ` + bookColumns + `
			  FROM books b JOIN categories c ON c.id = b.category_id
			  WHERE b.status = true
			  ORDER BY b.avg_rating DESC
			  LIMIT $1`

	return r.queryBooks(ctx, query, limit)
}

func (r *BookRepository) queryBooks(ctx context.Context, query string, args ...any) ([]model.Book, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query books: %w", err)
	}
	defer rows.Close()

	var books []model.Book
	for rows.Next() {
		book, err := scanBook(rows)
		if err != nil {
			return nil, err
		}
		books = append(books, book)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return books, nil
}

func (r *BookRepository) Create(ctx context.Context, book model.Book) (model.Book, error) {
	query := `INSERT INTO books (id, category_id, title, cover_image, display_order, status)
			  VALUES ($1, $2, $3, $4, $5, $6)
			  RETURNING id, category_id, title, cover_image, display_order, status,
			            avg_rating, click_count, created_at, updated_at`

	var saved model.Book
	err := r.db.QueryRow(ctx, query,
		book.ID, book.CategoryID, book.Title, book.CoverImage, book.DisplayOrder, book.Status,
	).Scan(
		&saved.ID, &saved.CategoryID, &saved.Title, &saved.CoverImage, &saved.DisplayOrder,
		&saved.Status, &saved.AvgRating, &saved.ClickCount, &saved.CreatedAt, &saved.UpdatedAt,
	)
	if err != nil {
		return model.Book{}, fmt.Errorf("failed to create book: %w", err)
	}

	return saved, nil
}

func (r *BookRepository) Update(ctx context.Context, book model.Book) (model.Book, error) {
	query := `UPDATE books
			  SET category_id = $2, title = $3, cover_image = $4, display_order = $5, status = $6, updated_at = NOW()
			  WHERE id = $1
			  RETURNING id, category_id, title, cover_image, display_order, status,
			            avg_rating, click_count, created_at, updated_at`

	var saved model.Book
	err := r.db.QueryRow(ctx, query,
		book.ID, book.CategoryID, book.Title, book.CoverImage, book.DisplayOrder, book.Status,
	).Scan(
		&saved.ID, &saved.CategoryID, &saved.Title, &saved.CoverImage, &saved.DisplayOrder,
		&saved.Status, &saved.AvgRating, &saved.ClickCount, &saved.CreatedAt, &saved.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Book{}, model.ErrNotFound
		}
		return model.Book{}, fmt.Errorf("failed to update book: %w", err)
	}

	return saved, nil
}

func (r *BookRepository) Delete(ctx context.Context, id uuid.UUID) error {
	cmd, err := r.db.Exec(ctx, `DELETE FROM books WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete book: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return model.ErrNotFound
	}
	return nil
}

func (r *BookRepository) IncrementClicks(ctx context.Context, id uuid.UUID) error {
	cmd, err := r.db.Exec(ctx, `UPDATE books SET click_count = click_count + 1 WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to increment book clicks: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return model.ErrNotFound
	}
	return nil
}

func (r *BookRepository) RecomputeRating(ctx context.Context, id uuid.UUID) error {
	query := `UPDATE books
			  SET avg_rating = COALESCE((SELECT AVG(rating)::float8 FROM ratings WHERE book_id = $1), 0),
			      updated_at = NOW()
			  WHERE id = $1`

	cmd, err := r.db.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to recompute book rating: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return model.ErrNotFound
	}
	return nil
}
