package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/billowria/bookshorts/internal/model"
)

var _ model.BookmarkStore = (*BookmarkRepository)(nil)

type BookmarkRepository struct {
	db *Connection
}

func NewBookmarkRepository(db *Connection) *BookmarkRepository {
	return &BookmarkRepository{
		db: db,
	}
}

func (r *BookmarkRepository) Exists(ctx context.Context, userID, bookID uuid.UUID) (bool, error) {
	query := `SELECT EXISTS (SELECT 1 FROM bookmarks WHERE user_id = $1 AND book_id = $2)`

	var exists bool
	if err := r.db.QueryRow(ctx, query, userID, bookID).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check bookmark existence: %w", err)
	}
	return exists, nil
}

func (r *BookmarkRepository) Create(ctx context.Context, bookmark model.Bookmark) (model.Bookmark, error) {
	query := `INSERT INTO bookmarks (id, user_id, book_id)
			  VALUES ($1, $2, $3)
			  ON CONFLICT (user_id, book_id) DO NOTHING
			  RETURNING id, user_id, book_id, created_at`

	if bookmark.ID == uuid.Nil {
		bookmark.ID = uuid.New()
	}

	var saved model.Bookmark
	err := r.db.QueryRow(ctx, query, bookmark.ID, bookmark.UserID, bookmark.BookID).Scan(
		&saved.ID, &saved.UserID, &saved.BookID, &saved.CreatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		// Conflict path: the pair already exists, return the stored row so a
		// repeated insert stays idempotent.
		return r.getByPair(ctx, bookmark.UserID, bookmark.BookID)
	}
	if err != nil {
		return model.Bookmark{}, fmt.Errorf("failed to create bookmark: %w", err)
	}

	return saved, nil
}

func (r *BookmarkRepository) getByPair(ctx context.Context, userID, bookID uuid.UUID) (model.Bookmark, error) {
	query := `SELECT id, user_id, book_id, created_at FROM bookmarks WHERE user_id = $1 AND book_id = $2`

	var bm model.Bookmark
	err := r.db.QueryRow(ctx, query, userID, bookID).Scan(&bm.ID, &bm.UserID, &bm.BookID, &bm.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Bookmark{}, model.ErrNotFound
		}
		return model.Bookmark{}, fmt.Errorf("failed to get bookmark: %w", err)
	}
	return bm, nil
}

func (r *BookmarkRepository) Delete(ctx context.Context, userID, bookID uuid.UUID) error {
	cmd, err := r.db.Exec(ctx, `DELETE FROM bookmarks WHERE user_id = $1 AND book_id = $2`, userID, bookID)
	if err != nil {
		return fmt.Errorf("failed to delete bookmark: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return model.ErrNotFound
	}
	return nil
}

func (r *BookmarkRepository) GetBookIDs(ctx context.Context, userID uuid.UUID) ([]uuid.UUID, error) {
	rows, err := r.db.Query(ctx, `SELECT book_id FROM bookmarks WHERE user_id = $1`, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get bookmarked book ids: %w", err)
	}
	defer rows.Close()

	var ids []uuid.UUID
	for rows.Next() {
		var id uuid.UUID
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return ids, nil
}

func (r *BookmarkRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]model.Bookmark, error) {
	query := `SELECT bm.id, bm.user_id, bm.book_id, bm.created_at, ` + bookColumns + `
			  FROM bookmarks bm
			  JOIN books b ON b.id = bm.book_id
			  JOIN categories c ON c.id = b.category_id
			  WHERE bm.user_id = $1
			  ORDER BY bm.created_at DESC`

	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list bookmarks by user: %w", err)
	}
	defer rows.Close()

	var bookmarks []model.Bookmark
	for rows.Next() {
		var bm model.Bookmark
		var book model.Book
		var category model.Category
		err := rows.Scan(
			&bm.ID, &bm.UserID, &bm.BookID, &bm.CreatedAt,
			&book.ID, &book.CategoryID, &book.Title, &book.CoverImage, &book.DisplayOrder, &book.Status,
			&book.AvgRating, &book.ClickCount, &book.CreatedAt, &book.UpdatedAt,
			&category.ID, &category.Name, &category.DisplayOrder, &category.Status,
			&category.ImageURL, &category.ClickCount, &category.CreatedAt, &category.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}
		book.Category = &category
		bm.Book = &book
		bookmarks = append(bookmarks, bm)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return bookmarks, nil
}
