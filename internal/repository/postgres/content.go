package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/billowria/bookshorts/internal/model"
)

var _ model.ContentStore = (*ContentRepository)(nil)

type ContentRepository struct {
	db *Connection
}

func NewContentRepository(db *Connection) *ContentRepository {
	return &ContentRepository{
		db: db,
	}
}

func (r *ContentRepository) GetByBookAndType(ctx context.Context, bookID uuid.UUID, contentType model.ContentType) (model.Content, error) {
	query := `SELECT id, book_id, type, body, is_html, last_updated
			  FROM content WHERE book_id = $1 AND type = $2`

	var content model.Content
	err := r.db.QueryRow(ctx, query, bookID, string(contentType)).Scan(
		&content.ID, &content.BookID, &content.Type, &content.Body, &content.IsHTML, &content.LastUpdated,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Content{}, model.ErrNotFound
		}
		return model.Content{}, fmt.Errorf("failed to get content by book and type: %w", err)
	}

	return content, nil
}

func (r *ContentRepository) Upsert(ctx context.Context, content model.Content) (model.Content, error) {
	query := `INSERT INTO content (id, book_id, type, body, is_html, last_updated)
			  VALUES ($1, $2, $3, $4, $5, NOW())
			  ON CONFLICT (book_id, type)
			  DO UPDATE SET body = EXCLUDED.body, is_html = EXCLUDED.is_html, last_updated = NOW()
			  RETURNING id, book_id, type, body, is_html, last_updated`

	if content.ID == uuid.Nil {
		content.ID = uuid.New()
	}

	var saved model.Content
	err := r.db.QueryRow(ctx, query,
		content.ID, content.BookID, string(content.Type), content.Body, content.IsHTML,
	).Scan(
		&saved.ID, &saved.BookID, &saved.Type, &saved.Body, &saved.IsHTML, &saved.LastUpdated,
	)
	if err != nil {
		return model.Content{}, fmt.Errorf("failed to upsert content: %w", err)
	}

	return saved, nil
}
