package postgres

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/billowria/bookshorts/internal/model"
)

var _ model.RatingStore = (*RatingRepository)(nil)

type RatingRepository struct {
	db *Connection
}

func NewRatingRepository(db *Connection) *RatingRepository {
	return &RatingRepository{
		db: db,
	}
}

func (r *RatingRepository) Upsert(ctx context.Context, rating model.Rating) (model.Rating, error) {
	query := `INSERT INTO ratings (id, book_id, user_id, rating)
			  VALUES ($1, $2, $3, $4)
			  ON CONFLICT (book_id, user_id)
			  DO UPDATE SET rating = EXCLUDED.rating, updated_at = NOW()
			  RETURNING id, book_id, user_id, rating, created_at, updated_at`

	if rating.ID == uuid.Nil {
		rating.ID = uuid.New()
	}

	var saved model.Rating
	err := r.db.QueryRow(ctx, query, rating.ID, rating.BookID, rating.UserID, rating.Rating).Scan(
		&saved.ID, &saved.BookID, &saved.UserID, &saved.Rating, &saved.CreatedAt, &saved.UpdatedAt,
	)
	if err != nil {
		return model.Rating{}, fmt.Errorf("failed to upsert rating: %w", err)
	}

	return saved, nil
}
