package model

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// RatingStore defines persistence operations for ratings.
type RatingStore interface {
	Upsert(ctx context.Context, rating Rating) (Rating, error)
}

// Rating is one user's rating of a book, unique per (book, user).
type Rating struct {
	ID        uuid.UUID
	BookID    uuid.UUID
	UserID    uuid.UUID
	Rating    int
	CreatedAt time.Time
	UpdatedAt time.Time
}
