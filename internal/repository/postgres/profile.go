package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/billowria/bookshorts/internal/model"
)

var _ model.ProfileStore = (*ProfileRepository)(nil)

type ProfileRepository struct {
	db *Connection
}

func NewProfileRepository(db *Connection) *ProfileRepository {
	return &ProfileRepository{
		db: db,
	}
}

func (r *ProfileRepository) GetByUserID(ctx context.Context, userID uuid.UUID) (model.Profile, error) {
	var profile model.Profile
	query := `SELECT user_id, role, created_at, updated_at FROM profiles WHERE user_id = $1`

	err := r.db.QueryRow(ctx, query, userID).Scan(
		&profile.UserID, &profile.Role, &profile.CreatedAt, &profile.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Profile{}, model.ErrNotFound
		}
		return model.Profile{}, fmt.Errorf("failed to get profile by user id: %w", err)
	}

	return profile, nil
}

func (r *ProfileRepository) Create(ctx context.Context, profile model.Profile) error {
	query := `INSERT INTO profiles (user_id, role, created_at, updated_at)
			  VALUES ($1, $2, NOW(), NOW())
			  ON CONFLICT (user_id) DO NOTHING`

	if _, err := r.db.Exec(ctx, query, profile.UserID, string(profile.Role)); err != nil {
		return fmt.Errorf("failed to create profile: %w", err)
	}
	return nil
}

func (r *ProfileRepository) SetRole(ctx context.Context, userID uuid.UUID, role model.Role) error {
	query := `UPDATE profiles SET role = $2, updated_at = NOW() WHERE user_id = $1`

	cmd, err := r.db.Exec(ctx, query, userID, string(role))
	if err != nil {
		return fmt.Errorf("failed to set profile role: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return model.ErrNotFound
	}
	return nil
}
