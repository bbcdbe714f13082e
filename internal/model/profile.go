package model

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Role classifies a user. It is derived from the profile row, never stored
// on the user itself.
type Role string

const (
	// RoleAdmin grants access to the admin surface.
	RoleAdmin Role = "admin"
	// RoleUser is the default role for every signed-up user.
	RoleUser Role = "user"
)

// ProfileStore defines persistence operations for profiles.
type ProfileStore interface {
	GetByUserID(ctx context.Context, userID uuid.UUID) (Profile, error)
	Create(ctx context.Context, profile Profile) error
	SetRole(ctx context.Context, userID uuid.UUID, role Role) error
}

// Profile carries per-user attributes keyed by user ID.
type Profile struct {
	UserID    uuid.UUID
	Role      Role
	CreatedAt time.Time
	UpdatedAt time.Time
}
