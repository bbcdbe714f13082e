package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/billowria/bookshorts/internal/auth"
	"github.com/billowria/bookshorts/internal/logger"
	"github.com/billowria/bookshorts/internal/model"
)

// Auth handles sign-up, sign-in, and session lifecycle. Every new user
// gets a profile row with the default role; roles are never taken from
// client input.
type Auth struct {
	userStore    model.UserStore
	profileStore model.ProfileStore
	tokenService *TokenService
	logger       *logger.Logger
}

func NewAuth(
	userStore model.UserStore,
	profileStore model.ProfileStore,
	refreshTokenStore model.RefreshTokenStore,
	tokenManager model.TokenManager,
	logger *logger.Logger,
) *Auth {
	return &Auth{
		userStore:    userStore,
		profileStore: profileStore,
		tokenService: NewTokenService(tokenManager, refreshTokenStore, logger),
		logger:       logger,
	}
}

// Session is the result of a successful sign-up or sign-in.
type Session struct {
	User         model.User
	AccessToken  string
	RefreshToken string
}

func (a *Auth) SignUp(ctx context.Context, email, password string) (Session, error) {
	a.logger.Debug("Auth service: starting user registration", "email", email)

	existing, err := a.userStore.GetByEmail(ctx, email)
	if err != nil && !errors.Is(err, model.ErrNotFound) {
		a.logger.Error("Auth service: failed to get user by email",
			"email", email,
			"error", err.Error())
		return Session{}, fmt.Errorf("failed to get user by email: %w", err)
	}

	if existing.ID != uuid.Nil {
		a.logger.Info("Auth service: email already registered", "email", email)
		return Session{}, model.ErrEmailTaken
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return Session{}, fmt.Errorf("failed to hash password: %w", err)
	}

	now := time.Now()
	user, err := a.userStore.Create(ctx, model.User{
		ID:           uuid.New(),
		Email:        email,
		PasswordHash: hash,
		CreatedAt:    now,
		UpdatedAt:    now,
	})
	if err != nil {
		a.logger.Error("Auth service: failed to create user",
			"email", email,
			"error", err.Error())
		return Session{}, fmt.Errorf("failed to create user: %w", err)
	}

	err = a.profileStore.Create(ctx, model.Profile{
		UserID:    user.ID,
		Role:      model.RoleUser,
		CreatedAt: now,
		UpdatedAt: now,
	})
	if err != nil {
		return Session{}, fmt.Errorf("failed to create profile: %w", err)
	}

	access, refresh, err := a.tokenService.Issue(ctx, user.ID)
	if err != nil {
		return Session{}, fmt.Errorf("failed to issue token: %w", err)
	}

	a.logger.Info("Auth service: user registered", "user_id", user.ID)

	return Session{User: user, AccessToken: access, RefreshToken: refresh}, nil
}

func (a *Auth) SignIn(ctx context.Context, email, password string) (Session, error) {
	a.logger.Debug("Auth service: starting user login", "email", email)

	user, err := a.userStore.GetByEmail(ctx, email)
	if errors.Is(err, model.ErrNotFound) {
		return Session{}, model.ErrInvalidCredentials
	}
	if err != nil {
		return Session{}, fmt.Errorf("failed to get user by email: %w", err)
	}

	ok, err := auth.VerifyPassword(user.PasswordHash, password)
	if err != nil {
		return Session{}, fmt.Errorf("failed to verify password: %w", err)
	}
	if !ok {
		a.logger.Info("Auth service: wrong password", "email", email)
		return Session{}, model.ErrInvalidCredentials
	}

	access, refresh, err := a.tokenService.Issue(ctx, user.ID)
	if err != nil {
		return Session{}, fmt.Errorf("failed to issue token: %w", err)
	}

	a.logger.Info("Auth service: user logged in", "user_id", user.ID)

	return Session{User: user, AccessToken: access, RefreshToken: refresh}, nil
}

// SignOut revokes the presented refresh token. The access token stays
// valid until it expires.
func (a *Auth) SignOut(ctx context.Context, refreshToken string) error {
	return a.tokenService.RevokeByToken(ctx, refreshToken)
}

// Refresh rotates the presented refresh token and returns a new pair.
func (a *Auth) Refresh(ctx context.Context, refreshToken string) (access string, refresh string, err error) {
	return a.tokenService.Refresh(ctx, refreshToken)
}

func (a *Auth) GetUser(ctx context.Context, userID uuid.UUID) (model.User, error) {
	return a.userStore.GetByID(ctx, userID)
}

// GetRole resolves the role for a user. A missing profile row means the
// default role; any other store failure is surfaced so callers can
// refuse elevated access instead of guessing.
func (a *Auth) GetRole(ctx context.Context, userID uuid.UUID) (model.Role, error) {
	profile, err := a.profileStore.GetByUserID(ctx, userID)
	if errors.Is(err, model.ErrNotFound) {
		return model.RoleUser, nil
	}
	if err != nil {
		a.logger.Error("Auth service: failed to get profile",
			"user_id", userID,
			"error", err.Error())
		return "", fmt.Errorf("failed to get profile: %w", err)
	}
	if profile.Role == "" {
		return model.RoleUser, nil
	}
	return profile.Role, nil
}

// Tokens exposes the underlying token service for transport middleware.
func (a *Auth) Tokens() *TokenService {
	return a.tokenService
}
