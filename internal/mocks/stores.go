// Package mocks provides hand-rolled testify mocks for the model
// interfaces, shared across service and handler tests.
package mocks

import (
	"context"
	"io"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/billowria/bookshorts/internal/model"
)

type UserStore struct{ mock.Mock }

func (m *UserStore) GetByEmail(ctx context.Context, email string) (model.User, error) {
	args := m.Called(ctx, email)
	return args.Get(0).(model.User), args.Error(1)
}

func (m *UserStore) GetByID(ctx context.Context, id uuid.UUID) (model.User, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(model.User), args.Error(1)
}

func (m *UserStore) Create(ctx context.Context, user model.User) (model.User, error) {
	args := m.Called(ctx, user)
	return args.Get(0).(model.User), args.Error(1)
}

type ProfileStore struct{ mock.Mock }

func (m *ProfileStore) GetByUserID(ctx context.Context, userID uuid.UUID) (model.Profile, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(model.Profile), args.Error(1)
}

func (m *ProfileStore) Create(ctx context.Context, profile model.Profile) error {
	args := m.Called(ctx, profile)
	return args.Error(0)
}

func (m *ProfileStore) SetRole(ctx context.Context, userID uuid.UUID, role model.Role) error {
	args := m.Called(ctx, userID, role)
	return args.Error(0)
}

type BookStore struct{ mock.Mock }

func (m *BookStore) GetByID(ctx context.Context, id uuid.UUID) (model.Book, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(model.Book), args.Error(1)
}

func (m *BookStore) List(ctx context.Context) ([]model.Book, error) {
	args := m.Called(ctx)
	return args.Get(0).([]model.Book), args.Error(1)
}

func (m *BookStore) ListByCategory(ctx context.Context, categoryID uuid.UUID) ([]model.Book, error) {
	args := m.Called(ctx, categoryID)
	return args.Get(0).([]model.Book), args.Error(1)
}

func (m *BookStore) ListFeatured(ctx context.Context, limit int) ([]model.Book, error) {
	args := m.Called(ctx, limit)
	return args.Get(0).([]model.Book), args.Error(1)
}

func (m *BookStore) Create(ctx context.Context, book model.Book) (model.Book, error) {
	args := m.Called(ctx, book)
	return args.Get(0).(model.Book), args.Error(1)
}

func (m *BookStore) Update(ctx context.Context, book model.Book) (model.Book, error) {
	args := m.Called(ctx, book)
	return args.Get(0).(model.Book), args.Error(1)
}

func (m *BookStore) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *BookStore) IncrementClicks(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *BookStore) RecomputeRating(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type CategoryStore struct{ mock.Mock }

func (m *CategoryStore) GetByID(ctx context.Context, id uuid.UUID) (model.Category, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(model.Category), args.Error(1)
}

func (m *CategoryStore) List(ctx context.Context, activeOnly bool, limit int) ([]model.Category, error) {
	args := m.Called(ctx, activeOnly, limit)
	return args.Get(0).([]model.Category), args.Error(1)
}

func (m *CategoryStore) Create(ctx context.Context, category model.Category) (model.Category, error) {
	args := m.Called(ctx, category)
	return args.Get(0).(model.Category), args.Error(1)
}

func (m *CategoryStore) Update(ctx context.Context, category model.Category) (model.Category, error) {
	args := m.Called(ctx, category)
	return args.Get(0).(model.Category), args.Error(1)
}

func (m *CategoryStore) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *CategoryStore) IncrementClicks(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type ContentStore struct{ mock.Mock }

func (m *ContentStore) GetByBookAndType(ctx context.Context, bookID uuid.UUID, contentType model.ContentType) (model.Content, error) {
	args := m.Called(ctx, bookID, contentType)
	return args.Get(0).(model.Content), args.Error(1)
}

func (m *ContentStore) Upsert(ctx context.Context, content model.Content) (model.Content, error) {
	args := m.Called(ctx, content)
	return args.Get(0).(model.Content), args.Error(1)
}

type BookmarkStore struct{ mock.Mock }

func (m *BookmarkStore) Exists(ctx context.Context, userID, bookID uuid.UUID) (bool, error) {
	args := m.Called(ctx, userID, bookID)
	return args.Bool(0), args.Error(1)
}

func (m *BookmarkStore) Create(ctx context.Context, bookmark model.Bookmark) (model.Bookmark, error) {
	args := m.Called(ctx, bookmark)
	return args.Get(0).(model.Bookmark), args.Error(1)
}

func (m *BookmarkStore) Delete(ctx context.Context, userID, bookID uuid.UUID) error {
	args := m.Called(ctx, userID, bookID)
	return args.Error(0)
}

func (m *BookmarkStore) GetBookIDs(ctx context.Context, userID uuid.UUID) ([]uuid.UUID, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).([]uuid.UUID), args.Error(1)
}

func (m *BookmarkStore) ListByUser(ctx context.Context, userID uuid.UUID) ([]model.Bookmark, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).([]model.Bookmark), args.Error(1)
}

type RatingStore struct{ mock.Mock }

func (m *RatingStore) Upsert(ctx context.Context, rating model.Rating) (model.Rating, error) {
	args := m.Called(ctx, rating)
	return args.Get(0).(model.Rating), args.Error(1)
}

type RefreshTokenStore struct{ mock.Mock }

func (m *RefreshTokenStore) Create(ctx context.Context, token model.RefreshToken) error {
	args := m.Called(ctx, token)
	return args.Error(0)
}

func (m *RefreshTokenStore) GetByJTI(ctx context.Context, jti string) (model.RefreshToken, error) {
	args := m.Called(ctx, jti)
	return args.Get(0).(model.RefreshToken), args.Error(1)
}

func (m *RefreshTokenStore) RevokeByJTI(ctx context.Context, jti string) error {
	args := m.Called(ctx, jti)
	return args.Error(0)
}

func (m *RefreshTokenStore) RevokeAllByUser(ctx context.Context, userID uuid.UUID) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

type TokenManager struct{ mock.Mock }

func (m *TokenManager) GenerateAccessToken(userID uuid.UUID) (string, error) {
	args := m.Called(userID)
	return args.String(0), args.Error(1)
}

func (m *TokenManager) GenerateRefreshToken(userID uuid.UUID) (string, string, error) {
	args := m.Called(userID)
	return args.String(0), args.String(1), args.Error(2)
}

func (m *TokenManager) ParseAccessToken(token string) (uuid.UUID, error) {
	args := m.Called(token)
	return args.Get(0).(uuid.UUID), args.Error(1)
}

func (m *TokenManager) ParseRefreshToken(token string) (uuid.UUID, string, error) {
	args := m.Called(token)
	return args.Get(0).(uuid.UUID), args.String(1), args.Error(2)
}

type Storage struct{ mock.Mock }

func (m *Storage) Upload(ctx context.Context, key string, reader io.Reader, size int64, contentType string) error {
	args := m.Called(ctx, key, reader, size, contentType)
	return args.Error(0)
}

func (m *Storage) Download(ctx context.Context, key string) (io.ReadCloser, error) {
	args := m.Called(ctx, key)
	return args.Get(0).(io.ReadCloser), args.Error(1)
}

func (m *Storage) Delete(ctx context.Context, key string) error {
	args := m.Called(ctx, key)
	return args.Error(0)
}

func (m *Storage) Exists(ctx context.Context, key string) (bool, error) {
	args := m.Called(ctx, key)
	return args.Bool(0), args.Error(1)
}

func (m *Storage) PublicURL(key string) string {
	args := m.Called(key)
	return args.String(0)
}
