package client

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/billowria/bookshorts/internal/model"
)

// mockAuthAPI mocks the AuthAPI interface
type mockAuthAPI struct {
	mock.Mock
}

func (m *mockAuthAPI) SignUp(ctx context.Context, email, password string) (Identity, error) {
	args := m.Called(ctx, email, password)
	return args.Get(0).(Identity), args.Error(1)
}

func (m *mockAuthAPI) SignIn(ctx context.Context, email, password string) (Identity, error) {
	args := m.Called(ctx, email, password)
	return args.Get(0).(Identity), args.Error(1)
}

func (m *mockAuthAPI) SignOut(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *mockAuthAPI) Me(ctx context.Context) (Identity, model.Role, error) {
	args := m.Called(ctx)
	return args.Get(0).(Identity), args.Get(1).(model.Role), args.Error(2)
}

// mockBookmarkAPI mocks the BookmarkAPI interface
type mockBookmarkAPI struct {
	mock.Mock
}

func (m *mockBookmarkAPI) ListBookmarks(ctx context.Context) ([]model.Bookmark, error) {
	args := m.Called(ctx)
	return args.Get(0).([]model.Bookmark), args.Error(1)
}

func (m *mockBookmarkAPI) BookmarkIDs(ctx context.Context) ([]uuid.UUID, error) {
	args := m.Called(ctx)
	return args.Get(0).([]uuid.UUID), args.Error(1)
}

func (m *mockBookmarkAPI) ToggleBookmark(ctx context.Context, bookID uuid.UUID) (bool, error) {
	args := m.Called(ctx, bookID)
	return args.Bool(0), args.Error(1)
}

// mockContentAPI mocks the ContentAPI interface
type mockContentAPI struct {
	mock.Mock
}

func (m *mockContentAPI) GetContent(ctx context.Context, bookID uuid.UUID, contentType model.ContentType) (model.Content, error) {
	args := m.Called(ctx, bookID, contentType)
	return args.Get(0).(model.Content), args.Error(1)
}

func (m *mockContentAPI) SaveContent(ctx context.Context, content model.Content) (model.Content, error) {
	args := m.Called(ctx, content)
	return args.Get(0).(model.Content), args.Error(1)
}

// mockCatalogAPI mocks the CatalogAPI interface
type mockCatalogAPI struct {
	mock.Mock
}

func (m *mockCatalogAPI) ListCategories(ctx context.Context, activeOnly bool, limit int) ([]model.Category, error) {
	args := m.Called(ctx, activeOnly, limit)
	return args.Get(0).([]model.Category), args.Error(1)
}

func (m *mockCatalogAPI) ListBooks(ctx context.Context) ([]model.Book, error) {
	args := m.Called(ctx)
	return args.Get(0).([]model.Book), args.Error(1)
}

func (m *mockCatalogAPI) ListBooksByCategory(ctx context.Context, categoryID uuid.UUID) ([]model.Book, error) {
	args := m.Called(ctx, categoryID)
	return args.Get(0).([]model.Book), args.Error(1)
}

func (m *mockCatalogAPI) GetBook(ctx context.Context, id uuid.UUID) (model.Book, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(model.Book), args.Error(1)
}

func (m *mockCatalogAPI) RecordBookClick(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *mockCatalogAPI) RecordCategoryClick(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *mockCatalogAPI) RateBook(ctx context.Context, bookID uuid.UUID, rating int) (model.Book, error) {
	args := m.Called(ctx, bookID, rating)
	return args.Get(0).(model.Book), args.Error(1)
}
