//go:build integration

package postgres_test

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	tc "github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/billowria/bookshorts/internal/model"
	repo "github.com/billowria/bookshorts/internal/repository/postgres"
)

var dsn string

func TestMain(m *testing.M) {
	ctx := context.Background()
	container, err := tc.GenericContainer(ctx, tc.GenericContainerRequest{
		ContainerRequest: tc.ContainerRequest{
			Image:        "postgres:15-alpine",
			ExposedPorts: []string{"5432/tcp"},
			Env: map[string]string{
				"POSTGRES_USER":     "postgres",
				"POSTGRES_PASSWORD": "password",
				"POSTGRES_DB":       "bookshorts_test",
			},
			WaitingFor: wait.ForListeningPort("5432/tcp").WithStartupTimeout(2 * time.Minute),
		},
		Started: true,
	})
	if err != nil {
		panic(err)
	}
	host, err := container.Host(ctx)
	if err != nil {
		panic(err)
	}
	port, err := container.MappedPort(ctx, "5432")
	if err != nil {
		panic(err)
	}
	dsn = fmt.Sprintf("postgres://postgres:password@%s:%s/bookshorts_test?sslmode=disable", host, port.Port())

	code := m.Run()
	_ = container.Terminate(ctx)
	os.Exit(code)
}

func newUser(t *testing.T, conn *repo.Connection, email string) model.User {
	t.Helper()
	ur := repo.NewUserRepository(conn)
	u, err := ur.Create(context.Background(), model.User{
		ID:           uuid.New(),
		Email:        email,
		PasswordHash: "$argon2id$hash",
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
	})
	require.NoError(t, err)
	return u
}

func newCatalog(t *testing.T, conn *repo.Connection) (model.Category, model.Book) {
	t.Helper()
	ctx := context.Background()

	cr := repo.NewCategoryRepository(conn)
	category, err := cr.Create(ctx, model.Category{
		ID:     uuid.New(),
		Name:   "Philosophy " + uuid.NewString()[:8],
		Status: true,
	})
	require.NoError(t, err)

	br := repo.NewBookRepository(conn)
	book, err := br.Create(ctx, model.Book{
		ID:         uuid.New(),
		CategoryID: category.ID,
		Title:      "Meditations",
		Status:     true,
	})
	require.NoError(t, err)

	return category, book
}

func TestRepositories_CRUD(t *testing.T) {
	ctx := context.Background()
	conn, err := repo.NewConnection(ctx, dsn)
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })

	t.Run("user_and_profile", func(t *testing.T) {
		user := newUser(t, conn, "user@example.com")

		ur := repo.NewUserRepository(conn)
		byEmail, err := ur.GetByEmail(ctx, user.Email)
		require.NoError(t, err)
		require.Equal(t, user.ID, byEmail.ID)

		pr := repo.NewProfileRepository(conn)
		require.NoError(t, pr.Create(ctx, model.Profile{UserID: user.ID, Role: model.RoleUser}))

		profile, err := pr.GetByUserID(ctx, user.ID)
		require.NoError(t, err)
		require.Equal(t, model.RoleUser, profile.Role)

		require.NoError(t, pr.SetRole(ctx, user.ID, model.RoleAdmin))
		profile, err = pr.GetByUserID(ctx, user.ID)
		require.NoError(t, err)
		require.Equal(t, model.RoleAdmin, profile.Role)
	})

	t.Run("category_and_book", func(t *testing.T) {
		category, book := newCatalog(t, conn)

		br := repo.NewBookRepository(conn)
		got, err := br.GetByID(ctx, book.ID)
		require.NoError(t, err)
		require.Equal(t, book.Title, got.Title)
		require.NotNil(t, got.Category)
		require.Equal(t, category.Name, got.Category.Name)

		byCategory, err := br.ListByCategory(ctx, category.ID)
		require.NoError(t, err)
		require.GreaterOrEqual(t, len(byCategory), 1)

		require.NoError(t, br.IncrementClicks(ctx, book.ID))
		require.NoError(t, br.IncrementClicks(ctx, book.ID))
		got, err = br.GetByID(ctx, book.ID)
		require.NoError(t, err)
		require.Equal(t, int64(2), got.ClickCount)
	})

	t.Run("content_upsert", func(t *testing.T) {
		_, book := newCatalog(t, conn)
		cr := repo.NewContentRepository(conn)

		_, err := cr.GetByBookAndType(ctx, book.ID, model.ContentTypeCore)
		require.ErrorIs(t, err, model.ErrNotFound)

		first, err := cr.Upsert(ctx, model.Content{
			BookID: book.ID,
			Type:   model.ContentTypeCore,
			Body:   "<p>v1</p>",
			IsHTML: true,
		})
		require.NoError(t, err)

		second, err := cr.Upsert(ctx, model.Content{
			BookID: book.ID,
			Type:   model.ContentTypeCore,
			Body:   "<p>v2</p>",
			IsHTML: true,
		})
		require.NoError(t, err)
		require.Equal(t, first.ID, second.ID, "same (book, type) row is overwritten, not duplicated")

		got, err := cr.GetByBookAndType(ctx, book.ID, model.ContentTypeCore)
		require.NoError(t, err)
		require.Equal(t, "<p>v2</p>", got.Body)
	})

	t.Run("bookmarks", func(t *testing.T) {
		user := newUser(t, conn, "bookworm@example.com")
		_, book := newCatalog(t, conn)
		bmr := repo.NewBookmarkRepository(conn)

		exists, err := bmr.Exists(ctx, user.ID, book.ID)
		require.NoError(t, err)
		require.False(t, exists)

		saved, err := bmr.Create(ctx, model.Bookmark{UserID: user.ID, BookID: book.ID})
		require.NoError(t, err)

		// A repeated insert lands on the same row.
		again, err := bmr.Create(ctx, model.Bookmark{UserID: user.ID, BookID: book.ID})
		require.NoError(t, err)
		require.Equal(t, saved.ID, again.ID)

		ids, err := bmr.GetBookIDs(ctx, user.ID)
		require.NoError(t, err)
		require.Equal(t, []uuid.UUID{book.ID}, ids)

		list, err := bmr.ListByUser(ctx, user.ID)
		require.NoError(t, err)
		require.Len(t, list, 1)
		require.NotNil(t, list[0].Book)
		require.Equal(t, book.Title, list[0].Book.Title)

		require.NoError(t, bmr.Delete(ctx, user.ID, book.ID))
		require.ErrorIs(t, bmr.Delete(ctx, user.ID, book.ID), model.ErrNotFound)
	})

	t.Run("ratings_recompute", func(t *testing.T) {
		alice := newUser(t, conn, "alice@example.com")
		bob := newUser(t, conn, "bob@example.com")
		_, book := newCatalog(t, conn)

		rr := repo.NewRatingRepository(conn)
		br := repo.NewBookRepository(conn)

		_, err := rr.Upsert(ctx, model.Rating{ID: uuid.New(), BookID: book.ID, UserID: alice.ID, Rating: 5})
		require.NoError(t, err)
		_, err = rr.Upsert(ctx, model.Rating{ID: uuid.New(), BookID: book.ID, UserID: bob.ID, Rating: 3})
		require.NoError(t, err)
		require.NoError(t, br.RecomputeRating(ctx, book.ID))

		got, err := br.GetByID(ctx, book.ID)
		require.NoError(t, err)
		require.InDelta(t, 4.0, got.AvgRating, 0.001)

		// Re-rating replaces, not accumulates.
		_, err = rr.Upsert(ctx, model.Rating{ID: uuid.New(), BookID: book.ID, UserID: bob.ID, Rating: 5})
		require.NoError(t, err)
		require.NoError(t, br.RecomputeRating(ctx, book.ID))

		got, err = br.GetByID(ctx, book.ID)
		require.NoError(t, err)
		require.InDelta(t, 5.0, got.AvgRating, 0.001)
	})

	t.Run("refresh_tokens", func(t *testing.T) {
		user := newUser(t, conn, "tokens@example.com")
		rtr := repo.NewRefreshTokenRepository(conn)

		jti := uuid.NewString()
		require.NoError(t, rtr.Create(ctx, model.RefreshToken{
			ID:        uuid.New(),
			JTI:       jti,
			UserID:    user.ID,
			TokenHash: []byte("hash"),
			IssuedAt:  time.Now(),
			ExpiresAt: time.Now().Add(time.Hour),
		}))

		got, err := rtr.GetByJTI(ctx, jti)
		require.NoError(t, err)
		require.Nil(t, got.RevokedAt)

		require.NoError(t, rtr.RevokeByJTI(ctx, jti))
		got, err = rtr.GetByJTI(ctx, jti)
		require.NoError(t, err)
		require.NotNil(t, got.RevokedAt)
	})
}
