// Package client implements the browsing-side session, authorization,
// and data-sync layer over the REST API.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/billowria/bookshorts/internal/logger"
	"github.com/billowria/bookshorts/internal/model"
)

var (
	// ErrUnauthenticated is returned for operations that need a signed-in
	// user when there is none.
	ErrUnauthenticated = errors.New("not signed in")
)

// Identity is the signed-in principal as seen by the client.
type Identity struct {
	UserID uuid.UUID
	Email  string
}

// AuthAPI is the authentication surface the session store consumes.
type AuthAPI interface {
	SignUp(ctx context.Context, email, password string) (Identity, error)
	SignIn(ctx context.Context, email, password string) (Identity, error)
	SignOut(ctx context.Context) error
	Me(ctx context.Context) (Identity, model.Role, error)
}

// BookmarkAPI is the bookmark surface consumed by the bookmark set and
// the sync layer.
type BookmarkAPI interface {
	ListBookmarks(ctx context.Context) ([]model.Bookmark, error)
	BookmarkIDs(ctx context.Context) ([]uuid.UUID, error)
	ToggleBookmark(ctx context.Context, bookID uuid.UUID) (bookmarked bool, err error)
}

// ContentAPI is the content surface consumed by the editor.
type ContentAPI interface {
	GetContent(ctx context.Context, bookID uuid.UUID, contentType model.ContentType) (model.Content, error)
	SaveContent(ctx context.Context, content model.Content) (model.Content, error)
}

// CatalogAPI is the read/telemetry surface for the browsing views.
type CatalogAPI interface {
	ListCategories(ctx context.Context, activeOnly bool, limit int) ([]model.Category, error)
	ListBooks(ctx context.Context) ([]model.Book, error)
	ListBooksByCategory(ctx context.Context, categoryID uuid.UUID) ([]model.Book, error)
	GetBook(ctx context.Context, id uuid.UUID) (model.Book, error)
	RecordBookClick(ctx context.Context, id uuid.UUID) error
	RecordCategoryClick(ctx context.Context, id uuid.UUID) error
	RateBook(ctx context.Context, bookID uuid.UUID, rating int) (model.Book, error)
}

// Client talks to the REST API. It carries the bearer token for the
// current session and refreshes nothing on its own; token rotation is
// the caller's concern.
type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     *logger.Logger

	mu           sync.RWMutex
	accessToken  string
	refreshToken string
}

var (
	_ AuthAPI     = (*Client)(nil)
	_ BookmarkAPI = (*Client)(nil)
	_ ContentAPI  = (*Client)(nil)
	_ CatalogAPI  = (*Client)(nil)
)

func New(baseURL string, l *logger.Logger) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: 15 * time.Second},
		logger:     l,
	}
}

// SetTokens replaces the session tokens, e.g. after an external refresh.
func (c *Client) SetTokens(access, refresh string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.accessToken = access
	c.refreshToken = refresh
}

func (c *Client) tokens() (access, refresh string) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.accessToken, c.refreshToken
}

type wireEnvelope struct {
	Data    json.RawMessage `json:"data"`
	Error   string          `json:"error"`
	Success bool            `json:"success"`
}

// do performs a request and decodes the envelope into out (which may be
// nil for responses without a body).
func (c *Client) do(ctx context.Context, method, path string, body any, out any) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request body: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if access, _ := c.tokens(); access != "" {
		req.Header.Set("Authorization", "Bearer "+access)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNoContent || resp.StatusCode == http.StatusAccepted {
		return nil
	}

	if resp.StatusCode >= 400 {
		// Proxies and load balancers answer with HTML or an empty body;
		// the status code alone still has to yield a usable error.
		var env wireEnvelope
		if err := json.NewDecoder(resp.Body).Decode(&env); err != nil || env.Error == "" {
			env.Error = http.StatusText(resp.StatusCode)
		}
		switch resp.StatusCode {
		case http.StatusNotFound:
			return model.ErrNotFound
		case http.StatusUnauthorized:
			return fmt.Errorf("%w: %s", ErrUnauthenticated, env.Error)
		default:
			return fmt.Errorf("server returned %d: %s", resp.StatusCode, env.Error)
		}
	}

	if out != nil {
		var env wireEnvelope
		if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
			return fmt.Errorf("failed to decode response: %w", err)
		}
		if err := json.Unmarshal(env.Data, out); err != nil {
			return fmt.Errorf("failed to decode response data: %w", err)
		}
	}
	return nil
}

type wireUser struct {
	ID        uuid.UUID `json:"id"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}

type wireSession struct {
	User         wireUser `json:"user"`
	AccessToken  string   `json:"access_token"`
	RefreshToken string   `json:"refresh_token"`
}

type wireMe struct {
	User wireUser   `json:"user"`
	Role model.Role `json:"role"`
}

func (c *Client) SignUp(ctx context.Context, email, password string) (Identity, error) {
	var session wireSession
	err := c.do(ctx, http.MethodPost, "/api/v1/auth/signup", map[string]string{
		"email":    email,
		"password": password,
	}, &session)
	if err != nil {
		return Identity{}, err
	}
	c.SetTokens(session.AccessToken, session.RefreshToken)
	return Identity{UserID: session.User.ID, Email: session.User.Email}, nil
}

func (c *Client) SignIn(ctx context.Context, email, password string) (Identity, error) {
	var session wireSession
	err := c.do(ctx, http.MethodPost, "/api/v1/auth/signin", map[string]string{
		"email":    email,
		"password": password,
	}, &session)
	if err != nil {
		return Identity{}, err
	}
	c.SetTokens(session.AccessToken, session.RefreshToken)
	return Identity{UserID: session.User.ID, Email: session.User.Email}, nil
}

// SignOut revokes the refresh token server-side and drops the local
// tokens only when the server confirmed.
func (c *Client) SignOut(ctx context.Context) error {
	_, refresh := c.tokens()
	if refresh == "" {
		return ErrUnauthenticated
	}
	err := c.do(ctx, http.MethodPost, "/api/v1/auth/signout", map[string]string{
		"refresh_token": refresh,
	}, nil)
	if err != nil {
		return err
	}
	c.SetTokens("", "")
	return nil
}

func (c *Client) Me(ctx context.Context) (Identity, model.Role, error) {
	var me wireMe
	if err := c.do(ctx, http.MethodGet, "/api/v1/auth/me", nil, &me); err != nil {
		return Identity{}, "", err
	}
	return Identity{UserID: me.User.ID, Email: me.User.Email}, me.Role, nil
}

type wireCategory struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	DisplayOrder int       `json:"display_order"`
	Status       bool      `json:"status"`
	ImageURL     string    `json:"image_url"`
	ClickCount   int64     `json:"click_count"`
}

type wireBook struct {
	ID           uuid.UUID     `json:"id"`
	CategoryID   uuid.UUID     `json:"category_id"`
	Title        string        `json:"title"`
	CoverImage   string        `json:"cover_image"`
	DisplayOrder int           `json:"display_order"`
	Status       bool          `json:"status"`
	AvgRating    float64       `json:"avg_rating"`
	ClickCount   int64         `json:"click_count"`
	Category     *wireCategory `json:"category"`
}

type wireBookmark struct {
	ID        uuid.UUID `json:"id"`
	BookID    uuid.UUID `json:"book_id"`
	CreatedAt time.Time `json:"created_at"`
	Book      *wireBook `json:"book"`
}

type wireContent struct {
	ID          uuid.UUID         `json:"id"`
	BookID      uuid.UUID         `json:"book_id"`
	Type        model.ContentType `json:"type"`
	Content     string            `json:"content"`
	IsHTML      bool              `json:"is_html"`
	LastUpdated time.Time         `json:"last_updated"`
}

func fromWireCategory(w wireCategory) model.Category {
	return model.Category{
		ID:           w.ID,
		Name:         w.Name,
		DisplayOrder: w.DisplayOrder,
		Status:       w.Status,
		ImageURL:     w.ImageURL,
		ClickCount:   w.ClickCount,
	}
}

func fromWireBook(w wireBook) model.Book {
	book := model.Book{
		ID:           w.ID,
		CategoryID:   w.CategoryID,
		Title:        w.Title,
		CoverImage:   w.CoverImage,
		DisplayOrder: w.DisplayOrder,
		Status:       w.Status,
		AvgRating:    w.AvgRating,
		ClickCount:   w.ClickCount,
	}
	if w.Category != nil {
		category := fromWireCategory(*w.Category)
		book.Category = &category
	}
	return book
}

func (c *Client) ListCategories(ctx context.Context, activeOnly bool, limit int) ([]model.Category, error) {
	path := "/api/v1/categories"
	params := make([]string, 0, 2)
	if activeOnly {
		params = append(params, "active=true")
	}
	if limit > 0 {
		params = append(params, fmt.Sprintf("limit=%d", limit))
	}
	if len(params) > 0 {
		path += "?" + strings.Join(params, "&")
	}

	var wires []wireCategory
	if err := c.do(ctx, http.MethodGet, path, nil, &wires); err != nil {
		return nil, err
	}
	categories := make([]model.Category, 0, len(wires))
	for _, w := range wires {
		categories = append(categories, fromWireCategory(w))
	}
	return categories, nil
}

func (c *Client) ListBooks(ctx context.Context) ([]model.Book, error) {
	return c.listBooks(ctx, "/api/v1/books")
}

func (c *Client) ListBooksByCategory(ctx context.Context, categoryID uuid.UUID) ([]model.Book, error) {
	return c.listBooks(ctx, "/api/v1/books?category_id="+categoryID.String())
}

func (c *Client) listBooks(ctx context.Context, path string) ([]model.Book, error) {
	var wires []wireBook
	if err := c.do(ctx, http.MethodGet, path, nil, &wires); err != nil {
		return nil, err
	}
	books := make([]model.Book, 0, len(wires))
	for _, w := range wires {
		books = append(books, fromWireBook(w))
	}
	return books, nil
}

func (c *Client) GetBook(ctx context.Context, id uuid.UUID) (model.Book, error) {
	var w wireBook
	if err := c.do(ctx, http.MethodGet, "/api/v1/books/"+id.String(), nil, &w); err != nil {
		return model.Book{}, err
	}
	return fromWireBook(w), nil
}

func (c *Client) RecordBookClick(ctx context.Context, id uuid.UUID) error {
	return c.do(ctx, http.MethodPost, fmt.Sprintf("/api/v1/books/%s/click", id), nil, nil)
}

func (c *Client) RecordCategoryClick(ctx context.Context, id uuid.UUID) error {
	return c.do(ctx, http.MethodPost, fmt.Sprintf("/api/v1/categories/%s/click", id), nil, nil)
}

func (c *Client) RateBook(ctx context.Context, bookID uuid.UUID, rating int) (model.Book, error) {
	var w wireBook
	err := c.do(ctx, http.MethodPost, fmt.Sprintf("/api/v1/books/%s/rating", bookID), map[string]int{
		"rating": rating,
	}, &w)
	if err != nil {
		return model.Book{}, err
	}
	return fromWireBook(w), nil
}

func (c *Client) ListBookmarks(ctx context.Context) ([]model.Bookmark, error) {
	var wires []wireBookmark
	if err := c.do(ctx, http.MethodGet, "/api/v1/bookmarks", nil, &wires); err != nil {
		return nil, err
	}
	bookmarks := make([]model.Bookmark, 0, len(wires))
	for _, w := range wires {
		bm := model.Bookmark{ID: w.ID, BookID: w.BookID, CreatedAt: w.CreatedAt}
		if w.Book != nil {
			book := fromWireBook(*w.Book)
			bm.Book = &book
		}
		bookmarks = append(bookmarks, bm)
	}
	return bookmarks, nil
}

func (c *Client) BookmarkIDs(ctx context.Context) ([]uuid.UUID, error) {
	var ids []uuid.UUID
	if err := c.do(ctx, http.MethodGet, "/api/v1/bookmarks/ids", nil, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

func (c *Client) ToggleBookmark(ctx context.Context, bookID uuid.UUID) (bool, error) {
	var result struct {
		BookID     uuid.UUID `json:"book_id"`
		Bookmarked bool      `json:"bookmarked"`
	}
	err := c.do(ctx, http.MethodPost, "/api/v1/bookmarks/toggle", map[string]uuid.UUID{
		"book_id": bookID,
	}, &result)
	if err != nil {
		return false, err
	}
	return result.Bookmarked, nil
}

func (c *Client) GetContent(ctx context.Context, bookID uuid.UUID, contentType model.ContentType) (model.Content, error) {
	var w wireContent
	err := c.do(ctx, http.MethodGet, fmt.Sprintf("/api/v1/books/%s/content/%s", bookID, contentType), nil, &w)
	if err != nil {
		return model.Content{}, err
	}
	return model.Content{
		ID:          w.ID,
		BookID:      w.BookID,
		Type:        w.Type,
		Body:        w.Content,
		IsHTML:      w.IsHTML,
		LastUpdated: w.LastUpdated,
	}, nil
}

func (c *Client) SaveContent(ctx context.Context, content model.Content) (model.Content, error) {
	var w wireContent
	err := c.do(ctx, http.MethodPut,
		fmt.Sprintf("/api/v1/books/%s/content/%s", content.BookID, content.Type),
		map[string]any{
			"content": content.Body,
			"is_html": content.IsHTML,
		}, &w)
	if err != nil {
		return model.Content{}, err
	}
	return model.Content{
		ID:          w.ID,
		BookID:      w.BookID,
		Type:        w.Type,
		Body:        w.Content,
		IsHTML:      w.IsHTML,
		LastUpdated: w.LastUpdated,
	}, nil
}
