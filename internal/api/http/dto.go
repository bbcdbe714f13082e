package http

import (
	"time"

	"github.com/google/uuid"

	"github.com/billowria/bookshorts/internal/model"
)

type userDTO struct {
	ID        uuid.UUID `json:"id"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}

type sessionDTO struct {
	User         userDTO `json:"user"`
	AccessToken  string  `json:"access_token"`
	RefreshToken string  `json:"refresh_token"`
}

type meDTO struct {
	User userDTO    `json:"user"`
	Role model.Role `json:"role"`
}

type categoryDTO struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	DisplayOrder int       `json:"display_order"`
	Status       bool      `json:"status"`
	ImageURL     string    `json:"image_url,omitempty"`
	ClickCount   int64     `json:"click_count"`
}

type bookDTO struct {
	ID           uuid.UUID    `json:"id"`
	CategoryID   uuid.UUID    `json:"category_id"`
	Title        string       `json:"title"`
	CoverImage   string       `json:"cover_image,omitempty"`
	DisplayOrder int          `json:"display_order"`
	Status       bool         `json:"status"`
	AvgRating    float64      `json:"avg_rating"`
	ClickCount   int64        `json:"click_count"`
	Category     *categoryDTO `json:"category,omitempty"`
}

type contentDTO struct {
	ID          uuid.UUID         `json:"id"`
	BookID      uuid.UUID         `json:"book_id"`
	Type        model.ContentType `json:"type"`
	Content     string            `json:"content"`
	IsHTML      bool              `json:"is_html"`
	LastUpdated time.Time         `json:"last_updated"`
}

type bookmarkDTO struct {
	ID        uuid.UUID `json:"id"`
	BookID    uuid.UUID `json:"book_id"`
	CreatedAt time.Time `json:"created_at"`
	Book      *bookDTO  `json:"book,omitempty"`
}

type toggleBookmarkRequest struct {
	BookID uuid.UUID `json:"book_id"`
}

type toggleBookmarkResponse struct {
	BookID     uuid.UUID `json:"book_id"`
	Bookmarked bool      `json:"bookmarked"`
}

type credentialsRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type refreshRequest struct {
	RefreshToken string `json:"refresh_token"`
}

type tokenPairDTO struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

type rateBookRequest struct {
	Rating int `json:"rating"`
}

type categoryRequest struct {
	Name         string `json:"name"`
	DisplayOrder int    `json:"display_order"`
	Status       bool   `json:"status"`
	ImageURL     string `json:"image_url"`
}

type bookRequest struct {
	CategoryID   uuid.UUID `json:"category_id"`
	Title        string    `json:"title"`
	CoverImage   string    `json:"cover_image"`
	DisplayOrder int       `json:"display_order"`
	Status       bool      `json:"status"`
}

type saveContentRequest struct {
	Content string `json:"content"`
	IsHTML  bool   `json:"is_html"`
}

type uploadResponse struct {
	URL string `json:"url"`
}

func toUserDTO(u model.User) userDTO {
	return userDTO{ID: u.ID, Email: u.Email, CreatedAt: u.CreatedAt}
}

func toCategoryDTO(c model.Category) categoryDTO {
	return categoryDTO{
		ID:           c.ID,
		Name:         c.Name,
		DisplayOrder: c.DisplayOrder,
		Status:       c.Status,
		ImageURL:     c.ImageURL,
		ClickCount:   c.ClickCount,
	}
}

func toBookDTO(b model.Book) bookDTO {
	dto := bookDTO{
		ID:           b.ID,
		CategoryID:   b.CategoryID,
		Title:        b.Title,
		CoverImage:   b.CoverImage,
		DisplayOrder: b.DisplayOrder,
		Status:       b.Status,
		AvgRating:    b.AvgRating,
		ClickCount:   b.ClickCount,
	}
	if b.Category != nil {
		category := toCategoryDTO(*b.Category)
		dto.Category = &category
	}
	return dto
}

func toBookDTOs(books []model.Book) []bookDTO {
	dtos := make([]bookDTO, 0, len(books))
	for _, b := range books {
		dtos = append(dtos, toBookDTO(b))
	}
	return dtos
}

func toCategoryDTOs(categories []model.Category) []categoryDTO {
	dtos := make([]categoryDTO, 0, len(categories))
	for _, c := range categories {
		dtos = append(dtos, toCategoryDTO(c))
	}
	return dtos
}

func toContentDTO(c model.Content) contentDTO {
	return contentDTO{
		ID:          c.ID,
		BookID:      c.BookID,
		Type:        c.Type,
		Content:     c.Body,
		IsHTML:      c.IsHTML,
		LastUpdated: c.LastUpdated,
	}
}

func toBookmarkDTOs(bookmarks []model.Bookmark) []bookmarkDTO {
	dtos := make([]bookmarkDTO, 0, len(bookmarks))
	for _, bm := range bookmarks {
		dto := bookmarkDTO{ID: bm.ID, BookID: bm.BookID, CreatedAt: bm.CreatedAt}
		if bm.Book != nil {
			book := toBookDTO(*bm.Book)
			dto.Book = &book
		}
		dtos = append(dtos, dto)
	}
	return dtos
}
