package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/billowria/bookshorts/internal/model"
)

func (s *Server) handleListCategories(w http.ResponseWriter, r *http.Request) {
	activeOnly := r.URL.Query().Get("active") == "true"
	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 0 {
			writeError(w, http.StatusBadRequest, "invalid limit", s.logger)
			return
		}
		limit = parsed
	}

	categories, err := s.catalog.ListCategories(r.Context(), activeOnly, limit)
	if err != nil {
		handleError(w, err, s.logger)
		return
	}

	writeJSON(w, http.StatusOK, toCategoryDTOs(categories), s.logger)
}

func (s *Server) handleGetCategory(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid category id", s.logger)
		return
	}

	category, err := s.catalog.GetCategory(r.Context(), id)
	if err != nil {
		handleError(w, err, s.logger)
		return
	}

	writeJSON(w, http.StatusOK, toCategoryDTO(category), s.logger)
}

// handleCategoryClick bumps the category counter. The response is 202
// regardless of whether the row existed; the client treats clicks as
// fire-and-forget.
func (s *Server) handleCategoryClick(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid category id", s.logger)
		return
	}

	if err := s.catalog.RecordCategoryClick(r.Context(), id); err != nil {
		handleError(w, err, s.logger)
		return
	}

	w.WriteHeader(http.StatusAccepted)
}

func (s *Server) handleListBooks(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	if raw := query.Get("category_id"); raw != "" {
		categoryID, err := uuid.Parse(raw)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid category id", s.logger)
			return
		}
		books, err := s.catalog.ListBooksByCategory(r.Context(), categoryID)
		if err != nil {
			handleError(w, err, s.logger)
			return
		}
		writeJSON(w, http.StatusOK, toBookDTOs(books), s.logger)
		return
	}

	if query.Get("featured") == "true" {
		limit := 10
		if raw := query.Get("limit"); raw != "" {
			parsed, err := strconv.Atoi(raw)
			if err != nil || parsed <= 0 {
				writeError(w, http.StatusBadRequest, "invalid limit", s.logger)
				return
			}
			limit = parsed
		}
		books, err := s.catalog.ListFeaturedBooks(r.Context(), limit)
		if err != nil {
			handleError(w, err, s.logger)
			return
		}
		writeJSON(w, http.StatusOK, toBookDTOs(books), s.logger)
		return
	}

	books, err := s.catalog.ListBooks(r.Context())
	if err != nil {
		handleError(w, err, s.logger)
		return
	}

	writeJSON(w, http.StatusOK, toBookDTOs(books), s.logger)
}

func (s *Server) handleGetBook(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid book id", s.logger)
		return
	}

	book, err := s.catalog.GetBook(r.Context(), id)
	if err != nil {
		handleError(w, err, s.logger)
		return
	}

	writeJSON(w, http.StatusOK, toBookDTO(book), s.logger)
}

func (s *Server) handleBookClick(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid book id", s.logger)
		return
	}

	if err := s.catalog.RecordBookClick(r.Context(), id); err != nil {
		handleError(w, err, s.logger)
		return
	}

	w.WriteHeader(http.StatusAccepted)
}

func (s *Server) handleRateBook(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFrom(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "not authenticated", s.logger)
		return
	}

	bookID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid book id", s.logger)
		return
	}

	var req rateBookRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", s.logger)
		return
	}

	book, err := s.catalog.RateBook(r.Context(), userID, bookID, req.Rating)
	if err != nil {
		handleError(w, err, s.logger)
		return
	}

	writeJSON(w, http.StatusOK, toBookDTO(book), s.logger)
}

func (s *Server) handleCreateCategory(w http.ResponseWriter, r *http.Request) {
	var req categoryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", s.logger)
		return
	}
	if req.Name == "" {
		writeError(w, http.StatusBadRequest, "name is required", s.logger)
		return
	}

	created, err := s.catalog.CreateCategory(r.Context(), model.Category{
		Name:         req.Name,
		DisplayOrder: req.DisplayOrder,
		Status:       req.Status,
		ImageURL:     req.ImageURL,
	})
	if err != nil {
		handleError(w, err, s.logger)
		return
	}

	writeJSON(w, http.StatusCreated, toCategoryDTO(created), s.logger)
}

func (s *Server) handleUpdateCategory(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid category id", s.logger)
		return
	}

	var req categoryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", s.logger)
		return
	}

	updated, err := s.catalog.UpdateCategory(r.Context(), model.Category{
		ID:           id,
		Name:         req.Name,
		DisplayOrder: req.DisplayOrder,
		Status:       req.Status,
		ImageURL:     req.ImageURL,
	})
	if err != nil {
		handleError(w, err, s.logger)
		return
	}

	writeJSON(w, http.StatusOK, toCategoryDTO(updated), s.logger)
}

func (s *Server) handleDeleteCategory(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid category id", s.logger)
		return
	}

	if err := s.catalog.DeleteCategory(r.Context(), id); err != nil {
		handleError(w, err, s.logger)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleCreateBook(w http.ResponseWriter, r *http.Request) {
	var req bookRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", s.logger)
		return
	}
	if req.Title == "" || req.CategoryID == uuid.Nil {
		writeError(w, http.StatusBadRequest, "title and category_id are required", s.logger)
		return
	}

	created, err := s.catalog.CreateBook(r.Context(), model.Book{
		CategoryID:   req.CategoryID,
		Title:        req.Title,
		CoverImage:   req.CoverImage,
		DisplayOrder: req.DisplayOrder,
		Status:       req.Status,
	})
	if err != nil {
		handleError(w, err, s.logger)
		return
	}

	writeJSON(w, http.StatusCreated, toBookDTO(created), s.logger)
}

func (s *Server) handleUpdateBook(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid book id", s.logger)
		return
	}

	var req bookRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", s.logger)
		return
	}

	updated, err := s.catalog.UpdateBook(r.Context(), model.Book{
		ID:           id,
		CategoryID:   req.CategoryID,
		Title:        req.Title,
		CoverImage:   req.CoverImage,
		DisplayOrder: req.DisplayOrder,
		Status:       req.Status,
	})
	if err != nil {
		handleError(w, err, s.logger)
		return
	}

	writeJSON(w, http.StatusOK, toBookDTO(updated), s.logger)
}

func (s *Server) handleDeleteBook(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid book id", s.logger)
		return
	}

	if err := s.catalog.DeleteBook(r.Context(), id); err != nil {
		handleError(w, err, s.logger)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
