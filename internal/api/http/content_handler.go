package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/billowria/bookshorts/internal/model"
)

func (s *Server) handleGetContent(w http.ResponseWriter, r *http.Request) {
	bookID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid book id", s.logger)
		return
	}
	contentType := model.ContentType(chi.URLParam(r, "type"))

	content, err := s.content.Get(r.Context(), bookID, contentType)
	if err != nil {
		handleError(w, err, s.logger)
		return
	}

	writeJSON(w, http.StatusOK, toContentDTO(content), s.logger)
}

func (s *Server) handleSaveContent(w http.ResponseWriter, r *http.Request) {
	bookID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid book id", s.logger)
		return
	}
	contentType := model.ContentType(chi.URLParam(r, "type"))

	var req saveContentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", s.logger)
		return
	}

	saved, err := s.content.Save(r.Context(), model.Content{
		BookID: bookID,
		Type:   contentType,
		Body:   req.Content,
		IsHTML: req.IsHTML,
	})
	if err != nil {
		handleError(w, err, s.logger)
		return
	}

	writeJSON(w, http.StatusOK, toContentDTO(saved), s.logger)
}
