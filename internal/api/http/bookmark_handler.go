package http

import (
	"encoding/json"
	"net/http"

	"github.com/google/uuid"
)

func (s *Server) handleListBookmarks(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFrom(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "not authenticated", s.logger)
		return
	}

	bookmarks, err := s.bookmarks.List(r.Context(), userID)
	if err != nil {
		handleError(w, err, s.logger)
		return
	}

	writeJSON(w, http.StatusOK, toBookmarkDTOs(bookmarks), s.logger)
}

func (s *Server) handleBookmarkIDs(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFrom(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "not authenticated", s.logger)
		return
	}

	ids, err := s.bookmarks.BookIDs(r.Context(), userID)
	if err != nil {
		handleError(w, err, s.logger)
		return
	}
	if ids == nil {
		ids = []uuid.UUID{}
	}

	writeJSON(w, http.StatusOK, ids, s.logger)
}

// handleToggleBookmark flips the bookmark and reports the resulting
// state, so the client updates its view only after the write landed.
func (s *Server) handleToggleBookmark(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFrom(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "not authenticated", s.logger)
		return
	}

	var req toggleBookmarkRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", s.logger)
		return
	}
	if req.BookID == uuid.Nil {
		writeError(w, http.StatusBadRequest, "book_id is required", s.logger)
		return
	}

	added, err := s.bookmarks.Toggle(r.Context(), userID, req.BookID)
	if err != nil {
		handleError(w, err, s.logger)
		return
	}

	writeJSON(w, http.StatusOK, toggleBookmarkResponse{BookID: req.BookID, Bookmarked: added}, s.logger)
}
