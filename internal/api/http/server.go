// Package http exposes the REST API consumed by the browsing client.
package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/billowria/bookshorts/internal/logger"
	"github.com/billowria/bookshorts/internal/service"
)

// Server holds the services behind the REST surface and builds the
// router over them.
type Server struct {
	auth      *service.Auth
	catalog   *service.Catalog
	bookmarks *service.Bookmarks
	content   *service.Content
	uploads   *service.Uploads
	logger    *logger.Logger
}

func NewServer(
	auth *service.Auth,
	catalog *service.Catalog,
	bookmarks *service.Bookmarks,
	content *service.Content,
	uploads *service.Uploads,
	logger *logger.Logger,
) *Server {
	return &Server{
		auth:      auth,
		catalog:   catalog,
		bookmarks: bookmarks,
		content:   content,
		uploads:   uploads,
		logger:    logger,
	}
}

// Router assembles the full route tree. Read endpoints are public;
// bookmark, rating, and profile endpoints need a valid token; catalog
// writes and uploads need the admin role on top.
func (s *Server) Router(allowedOrigins []string) http.Handler {
	r := chi.NewRouter()

	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Recoverer)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   allowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	r.NotFound(func(w http.ResponseWriter, _ *http.Request) {
		writeError(w, http.StatusNotFound, "not found", s.logger)
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, _ *http.Request) {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed", s.logger)
	})

	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/auth/signup", s.handleSignUp)
		r.Post("/auth/signin", s.handleSignIn)
		r.Post("/auth/refresh", s.handleRefresh)
		r.Post("/auth/signout", s.handleSignOut)

		r.Get("/categories", s.handleListCategories)
		r.Get("/categories/{id}", s.handleGetCategory)
		r.Post("/categories/{id}/click", s.handleCategoryClick)

		r.Get("/books", s.handleListBooks)
		r.Get("/books/{id}", s.handleGetBook)
		r.Post("/books/{id}/click", s.handleBookClick)
		r.Get("/books/{id}/content/{type}", s.handleGetContent)

		r.Group(func(r chi.Router) {
			r.Use(s.requireAuth)

			r.Get("/auth/me", s.handleMe)

			r.Get("/bookmarks", s.handleListBookmarks)
			r.Get("/bookmarks/ids", s.handleBookmarkIDs)
			r.Post("/bookmarks/toggle", s.handleToggleBookmark)

			r.Post("/books/{id}/rating", s.handleRateBook)
		})

		r.Group(func(r chi.Router) {
			r.Use(s.requireAuth)
			r.Use(s.requireAdmin)

			r.Post("/categories", s.handleCreateCategory)
			r.Put("/categories/{id}", s.handleUpdateCategory)
			r.Delete("/categories/{id}", s.handleDeleteCategory)

			r.Post("/books", s.handleCreateBook)
			r.Put("/books/{id}", s.handleUpdateBook)
			r.Delete("/books/{id}", s.handleDeleteBook)

			r.Put("/books/{id}/content/{type}", s.handleSaveContent)

			r.Post("/uploads", s.handleUpload)
		})
	})

	return r
}
