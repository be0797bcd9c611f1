package api

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/pagenote/pagenote-be/internal/api/handlers"
	"github.com/pagenote/pagenote-be/internal/auth"
	"github.com/pagenote/pagenote-be/internal/services"
)

// NewRouter creates and configures a new Chi router.
func NewRouter(userService services.UserServiceProvider, noteService services.NoteServiceProvider, signer auth.TokenSigner) *chi.Mux {
	r := chi.NewRouter()

	// Basic middleware stack
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	// The notebook frontend is served from a different origin in development.
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type"},
		MaxAge:         300,
	}))

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(userService, signer)
	noteHandler := handlers.NewNoteHandler(noteService)

	r.Route("/auth", func(r chi.Router) {
		r.Post("/register", authHandler.Register)
		r.Post("/login", authHandler.Login)
	})

	// Note endpoints require an authenticated caller; the gate runs before
	// any store access.
	r.Group(func(r chi.Router) {
		r.Use(auth.Middleware(signer))
		r.Post("/notes", noteHandler.Save)
		r.Get("/notes/{page}", noteHandler.Get)
		r.Get("/stats", noteHandler.Stats)
	})

	return r
}
