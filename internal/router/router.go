package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/saulo-duarte/studydeck/internal/auth"
	"github.com/saulo-duarte/studydeck/internal/config"
	"github.com/saulo-duarte/studydeck/internal/document"
	"github.com/saulo-duarte/studydeck/internal/flashcard"
	"github.com/saulo-duarte/studydeck/internal/progress"
	"github.com/saulo-duarte/studydeck/internal/quiz"
	"github.com/saulo-duarte/studydeck/internal/user"
)

type RouterConfig struct {
	UserHandler      *user.Handler
	DocumentHandler  *document.Handler
	FlashcardHandler *flashcard.Handler
	QuizHandler      *quiz.Handler
	ProgressHandler  *progress.Handler
}

func New(cfg RouterConfig) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	r.Get("/swagger/*", httpSwagger.WrapHandler)

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		config.JSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	r.Route("/auth", func(r chi.Router) {
		r.Post("/login", cfg.UserHandler.GoogleLogin)
		r.Post("/refresh", cfg.UserHandler.RefreshToken)
		r.Post("/logout", auth.NewHandler().Logout)
	})

	r.Group(func(r chi.Router) {
		r.Use(auth.AuthMiddleware)

		r.Mount("/users", user.Routes(cfg.UserHandler))
		r.Mount("/documents", document.Routes(cfg.DocumentHandler))
		r.Mount("/documents/{id}/progress", progress.Routes(cfg.ProgressHandler))

		r.Get("/documents/{id}/flashcards", cfg.FlashcardHandler.ListByDocument)
		r.Get("/documents/{id}/quiz", cfg.QuizHandler.ListByDocument)
	})

	return r
}
