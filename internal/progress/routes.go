package progress

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

func Routes(h *Handler) http.Handler {
	r := chi.NewRouter()

	r.Get("/", h.GetByDocument)
	r.Post("/flashcards/viewed", h.RecordFlashcardView)
	r.Post("/quiz/answered", h.RecordQuizAnswer)
	return r
}
