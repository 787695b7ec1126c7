package quiz

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/saulo-duarte/studydeck/internal/config"
)

type Handler struct {
	service QuizService
}

func NewHandler(s QuizService) *Handler {
	return &Handler{service: s}
}

func (h *Handler) ListByDocument(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	documentID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid document id", http.StatusBadRequest)
		return
	}

	questions, err := h.service.ListByDocument(r.Context(), documentID)
	if err != nil {
		if errors.Is(err, ErrUnauthorized) {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}
		log.WithError(err).Error("Failed to list quiz questions for document")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	if questions == nil {
		questions = []*QuizQuestion{}
	}
	config.JSON(w, http.StatusOK, questions)
}
