package progress

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/saulo-duarte/studydeck/internal/config"
)

type Handler struct {
	service ProgressService
}

func NewHandler(s ProgressService) *Handler {
	return &Handler{service: s}
}

type recordViewRequest struct {
	FlashcardID uuid.UUID `json:"flashcard_id"`
	Index       int       `json:"index"`
}

type recordAnswerRequest struct {
	QuestionID uuid.UUID `json:"question_id"`
	Index      int       `json:"index"`
}

func (h *Handler) GetByDocument(w http.ResponseWriter, r *http.Request) {
	documentID, ok := h.documentID(w, r)
	if !ok {
		return
	}

	p, err := h.service.GetByDocument(r.Context(), documentID)
	if err != nil {
		h.writeError(w, r, err, "Failed to load progress")
		return
	}
	config.JSON(w, http.StatusOK, p)
}

func (h *Handler) RecordFlashcardView(w http.ResponseWriter, r *http.Request) {
	documentID, ok := h.documentID(w, r)
	if !ok {
		return
	}

	var req recordViewRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.FlashcardID == uuid.Nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	p, err := h.service.RecordFlashcardView(r.Context(), documentID, req.FlashcardID, req.Index)
	if err != nil {
		h.writeError(w, r, err, "Failed to record flashcard view")
		return
	}
	config.JSON(w, http.StatusOK, p)
}

func (h *Handler) RecordQuizAnswer(w http.ResponseWriter, r *http.Request) {
	documentID, ok := h.documentID(w, r)
	if !ok {
		return
	}

	var req recordAnswerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.QuestionID == uuid.Nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	p, err := h.service.RecordQuizAnswer(r.Context(), documentID, req.QuestionID, req.Index)
	if err != nil {
		h.writeError(w, r, err, "Failed to record quiz answer")
		return
	}
	config.JSON(w, http.StatusOK, p)
}

func (h *Handler) documentID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid document id", http.StatusBadRequest)
		return uuid.Nil, false
	}
	return id, true
}

func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, err error, msg string) {
	log := config.WithContext(r.Context())

	switch {
	case errors.Is(err, ErrUnauthorized):
		http.Error(w, "unauthorized", http.StatusUnauthorized)
	case errors.Is(err, ErrProgressNotFound):
		http.Error(w, "progress not found", http.StatusNotFound)
	default:
		log.WithError(err).Error(msg)
		http.Error(w, "internal server error", http.StatusInternalServerError)
	}
}
