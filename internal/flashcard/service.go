package flashcard

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/saulo-duarte/studydeck/internal/auth"
	"github.com/saulo-duarte/studydeck/internal/config"
)

var ErrUnauthorized = errors.New("unauthorized")

type FlashcardService interface {
	ListByDocument(ctx context.Context, documentID uuid.UUID) ([]*Flashcard, error)
}

type flashcardService struct {
	repo FlashcardRepository
}

func NewService(repo FlashcardRepository) FlashcardService {
	return &flashcardService{repo: repo}
}

// ListByDocument filters by both document and the authenticated user, so
// rows belonging to other users are never visible.
func (s *flashcardService) ListByDocument(ctx context.Context, documentID uuid.UUID) ([]*Flashcard, error) {
	log := config.WithContext(ctx)

	claims, err := auth.GetUserClaimsFromContext(ctx)
	if err != nil {
		return nil, ErrUnauthorized
	}

	userID, err := uuid.Parse(claims.UserID)
	if err != nil {
		return nil, ErrUnauthorized
	}

	cards, err := s.repo.FindAllByDocumentAndUser(documentID, userID)
	if err != nil {
		log.WithError(err).Error("Failed to list flashcards")
		return nil, err
	}
	return cards, nil
}
