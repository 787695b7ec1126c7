package quiz

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/saulo-duarte/studydeck/internal/auth"
	"github.com/saulo-duarte/studydeck/internal/config"
)

var ErrUnauthorized = errors.New("unauthorized")

type QuizService interface {
	ListByDocument(ctx context.Context, documentID uuid.UUID) ([]*QuizQuestion, error)
}

type quizService struct {
	repo QuizRepository
}

func NewService(repo QuizRepository) QuizService {
	return &quizService{repo: repo}
}

func (s *quizService) ListByDocument(ctx context.Context, documentID uuid.UUID) ([]*QuizQuestion, error) {
	log := config.WithContext(ctx)

	claims, err := auth.GetUserClaimsFromContext(ctx)
	if err != nil {
		return nil, ErrUnauthorized
	}

	userID, err := uuid.Parse(claims.UserID)
	if err != nil {
		return nil, ErrUnauthorized
	}

	questions, err := s.repo.FindAllByDocumentAndUser(documentID, userID)
	if err != nil {
		log.WithError(err).Error("Failed to list quiz questions")
		return nil, err
	}
	return questions, nil
}
